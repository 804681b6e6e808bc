package services

import (
	"sort"

	"pugorugh/models"
)

// WithStatus keeps the dogs whose ledger status equals want. Dogs missing
// from decisions count as Undecided.
func WithStatus(dogs []models.Dog, decisions map[uint]models.Status, want models.Status) []models.Dog {
	out := make([]models.Dog, 0, len(dogs))
	for _, d := range dogs {
		if decisions[d.ID] == want {
			out = append(out, d)
		}
	}
	return out
}

// NextInRing picks the first dog with an id strictly greater than after,
// wrapping to the lowest id when the cursor is at or past the end.
// dogs must be sorted ascending by id. after need not be a member of dogs.
func NextInRing(dogs []models.Dog, after uint) (models.Dog, bool) {
	if len(dogs) == 0 {
		return models.Dog{}, false
	}
	i := sort.Search(len(dogs), func(i int) bool { return dogs[i].ID > after })
	if i == len(dogs) {
		i = 0
	}
	return dogs[i], true
}
