package services

import (
	"testing"

	"pugorugh/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dogsWithIDs(ids ...uint) []models.Dog {
	out := make([]models.Dog, len(ids))
	for i, id := range ids {
		out[i] = models.Dog{ID: id}
	}
	return out
}

func TestNextInRing(t *testing.T) {
	ring := dogsWithIDs(2, 5, 9)

	tests := []struct {
		after uint
		want  uint
	}{
		{0, 2},
		{2, 5},
		{3, 5}, // cursor not in the ring still advances by value
		{5, 9},
		{9, 2}, // at the end: wrap
		{42, 2},
	}
	for _, tt := range tests {
		got, ok := NextInRing(ring, tt.after)
		require.True(t, ok)
		assert.Equal(t, tt.want, got.ID, "after %d", tt.after)
	}

	_, ok := NextInRing(nil, 0)
	assert.False(t, ok)
}

func TestNextInRingVisitsEveryDogOncePerCycle(t *testing.T) {
	ring := dogsWithIDs(1, 3, 4, 8, 13)

	seen := make(map[uint]int)
	cursor := uint(0)
	for range ring {
		d, ok := NextInRing(ring, cursor)
		require.True(t, ok)
		seen[d.ID]++
		cursor = d.ID
	}
	assert.Len(t, seen, len(ring))
	for id, n := range seen {
		assert.Equal(t, 1, n, "dog %d", id)
	}

	d, _ := NextInRing(ring, cursor)
	assert.Equal(t, uint(1), d.ID, "second cycle starts over")
}

func TestWithStatusTreatsMissingAsUndecided(t *testing.T) {
	ring := dogsWithIDs(1, 2, 3)
	decisions := map[uint]models.Status{2: models.Liked, 3: models.Undecided}

	assert.Equal(t, dogsWithIDs(1, 3), WithStatus(ring, decisions, models.Undecided))
	assert.Equal(t, dogsWithIDs(2), WithStatus(ring, decisions, models.Liked))
	assert.Empty(t, WithStatus(ring, decisions, models.Disliked))
}
