package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"pugorugh/models"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps everything in process. It backs STORE_DRIVER=memory and
// the tests; a single mutex makes every method atomic.
type MemoryStore struct {
	mu        sync.RWMutex
	dogs      map[uint]models.Dog
	nextDogID uint
	prefs     map[string]models.UserPref
	decisions map[string]map[uint]models.UserDog
	now       func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		dogs:      make(map[uint]models.Dog),
		nextDogID: 1,
		prefs:     make(map[string]models.UserPref),
		decisions: make(map[string]map[uint]models.UserDog),
		now:       time.Now,
	}
}

func (s *MemoryStore) ListDogs(_ context.Context, filter *DogFilter) ([]models.Dog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Dog, 0, len(s.dogs))
	for _, d := range s.dogs {
		if filter.Match(d) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) GetDog(_ context.Context, id uint) (*models.Dog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.dogs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &d, nil
}

func (s *MemoryStore) CountDogs(context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.dogs)), nil
}

// CreateDogs assigns ids to dogs that have none, like an autoincrement column.
func (s *MemoryStore) CreateDogs(_ context.Context, dogs []models.Dog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range dogs {
		if dogs[i].ID == 0 {
			dogs[i].ID = s.nextDogID
		}
		if dogs[i].ID >= s.nextDogID {
			s.nextDogID = dogs[i].ID + 1
		}
		s.dogs[dogs[i].ID] = dogs[i]
	}
	return nil
}

// DeleteDog removes a catalog row without touching the ledger, which is how
// orphaned decisions come about.
func (s *MemoryStore) DeleteDog(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.dogs, id)
}

func (s *MemoryStore) GetPreference(_ context.Context, userID string) (*models.UserPref, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.prefs[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *MemoryStore) ReplacePreference(_ context.Context, pref *models.UserPref) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if existing, ok := s.prefs[pref.ExternalUserID]; ok {
		pref.ID = existing.ID
		pref.CreatedAt = existing.CreatedAt
	} else {
		pref.CreatedAt = now
	}
	pref.UpdatedAt = now
	s.prefs[pref.ExternalUserID] = *pref
	delete(s.decisions, pref.ExternalUserID)
	return nil
}

func (s *MemoryStore) ListDecisions(_ context.Context, userID string) ([]models.UserDog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.decisions[userID]
	out := make([]models.UserDog, 0, len(entries))
	for _, e := range entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DogID < out[j].DogID })
	return out, nil
}

func (s *MemoryStore) UpsertDecision(_ context.Context, entry *models.UserDog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.decisions[entry.ExternalUserID]
	if !ok {
		entries = make(map[uint]models.UserDog)
		s.decisions[entry.ExternalUserID] = entries
	}
	now := s.now()
	if existing, ok := entries[entry.DogID]; ok {
		entry.CreatedAt = existing.CreatedAt
	} else {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now
	entries[entry.DogID] = *entry
	return nil
}

func (s *MemoryStore) PruneOrphanDecisions(context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var pruned int64
	for _, entries := range s.decisions {
		for dogID := range entries {
			if _, ok := s.dogs[dogID]; !ok {
				delete(entries, dogID)
				pruned++
			}
		}
	}
	return pruned, nil
}

func (s *MemoryStore) Ping(context.Context) error { return nil }
