package services

import (
	"context"
	"fmt"
	"slices"

	"pugorugh/models"
)

// DogFilter selects dogs by field membership. An empty dimension does not
// constrain; filters built from preferences never have empty dimensions.
type DogFilter struct {
	Genders []models.Gender
	Sizes   []models.Size
	Ages    AgeSet
}

// FilterForPreference turns a stored preference into a catalog filter.
func FilterForPreference(pref *models.UserPref) *DogFilter {
	return &DogFilter{
		Genders: pref.Gender,
		Sizes:   pref.Size,
		Ages:    ResolveAgeBands(pref.Age),
	}
}

// Match applies the filter to a single dog.
func (f *DogFilter) Match(d models.Dog) bool {
	if f == nil {
		return true
	}
	if len(f.Genders) > 0 && !slices.Contains(f.Genders, d.Gender) {
		return false
	}
	if len(f.Sizes) > 0 && !slices.Contains(f.Sizes, d.Size) {
		return false
	}
	if len(f.Ages) > 0 && !f.Ages.Contains(d.Age) {
		return false
	}
	return true
}

// EligibleDogs returns the dogs userID may see under their current
// preferences, ascending by id. An empty slice is a valid answer.
func (s *MatchService) EligibleDogs(ctx context.Context, userID string) ([]models.Dog, error) {
	pref, err := s.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	dogs, err := s.Store.ListDogs(ctx, FilterForPreference(pref))
	if err != nil {
		return nil, fmt.Errorf("list eligible dogs: %w", err)
	}
	return dogs, nil
}
