package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"pugorugh/models"
)

// MatchService owns preferences, the decision ledger and the next-dog queue.
type MatchService struct {
	Store Store
}

func NewMatchService(store Store) *MatchService {
	return &MatchService{Store: store}
}

// PreferenceInput is the body of a preference update. Codes outside the
// allowed sets are dropped; a dimension left empty keeps its current value.
type PreferenceInput struct {
	Age    models.CodeSet[models.AgeBand] `json:"age"`
	Gender models.CodeSet[models.Gender]  `json:"gender"`
	Size   models.CodeSet[models.Size]    `json:"size"`
}

// GetPreferences returns the user's preferences, creating the default record
// on first access. Creation goes through ReplacePreference, so it also
// clears any decisions left over for that user.
func (s *MatchService) GetPreferences(ctx context.Context, userID string) (*models.UserPref, error) {
	pref, err := s.Store.GetPreference(ctx, userID)
	if err == nil {
		return pref, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("load preferences: %w", err)
	}

	pref = models.DefaultUserPref(userID)
	if err := s.Store.ReplacePreference(ctx, pref); err != nil {
		return nil, err
	}
	ledgerResetsTotal.Inc()
	log.Printf("[MATCHER] Created default preferences for %s", userID)
	return pref, nil
}

// SetPreferences replaces the user's preferences and deletes every decision
// they made. The reset is not reversible.
func (s *MatchService) SetPreferences(ctx context.Context, userID string, in PreferenceInput) (*models.UserPref, error) {
	current, err := s.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	next := &models.UserPref{
		ID:             current.ID,
		ExternalUserID: userID,
		Age:            keepIfEmpty(models.NewCodeSet(in.Age, models.AllAgeBands), current.Age),
		Gender:         keepIfEmpty(models.NewCodeSet(in.Gender, models.AllGenders), current.Gender),
		Size:           keepIfEmpty(models.NewCodeSet(in.Size, models.AllSizes), current.Size),
	}
	if err := s.Store.ReplacePreference(ctx, next); err != nil {
		return nil, err
	}
	ledgerResetsTotal.Inc()
	log.Printf("[MATCHER] Preferences for %s set to age=%s gender=%s size=%s; ledger cleared",
		userID, next.Age, next.Gender, next.Size)
	return next, nil
}

func keepIfEmpty[T ~string](candidate, prior models.CodeSet[T]) models.CodeSet[T] {
	if len(candidate) == 0 {
		return prior
	}
	return candidate
}

// Next returns the first eligible dog with the given status whose id is
// greater than currentID, wrapping around to the lowest id. ErrNotFound
// means no eligible dog currently has that status.
func (s *MatchService) Next(ctx context.Context, userID string, status models.Status, currentID uint) (*models.Dog, error) {
	dogs, err := s.EligibleDogs(ctx, userID)
	if err != nil {
		return nil, err
	}
	decisions, err := s.decisionMap(ctx, userID)
	if err != nil {
		return nil, err
	}

	dog, ok := NextInRing(WithStatus(dogs, decisions, status), currentID)
	if !ok {
		queueNextTotal.WithLabelValues(status.String(), "empty").Inc()
		return nil, ErrNotFound
	}
	queueNextTotal.WithLabelValues(status.String(), "hit").Inc()
	return &dog, nil
}

// Decide records status for (userID, dogID), overwriting any earlier
// decision. It does not move the cursor.
func (s *MatchService) Decide(ctx context.Context, userID string, dogID uint, status models.Status) (*models.UserDog, error) {
	if _, err := s.Store.GetDog(ctx, dogID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load dog %d: %w", dogID, err)
	}

	entry := &models.UserDog{ExternalUserID: userID, DogID: dogID, Status: status}
	if err := s.Store.UpsertDecision(ctx, entry); err != nil {
		return nil, fmt.Errorf("record decision: %w", err)
	}
	decisionsTotal.WithLabelValues(status.String()).Inc()
	return entry, nil
}

// StatusOf reads the ledger for one pair; no entry reads as Undecided.
func (s *MatchService) StatusOf(ctx context.Context, userID string, dogID uint) (models.Status, error) {
	decisions, err := s.decisionMap(ctx, userID)
	if err != nil {
		return models.Undecided, err
	}
	return decisions[dogID], nil
}

// Summary is the per-status breakdown of a user's eligible dogs.
type Summary struct {
	Eligible  int `json:"eligible"`
	Liked     int `json:"liked"`
	Disliked  int `json:"disliked"`
	Undecided int `json:"undecided"`
}

// Summarize counts the eligible dogs by status. Only dogs in the current
// eligible set are counted, and dogs with no ledger row count as undecided.
func (s *MatchService) Summarize(ctx context.Context, userID string) (*Summary, error) {
	dogs, err := s.EligibleDogs(ctx, userID)
	if err != nil {
		return nil, err
	}
	decisions, err := s.decisionMap(ctx, userID)
	if err != nil {
		return nil, err
	}

	sum := &Summary{Eligible: len(dogs)}
	for _, d := range dogs {
		switch decisions[d.ID] {
		case models.Liked:
			sum.Liked++
		case models.Disliked:
			sum.Disliked++
		default:
			sum.Undecided++
		}
	}
	return sum, nil
}

// Catalog lists every dog, ascending by id.
func (s *MatchService) Catalog(ctx context.Context) ([]models.Dog, error) {
	dogs, err := s.Store.ListDogs(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	return dogs, nil
}

func (s *MatchService) decisionMap(ctx context.Context, userID string) (map[uint]models.Status, error) {
	entries, err := s.Store.ListDecisions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load decisions: %w", err)
	}
	out := make(map[uint]models.Status, len(entries))
	for _, e := range entries {
		out[e.DogID] = e.Status
	}
	return out, nil
}
