package services

import (
	"context"
	"errors"
	"testing"

	"pugorugh/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUser = "user-1"

// francesca and muffin are the two fixture dogs used throughout.
func newFixtureService(t *testing.T) (*MatchService, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	require.NoError(t, store.CreateDogs(context.Background(), []models.Dog{
		{ID: 1, Name: "Francesca", ImageFilename: "1.jpg", Breed: "Labrador", Age: 72, Gender: models.GenderFemale, Size: models.SizeLarge},
		{ID: 3, Name: "Muffin", ImageFilename: "3.jpg", Breed: "Boxer", Age: 24, Gender: models.GenderFemale, Size: models.SizeExtraLarge},
	}))
	return NewMatchService(store), store
}

func sizes(codes ...models.Size) models.CodeSet[models.Size] { return codes }

func TestGetPreferencesCreatesDefault(t *testing.T) {
	svc, store := newFixtureService(t)
	ctx := context.Background()

	// a stale row from before the preference record existed
	require.NoError(t, store.UpsertDecision(ctx, &models.UserDog{ExternalUserID: testUser, DogID: 1, Status: models.Liked}))

	pref, err := svc.GetPreferences(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, "b,y,a,s", pref.Age.String())
	assert.Equal(t, "m,f", pref.Gender.String())
	assert.Equal(t, "s,m,l,xl", pref.Size.String())
	assert.NotEmpty(t, pref.ID)

	entries, err := store.ListDecisions(ctx, testUser)
	require.NoError(t, err)
	assert.Empty(t, entries, "creating the default resets the ledger")

	again, err := svc.GetPreferences(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, pref.ID, again.ID)
}

func TestNoEligibleDogsIsNotFound(t *testing.T) {
	svc, _ := newFixtureService(t)
	ctx := context.Background()

	_, err := svc.SetPreferences(ctx, testUser, PreferenceInput{
		Age:    models.CodeSet[models.AgeBand](models.AllAgeBands),
		Gender: models.CodeSet[models.Gender]{models.GenderMale, models.GenderFemale},
		Size:   sizes(models.SizeSmall, models.SizeMedium),
	})
	require.NoError(t, err)

	dogs, err := svc.EligibleDogs(ctx, testUser)
	require.NoError(t, err)
	assert.Empty(t, dogs)

	_, err = svc.Next(ctx, testUser, models.Undecided, 0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNextWrapsAroundEligibleDogs(t *testing.T) {
	svc, _ := newFixtureService(t)
	ctx := context.Background()

	_, err := svc.SetPreferences(ctx, testUser, PreferenceInput{Size: sizes(models.SizeLarge, models.SizeExtraLarge)})
	require.NoError(t, err)

	dogs, err := svc.EligibleDogs(ctx, testUser)
	require.NoError(t, err)
	require.Len(t, dogs, 2)
	assert.Equal(t, uint(1), dogs[0].ID)
	assert.Equal(t, uint(3), dogs[1].ID)

	for _, step := range []struct{ cursor, want uint }{{0, 1}, {1, 3}, {3, 1}} {
		d, err := svc.Next(ctx, testUser, models.Undecided, step.cursor)
		require.NoError(t, err)
		assert.Equal(t, step.want, d.ID, "cursor %d", step.cursor)
	}
}

func TestDecideRemovesDogFromUndecidedQueue(t *testing.T) {
	svc, _ := newFixtureService(t)
	ctx := context.Background()

	_, err := svc.SetPreferences(ctx, testUser, PreferenceInput{Size: sizes(models.SizeLarge, models.SizeExtraLarge)})
	require.NoError(t, err)

	_, err = svc.Decide(ctx, testUser, 1, models.Liked)
	require.NoError(t, err)

	d, err := svc.Next(ctx, testUser, models.Undecided, 0)
	require.NoError(t, err)
	assert.Equal(t, uint(3), d.ID)

	// the decided dog's own id as cursor still moves on, and wraps to itself
	liked, err := svc.Next(ctx, testUser, models.Liked, 1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), liked.ID)

	_, err = svc.Next(ctx, testUser, models.Disliked, 0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDecideRoundTripAndIdempotence(t *testing.T) {
	svc, store := newFixtureService(t)
	ctx := context.Background()

	for _, s := range []models.Status{models.Liked, models.Disliked, models.Undecided, models.Liked} {
		for range 2 {
			_, err := svc.Decide(ctx, testUser, 3, s)
			require.NoError(t, err)
		}
		got, err := svc.StatusOf(ctx, testUser, 3)
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	entries, err := store.ListDecisions(ctx, testUser)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "one row per (user, dog)")
}

func TestDecideUnknownDog(t *testing.T) {
	svc, store := newFixtureService(t)
	ctx := context.Background()

	_, err := svc.Decide(ctx, testUser, 99, models.Liked)
	assert.ErrorIs(t, err, ErrNotFound)

	entries, err := store.ListDecisions(ctx, testUser)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStatusOfAbsentEntryIsUndecided(t *testing.T) {
	svc, _ := newFixtureService(t)

	got, err := svc.StatusOf(context.Background(), testUser, 1)
	require.NoError(t, err)
	assert.Equal(t, models.Undecided, got)
}

func TestSetPreferencesResetsLedgerAndFiltersNext(t *testing.T) {
	svc, store := newFixtureService(t)
	ctx := context.Background()

	_, err := svc.GetPreferences(ctx, testUser)
	require.NoError(t, err)
	_, err = svc.Decide(ctx, testUser, 1, models.Liked)
	require.NoError(t, err)
	_, err = svc.Decide(ctx, testUser, 3, models.Disliked)
	require.NoError(t, err)

	entries, err := store.ListDecisions(ctx, testUser)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	_, err = svc.SetPreferences(ctx, testUser, PreferenceInput{Size: sizes(models.SizeExtraLarge)})
	require.NoError(t, err)

	entries, err = store.ListDecisions(ctx, testUser)
	require.NoError(t, err)
	assert.Empty(t, entries)

	for _, cursor := range []uint{0, 1, 3, 50} {
		d, err := svc.Next(ctx, testUser, models.Undecided, cursor)
		require.NoError(t, err)
		assert.Equal(t, models.SizeExtraLarge, d.Size)
	}
	_, err = svc.Next(ctx, testUser, models.Liked, 0)
	assert.ErrorIs(t, err, ErrNotFound, "old likes do not leak through")
}

func TestSetPreferencesKeepsPriorValueForEmptyDimension(t *testing.T) {
	svc, _ := newFixtureService(t)
	ctx := context.Background()

	first, err := svc.SetPreferences(ctx, testUser, PreferenceInput{
		Age:    models.CodeSet[models.AgeBand]{models.AgeSenior},
		Gender: models.CodeSet[models.Gender]{models.GenderFemale},
		Size:   sizes(models.SizeLarge),
	})
	require.NoError(t, err)

	second, err := svc.SetPreferences(ctx, testUser, PreferenceInput{
		Age:    models.CodeSet[models.AgeBand]{"zz"},
		Gender: models.CodeSet[models.Gender]{models.GenderUnknown},
		Size:   sizes(models.SizeExtraLarge, "huge"),
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "s", second.Age.String(), "unknown bands keep the prior value")
	assert.Equal(t, "f", second.Gender.String(), "u is not a preference gender")
	assert.Equal(t, "xl", second.Size.String())
}

func TestSummarizeCountsEligibleDogsOnly(t *testing.T) {
	svc, store := newFixtureService(t)
	ctx := context.Background()
	require.NoError(t, store.CreateDogs(ctx, []models.Dog{
		{ID: 4, Name: "Rex", ImageFilename: "4.jpg", Age: 5, Gender: models.GenderMale, Size: models.SizeSmall},
	}))

	_, err := svc.SetPreferences(ctx, testUser, PreferenceInput{Size: sizes(models.SizeLarge, models.SizeExtraLarge)})
	require.NoError(t, err)
	_, err = svc.Decide(ctx, testUser, 1, models.Liked)
	require.NoError(t, err)
	_, err = svc.Decide(ctx, testUser, 4, models.Disliked) // not eligible
	require.NoError(t, err)

	sum, err := svc.Summarize(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, &Summary{Eligible: 2, Liked: 1, Disliked: 0, Undecided: 1}, sum)
}

func TestUsersDoNotShareLedgers(t *testing.T) {
	svc, _ := newFixtureService(t)
	ctx := context.Background()

	_, err := svc.Decide(ctx, "alice", 1, models.Liked)
	require.NoError(t, err)

	bob, err := svc.StatusOf(ctx, "bob", 1)
	require.NoError(t, err)
	assert.Equal(t, models.Undecided, bob)

	_, err = svc.SetPreferences(ctx, "bob", PreferenceInput{Size: sizes(models.SizeLarge)})
	require.NoError(t, err)

	alice, err := svc.StatusOf(ctx, "alice", 1)
	require.NoError(t, err)
	assert.Equal(t, models.Liked, alice)
}

type failingResetStore struct {
	*MemoryStore
}

func (failingResetStore) ReplacePreference(context.Context, *models.UserPref) error {
	return errors.Join(ErrLedgerReset, errors.New("connection reset"))
}

func TestLedgerResetFailureIsSurfaced(t *testing.T) {
	_, mem := newFixtureService(t)
	svc := NewMatchService(failingResetStore{mem})

	_, err := svc.SetPreferences(context.Background(), testUser, PreferenceInput{Size: sizes(models.SizeLarge)})
	assert.ErrorIs(t, err, ErrLedgerReset)

	_, err = svc.Next(context.Background(), testUser, models.Undecided, 0)
	assert.ErrorIs(t, err, ErrLedgerReset)
}

func TestCatalogListsAllDogs(t *testing.T) {
	svc, _ := newFixtureService(t)

	dogs, err := svc.Catalog(context.Background())
	require.NoError(t, err)
	require.Len(t, dogs, 2)
	assert.Equal(t, "Francesca", dogs[0].Name)
	assert.Equal(t, "Muffin", dogs[1].Name)
}
