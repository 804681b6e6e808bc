package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"pugorugh/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ Store = (*GormStore)(nil)

// GormStore is the Postgres-backed Store.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

// AutoMigrate creates or updates the catalog, preference and ledger tables.
func (s *GormStore) AutoMigrate() error {
	return s.DB.AutoMigrate(
		&models.Dog{},
		&models.UserPref{},
		&models.UserDog{},
	)
}

func (s *GormStore) ListDogs(ctx context.Context, filter *DogFilter) ([]models.Dog, error) {
	db := s.DB.WithContext(ctx).Model(&models.Dog{})
	if filter != nil {
		if len(filter.Genders) > 0 {
			db = db.Where("gender IN ?", toStrings(filter.Genders))
		}
		if len(filter.Sizes) > 0 {
			db = db.Where("size IN ?", toStrings(filter.Sizes))
		}
		if len(filter.Ages) > 0 {
			ages := s.DB.Where("age BETWEEN ? AND ?", filter.Ages[0].Min, filter.Ages[0].Max)
			for _, r := range filter.Ages[1:] {
				ages = ages.Or("age BETWEEN ? AND ?", r.Min, r.Max)
			}
			db = db.Where(ages)
		}
	}

	var dogs []models.Dog
	if err := db.Order("id ASC").Find(&dogs).Error; err != nil {
		return nil, err
	}
	return dogs, nil
}

func (s *GormStore) GetDog(ctx context.Context, id uint) (*models.Dog, error) {
	var dog models.Dog
	err := s.DB.WithContext(ctx).First(&dog, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &dog, nil
}

func (s *GormStore) CountDogs(ctx context.Context) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&models.Dog{}).Count(&n).Error
	return n, err
}

func (s *GormStore) CreateDogs(ctx context.Context, dogs []models.Dog) error {
	if len(dogs) == 0 {
		return nil
	}
	return s.DB.WithContext(ctx).CreateInBatches(dogs, 100).Error
}

func (s *GormStore) GetPreference(ctx context.Context, userID string) (*models.UserPref, error) {
	var pref models.UserPref
	err := s.DB.WithContext(ctx).Where("external_user_id = ?", userID).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

// ReplacePreference upserts the preference row and clears the user's ledger
// in one transaction. pref is refreshed with the stored row on success.
func (s *GormStore) ReplacePreference(ctx context.Context, pref *models.UserPref) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "external_user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"age", "gender", "size", "updated_at"}),
		}).Create(pref).Error; err != nil {
			return fmt.Errorf("upsert preference: %w", err)
		}

		res := tx.Where("external_user_id = ?", pref.ExternalUserID).Delete(&models.UserDog{})
		if res.Error != nil {
			return fmt.Errorf("delete decisions: %w", res.Error)
		}

		var stored models.UserPref
		if err := tx.Where("external_user_id = ?", pref.ExternalUserID).First(&stored).Error; err != nil {
			return fmt.Errorf("reload preference: %w", err)
		}
		*pref = stored

		log.Printf("[STORE] Replaced preferences for %s (age=%s gender=%s size=%s), cleared %d decision(s)",
			pref.ExternalUserID, pref.Age, pref.Gender, pref.Size, res.RowsAffected)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLedgerReset, err)
	}
	return nil
}

func (s *GormStore) ListDecisions(ctx context.Context, userID string) ([]models.UserDog, error) {
	var entries []models.UserDog
	err := s.DB.WithContext(ctx).
		Where("external_user_id = ?", userID).
		Order("dog_id ASC").
		Find(&entries).Error
	return entries, err
}

func (s *GormStore) UpsertDecision(ctx context.Context, entry *models.UserDog) error {
	return s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "external_user_id"}, {Name: "dog_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(entry).Error
}

// PruneOrphanDecisions deletes ledger rows pointing at dogs no longer in the catalog.
func (s *GormStore) PruneOrphanDecisions(ctx context.Context) (int64, error) {
	db := s.DB.WithContext(ctx)
	res := db.Where("dog_id NOT IN (?)", db.Model(&models.Dog{}).Select("id")).
		Delete(&models.UserDog{})
	return res.RowsAffected, res.Error
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func toStrings[T ~string](codes []T) []string {
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = string(c)
	}
	return out
}
