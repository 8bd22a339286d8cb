package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/cookmate/backend/internal/models"
)

// PreferenceStore keeps the dietary, allergy and cuisine filters a user saved.
type PreferenceStore struct {
	db *gorm.DB
}

func NewPreferenceStore(db *gorm.DB) *PreferenceStore {
	return &PreferenceStore{db: db}
}

func (s *PreferenceStore) WithTx(tx *gorm.DB) *PreferenceStore {
	return &PreferenceStore{db: tx}
}

func (s *PreferenceStore) ListForUser(ctx context.Context, userID int64) ([]models.DietaryPreference, error) {
	prefs := []models.DietaryPreference{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("kind ASC, id ASC").
		Find(&prefs).Error
	if err != nil {
		return nil, err
	}
	return prefs, nil
}

// Replace swaps the user's whole preference set atomically.
func (s *PreferenceStore) Replace(ctx context.Context, userID int64, prefs []models.DietaryPreference) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.DietaryPreference{}).Error; err != nil {
			return err
		}
		if len(prefs) == 0 {
			return nil
		}
		for i := range prefs {
			prefs[i].ID = 0
			prefs[i].UserID = userID
		}
		return translate(tx.Create(&prefs).Error)
	})
}

func (s *PreferenceStore) DeleteForUser(ctx context.Context, userID int64) error {
	return s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.DietaryPreference{}).Error
}
