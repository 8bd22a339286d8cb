package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/cookmate/backend/internal/models"
)

// FavoriteStore persists favorite_recipes rows.
type FavoriteStore struct {
	db *gorm.DB
}

func NewFavoriteStore(db *gorm.DB) *FavoriteStore {
	return &FavoriteStore{db: db}
}

// WithTx returns a copy bound to the given transaction.
func (s *FavoriteStore) WithTx(tx *gorm.DB) *FavoriteStore {
	return &FavoriteStore{db: tx}
}

// Add inserts the pair. The unique index decides duplicates; there is no prior read.
func (s *FavoriteStore) Add(ctx context.Context, userID, recipeID int64) (*models.FavoriteRecipe, error) {
	fav := &models.FavoriteRecipe{UserID: userID, RecipeID: recipeID}
	if err := s.db.WithContext(ctx).Create(fav).Error; err != nil {
		return nil, translate(err)
	}
	return fav, nil
}

// Remove deletes the pair in one statement and reports ErrNotFound when nothing matched.
func (s *FavoriteStore) Remove(ctx context.Context, userID, recipeID int64) error {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.FavoriteRecipe{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *FavoriteStore) Exists(ctx context.Context, userID, recipeID int64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.FavoriteRecipe{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListForUser returns the user's favorites oldest first.
func (s *FavoriteStore) ListForUser(ctx context.Context, userID int64) ([]models.FavoriteRecipe, error) {
	favorites := []models.FavoriteRecipe{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

// DeleteForUser drops every favorite of the user.
func (s *FavoriteStore) DeleteForUser(ctx context.Context, userID int64) error {
	return s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.FavoriteRecipe{}).Error
}
