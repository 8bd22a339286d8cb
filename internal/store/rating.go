package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/cookmate/backend/internal/models"
)

// RatingStore persists ratings rows. It knows nothing about favorites.
type RatingStore struct {
	db *gorm.DB
}

func NewRatingStore(db *gorm.DB) *RatingStore {
	return &RatingStore{db: db}
}

func (s *RatingStore) WithTx(tx *gorm.DB) *RatingStore {
	return &RatingStore{db: tx}
}

func (s *RatingStore) Add(ctx context.Context, userID, recipeID int64, value int) (*models.Rating, error) {
	rating := &models.Rating{UserID: userID, RecipeID: recipeID, Rating: value}
	if err := s.db.WithContext(ctx).Create(rating).Error; err != nil {
		return nil, translate(err)
	}
	return rating, nil
}

func (s *RatingStore) Get(ctx context.Context, userID, recipeID int64) (*models.Rating, error) {
	var rating models.Rating
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Take(&rating).Error
	if err != nil {
		return nil, translate(err)
	}
	return &rating, nil
}

// ListForUser returns the user's ratings in insertion order.
func (s *RatingStore) ListForUser(ctx context.Context, userID int64) ([]models.Rating, error) {
	ratings := []models.Rating{}
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

// Summary returns the average score and number of ratings for a recipe.
func (s *RatingStore) Summary(ctx context.Context, recipeID int64) (float64, int64, error) {
	var row struct {
		Average float64
		Total   int64
	}
	err := s.db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS total").
		Where("recipe_id = ?", recipeID).
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	return row.Average, row.Total, nil
}

func (s *RatingStore) DeleteForUser(ctx context.Context, userID int64) error {
	return s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Rating{}).Error
}
