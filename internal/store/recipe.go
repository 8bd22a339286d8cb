package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cookmate/backend/internal/models"
)

// RecipeStore reads the recipe catalog. Writes only happen from the seeder.
type RecipeStore struct {
	db *gorm.DB
}

func NewRecipeStore(db *gorm.DB) *RecipeStore {
	return &RecipeStore{db: db}
}

// GetByIDs returns the recipes that exist, keyed by id. Unknown ids are simply absent.
func (s *RecipeStore) GetByIDs(ctx context.Context, ids []int64) (map[int64]models.Recipe, error) {
	found := make(map[int64]models.Recipe, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&recipes).Error; err != nil {
		return nil, err
	}
	for _, r := range recipes {
		found[r.ID] = r
	}
	return found, nil
}

func (s *RecipeStore) GetByID(ctx context.Context, id int64) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).Take(&recipe, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &recipe, nil
}

// Upsert writes a batch of catalog rows, replacing rows with the same id.
func (s *RecipeStore) Upsert(ctx context.Context, recipes []models.Recipe, batchSize int) error {
	if len(recipes) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		CreateInBatches(&recipes, batchSize).Error
}

func (s *RecipeStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Recipe{}).Count(&n).Error
	return n, err
}
