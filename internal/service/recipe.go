package service

import (
	"context"
	"errors"

	"github.com/cookmate/backend/internal/store"
)

// RecipeView is the client-facing shape of a catalog recipe
type RecipeView struct {
	ID            int64    `json:"recipeId"`
	Name          string   `json:"name"`
	Ingredients   []string `json:"ingredients"`
	Instructions  []string `json:"instructions"`
	CookTime      string   `json:"cookTime"`
	Calories      *float64 `json:"calories"`
	ImageURL      string   `json:"imageUrl"`
	AvgRate       *float64 `json:"avgRate"`
	AverageRating float64  `json:"averageRating"`
	TotalRatings  int64    `json:"totalRatings"`
}

// RecipeService handles recipe lookups
type RecipeService struct {
	recipes RecipeStore
	ratings RatingStore
	images  *ImageResolver
}

func NewRecipeService(recipes RecipeStore, ratings RatingStore, images *ImageResolver) *RecipeService {
	if images == nil {
		images = NewImageResolver(nil, nil)
	}
	return &RecipeService{recipes: recipes, ratings: ratings, images: images}
}

// GetRecipe loads a recipe with parsed lists, a readable cook time and the in-app rating summary.
func (s *RecipeService) GetRecipe(ctx context.Context, id int64) (*RecipeView, error) {
	if err := validateID("recipeId", id); err != nil {
		return nil, err
	}

	recipe, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, storageErr("get recipe", err)
	}

	avg, total, err := s.ratings.Summary(ctx, id)
	if err != nil {
		return nil, storageErr("rating summary", err)
	}

	image := ""
	if recipe.ImageURL != nil {
		image = *recipe.ImageURL
	}

	return &RecipeView{
		ID:            recipe.ID,
		Name:          recipe.Name,
		Ingredients:   recipe.IngredientList(),
		Instructions:  recipe.InstructionSteps(),
		CookTime:      recipe.DisplayCookTime(),
		Calories:      recipe.Calories,
		ImageURL:      s.images.Resolve(ctx, image),
		AvgRate:       recipe.AvgRate,
		AverageRating: avg,
		TotalRatings:  total,
	}, nil
}
