package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/cookmate/backend/internal/models"
	"github.com/cookmate/backend/internal/store"
)

// FavoriteDetail is a favorite joined with its catalog entry. Recipe is nil
// when the catalog has no row for the id.
type FavoriteDetail struct {
	ID        int64          `json:"id"`
	UserID    int64          `json:"user_id"`
	RecipeID  int64          `json:"recipe_id"`
	DateAdded time.Time      `json:"dateAdded"`
	Recipe    *models.Recipe `json:"recipe"`
}

// RatedRecipe is one row of a user's rating history. Recipe fields are null
// when the recipe is missing from the catalog.
type RatedRecipe struct {
	ID           int64    `json:"id"`
	Name         *string  `json:"name"`
	Ingredients  *string  `json:"ingredients"`
	Instructions *string  `json:"instructions"`
	CookTime     *string  `json:"cookTime"`
	ImageURL     *string  `json:"imageUrl"`
	Calories     *float64 `json:"calories"`
	AvgRate      *float64 `json:"avgRate"`
	UserRating   int      `json:"userRating"`
}

type RatingSummary struct {
	RecipeID      int64   `json:"recipe_id"`
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int64   `json:"total_ratings"`
}

// FavoriteService keeps favorites and ratings consistent: a rating needs a
// favorite and a user rates a recipe at most once.
type FavoriteService struct {
	favorites FavoriteStore
	ratings   RatingStore
	recipes   RecipeStore
	tx        Transactor
	log       *zap.Logger
}

func NewFavoriteService(favorites FavoriteStore, ratings RatingStore, recipes RecipeStore, tx Transactor, log *zap.Logger) *FavoriteService {
	if log == nil {
		log = zap.NewNop()
	}
	return &FavoriteService{
		favorites: favorites,
		ratings:   ratings,
		recipes:   recipes,
		tx:        tx,
		log:       log,
	}
}

func (s *FavoriteService) AddFavorite(ctx context.Context, userID, recipeID int64) (*models.FavoriteRecipe, error) {
	if err := validateIDs(userID, recipeID); err != nil {
		return nil, err
	}

	fav, err := s.favorites.Add(ctx, userID, recipeID)
	switch {
	case errors.Is(err, store.ErrDuplicate):
		return nil, ErrDuplicateFavorite
	case err != nil:
		return nil, storageErr("add favorite", err)
	}
	s.log.Debug("favorite added", zap.Int64("user_id", userID), zap.Int64("recipe_id", recipeID))
	return fav, nil
}

// RemoveFavorite deletes the favorite. An existing rating for the pair is kept.
func (s *FavoriteService) RemoveFavorite(ctx context.Context, userID, recipeID int64) error {
	if err := validateIDs(userID, recipeID); err != nil {
		return err
	}

	err := s.favorites.Remove(ctx, userID, recipeID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrFavoriteNotFound
	case err != nil:
		return storageErr("remove favorite", err)
	}
	return nil
}

// ListFavorites returns the user's favorites oldest first; no favorites is an empty slice.
func (s *FavoriteService) ListFavorites(ctx context.Context, userID int64) ([]models.FavoriteRecipe, error) {
	if err := validateID("userId", userID); err != nil {
		return nil, err
	}

	favorites, err := s.favorites.ListForUser(ctx, userID)
	if err != nil {
		return nil, storageErr("list favorites", err)
	}
	if favorites == nil {
		favorites = []models.FavoriteRecipe{}
	}
	return favorites, nil
}

func (s *FavoriteService) ListFavoriteDetails(ctx context.Context, userID int64) ([]FavoriteDetail, error) {
	favorites, err := s.ListFavorites(ctx, userID)
	if err != nil {
		return nil, err
	}

	details := make([]FavoriteDetail, 0, len(favorites))
	if len(favorites) == 0 {
		return details, nil
	}

	ids := make([]int64, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.RecipeID)
	}
	recipes, err := s.recipes.GetByIDs(ctx, ids)
	if err != nil {
		return nil, storageErr("load recipes", err)
	}

	for _, f := range favorites {
		d := FavoriteDetail{ID: f.ID, UserID: f.UserID, RecipeID: f.RecipeID, DateAdded: f.CreatedAt}
		if r, ok := recipes[f.RecipeID]; ok {
			d.Recipe = &r
		}
		details = append(details, d)
	}
	return details, nil
}

// AddRating records a score for a favorited recipe. The favorite check, the
// duplicate check and the insert share one transaction, in that order.
func (s *FavoriteService) AddRating(ctx context.Context, userID, recipeID int64, value int) (*models.Rating, error) {
	if err := validateIDs(userID, recipeID); err != nil {
		return nil, err
	}
	if value < models.MinRating || value > models.MaxRating {
		return nil, invalid("rating", "must be between 0 and 5")
	}

	var created *models.Rating
	err := s.tx.InTx(ctx, func(favorites FavoriteStore, ratings RatingStore) error {
		ok, err := favorites.Exists(ctx, userID, recipeID)
		if err != nil {
			return storageErr("check favorite", err)
		}
		if !ok {
			return ErrRatingRequiresFavorite
		}

		_, err = ratings.Get(ctx, userID, recipeID)
		switch {
		case err == nil:
			return ErrDuplicateRating
		case !errors.Is(err, store.ErrNotFound):
			return storageErr("check rating", err)
		}

		// the unique index still arbitrates a concurrent insert
		r, err := ratings.Add(ctx, userID, recipeID, value)
		switch {
		case errors.Is(err, store.ErrDuplicate):
			return ErrDuplicateRating
		case err != nil:
			return storageErr("add rating", err)
		}
		created = r
		return nil
	})
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, storageErr("add rating", err)
	}

	s.log.Debug("rating added",
		zap.Int64("user_id", userID),
		zap.Int64("recipe_id", recipeID),
		zap.Int("rating", value))
	return created, nil
}

// GetRatingsWithRecipes joins the user's ratings with the catalog, in rating order.
func (s *FavoriteService) GetRatingsWithRecipes(ctx context.Context, userID int64) ([]RatedRecipe, error) {
	if err := validateID("userId", userID); err != nil {
		return nil, err
	}

	ratings, err := s.ratings.ListForUser(ctx, userID)
	if err != nil {
		return nil, storageErr("list ratings", err)
	}
	result := make([]RatedRecipe, 0, len(ratings))
	if len(ratings) == 0 {
		return result, nil
	}

	seen := make(map[int64]struct{}, len(ratings))
	ids := make([]int64, 0, len(ratings))
	for _, r := range ratings {
		if _, ok := seen[r.RecipeID]; ok {
			continue
		}
		seen[r.RecipeID] = struct{}{}
		ids = append(ids, r.RecipeID)
	}

	recipes, err := s.recipes.GetByIDs(ctx, ids)
	if err != nil {
		return nil, storageErr("load recipes", err)
	}

	for _, r := range ratings {
		item := RatedRecipe{ID: r.RecipeID, UserRating: r.Rating}
		if rec, ok := recipes[r.RecipeID]; ok {
			item.Name = &rec.Name
			item.Ingredients = &rec.Ingredients
			item.Instructions = &rec.Instructions
			item.CookTime = &rec.CookTime
			item.ImageURL = rec.ImageURL
			item.Calories = rec.Calories
			item.AvgRate = rec.AvgRate
		} else {
			s.log.Warn("rated recipe missing from catalog",
				zap.Int64("user_id", userID),
				zap.Int64("recipe_id", r.RecipeID))
		}
		result = append(result, item)
	}
	return result, nil
}

func (s *FavoriteService) RatingSummary(ctx context.Context, recipeID int64) (*RatingSummary, error) {
	if err := validateID("recipeId", recipeID); err != nil {
		return nil, err
	}
	avg, total, err := s.ratings.Summary(ctx, recipeID)
	if err != nil {
		return nil, storageErr("rating summary", err)
	}
	return &RatingSummary{RecipeID: recipeID, AverageRating: avg, TotalRatings: total}, nil
}

func validateID(field string, id int64) error {
	if id <= 0 {
		return invalid(field, "must be a positive integer")
	}
	return nil
}

func validateIDs(userID, recipeID int64) error {
	if err := validateID("userId", userID); err != nil {
		return err
	}
	return validateID("recipeId", recipeID)
}

func isDomainError(err error) bool {
	var ve *ValidationError
	var se *StorageError
	return errors.Is(err, ErrDuplicateFavorite) ||
		errors.Is(err, ErrFavoriteNotFound) ||
		errors.Is(err, ErrRatingRequiresFavorite) ||
		errors.Is(err, ErrDuplicateRating) ||
		errors.As(err, &ve) ||
		errors.As(err, &se)
}
