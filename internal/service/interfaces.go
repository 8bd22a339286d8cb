package service

import (
	"context"

	"github.com/cookmate/backend/internal/models"
	"github.com/cookmate/backend/internal/types"
)

// FavoriteStore is the persistence the favorite service needs. Add must report
// store.ErrDuplicate on a second insert of the same pair and Remove store.ErrNotFound
// when nothing was deleted.
type FavoriteStore interface {
	Add(ctx context.Context, userID, recipeID int64) (*models.FavoriteRecipe, error)
	Remove(ctx context.Context, userID, recipeID int64) error
	Exists(ctx context.Context, userID, recipeID int64) (bool, error)
	ListForUser(ctx context.Context, userID int64) ([]models.FavoriteRecipe, error)
}

// RatingStore enforces one rating per (user, recipe) and nothing else.
type RatingStore interface {
	Add(ctx context.Context, userID, recipeID int64, value int) (*models.Rating, error)
	Get(ctx context.Context, userID, recipeID int64) (*models.Rating, error)
	ListForUser(ctx context.Context, userID int64) ([]models.Rating, error)
	Summary(ctx context.Context, recipeID int64) (float64, int64, error)
}

type RecipeStore interface {
	GetByIDs(ctx context.Context, ids []int64) (map[int64]models.Recipe, error)
	GetByID(ctx context.Context, id int64) (*models.Recipe, error)
}

// TxFunc receives stores bound to a single transaction.
type TxFunc func(favorites FavoriteStore, ratings RatingStore) error

// Transactor runs fn atomically; a non-nil return rolls everything back.
type Transactor interface {
	InTx(ctx context.Context, fn TxFunc) error
}

// IFavoriteService defines favorite and rating operations
type IFavoriteService interface {
	AddFavorite(ctx context.Context, userID, recipeID int64) (*models.FavoriteRecipe, error)
	RemoveFavorite(ctx context.Context, userID, recipeID int64) error
	ListFavorites(ctx context.Context, userID int64) ([]models.FavoriteRecipe, error)
	ListFavoriteDetails(ctx context.Context, userID int64) ([]FavoriteDetail, error)
	AddRating(ctx context.Context, userID, recipeID int64, value int) (*models.Rating, error)
	GetRatingsWithRecipes(ctx context.Context, userID int64) ([]RatedRecipe, error)
	RatingSummary(ctx context.Context, recipeID int64) (*RatingSummary, error)
}

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Signup(ctx context.Context, req *types.SignupRequest) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	DeleteAccount(ctx context.Context, userID int64) error
}

// IRecipeService defines the interface for recipe lookups
type IRecipeService interface {
	GetRecipe(ctx context.Context, id int64) (*RecipeView, error)
}

// IPreferenceService defines saved search preference operations
type IPreferenceService interface {
	Get(ctx context.Context, userID int64) (*types.Preferences, error)
	Save(ctx context.Context, userID int64, prefs *types.Preferences) (*types.Preferences, error)
}

// IRecommender defines the calls proxied to the recommendation service
type IRecommender interface {
	Search(ctx context.Context, q *types.SearchQuery) (*types.RecommendResponse, error)
	ByIngredients(ctx context.Context, q *types.SearchQuery) (*types.RecommendResponse, error)
	ByRecipe(ctx context.Context, recipe string, q *types.SearchQuery) (*types.RecommendResponse, error)
	DietaryOptions(ctx context.Context) (*types.RecommendResponse, error)
	Health(ctx context.Context) error
}
