package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cookmate/backend/internal/mocks"
	"github.com/cookmate/backend/internal/models"
	"github.com/cookmate/backend/internal/service"
	"github.com/cookmate/backend/internal/store"
	"github.com/cookmate/backend/internal/testhelpers"
)

type mockDeps struct {
	favorites *mocks.MockFavoriteStore
	ratings   *mocks.MockRatingStore
	recipes   *mocks.MockRecipeStore
}

func newMockService() (*service.FavoriteService, *mockDeps) {
	deps := &mockDeps{
		favorites: new(mocks.MockFavoriteStore),
		ratings:   new(mocks.MockRatingStore),
		recipes:   new(mocks.MockRecipeStore),
	}
	tx := &mocks.PassthroughTx{Favorites: deps.favorites, Ratings: deps.ratings}
	return service.NewFavoriteService(deps.favorites, deps.ratings, deps.recipes, tx, nil), deps
}

func newSQLiteService(t *testing.T) *service.FavoriteService {
	t.Helper()
	db := testhelpers.SetupSQLite(t)
	favorites := store.NewFavoriteStore(db)
	ratings := store.NewRatingStore(db)
	return service.NewFavoriteService(favorites, ratings, store.NewRecipeStore(db), service.NewTransactor(db, favorites, ratings), nil)
}

func TestAddFavorite_RejectsInvalidIDsBeforeStorage(t *testing.T) {
	svc, deps := newMockService()
	ctx := context.Background()

	cases := []struct {
		name     string
		userID   int64
		recipeID int64
		field    string
	}{
		{"zero user", 0, 1, "userId"},
		{"negative user", -3, 1, "userId"},
		{"zero recipe", 1, 0, "recipeId"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddFavorite(ctx, tc.userID, tc.recipeID)
			var ve *service.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
		})
	}

	deps.favorites.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddFavorite_MapsStoreErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate", func(t *testing.T) {
		svc, deps := newMockService()
		deps.favorites.On("Add", ctx, int64(1), int64(42)).Return(nil, store.ErrDuplicate)

		_, err := svc.AddFavorite(ctx, 1, 42)
		assert.ErrorIs(t, err, service.ErrDuplicateFavorite)
	})

	t.Run("storage failure", func(t *testing.T) {
		svc, deps := newMockService()
		boom := errors.New("connection reset")
		deps.favorites.On("Add", ctx, int64(1), int64(42)).Return(nil, boom)

		_, err := svc.AddFavorite(ctx, 1, 42)
		var se *service.StorageError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "add favorite", se.Op)
		assert.ErrorIs(t, err, boom)
	})
}

func TestRemoveFavorite_NotFound(t *testing.T) {
	svc, deps := newMockService()
	ctx := context.Background()
	deps.favorites.On("Remove", ctx, int64(1), int64(42)).Return(store.ErrNotFound)

	err := svc.RemoveFavorite(ctx, 1, 42)
	assert.ErrorIs(t, err, service.ErrFavoriteNotFound)
}

func TestAddRating_RequiresFavorite(t *testing.T) {
	svc, deps := newMockService()
	ctx := context.Background()
	deps.favorites.On("Exists", ctx, int64(1), int64(42)).Return(false, nil)

	_, err := svc.AddRating(ctx, 1, 42, 4)
	assert.ErrorIs(t, err, service.ErrRatingRequiresFavorite)
	deps.ratings.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
	deps.ratings.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAddRating_RejectsOutOfRangeScore(t *testing.T) {
	svc, deps := newMockService()
	ctx := context.Background()

	for _, v := range []int{-1, 6, 100} {
		_, err := svc.AddRating(ctx, 1, 42, v)
		var ve *service.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "rating", ve.Field)
	}
	deps.favorites.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddRating_ConcurrentInsertLosesToUniqueIndex(t *testing.T) {
	svc, deps := newMockService()
	ctx := context.Background()
	deps.favorites.On("Exists", ctx, int64(1), int64(42)).Return(true, nil)
	deps.ratings.On("Get", ctx, int64(1), int64(42)).Return(nil, store.ErrNotFound)
	deps.ratings.On("Add", ctx, int64(1), int64(42), 5).Return(nil, store.ErrDuplicate)

	_, err := svc.AddRating(ctx, 1, 42, 5)
	assert.ErrorIs(t, err, service.ErrDuplicateRating)
}

func TestAddRating_WrapsStorageFailure(t *testing.T) {
	svc, deps := newMockService()
	ctx := context.Background()
	boom := errors.New("disk full")
	deps.favorites.On("Exists", ctx, int64(1), int64(42)).Return(false, boom)

	_, err := svc.AddRating(ctx, 1, 42, 3)
	var se *service.StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "check favorite", se.Op)
	assert.ErrorIs(t, err, boom)
}

func TestGetRatingsWithRecipes_MissingRecipeHasNullFields(t *testing.T) {
	svc, deps := newMockService()
	ctx := context.Background()

	deps.ratings.On("ListForUser", ctx, int64(7)).Return([]models.Rating{
		{ID: 1, UserID: 7, RecipeID: 10, Rating: 4},
		{ID: 2, UserID: 7, RecipeID: 99, Rating: 2},
	}, nil)
	deps.recipes.On("GetByIDs", ctx, []int64{10, 99}).Return(map[int64]models.Recipe{
		10: {ID: 10, Name: "Pancakes", Ingredients: `c("flour")`, Instructions: "Fry", CookTime: "PT10M"},
	}, nil)

	rated, err := svc.GetRatingsWithRecipes(ctx, 7)
	require.NoError(t, err)
	require.Len(t, rated, 2)

	assert.Equal(t, int64(10), rated[0].ID)
	require.NotNil(t, rated[0].Name)
	assert.Equal(t, "Pancakes", *rated[0].Name)
	assert.Equal(t, 4, rated[0].UserRating)

	assert.Equal(t, int64(99), rated[1].ID)
	assert.Nil(t, rated[1].Name)
	assert.Nil(t, rated[1].Ingredients)
	assert.Nil(t, rated[1].ImageURL)
	assert.Equal(t, 2, rated[1].UserRating)
}

func TestGetRatingsWithRecipes_EmptySkipsCatalog(t *testing.T) {
	svc, deps := newMockService()
	ctx := context.Background()
	deps.ratings.On("ListForUser", ctx, int64(7)).Return([]models.Rating{}, nil)

	rated, err := svc.GetRatingsWithRecipes(ctx, 7)
	require.NoError(t, err)
	assert.NotNil(t, rated)
	assert.Empty(t, rated)
	deps.recipes.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
}

func TestFavoriteLifecycle(t *testing.T) {
	svc := newSQLiteService(t)
	ctx := context.Background()

	list, err := svc.ListFavorites(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	for _, id := range []int64{30, 10, 20} {
		_, err := svc.AddFavorite(ctx, 1, id)
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	_, err = svc.AddFavorite(ctx, 1, 10)
	assert.ErrorIs(t, err, service.ErrDuplicateFavorite)

	list, err = svc.ListFavorites(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int64{30, 10, 20}, []int64{list[0].RecipeID, list[1].RecipeID, list[2].RecipeID})

	require.NoError(t, svc.RemoveFavorite(ctx, 1, 10))
	assert.ErrorIs(t, svc.RemoveFavorite(ctx, 1, 10), service.ErrFavoriteNotFound)

	list, err = svc.ListFavorites(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	other, err := svc.ListFavorites(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestRatingLifecycle(t *testing.T) {
	svc := newSQLiteService(t)
	ctx := context.Background()

	_, err := svc.AddRating(ctx, 1, 42, 4)
	assert.ErrorIs(t, err, service.ErrRatingRequiresFavorite)

	_, err = svc.AddFavorite(ctx, 1, 42)
	require.NoError(t, err)

	rating, err := svc.AddRating(ctx, 1, 42, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, rating.Rating)
	assert.Equal(t, int64(1), rating.UserID)

	_, err = svc.AddRating(ctx, 1, 42, 5)
	assert.ErrorIs(t, err, service.ErrDuplicateRating)

	// the rating outlives the favorite
	require.NoError(t, svc.RemoveFavorite(ctx, 1, 42))
	rated, err := svc.GetRatingsWithRecipes(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rated, 1)
	assert.Equal(t, 4, rated[0].UserRating)

	_, err = svc.AddRating(ctx, 1, 42, 5)
	assert.ErrorIs(t, err, service.ErrRatingRequiresFavorite)

	_, err = svc.AddFavorite(ctx, 1, 42)
	require.NoError(t, err)
	_, err = svc.AddRating(ctx, 1, 42, 5)
	assert.ErrorIs(t, err, service.ErrDuplicateRating)
}

func TestRatingBoundaries(t *testing.T) {
	svc := newSQLiteService(t)
	ctx := context.Background()

	for i, v := range []int{models.MinRating, models.MaxRating} {
		recipeID := int64(100 + i)
		_, err := svc.AddFavorite(ctx, 1, recipeID)
		require.NoError(t, err)
		r, err := svc.AddRating(ctx, 1, recipeID, v)
		require.NoError(t, err)
		assert.Equal(t, v, r.Rating)
	}
}

func TestListFavoriteDetails(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	testhelpers.CreateTestRecipe(t, db, 10, "Banana Bread")
	favorites := store.NewFavoriteStore(db)
	ratings := store.NewRatingStore(db)
	svc := service.NewFavoriteService(favorites, ratings, store.NewRecipeStore(db), service.NewTransactor(db, favorites, ratings), nil)
	ctx := context.Background()

	_, err := svc.AddFavorite(ctx, 1, 10)
	require.NoError(t, err)
	_, err = svc.AddFavorite(ctx, 1, 999)
	require.NoError(t, err)

	details, err := svc.ListFavoriteDetails(ctx, 1)
	require.NoError(t, err)
	require.Len(t, details, 2)

	require.NotNil(t, details[0].Recipe)
	assert.Equal(t, "Banana Bread", details[0].Recipe.Name)
	assert.Equal(t, int64(999), details[1].RecipeID)
	assert.Nil(t, details[1].Recipe)
}

func TestRatingSummary(t *testing.T) {
	svc := newSQLiteService(t)
	ctx := context.Background()

	summary, err := svc.RatingSummary(ctx, 42)
	require.NoError(t, err)
	assert.Zero(t, summary.TotalRatings)
	assert.Zero(t, summary.AverageRating)

	for user, score := range map[int64]int{1: 5, 2: 4, 3: 0} {
		_, err := svc.AddFavorite(ctx, user, 42)
		require.NoError(t, err)
		_, err = svc.AddRating(ctx, user, 42, score)
		require.NoError(t, err)
	}

	summary, err = svc.RatingSummary(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.TotalRatings)
	assert.InDelta(t, 3.0, summary.AverageRating, 0.001)

	_, err = svc.RatingSummary(ctx, 0)
	var ve *service.ValidationError
	assert.ErrorAs(t, err, &ve)
}
