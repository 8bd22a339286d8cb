package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cookmate/backend/internal/models"
	"github.com/cookmate/backend/internal/service"
)

// MockFavoriteService is a mock implementation of the favorite service
type MockFavoriteService struct {
	mock.Mock
}

func (m *MockFavoriteService) AddFavorite(ctx context.Context, userID, recipeID int64) (*models.FavoriteRecipe, error) {
	args := m.Called(ctx, userID, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FavoriteRecipe), args.Error(1)
}

func (m *MockFavoriteService) RemoveFavorite(ctx context.Context, userID, recipeID int64) error {
	args := m.Called(ctx, userID, recipeID)
	return args.Error(0)
}

func (m *MockFavoriteService) ListFavorites(ctx context.Context, userID int64) ([]models.FavoriteRecipe, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FavoriteRecipe), args.Error(1)
}

func (m *MockFavoriteService) ListFavoriteDetails(ctx context.Context, userID int64) ([]service.FavoriteDetail, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.FavoriteDetail), args.Error(1)
}

func (m *MockFavoriteService) AddRating(ctx context.Context, userID, recipeID int64, value int) (*models.Rating, error) {
	args := m.Called(ctx, userID, recipeID, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockFavoriteService) GetRatingsWithRecipes(ctx context.Context, userID int64) ([]service.RatedRecipe, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.RatedRecipe), args.Error(1)
}

func (m *MockFavoriteService) RatingSummary(ctx context.Context, recipeID int64) (*service.RatingSummary, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RatingSummary), args.Error(1)
}
