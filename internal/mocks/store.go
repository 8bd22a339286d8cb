package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cookmate/backend/internal/models"
	"github.com/cookmate/backend/internal/service"
)

type MockFavoriteStore struct {
	mock.Mock
}

func (m *MockFavoriteStore) Add(ctx context.Context, userID, recipeID int64) (*models.FavoriteRecipe, error) {
	args := m.Called(ctx, userID, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FavoriteRecipe), args.Error(1)
}

func (m *MockFavoriteStore) Remove(ctx context.Context, userID, recipeID int64) error {
	args := m.Called(ctx, userID, recipeID)
	return args.Error(0)
}

func (m *MockFavoriteStore) Exists(ctx context.Context, userID, recipeID int64) (bool, error) {
	args := m.Called(ctx, userID, recipeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteStore) ListForUser(ctx context.Context, userID int64) ([]models.FavoriteRecipe, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FavoriteRecipe), args.Error(1)
}

type MockRatingStore struct {
	mock.Mock
}

func (m *MockRatingStore) Add(ctx context.Context, userID, recipeID int64, value int) (*models.Rating, error) {
	args := m.Called(ctx, userID, recipeID, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingStore) Get(ctx context.Context, userID, recipeID int64) (*models.Rating, error) {
	args := m.Called(ctx, userID, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingStore) ListForUser(ctx context.Context, userID int64) ([]models.Rating, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}

func (m *MockRatingStore) Summary(ctx context.Context, recipeID int64) (float64, int64, error) {
	args := m.Called(ctx, recipeID)
	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}

type MockRecipeStore struct {
	mock.Mock
}

func (m *MockRecipeStore) GetByIDs(ctx context.Context, ids []int64) (map[int64]models.Recipe, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]models.Recipe), args.Error(1)
}

func (m *MockRecipeStore) GetByID(ctx context.Context, id int64) (*models.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

// PassthroughTx runs the function against the given mock stores without a real transaction.
type PassthroughTx struct {
	Favorites service.FavoriteStore
	Ratings   service.RatingStore
}

func (p *PassthroughTx) InTx(_ context.Context, fn service.TxFunc) error {
	return fn(p.Favorites, p.Ratings)
}
