package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cookmate/backend/internal/service"
	"github.com/cookmate/backend/internal/types"
)

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) GetRecipe(ctx context.Context, id int64) (*service.RecipeView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RecipeView), args.Error(1)
}

// MockRecommender is a mock implementation of the recommendation client
type MockRecommender struct {
	mock.Mock
}

func (m *MockRecommender) Search(ctx context.Context, q *types.SearchQuery) (*types.RecommendResponse, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RecommendResponse), args.Error(1)
}

func (m *MockRecommender) ByIngredients(ctx context.Context, q *types.SearchQuery) (*types.RecommendResponse, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RecommendResponse), args.Error(1)
}

func (m *MockRecommender) ByRecipe(ctx context.Context, recipe string, q *types.SearchQuery) (*types.RecommendResponse, error) {
	args := m.Called(ctx, recipe, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RecommendResponse), args.Error(1)
}

func (m *MockRecommender) DietaryOptions(ctx context.Context) (*types.RecommendResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RecommendResponse), args.Error(1)
}

func (m *MockRecommender) Health(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockPreferenceService is a mock implementation of the preference service
type MockPreferenceService struct {
	mock.Mock
}

func (m *MockPreferenceService) Get(ctx context.Context, userID int64) (*types.Preferences, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Preferences), args.Error(1)
}

func (m *MockPreferenceService) Save(ctx context.Context, userID int64, prefs *types.Preferences) (*types.Preferences, error) {
	args := m.Called(ctx, userID, prefs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Preferences), args.Error(1)
}
