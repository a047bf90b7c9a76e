package mocks

import (
	"context"

	"github.com/ascend-community/backend/internal/middleware"
	"github.com/ascend-community/backend/internal/model"
	"github.com/ascend-community/backend/internal/nutrition"
	"github.com/ascend-community/backend/internal/service"
	"github.com/ascend-community/backend/internal/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var (
	_ middleware.TokenValidator  = (*MockTokenValidator)(nil)
	_ service.IPlanService       = (*MockPlanService)(nil)
	_ service.IIngredientService = (*MockIngredientService)(nil)
	_ service.IProfileService    = (*MockProfileService)(nil)
)

// MockTokenValidator is a mock implementation of middleware.TokenValidator
type MockTokenValidator struct {
	mock.Mock
}

func (m *MockTokenValidator) ValidateToken(token string) (*types.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TokenClaims), args.Error(1)
}

// MockPlanService is a mock implementation of service.IPlanService
type MockPlanService struct {
	mock.Mock
}

func (m *MockPlanService) ListTemplates(ctx context.Context) ([]model.PlanTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PlanTemplate), args.Error(1)
}

func (m *MockPlanService) GetPlan(ctx context.Context, userID, planID uuid.UUID) (*model.PlanData, error) {
	args := m.Called(ctx, userID, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PlanData), args.Error(1)
}

func (m *MockPlanService) EditMeal(ctx context.Context, userID, planID uuid.UUID, day model.Weekday, slot model.MealSlot, ingredients []model.IngredientLine) (*model.PlanData, error) {
	args := m.Called(ctx, userID, planID, day, slot, ingredients)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PlanData), args.Error(1)
}

func (m *MockPlanService) ResetToBase(ctx context.Context, userID, planID uuid.UUID) (*model.PlanData, error) {
	args := m.Called(ctx, userID, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PlanData), args.Error(1)
}

func (m *MockPlanService) SelectActivePlan(ctx context.Context, userID, planID uuid.UUID) error {
	args := m.Called(ctx, userID, planID)
	return args.Error(0)
}

func (m *MockPlanService) ActivePlan(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockPlanService) DayDeviations(ctx context.Context, userID, planID uuid.UUID, day model.Weekday) (nutrition.DayDeviation, error) {
	args := m.Called(ctx, userID, planID, day)
	return args.Get(0).(nutrition.DayDeviation), args.Error(1)
}

// MockIngredientService is a mock implementation of service.IIngredientService
type MockIngredientService struct {
	mock.Mock
}

func (m *MockIngredientService) ListFacts(ctx context.Context) ([]model.IngredientFact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.IngredientFact), args.Error(1)
}

func (m *MockIngredientService) GetFact(ctx context.Context, name string) (*model.IngredientFact, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.IngredientFact), args.Error(1)
}

// MockProfileService is a mock implementation of service.IProfileService
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserProfile), args.Error(1)
}

func (m *MockProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*model.UserProfile, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserProfile), args.Error(1)
}

func (m *MockProfileService) NutritionProfile(ctx context.Context, userID uuid.UUID) (model.UserNutritionProfile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.UserNutritionProfile), args.Error(1)
}
