package service

import (
	"context"

	"github.com/ascend-community/backend/internal/model"
	"github.com/ascend-community/backend/internal/nutrition"
	"github.com/ascend-community/backend/internal/types"
	"github.com/google/uuid"
)

// IPlanService defines the interface for nutrition plan operations
type IPlanService interface {
	ListTemplates(ctx context.Context) ([]model.PlanTemplate, error)
	GetPlan(ctx context.Context, userID, planID uuid.UUID) (*model.PlanData, error)
	EditMeal(ctx context.Context, userID, planID uuid.UUID, day model.Weekday, slot model.MealSlot, ingredients []model.IngredientLine) (*model.PlanData, error)
	ResetToBase(ctx context.Context, userID, planID uuid.UUID) (*model.PlanData, error)
	SelectActivePlan(ctx context.Context, userID, planID uuid.UUID) error
	ActivePlan(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
	DayDeviations(ctx context.Context, userID, planID uuid.UUID, day model.Weekday) (nutrition.DayDeviation, error)
}

// IIngredientService defines the interface for ingredient fact lookups
type IIngredientService interface {
	ListFacts(ctx context.Context) ([]model.IngredientFact, error)
	GetFact(ctx context.Context, name string) (*model.IngredientFact, error)
}

// IProfileService defines the interface for member profile operations
type IProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*model.UserProfile, error)
	NutritionProfile(ctx context.Context, userID uuid.UUID) (model.UserNutritionProfile, error)
}

// ProfileSource is the narrow view of profile data the plan service needs.
type ProfileSource interface {
	NutritionProfile(ctx context.Context, userID uuid.UUID) (model.UserNutritionProfile, error)
}

// Archiver writes plan snapshots to long-term storage.
type Archiver interface {
	ArchivePlan(ctx context.Context, userID uuid.UUID, plan *model.PlanData) (string, error)
}
