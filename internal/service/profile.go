package service

import (
	"context"
	"math"

	"github.com/ascend-community/backend/internal/model"
	"github.com/ascend-community/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// activityMultipliers maps activity level strings to their TDEE multiplier.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// Calorie adjustment applied on top of maintenance, per goal.
var goalCalorieDelta = map[model.Goal]int{
	model.GoalLoseWeight: -500,
	model.GoalMaintain:   0,
	model.GoalGainMuscle: 300,
}

// ProfileService handles member nutrition profile operations
type ProfileService struct {
	db *gorm.DB
}

// Ensure ProfileService implements IProfileService
var _ IProfileService = (*ProfileService)(nil)

// NewProfileService creates a new ProfileService instance
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetProfile retrieves a member's profile
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.UserProfile, error) {
	var profile model.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile updates a member's profile
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*model.UserProfile, error) {
	var profile model.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}

	// Update fields if provided
	if req.TargetCalories != nil {
		profile.TargetCalories = *req.TargetCalories
	}
	if req.TargetProtein != nil {
		profile.TargetProtein = *req.TargetProtein
	}
	if req.TargetCarbs != nil {
		profile.TargetCarbs = *req.TargetCarbs
	}
	if req.TargetFat != nil {
		profile.TargetFat = *req.TargetFat
	}
	if req.Weight != nil {
		profile.Weight = *req.Weight
	}
	if req.Height != nil {
		profile.Height = *req.Height
	}
	if req.Age != nil {
		profile.Age = *req.Age
	}
	if req.Sex != nil {
		profile.Sex = *req.Sex
	}
	if req.ActivityLevel != nil {
		profile.ActivityLevel = *req.ActivityLevel
	}
	if req.Goal != nil {
		profile.Goal = model.Goal(*req.Goal)
	}

	if err := s.db.WithContext(ctx).Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// NutritionProfile returns the scaler input for a member. Explicitly set
// targets win; otherwise targets are derived from body metrics via
// Mifflin-St Jeor and the activity/goal adjustments.
func (s *ProfileService) NutritionProfile(ctx context.Context, userID uuid.UUID) (model.UserNutritionProfile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return model.UserNutritionProfile{}, err
	}

	out := model.UserNutritionProfile{
		TargetCalories: profile.TargetCalories,
		TargetProtein:  profile.TargetProtein,
		TargetCarbs:    profile.TargetCarbs,
		TargetFat:      profile.TargetFat,
		Weight:         profile.Weight,
		Age:            profile.Age,
		Height:         profile.Height,
		Goal:           profile.Goal,
	}
	if out.TargetCalories == 0 {
		out.TargetCalories, out.TargetProtein, out.TargetCarbs, out.TargetFat = deriveTargets(profile)
	}
	return out, nil
}

// deriveTargets computes calorie and macro targets from body metrics.
// BMR via Mifflin-St Jeor, TDEE via activity multiplier, goal delta on top;
// macros split 30/40/30 (protein/carbs/fat) by calorie share.
func deriveTargets(p *model.UserProfile) (calories int, protein, carbs, fat float64) {
	bmr := 10*p.Weight + 6.25*p.Height - 5*float64(p.Age)
	if p.Sex == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	mult, ok := activityMultipliers[p.ActivityLevel]
	if !ok {
		mult = activityMultipliers["sedentary"]
	}
	target := bmr*mult + float64(goalCalorieDelta[p.Goal])
	if target < 0 {
		target = 0
	}

	calories = int(math.Round(target))
	protein = math.Round(target*0.30/4*10) / 10
	carbs = math.Round(target*0.40/4*10) / 10
	fat = math.Round(target*0.30/9*10) / 10
	return calories, protein, carbs, fat
}
