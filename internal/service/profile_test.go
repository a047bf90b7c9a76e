package service

import (
	"context"
	"testing"

	"github.com/ascend-community/backend/internal/model"
	"github.com/ascend-community/backend/internal/testhelpers"
	"github.com/ascend-community/backend/internal/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNutritionProfileUsesExplicitTargets(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	userID := uuid.New()
	testhelpers.SeedProfile(t, db, userID)

	svc := NewProfileService(db)
	profile, err := svc.NutritionProfile(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, 2500, profile.TargetCalories)
	assert.Equal(t, 180.0, profile.TargetProtein)
	assert.Equal(t, 250.0, profile.TargetCarbs)
	assert.Equal(t, 80.0, profile.TargetFat)
}

func TestNutritionProfileDerivesTargets(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	userID := uuid.New()
	require.NoError(t, db.Create(&model.UserProfile{
		ID:            uuid.New(),
		UserID:        userID,
		Weight:        80,
		Height:        180,
		Age:           30,
		Sex:           "male",
		ActivityLevel: "moderate",
		Goal:          model.GoalLoseWeight,
	}).Error)

	svc := NewProfileService(db)
	profile, err := svc.NutritionProfile(context.Background(), userID)
	require.NoError(t, err)

	// BMR 1780 * 1.55 - 500 = 2259; macros split 30/40/30.
	assert.Equal(t, 2259, profile.TargetCalories)
	assert.Equal(t, 169.4, profile.TargetProtein)
	assert.Equal(t, 225.9, profile.TargetCarbs)
	assert.Equal(t, 75.3, profile.TargetFat)
}

func TestNutritionProfileUnknownActivityFallsBack(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	userID := uuid.New()
	require.NoError(t, db.Create(&model.UserProfile{
		ID:            uuid.New(),
		UserID:        userID,
		Weight:        60,
		Height:        165,
		Age:           40,
		Sex:           "female",
		ActivityLevel: "couch",
		Goal:          model.GoalMaintain,
	}).Error)

	svc := NewProfileService(db)
	profile, err := svc.NutritionProfile(context.Background(), userID)
	require.NoError(t, err)

	// BMR 1270.25 * 1.2 (sedentary fallback) = 1524.3 -> 1524.
	assert.Equal(t, 1524, profile.TargetCalories)
}

func TestUpdateProfileAppliesOnlyProvidedFields(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	userID := uuid.New()
	testhelpers.SeedProfile(t, db, userID)

	svc := NewProfileService(db)
	weight := 84.5
	goal := string(model.GoalMaintain)
	updated, err := svc.UpdateProfile(context.Background(), userID, &types.UpdateProfileRequest{
		Weight: &weight,
		Goal:   &goal,
	})
	require.NoError(t, err)

	assert.Equal(t, 84.5, updated.Weight)
	assert.Equal(t, model.GoalMaintain, updated.Goal)
	// untouched fields survive
	assert.Equal(t, 2500, updated.TargetCalories)
	assert.Equal(t, 181.0, updated.Height)
}
