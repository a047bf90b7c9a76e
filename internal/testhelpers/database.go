package testhelpers

import (
	"testing"

	"github.com/ascend-community/backend/internal/model"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an in-memory SQLite database with the full schema.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Named shared-cache in-memory database so the pool's connections see
	// the same data, unique per test.
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.IngredientFact{},
		&model.UserProfile{},
		&model.PlanTemplate{},
		&model.CustomPlan{},
		&model.ActivePlan{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// SeedFacts inserts a small ingredient fact table sufficient for plan math.
func SeedFacts(t *testing.T, db *gorm.DB) []model.IngredientFact {
	t.Helper()

	facts := []model.IngredientFact{
		{Name: "Ei", CaloriesPer100: 155, ProteinPer100: 13, CarbsPer100: 1, FatPer100: 11, UnitType: model.UnitPerPiece},
		{Name: "Haferflocken", CaloriesPer100: 372, ProteinPer100: 13.5, CarbsPer100: 58.7, FatPer100: 7, UnitType: model.UnitPer100g},
		{Name: "Milch", CaloriesPer100: 64, ProteinPer100: 3.4, CarbsPer100: 4.7, FatPer100: 3.6, UnitType: model.UnitPer100g},
		{Name: "Hähnchenbrust", CaloriesPer100: 110, ProteinPer100: 23, CarbsPer100: 0, FatPer100: 1.5, UnitType: model.UnitPer100g},
		{Name: "Reis", CaloriesPer100: 130, ProteinPer100: 2.7, CarbsPer100: 28, FatPer100: 0.3, UnitType: model.UnitPer100g},
		{Name: "Quark", CaloriesPer100: 67, ProteinPer100: 12, CarbsPer100: 4, FatPer100: 0.2, UnitType: model.UnitPer100g},
	}
	if err := db.Create(&facts).Error; err != nil {
		t.Fatalf("failed to seed ingredient facts: %v", err)
	}
	return facts
}

// SeedProfile inserts a member profile with explicit targets.
func SeedProfile(t *testing.T, db *gorm.DB, userID uuid.UUID) model.UserProfile {
	t.Helper()

	profile := model.UserProfile{
		ID:             uuid.New(),
		UserID:         userID,
		TargetCalories: 2500,
		TargetProtein:  180,
		TargetCarbs:    250,
		TargetFat:      80,
		Weight:         82,
		Height:         181,
		Age:            29,
		Sex:            "male",
		ActivityLevel:  "moderate",
		Goal:           model.GoalGainMuscle,
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("failed to seed profile: %v", err)
	}
	return profile
}

// SeedTemplate inserts a plan template with a breakfast on Monday and a
// dinner on Tuesday; the remaining cells are left for normalization to
// backfill.
func SeedTemplate(t *testing.T, db *gorm.DB) model.PlanTemplate {
	t.Helper()

	week := model.WeekPlan{
		model.Monday: {Meals: map[model.MealSlot]model.Meal{
			model.SlotBreakfast: {Ingredients: []model.IngredientLine{
				{Name: "Haferflocken", Amount: 50, Unit: model.UnitPer100g},
				{Name: "Milch", Amount: 200, Unit: model.UnitPerMl},
			}},
		}},
		model.Tuesday: {Meals: map[model.MealSlot]model.Meal{
			model.SlotDinner: {Ingredients: []model.IngredientLine{
				{Name: "Hähnchenbrust", Amount: 150, Unit: model.UnitPer100g},
				{Name: "Reis", Amount: 100, Unit: model.UnitPer100g},
			}},
		}},
	}

	tpl := model.PlanTemplate{
		ID:           uuid.New(),
		Name:         "Muscle Builder",
		Description:  "High protein weekly base plan",
		BaseCalories: 2000,
		Week:         model.JSONBWeekPlan(week),
	}
	if err := db.Create(&tpl).Error; err != nil {
		t.Fatalf("failed to seed plan template: %v", err)
	}
	return tpl
}
