package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekPlanNormalizeBackfills(t *testing.T) {
	week := WeekPlan{
		Monday: {Meals: map[MealSlot]Meal{
			SlotBreakfast: {Ingredients: []IngredientLine{{Name: "Ei", Amount: 2, Unit: UnitPerPiece}}},
		}},
	}

	week = week.Normalize()

	require.Len(t, week, 7)
	for _, day := range Weekdays {
		dp, ok := week[day]
		require.True(t, ok, "day %s missing", day)
		require.Len(t, dp.Meals, 6)
		for _, slot := range MealSlots {
			meal, ok := dp.Meals[slot]
			require.True(t, ok, "slot %s/%s missing", day, slot)
			assert.NotNil(t, meal.Ingredients)
		}
	}

	// Existing content survives
	assert.Len(t, week[Monday].Meals[SlotBreakfast].Ingredients, 1)
}

func TestWeekPlanNormalizeNil(t *testing.T) {
	var week WeekPlan
	week = week.Normalize()
	assert.Len(t, week, 7)
}

func TestWeekPlanCloneIndependent(t *testing.T) {
	week := WeekPlan{
		Monday: {Meals: map[MealSlot]Meal{
			SlotLunch: {Ingredients: []IngredientLine{{Name: "Reis", Amount: 100, Unit: UnitPer100g}}},
		}},
	}.Normalize()

	clone := week.Clone()
	meal := clone[Monday].Meals[SlotLunch]
	meal.Ingredients[0].Amount = 999
	clone[Monday].Meals[SlotLunch] = meal

	assert.Equal(t, float64(100), week[Monday].Meals[SlotLunch].Ingredients[0].Amount)
}

func TestIngredientLinesEqual(t *testing.T) {
	a := []IngredientLine{
		{Name: "Ei", Amount: 2, Unit: UnitPerPiece},
		{Name: "Reis", Amount: 100, Unit: UnitPer100g},
	}
	b := []IngredientLine{
		{Name: "Ei", Amount: 2, Unit: UnitPerPiece},
		{Name: "Reis", Amount: 100, Unit: UnitPer100g},
	}

	assert.True(t, IngredientLinesEqual(a, b))

	// Order matters
	assert.False(t, IngredientLinesEqual(a, []IngredientLine{b[1], b[0]}))

	b[1].Amount = 120
	assert.False(t, IngredientLinesEqual(a, b))
	assert.False(t, IngredientLinesEqual(a, a[:1]))
	assert.True(t, IngredientLinesEqual(nil, []IngredientLine{}))
}

func TestNutritionAdd(t *testing.T) {
	var total Nutrition
	total = total.Add(Nutrition{Calories: 314, Protein: 13.6, Carbs: 38.8, Fat: 10.7})
	total = total.Add(Nutrition{Calories: 295, Protein: 37.2, Carbs: 28, Fat: 2.6})

	assert.Equal(t, 609, total.Calories)
	assert.InDelta(t, 50.8, total.Protein, 1e-9)
	assert.False(t, total.IsZero())
	assert.True(t, Nutrition{}.IsZero())
}
