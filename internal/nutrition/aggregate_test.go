package nutrition

import (
	"testing"

	"github.com/ascend-community/backend/internal/model"
	"github.com/stretchr/testify/assert"
)

func breakfastLines() []model.IngredientLine {
	return []model.IngredientLine{
		{Name: "Haferflocken", Amount: 50, Unit: model.UnitPer100g},
		{Name: "Milch", Amount: 200, Unit: model.UnitPerMl},
	}
}

func TestAggregateMeal(t *testing.T) {
	r := NewResolver(testFacts())

	n := AggregateMeal(r, breakfastLines())
	assert.Equal(t, model.Nutrition{Calories: 314, Protein: 13.6, Carbs: 38.8, Fat: 10.7}, n)
}

func TestAggregateMealEmpty(t *testing.T) {
	r := NewResolver(testFacts())

	assert.True(t, AggregateMeal(r, nil).IsZero())
	assert.True(t, AggregateMeal(r, []model.IngredientLine{}).IsZero())
}

func TestAggregateMealIdempotent(t *testing.T) {
	r := NewResolver(testFacts())
	lines := breakfastLines()

	first := AggregateMeal(r, lines)
	second := AggregateMeal(r, lines)
	assert.Equal(t, first, second)
}

func TestAggregateMealUnknownIngredientCountsZero(t *testing.T) {
	r := NewResolver(testFacts())

	lines := append(breakfastLines(), model.IngredientLine{Name: "Einhornstaub", Amount: 100, Unit: model.UnitPer100g})
	assert.Equal(t, AggregateMeal(r, breakfastLines()), AggregateMeal(r, lines))
}

func TestAggregateDay(t *testing.T) {
	day := model.DayPlan{Meals: map[model.MealSlot]model.Meal{
		model.SlotBreakfast: {Nutrition: model.Nutrition{Calories: 400, Protein: 20, Carbs: 40, Fat: 15}},
		model.SlotLunch:     {Nutrition: model.Nutrition{Calories: 600, Protein: 35, Carbs: 55, Fat: 20}},
		model.SlotDinner:    {Nutrition: model.Nutrition{Calories: 500, Protein: 30, Carbs: 45, Fat: 18}},
		// snack slots deliberately absent
	}}

	assert.Equal(t, model.Nutrition{Calories: 1500, Protein: 85, Carbs: 140, Fat: 53}, AggregateDay(day))
}

func TestAggregateDayEmpty(t *testing.T) {
	assert.True(t, AggregateDay(model.DayPlan{}).IsZero())
}

func TestRecalculateDaySelfHealing(t *testing.T) {
	r := NewResolver(testFacts())

	day := model.DayPlan{
		Meals: map[model.MealSlot]model.Meal{
			model.SlotBreakfast: {
				Ingredients: breakfastLines(),
				// stale cached value that must not survive recalculation
				Nutrition: model.Nutrition{Calories: 9999},
			},
		},
		DailyTotals: model.Nutrition{Calories: 9999},
	}

	got := RecalculateDay(r, day)
	assert.Equal(t, 314, got.Meals[model.SlotBreakfast].Nutrition.Calories)
	assert.Equal(t, 314, got.DailyTotals.Calories)
	// input untouched
	assert.Equal(t, 9999, day.DailyTotals.Calories)
}

func TestAggregateWeekAveragesOnlyNonEmptyDays(t *testing.T) {
	r := NewResolver(testFacts())

	week := model.WeekPlan{}.Normalize()
	monday := week[model.Monday]
	monday.Meals[model.SlotBreakfast] = model.Meal{Ingredients: breakfastLines()}
	week[model.Monday] = monday

	tuesday := week[model.Tuesday]
	tuesday.Meals[model.SlotDinner] = model.Meal{Ingredients: []model.IngredientLine{
		{Name: "Ei", Amount: 2, Unit: model.UnitPerPiece},
	}}
	week[model.Tuesday] = tuesday

	// Monday 314 kcal, Tuesday 310 kcal, five empty days excluded.
	avg := AggregateWeek(r, week)
	assert.Equal(t, 312, avg.Calories)
	assert.Equal(t, 19.8, avg.Protein)
}

func TestAggregateWeekAllDaysEmpty(t *testing.T) {
	r := NewResolver(testFacts())

	assert.True(t, AggregateWeek(r, model.WeekPlan{}.Normalize()).IsZero())
}
