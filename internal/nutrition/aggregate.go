package nutrition

import (
	"errors"
	"log"
	"math"

	"github.com/ascend-community/backend/internal/model"
)

// AggregateMeal sums the nutrition of all ingredient lines. Lines whose
// ingredient is missing from the fact table contribute zero and are logged;
// an empty list yields all-zero nutrition. Each line's value is already
// rounded, so re-aggregating unchanged input is bit-identical.
func AggregateMeal(r *Resolver, lines []model.IngredientLine) model.Nutrition {
	var total model.Nutrition
	for _, line := range lines {
		n, err := r.NutritionFor(line)
		if err != nil {
			if errors.Is(err, ErrMissingFact) {
				log.Printf("[nutrition] %v, counting zero", err)
				continue
			}
		}
		total = total.Add(n)
	}
	total.Protein = round1(total.Protein)
	total.Carbs = round1(total.Carbs)
	total.Fat = round1(total.Fat)
	return total
}

// AggregateDay sums the six meals' already-materialized nutrition into the
// daily totals. Absent slots count as zero rather than erroring; deriving
// meal nutrition from ingredients is AggregateMeal's job, not repeated here.
func AggregateDay(day model.DayPlan) model.Nutrition {
	var total model.Nutrition
	for _, slot := range model.MealSlots {
		total = total.Add(day.Meals[slot].Nutrition)
	}
	return total
}

// RecalculateDay re-derives every meal's nutrition from its ingredients and
// refreshes the daily totals. Returns a new DayPlan; the input is not
// mutated.
func RecalculateDay(r *Resolver, day model.DayPlan) model.DayPlan {
	meals := make(map[model.MealSlot]model.Meal, len(model.MealSlots))
	for _, slot := range model.MealSlots {
		meal := day.Meals[slot]
		meal.Nutrition = AggregateMeal(r, meal.Ingredients)
		meals[slot] = meal
	}
	out := model.DayPlan{Meals: meals}
	out.DailyTotals = AggregateDay(out)
	return out
}

// RecalculateWeek runs RecalculateDay over all seven days.
func RecalculateWeek(r *Resolver, week model.WeekPlan) model.WeekPlan {
	out := make(model.WeekPlan, len(model.Weekdays))
	for _, day := range model.Weekdays {
		out[day] = RecalculateDay(r, week[day])
	}
	return out
}

// AggregateWeek computes the weekly macro averages. Daily totals are
// recomputed from the source-of-truth ingredients so a stale cached total
// can never skew the average, and only days with non-zero calorie intake
// count toward the divisor. An all-empty week averages to zero rather than
// dividing by zero.
func AggregateWeek(r *Resolver, week model.WeekPlan) model.Nutrition {
	var sum model.Nutrition
	validDays := 0
	for _, day := range model.Weekdays {
		totals := RecalculateDay(r, week[day]).DailyTotals
		if totals.Calories > 0 {
			validDays++
		}
		sum = sum.Add(totals)
	}

	divisor := float64(validDays)
	if validDays == 0 {
		divisor = 1
	}
	return model.Nutrition{
		Calories: int(math.Round(float64(sum.Calories) / divisor)),
		Protein:  round1(sum.Protein / divisor),
		Carbs:    round1(sum.Carbs / divisor),
		Fat:      round1(sum.Fat / divisor),
	}
}
