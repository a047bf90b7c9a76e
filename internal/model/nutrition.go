package model

// Nutrition represents nutrition facts for a meal, a day, or a weekly average.
type Nutrition struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Add returns the component-wise sum of two nutrition values.
func (n Nutrition) Add(other Nutrition) Nutrition {
	return Nutrition{
		Calories: n.Calories + other.Calories,
		Protein:  n.Protein + other.Protein,
		Carbs:    n.Carbs + other.Carbs,
		Fat:      n.Fat + other.Fat,
	}
}

// IsZero reports whether every component is zero.
func (n Nutrition) IsZero() bool {
	return n.Calories == 0 && n.Protein == 0 && n.Carbs == 0 && n.Fat == 0
}

// UnitType identifies the base unit an ingredient's nutrition facts are
// declared against, or the unit an ingredient line is measured in.
type UnitType string

const (
	UnitPer100g  UnitType = "per_100g"
	UnitPerPiece UnitType = "per_piece"
	UnitPerMl    UnitType = "per_ml"
	UnitPerTbsp  UnitType = "per_tbsp"
	UnitPerTsp   UnitType = "per_tsp"
	UnitPerCup   UnitType = "per_cup"
)

// IngredientLine is one line item inside a meal. Name must resolve in the
// ingredient fact table; Amount is interpreted against Unit.
type IngredientLine struct {
	Name   string   `json:"name"`
	Amount float64  `json:"amount"`
	Unit   UnitType `json:"unit"`
}

// Equal reports whether two lines match by name, amount and unit.
func (l IngredientLine) Equal(other IngredientLine) bool {
	return l.Name == other.Name && l.Amount == other.Amount && l.Unit == other.Unit
}

// IngredientLinesEqual reports element-wise equality of two ingredient lists,
// order included. Used to decide whether an edited meal still diverges from
// the base plan.
func IngredientLinesEqual(a, b []IngredientLine) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// MealSlot names one of the six meal positions in a day.
type MealSlot string

const (
	SlotBreakfast    MealSlot = "breakfast"
	SlotMorningSnack MealSlot = "morning_snack"
	SlotLunch        MealSlot = "lunch"
	SlotLunchSnack   MealSlot = "lunch_snack"
	SlotDinner       MealSlot = "dinner"
	SlotEveningSnack MealSlot = "evening_snack"
)

// MealSlots lists the six slots in their display order.
var MealSlots = []MealSlot{
	SlotBreakfast,
	SlotMorningSnack,
	SlotLunch,
	SlotLunchSnack,
	SlotDinner,
	SlotEveningSnack,
}

// ValidMealSlot reports whether s names one of the six slots.
func ValidMealSlot(s MealSlot) bool {
	for _, slot := range MealSlots {
		if slot == s {
			return true
		}
	}
	return false
}

// Meal is an ordered list of ingredient lines plus its derived nutrition.
// Nutrition is never authored directly; it is recomputed whenever the
// ingredient list changes.
type Meal struct {
	Ingredients []IngredientLine `json:"ingredients"`
	Nutrition   Nutrition        `json:"nutrition"`
}

// Weekday names one of the seven fixed day keys of a week plan.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays lists the seven day keys Monday through Sunday.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ValidWeekday reports whether d names one of the seven days.
func ValidWeekday(d Weekday) bool {
	for _, day := range Weekdays {
		if day == d {
			return true
		}
	}
	return false
}

// DayPlan holds the six meal slots of one day plus the derived daily totals.
// DailyTotals is always the sum over the six meals and never edited directly.
type DayPlan struct {
	Meals       map[MealSlot]Meal `json:"meals"`
	DailyTotals Nutrition         `json:"daily_totals"`
}

// WeekPlan maps the seven fixed day keys to day plans. All seven keys are
// always present after normalization; absent days are materialized empty.
type WeekPlan map[Weekday]DayPlan

// Normalize backfills missing days and meal slots with empty meals so the
// invariant "all seven keys present" holds even for malformed input.
func (w WeekPlan) Normalize() WeekPlan {
	if w == nil {
		w = make(WeekPlan, len(Weekdays))
	}
	for _, day := range Weekdays {
		dp, ok := w[day]
		if !ok || dp.Meals == nil {
			dp.Meals = make(map[MealSlot]Meal, len(MealSlots))
		}
		for _, slot := range MealSlots {
			if _, ok := dp.Meals[slot]; !ok {
				dp.Meals[slot] = Meal{Ingredients: []IngredientLine{}}
			}
		}
		w[day] = dp
	}
	return w
}

// Clone returns a deep copy of the week plan. Edits produce a new consistent
// aggregate; snapshots handed to the persistence layer must not alias the
// in-memory state.
func (w WeekPlan) Clone() WeekPlan {
	out := make(WeekPlan, len(w))
	for day, dp := range w {
		meals := make(map[MealSlot]Meal, len(dp.Meals))
		for slot, meal := range dp.Meals {
			lines := make([]IngredientLine, len(meal.Ingredients))
			copy(lines, meal.Ingredients)
			meals[slot] = Meal{Ingredients: lines, Nutrition: meal.Nutrition}
		}
		out[day] = DayPlan{Meals: meals, DailyTotals: dp.DailyTotals}
	}
	return out
}
