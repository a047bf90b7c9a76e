package nutrition

import "errors"

// ErrZeroBaseCalories signals a plan template with a zero calorie level;
// scaling against an empty base is meaningless, so the factor falls back
// to 1.0.
var ErrZeroBaseCalories = errors.New("plan template has zero base calories")

// ScaleFactor derives the ratio of the member's calorie target to the
// template's designed calorie level. The factor is recorded in the plan's
// scaling info for display and audit; ingredient amounts are not rescaled
// automatically.
func ScaleFactor(basePlanCalories, targetCalories int) (float64, error) {
	if basePlanCalories == 0 {
		return 1.0, ErrZeroBaseCalories
	}
	return float64(targetCalories) / float64(basePlanCalories), nil
}
