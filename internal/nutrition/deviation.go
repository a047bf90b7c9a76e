package nutrition

import (
	"math"

	"github.com/ascend-community/backend/internal/model"
)

// DeviationStatus classifies how far a value sits from its target.
type DeviationStatus string

const (
	StatusOK            DeviationStatus = "ok"
	StatusOverWarn      DeviationStatus = "over_warn"
	StatusOverCritical  DeviationStatus = "over_critical"
	StatusUnderWarn     DeviationStatus = "under_warn"
	StatusUnderCritical DeviationStatus = "under_critical"
)

// Deviation is the classification of one value against one target.
type Deviation struct {
	Status     DeviationStatus `json:"status"`
	Percentage int             `json:"percentage"`
}

// Classify compares a current value against its target. Up to 5% over or
// under is fine, up to 10% is a warning, beyond that critical. A zero
// target yields OK at 0% rather than dividing by zero.
func Classify(current, target float64) Deviation {
	if target == 0 {
		return Deviation{Status: StatusOK, Percentage: 0}
	}

	pct := int(math.Round(current / target * 100))
	dev := Deviation{Status: StatusOK, Percentage: pct}

	switch diff := current - target; {
	case diff == 0:
	case diff > 0:
		if pct > 110 {
			dev.Status = StatusOverCritical
		} else if pct > 105 {
			dev.Status = StatusOverWarn
		}
	default:
		if pct < 90 {
			dev.Status = StatusUnderCritical
		} else if pct < 95 {
			dev.Status = StatusUnderWarn
		}
	}
	return dev
}

// DayDeviation evaluates a day's totals against the profile targets, one
// independent classification per measure.
type DayDeviation struct {
	Calories Deviation `json:"calories"`
	Protein  Deviation `json:"protein"`
	Carbs    Deviation `json:"carbs"`
	Fat      Deviation `json:"fat"`
}

// ClassifyDay classifies a day's totals against the member's targets.
func ClassifyDay(totals model.Nutrition, profile model.UserNutritionProfile) DayDeviation {
	return DayDeviation{
		Calories: Classify(float64(totals.Calories), float64(profile.TargetCalories)),
		Protein:  Classify(totals.Protein, profile.TargetProtein),
		Carbs:    Classify(totals.Carbs, profile.TargetCarbs),
		Fat:      Classify(totals.Fat, profile.TargetFat),
	}
}
