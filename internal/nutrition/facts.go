// Package nutrition implements the plan engine's calculation pipeline:
// ingredient-line nutrition resolution, meal/day/week aggregation, plan
// scaling, and target-deviation classification.
package nutrition

import (
	"errors"
	"fmt"
	"math"

	"github.com/ascend-community/backend/internal/model"
)

// ErrMissingFact is returned when an ingredient line names an ingredient
// absent from the fact table. Non-fatal: the line contributes zero nutrition
// and computation continues.
var ErrMissingFact = errors.New("missing ingredient fact")

// FactSource provides ingredient reference data lookups.
type FactSource interface {
	Fact(name string) (model.IngredientFact, bool)
}

// FactTable is an in-memory FactSource keyed by ingredient name.
type FactTable map[string]model.IngredientFact

// NewFactTable builds a FactTable from a list of facts.
func NewFactTable(facts []model.IngredientFact) FactTable {
	table := make(FactTable, len(facts))
	for _, f := range facts {
		table[f.Name] = f
	}
	return table
}

func (t FactTable) Fact(name string) (model.IngredientFact, bool) {
	f, ok := t[name]
	return f, ok
}

// Resolver turns ingredient lines into nutrition values using a read-only
// fact source.
type Resolver struct {
	facts FactSource
}

// NewResolver creates a Resolver over the given fact source.
func NewResolver(facts FactSource) *Resolver {
	return &Resolver{facts: facts}
}

// NutritionFor resolves one ingredient line against the fact table. Unknown
// ingredients yield zero nutrition and an error wrapping ErrMissingFact;
// callers log it and continue. Calories round to integer, macros to one
// decimal, so repeated resolution of unchanged input is bit-identical.
func (r *Resolver) NutritionFor(line model.IngredientLine) (model.Nutrition, error) {
	fact, ok := r.facts.Fact(line.Name)
	if !ok {
		return model.Nutrition{}, fmt.Errorf("%w: %q", ErrMissingFact, line.Name)
	}

	m := multiplier(line.Unit, fact.UnitType, line.Amount)
	return model.Nutrition{
		Calories: int(math.Round(fact.CaloriesPer100 * m)),
		Protein:  round1(fact.ProteinPer100 * m),
		Carbs:    round1(fact.CarbsPer100 * m),
		Fat:      round1(fact.FatPer100 * m),
	}, nil
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
