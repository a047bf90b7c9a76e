package nutrition

import "github.com/ascend-community/backend/internal/model"

// Volume-to-weight approximations. Downstream UI copy assumes these exact
// ratios; do not "fix" them.
const (
	gramsPerTablespoon = 15.0
	gramsPerTeaspoon   = 5.0
	gramsPerCup        = 240.0

	// averagePieceGrams bridges piece-typed facts and weight-typed lines
	// (and vice versa) when the requested unit differs in kind from the
	// fact's declared unit.
	averagePieceGrams = 50.0
)

// multiplier computes the factor to apply to a fact's per-base-unit values
// for the given line amount and unit. Weight and volume units reduce to a
// gram equivalent against the fact's 100 g basis; per-piece facts scale by
// piece count. An unspecified line unit is treated as per-100g.
func multiplier(lineUnit, factUnit model.UnitType, amount float64) float64 {
	if lineUnit == "" {
		lineUnit = model.UnitPer100g
	}

	linePiece := lineUnit == model.UnitPerPiece
	factPiece := factUnit == model.UnitPerPiece

	switch {
	case linePiece && factPiece:
		return amount
	case !linePiece && !factPiece:
		return gramEquivalent(lineUnit, amount) / 100
	case linePiece && !factPiece:
		// Pieces requested against a weight-basis fact.
		return amount * averagePieceGrams / 100
	default:
		// Weight requested against a piece-basis fact.
		return gramEquivalent(lineUnit, amount) / averagePieceGrams
	}
}

// gramEquivalent converts an amount in a weight or volume unit to grams.
// Milliliters are treated as weight-equivalent (1 ml ~= 1 g).
func gramEquivalent(unit model.UnitType, amount float64) float64 {
	switch unit {
	case model.UnitPerTbsp:
		return amount * gramsPerTablespoon
	case model.UnitPerTsp:
		return amount * gramsPerTeaspoon
	case model.UnitPerCup:
		return amount * gramsPerCup
	default:
		// per_100g and per_ml are both gram-linear.
		return amount
	}
}
