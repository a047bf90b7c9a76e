package types

import "github.com/ascend-community/backend/internal/model"

// EditMealRequest represents the request body for replacing a meal's
// ingredient list.
type EditMealRequest struct {
	Ingredients []model.IngredientLine `json:"ingredients" binding:"required"`
}

// UpdateProfileRequest represents the request body for updating the
// member's nutrition profile. Pointer fields are only applied when set.
type UpdateProfileRequest struct {
	TargetCalories *int     `json:"target_calories"`
	TargetProtein  *float64 `json:"target_protein"`
	TargetCarbs    *float64 `json:"target_carbs"`
	TargetFat      *float64 `json:"target_fat"`
	Weight         *float64 `json:"weight"`
	Height         *float64 `json:"height"`
	Age            *int     `json:"age"`
	Sex            *string  `json:"sex"`
	ActivityLevel  *string  `json:"activity_level"`
	Goal           *string  `json:"goal"`
}
