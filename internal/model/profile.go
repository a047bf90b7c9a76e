package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Goal describes what the member is working toward.
type Goal string

const (
	GoalLoseWeight Goal = "lose_weight"
	GoalMaintain   Goal = "maintain"
	GoalGainMuscle Goal = "gain_muscle"
)

// UserNutritionProfile is the read-only input to the plan scaler: the
// member's targets and body metrics, supplied by the profile collaborator.
type UserNutritionProfile struct {
	TargetCalories int     `json:"target_calories"`
	TargetProtein  float64 `json:"target_protein"`
	TargetCarbs    float64 `json:"target_carbs"`
	TargetFat      float64 `json:"target_fat"`
	Weight         float64 `json:"weight"`
	Age            int     `json:"age"`
	Height         float64 `json:"height"`
	Goal           Goal    `json:"goal"`
}

// UserProfile is the persisted profile row backing UserNutritionProfile.
// Targets may be zero, in which case the profile service derives them from
// the body metrics.
type UserProfile struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	TargetCalories int            `json:"target_calories"`
	TargetProtein  float64        `json:"target_protein"`
	TargetCarbs    float64        `json:"target_carbs"`
	TargetFat      float64        `json:"target_fat"`
	Weight         float64        `json:"weight"`
	Height         float64        `json:"height"`
	Age            int            `json:"age"`
	Sex            string         `gorm:"size:10" json:"sex"`
	ActivityLevel  string         `gorm:"size:20" json:"activity_level"`
	Goal           Goal           `gorm:"size:20" json:"goal"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
