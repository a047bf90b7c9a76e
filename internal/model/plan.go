package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScalingInfo records how the plan relates to the member's calorie target.
// The factor is informational metadata for display and audit; it is not
// applied to ingredient amounts automatically.
type ScalingInfo struct {
	BasePlanCalories int     `json:"base_plan_calories"`
	ScaleFactor      float64 `json:"scale_factor"`
	TargetCalories   int     `json:"target_calories"`
}

// PlanData is the root aggregate for one (user, plan) pair: the week plan,
// the profile and scaling metadata it was sized against, the derived weekly
// averages, and the set of cells modified from base.
type PlanData struct {
	PlanID         uuid.UUID            `json:"plan_id"`
	PlanName       string               `json:"plan_name"`
	UserProfile    UserNutritionProfile `json:"user_profile"`
	ScalingInfo    ScalingInfo          `json:"scaling_info"`
	WeekPlan       WeekPlan             `json:"week_plan"`
	WeeklyAverages Nutrition            `json:"weekly_averages"`
	ModifiedMeals  CustomizationRecord  `json:"modified_meals"`
}

// Clone returns a deep copy suitable for handing to the persistence layer
// while the caller keeps editing the original.
func (p *PlanData) Clone() *PlanData {
	out := *p
	out.WeekPlan = p.WeekPlan.Clone()
	out.ModifiedMeals = p.ModifiedMeals.Clone()
	return &out
}

// JSONBWeekPlan stores a WeekPlan in a JSONB column.
type JSONBWeekPlan WeekPlan

// Value implements the driver.Valuer interface
func (w JSONBWeekPlan) Value() (driver.Value, error) {
	if len(w) == 0 {
		return "{}", nil
	}
	return json.Marshal(w)
}

// Scan implements the sql.Scanner interface
func (w *JSONBWeekPlan) Scan(value interface{}) error {
	if value == nil {
		*w = JSONBWeekPlan{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for JSONBWeekPlan", value)
	}

	return json.Unmarshal(bytes, w)
}

// JSONBPlanData stores a full PlanData snapshot in a JSONB column.
type JSONBPlanData PlanData

// Value implements the driver.Valuer interface
func (p JSONBPlanData) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements the sql.Scanner interface
func (p *JSONBPlanData) Scan(value interface{}) error {
	if value == nil {
		*p = JSONBPlanData{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for JSONBPlanData", value)
	}

	return json.Unmarshal(bytes, p)
}

// PlanTemplate is a base weekly meal plan as authored by the content side.
// BaseCalories is the daily calorie level the template was designed for.
type PlanTemplate struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Description  string         `gorm:"type:text" json:"description"`
	BaseCalories int            `gorm:"not null" json:"base_calories"`
	Week         JSONBWeekPlan  `gorm:"type:jsonb;not null;default:'{}'" json:"week"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// CustomPlan is a member's customized overlay of a plan template, persisted
// as a full PlanData snapshot keyed by (user, plan). Deleting the row
// restores the base plan.
type CustomPlan struct {
	ID        uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_custom_plan_user_plan" json:"user_id"`
	PlanID    uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_custom_plan_user_plan" json:"plan_id"`
	Data      JSONBPlanData `gorm:"type:jsonb;not null" json:"data"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// BeforeCreate assigns an ID when the database cannot (SQLite in tests).
func (c *CustomPlan) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// ActivePlan is the pointer to the plan a member currently follows. It is
// written only after the plan snapshot has been persisted.
type ActivePlan struct {
	UserID    uuid.UUID `gorm:"type:uuid;primary_key" json:"user_id"`
	PlanID    uuid.UUID `gorm:"type:uuid;not null" json:"plan_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
