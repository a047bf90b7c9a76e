package model

import (
	"time"

	"gorm.io/gorm"
)

// IngredientFact is one row of the ingredient nutrition reference table.
// Values are per base unit of the declared unit type: per 100 g for weight
// and volume units, per single piece for per-piece facts. The table is
// maintained by the content-management side and read-only to the plan engine.
type IngredientFact struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	Name           string         `gorm:"size:255;not null;uniqueIndex" json:"name"`
	CaloriesPer100 float64        `gorm:"column:calories_per_100" json:"calories_per_100"`
	ProteinPer100  float64        `gorm:"column:protein_per_100" json:"protein_per_100"`
	CarbsPer100    float64        `gorm:"column:carbs_per_100" json:"carbs_per_100"`
	FatPer100      float64        `gorm:"column:fat_per_100" json:"fat_per_100"`
	UnitType       UnitType       `gorm:"size:20;not null;default:per_100g" json:"unit_type"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
