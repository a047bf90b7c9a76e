package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/ascend-community/backend/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// defaultFacts is a small starter set so a fresh installation can render
// plans before the full reference table is imported.
var defaultFacts = []model.IngredientFact{
	{Name: "Ei", CaloriesPer100: 155, ProteinPer100: 13, CarbsPer100: 1.1, FatPer100: 11, UnitType: model.UnitPerPiece},
	{Name: "Haferflocken", CaloriesPer100: 372, ProteinPer100: 13.5, CarbsPer100: 58.7, FatPer100: 7, UnitType: model.UnitPer100g},
	{Name: "Milch 1.5%", CaloriesPer100: 47, ProteinPer100: 3.4, CarbsPer100: 4.9, FatPer100: 1.5, UnitType: model.UnitPerMl},
	{Name: "Magerquark", CaloriesPer100: 67, ProteinPer100: 12, CarbsPer100: 4, FatPer100: 0.2, UnitType: model.UnitPer100g},
	{Name: "Hähnchenbrust", CaloriesPer100: 110, ProteinPer100: 23, CarbsPer100: 0, FatPer100: 1.5, UnitType: model.UnitPer100g},
	{Name: "Reis", CaloriesPer100: 130, ProteinPer100: 2.7, CarbsPer100: 28, FatPer100: 0.3, UnitType: model.UnitPer100g},
	{Name: "Banane", CaloriesPer100: 89, ProteinPer100: 1.1, CarbsPer100: 22.8, FatPer100: 0.3, UnitType: model.UnitPerPiece},
	{Name: "Erdnussbutter", CaloriesPer100: 588, ProteinPer100: 25, CarbsPer100: 20, FatPer100: 50, UnitType: model.UnitPerTbsp},
	{Name: "Olivenöl", CaloriesPer100: 884, ProteinPer100: 0, CarbsPer100: 0, FatPer100: 100, UnitType: model.UnitPerTsp},
	{Name: "Brokkoli", CaloriesPer100: 34, ProteinPer100: 2.8, CarbsPer100: 7, FatPer100: 0.4, UnitType: model.UnitPer100g},
	{Name: "Lachs", CaloriesPer100: 208, ProteinPer100: 20, CarbsPer100: 0, FatPer100: 13, UnitType: model.UnitPer100g},
	{Name: "Vollkornbrot", CaloriesPer100: 247, ProteinPer100: 8.5, CarbsPer100: 41, FatPer100: 3.3, UnitType: model.UnitPer100g},
}

func main() {
	file := flag.String("file", "", "Optional JSON file with ingredient facts to import")
	flag.Parse()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	facts := defaultFacts
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			log.Fatalf("failed to read %s: %v", *file, err)
		}
		facts = nil
		if err := json.Unmarshal(data, &facts); err != nil {
			log.Fatalf("failed to parse %s: %v", *file, err)
		}
	}

	// Upsert by name so reruns refresh values instead of duplicating rows.
	for _, fact := range facts {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"calories_per_100", "protein_per_100", "carbs_per_100", "fat_per_100", "unit_type", "updated_at"}),
		}).Create(&fact).Error
		if err != nil {
			log.Fatalf("failed to seed %q: %v", fact.Name, err)
		}
	}

	log.Printf("seeded %d ingredient facts", len(facts))
}
