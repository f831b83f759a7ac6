// Command seed-catalog loads food definitions from a JSON file into the
// shared catalog table. Expected input is an array of objects matching the
// seedFood shape below.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/vitalog-dev/vitalog/db"
	"github.com/vitalog-dev/vitalog/internal/models"
	"github.com/vitalog-dev/vitalog/internal/store"
)

type seedFood struct {
	Name            string   `json:"name"`
	CaloriesPer100g int      `json:"calories_per_100g"`
	ProteinPer100g  *float64 `json:"protein_per_100g"`
	CarbsPer100g    *float64 `json:"carbs_per_100g"`
	FatPer100g      *float64 `json:"fat_per_100g"`
	FiberPer100g    *float64 `json:"fiber_per_100g"`
	Category        *string  `json:"category"`
}

func main() {
	file := flag.String("file", "foods.json", "path to the JSON food list")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	if err := db.ConnectDatabase(os.Getenv("DATABASE_URL")); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *file, err)
	}

	var seeds []seedFood
	if err := json.Unmarshal(data, &seeds); err != nil {
		log.Fatalf("Failed to parse %s: %v", *file, err)
	}

	foods := make([]models.CatalogFood, 0, len(seeds))
	for _, s := range seeds {
		if s.Name == "" || s.CaloriesPer100g <= 0 {
			log.Printf("Skipping invalid food entry %q", s.Name)
			continue
		}
		foods = append(foods, models.CatalogFood{
			Name:            s.Name,
			CaloriesPer100g: s.CaloriesPer100g,
			ProteinPer100g:  s.ProteinPer100g,
			CarbsPer100g:    s.CarbsPer100g,
			FatPer100g:      s.FatPer100g,
			FiberPer100g:    s.FiberPer100g,
			Category:        s.Category,
		})
	}

	gs := store.NewGormStore(db.DB)
	if err := gs.SeedCatalog(context.Background(), foods); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	log.Printf("Seeded %d foods", len(foods))
}
