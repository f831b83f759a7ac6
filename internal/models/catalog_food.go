package models

import "gorm.io/gorm"

// CatalogFood is one row of the shared food lookup table. Calories are per
// 100g; macro fields are informational and never aggregated.
type CatalogFood struct {
	gorm.Model

	Name            string `gorm:"not null;index"`
	CaloriesPer100g int    `gorm:"not null"`
	ProteinPer100g  *float64
	CarbsPer100g    *float64
	FatPer100g      *float64
	FiberPer100g    *float64
	Category        *string
}
