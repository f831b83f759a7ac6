package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FoodEntry struct {
	gorm.Model

	UserID   uint           `gorm:"not null;index:idx_food_user_date"`
	Name     string         `gorm:"not null"`
	Calories int            `gorm:"not null"`
	Meal     string         `gorm:"not null"` // "breakfast", "lunch", "dinner", "snack"
	Time     string         `gorm:"not null"` // local wall clock, "15:04"
	Date     datatypes.Date `gorm:"not null;index:idx_food_user_date"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
