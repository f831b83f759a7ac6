package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type WorkoutEntry struct {
	gorm.Model

	UserID   uint           `gorm:"not null;index:idx_workout_user_date"`
	Name     string         `gorm:"not null"`
	Duration int            `gorm:"not null"` // minutes
	Calories int            `gorm:"not null"` // calories burned
	Time     string         `gorm:"not null"`
	Date     datatypes.Date `gorm:"not null;index:idx_workout_user_date"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
