package models

import "gorm.io/gorm"

// Profile holds one user's body attributes and goals. Height/weight/age are
// optional so a fresh profile can exist before the user fills anything in.
// WaterGoal is a cache of goals.WaterGoal(weight), rewritten on every save.
type Profile struct {
	gorm.Model

	UserID        uint     `gorm:"not null;uniqueIndex"`
	Height        *float64 // cm
	Weight        *float64 // kg
	TargetWeight  *float64 // kg
	Age           *int
	Gender        *string // "male", "female", "other"
	ActivityLevel *string // "sedentary", "light", "moderate", "active", "very_active"
	CalorieGoal   int     `gorm:"not null;default:2000"` // kcal/day
	WaterGoal     int     `gorm:"not null;default:2500"` // ml/day, derived from weight

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
