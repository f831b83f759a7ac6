package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DailyHistory is the reconciled summary row for one (user, date) pair. The
// unique index is the reconciliation target: upserts key on it so a day can
// never split into two rows. CalorieGoal and WaterGoal are snapshots taken at
// reconciliation time so later goal changes don't distort past percentages.
type DailyHistory struct {
	gorm.Model

	UserID               uint           `gorm:"not null;uniqueIndex:idx_history_user_date"`
	Date                 datatypes.Date `gorm:"not null;uniqueIndex:idx_history_user_date"`
	TotalCalories        int            `gorm:"not null"`
	TotalWater           int            `gorm:"not null"`
	TotalWorkoutCalories int            `gorm:"not null"`
	CalorieGoal          int            `gorm:"not null"`
	WaterGoal            int            `gorm:"not null"`
	Weight               *float64

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
