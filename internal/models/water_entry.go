package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type WaterEntry struct {
	gorm.Model

	UserID uint           `gorm:"not null;index:idx_water_user_date"`
	Amount int            `gorm:"not null"` // ml
	Time   string         `gorm:"not null"`
	Date   datatypes.Date `gorm:"not null;index:idx_water_user_date"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
