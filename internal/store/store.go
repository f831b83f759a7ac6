// Package store defines the persistence operations the tracker core depends
// on, plus their GORM implementation. Services only see the interfaces, so
// tests can swap in an in-memory fake.
package store

import (
	"context"
	"errors"

	"github.com/vitalog-dev/vitalog/internal/models"
	"gorm.io/datatypes"
)

// ErrNotFound is returned by delete and single-row lookups when the target
// row does not exist. Absent profiles are not an error: GetProfile returns
// (nil, nil) instead.
var ErrNotFound = errors.New("record not found")

// EntryStore covers the per-day event log: food, water, and workout entries.
// Lists are ordered by creation time ascending.
type EntryStore interface {
	ListFoodEntries(ctx context.Context, userID uint, date datatypes.Date) ([]models.FoodEntry, error)
	InsertFoodEntry(ctx context.Context, entry *models.FoodEntry) error
	DeleteFoodEntry(ctx context.Context, userID, id uint) error

	ListWaterEntries(ctx context.Context, userID uint, date datatypes.Date) ([]models.WaterEntry, error)
	InsertWaterEntry(ctx context.Context, entry *models.WaterEntry) error
	DeleteWaterEntry(ctx context.Context, userID, id uint) error

	ListWorkoutEntries(ctx context.Context, userID uint, date datatypes.Date) ([]models.WorkoutEntry, error)
	InsertWorkoutEntry(ctx context.Context, entry *models.WorkoutEntry) error
	DeleteWorkoutEntry(ctx context.Context, userID, id uint) error
}

type ProfileStore interface {
	// GetProfile returns (nil, nil) when the user has no profile yet.
	GetProfile(ctx context.Context, userID uint) (*models.Profile, error)
	// UpsertProfile inserts or overwrites the profile keyed on user_id.
	UpsertProfile(ctx context.Context, profile *models.Profile) error
}

type HistoryStore interface {
	// UpsertDailyHistory inserts or overwrites the row keyed on
	// (user_id, date) and returns the persisted row.
	UpsertDailyHistory(ctx context.Context, row *models.DailyHistory) (*models.DailyHistory, error)
	// QueryDailyHistory returns rows descending by date, filtered to the
	// inclusive [start, end] range; a nil bound is open-ended. No matches
	// yields an empty slice, not an error.
	QueryDailyHistory(ctx context.Context, userID uint, start, end *datatypes.Date) ([]models.DailyHistory, error)
}

type CatalogStore interface {
	// SearchCatalog does a case-insensitive substring match on food names,
	// ordered by name and capped at limit rows.
	SearchCatalog(ctx context.Context, query string, limit int) ([]models.CatalogFood, error)
	GetCatalogFood(ctx context.Context, id uint) (*models.CatalogFood, error)
	SeedCatalog(ctx context.Context, foods []models.CatalogFood) error
}

type Store interface {
	EntryStore
	ProfileStore
	HistoryStore
	CatalogStore
}
