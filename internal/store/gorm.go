package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/vitalog-dev/vitalog/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore is the Postgres-backed Store. Upserts rely on ON CONFLICT against
// the unique indexes, so duplicate-key races resolve as last-writer-wins
// updates instead of surfacing conflict errors.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) ListFoodEntries(ctx context.Context, userID uint, date datatypes.Date) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list food entries: %w", err)
	}
	return entries, nil
}

func (s *GormStore) InsertFoodEntry(ctx context.Context, entry *models.FoodEntry) error {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to insert food entry: %w", err)
	}
	return nil
}

func (s *GormStore) DeleteFoodEntry(ctx context.Context, userID, id uint) error {
	return s.deleteOwned(ctx, &models.FoodEntry{}, userID, id, "food entry")
}

func (s *GormStore) ListWaterEntries(ctx context.Context, userID uint, date datatypes.Date) ([]models.WaterEntry, error) {
	var entries []models.WaterEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list water entries: %w", err)
	}
	return entries, nil
}

func (s *GormStore) InsertWaterEntry(ctx context.Context, entry *models.WaterEntry) error {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to insert water entry: %w", err)
	}
	return nil
}

func (s *GormStore) DeleteWaterEntry(ctx context.Context, userID, id uint) error {
	return s.deleteOwned(ctx, &models.WaterEntry{}, userID, id, "water entry")
}

func (s *GormStore) ListWorkoutEntries(ctx context.Context, userID uint, date datatypes.Date) ([]models.WorkoutEntry, error) {
	var entries []models.WorkoutEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list workout entries: %w", err)
	}
	return entries, nil
}

func (s *GormStore) InsertWorkoutEntry(ctx context.Context, entry *models.WorkoutEntry) error {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to insert workout entry: %w", err)
	}
	return nil
}

func (s *GormStore) DeleteWorkoutEntry(ctx context.Context, userID, id uint) error {
	return s.deleteOwned(ctx, &models.WorkoutEntry{}, userID, id, "workout entry")
}

// deleteOwned deletes one row scoped to its owner. The user_id filter keeps
// one user from deleting another's entries by guessing ids.
func (s *GormStore) deleteOwned(ctx context.Context, model interface{}, userID, id uint, kind string) error {
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(model)
	if result.Error != nil {
		return fmt.Errorf("failed to delete %s: %w", kind, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) GetProfile(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

func (s *GormStore) UpsertProfile(ctx context.Context, profile *models.Profile) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"height", "weight", "target_weight", "age", "gender",
			"activity_level", "calorie_goal", "water_goal", "updated_at",
		}),
	}).Create(profile).Error
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

func (s *GormStore) UpsertDailyHistory(ctx context.Context, row *models.DailyHistory) (*models.DailyHistory, error) {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_calories", "total_water", "total_workout_calories",
			"calorie_goal", "water_goal", "weight", "updated_at",
		}),
	}).Create(row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert daily history: %w", err)
	}

	// On conflict the insert path doesn't populate the existing row's id and
	// timestamps, so read the persisted row back.
	var persisted models.DailyHistory
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", row.UserID, row.Date).
		First(&persisted).Error; err != nil {
		return nil, fmt.Errorf("failed to read back daily history: %w", err)
	}
	return &persisted, nil
}

func (s *GormStore) QueryDailyHistory(ctx context.Context, userID uint, start, end *datatypes.Date) ([]models.DailyHistory, error) {
	query := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if start != nil {
		query = query.Where("date >= ?", *start)
	}
	if end != nil {
		query = query.Where("date <= ?", *end)
	}

	var rows []models.DailyHistory
	if err := query.Order("date DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query daily history: %w", err)
	}
	return rows, nil
}

func (s *GormStore) SearchCatalog(ctx context.Context, query string, limit int) ([]models.CatalogFood, error) {
	var foods []models.CatalogFood
	if err := s.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+query+"%").
		Order("name ASC").
		Limit(limit).
		Find(&foods).Error; err != nil {
		return nil, fmt.Errorf("failed to search catalog: %w", err)
	}
	return foods, nil
}

func (s *GormStore) GetCatalogFood(ctx context.Context, id uint) (*models.CatalogFood, error) {
	var food models.CatalogFood
	err := s.db.WithContext(ctx).First(&food, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get catalog food: %w", err)
	}
	return &food, nil
}

func (s *GormStore) SeedCatalog(ctx context.Context, foods []models.CatalogFood) error {
	if len(foods) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Create(&foods).Error; err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	return nil
}
