package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/vitalog-dev/vitalog/internal/models"
	"gorm.io/datatypes"
)

var errStoreDown = errors.New("store unavailable")

// fakeStore is an in-memory stand-in for the persistence layer. History rows
// are keyed by (user, date) exactly like the real unique index, so upsert
// semantics can be asserted directly.
type fakeStore struct {
	food     []models.FoodEntry
	water    []models.WaterEntry
	workouts []models.WorkoutEntry
	profile  *models.Profile

	history map[string]models.DailyHistory
	nextID  uint
	upserts int

	failLists  bool
	failUpsert bool
	failQuery  bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{history: make(map[string]models.DailyHistory)}
}

func historyKey(userID uint, date datatypes.Date) string {
	return fmt.Sprintf("%d/%s", userID, models.FormatDate(date))
}

func (f *fakeStore) ListFoodEntries(_ context.Context, userID uint, date datatypes.Date) ([]models.FoodEntry, error) {
	if f.failLists {
		return nil, errStoreDown
	}
	var out []models.FoodEntry
	for _, e := range f.food {
		if e.UserID == userID && e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) InsertFoodEntry(_ context.Context, entry *models.FoodEntry) error {
	f.food = append(f.food, *entry)
	return nil
}

func (f *fakeStore) DeleteFoodEntry(_ context.Context, userID, id uint) error {
	for i, e := range f.food {
		if e.ID == id && e.UserID == userID {
			f.food = append(f.food[:i], f.food[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeStore) ListWaterEntries(_ context.Context, userID uint, date datatypes.Date) ([]models.WaterEntry, error) {
	if f.failLists {
		return nil, errStoreDown
	}
	var out []models.WaterEntry
	for _, e := range f.water {
		if e.UserID == userID && e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) InsertWaterEntry(_ context.Context, entry *models.WaterEntry) error {
	f.water = append(f.water, *entry)
	return nil
}

func (f *fakeStore) DeleteWaterEntry(_ context.Context, userID, id uint) error {
	for i, e := range f.water {
		if e.ID == id && e.UserID == userID {
			f.water = append(f.water[:i], f.water[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeStore) ListWorkoutEntries(_ context.Context, userID uint, date datatypes.Date) ([]models.WorkoutEntry, error) {
	if f.failLists {
		return nil, errStoreDown
	}
	var out []models.WorkoutEntry
	for _, e := range f.workouts {
		if e.UserID == userID && e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) InsertWorkoutEntry(_ context.Context, entry *models.WorkoutEntry) error {
	f.workouts = append(f.workouts, *entry)
	return nil
}

func (f *fakeStore) DeleteWorkoutEntry(_ context.Context, userID, id uint) error {
	for i, e := range f.workouts {
		if e.ID == id && e.UserID == userID {
			f.workouts = append(f.workouts[:i], f.workouts[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeStore) GetProfile(_ context.Context, userID uint) (*models.Profile, error) {
	if f.profile == nil || f.profile.UserID != userID {
		return nil, nil
	}
	copied := *f.profile
	return &copied, nil
}

func (f *fakeStore) UpsertProfile(_ context.Context, profile *models.Profile) error {
	copied := *profile
	f.profile = &copied
	return nil
}

func (f *fakeStore) UpsertDailyHistory(_ context.Context, row *models.DailyHistory) (*models.DailyHistory, error) {
	if f.failUpsert {
		return nil, errStoreDown
	}
	f.upserts++

	key := historyKey(row.UserID, row.Date)
	persisted := *row
	if existing, ok := f.history[key]; ok {
		persisted.ID = existing.ID
	} else {
		f.nextID++
		persisted.ID = f.nextID
	}
	f.history[key] = persisted
	result := persisted
	return &result, nil
}

func (f *fakeStore) QueryDailyHistory(_ context.Context, userID uint, start, end *datatypes.Date) ([]models.DailyHistory, error) {
	if f.failQuery {
		return nil, errStoreDown
	}
	rows := []models.DailyHistory{}
	for _, row := range f.history {
		if row.UserID != userID {
			continue
		}
		d := time.Time(row.Date)
		if start != nil && d.Before(time.Time(*start)) {
			continue
		}
		if end != nil && d.After(time.Time(*end)) {
			continue
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return time.Time(rows[i].Date).After(time.Time(rows[j].Date))
	})
	return rows, nil
}
