package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vitalog-dev/vitalog/internal/middleware"
	"github.com/vitalog-dev/vitalog/internal/models"
	"github.com/vitalog-dev/vitalog/internal/store"
	"github.com/vitalog-dev/vitalog/internal/types"
	"gorm.io/datatypes"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var errStoreDown = errors.New("store unavailable")

// fakeStore backs handler tests in memory. Profiles are keyed by user ID and
// history rows by (user, date), matching the real unique indexes.
type fakeStore struct {
	food     []models.FoodEntry
	water    []models.WaterEntry
	workouts []models.WorkoutEntry
	catalog  []models.CatalogFood

	profiles map[uint]models.Profile
	history  map[string]models.DailyHistory
	nextID   uint

	failQuery bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		profiles: make(map[uint]models.Profile),
		history:  make(map[string]models.DailyHistory),
	}
}

func historyKey(userID uint, date datatypes.Date) string {
	return fmt.Sprintf("%d/%s", userID, models.FormatDate(date))
}

func (f *fakeStore) ListFoodEntries(_ context.Context, userID uint, date datatypes.Date) ([]models.FoodEntry, error) {
	var out []models.FoodEntry
	for _, e := range f.food {
		if e.UserID == userID && e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) InsertFoodEntry(_ context.Context, entry *models.FoodEntry) error {
	f.nextID++
	entry.ID = f.nextID
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
	return store.ErrNotFound
}

func (f *fakeStore) ListWaterEntries(_ context.Context, userID uint, date datatypes.Date) ([]models.WaterEntry, error) {
	var out []models.WaterEntry
	for _, e := range f.water {
		if e.UserID == userID && e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) InsertWaterEntry(_ context.Context, entry *models.WaterEntry) error {
	f.nextID++
	entry.ID = f.nextID
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
	return store.ErrNotFound
}

func (f *fakeStore) ListWorkoutEntries(_ context.Context, userID uint, date datatypes.Date) ([]models.WorkoutEntry, error) {
	var out []models.WorkoutEntry
	for _, e := range f.workouts {
		if e.UserID == userID && e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) InsertWorkoutEntry(_ context.Context, entry *models.WorkoutEntry) error {
	f.nextID++
	entry.ID = f.nextID
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
	return store.ErrNotFound
}

func (f *fakeStore) GetProfile(_ context.Context, userID uint) (*models.Profile, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, nil
	}
	copied := profile
	return &copied, nil
}

func (f *fakeStore) UpsertProfile(_ context.Context, profile *models.Profile) error {
	f.profiles[profile.UserID] = *profile
	return nil
}

func (f *fakeStore) UpsertDailyHistory(_ context.Context, row *models.DailyHistory) (*models.DailyHistory, error) {
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

func (f *fakeStore) SearchCatalog(_ context.Context, query string, limit int) ([]models.CatalogFood, error) {
	var out []models.CatalogFood
	q := strings.ToLower(query)
	for _, food := range f.catalog {
		if strings.Contains(strings.ToLower(food.Name), q) {
			out = append(out, food)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeStore) GetCatalogFood(_ context.Context, id uint) (*models.CatalogFood, error) {
	for _, food := range f.catalog {
		if food.ID == id {
			copied := food
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) SeedCatalog(_ context.Context, foods []models.CatalogFood) error {
	f.catalog = append(f.catalog, foods...)
	return nil
}

// performRequest drives one handler with an authenticated test context, the
// way the middleware would have set it up.
func performRequest(handler gin.HandlerFunc, userID uint, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	ctx.Request = req
	ctx.Set(types.ContextUserKey, middleware.AuthenticatedUser{ID: userID})

	handler(ctx)
	return w
}
