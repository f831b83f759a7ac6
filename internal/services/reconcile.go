package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/vitalog-dev/vitalog/internal/models"
	"github.com/vitalog-dev/vitalog/internal/store"
	"gorm.io/datatypes"
)

// Reconciler recomputes a day's aggregates from its entries and upserts them
// into the daily history row for (user, date). Reconciliation is trigger
// driven, not continuous: callers invoke it after entry mutations or when a
// day's data finishes loading, and stale totals are tolerated until the next
// trigger. Overwrites are safe to repeat — two runs over unchanged entries
// persist identical totals.
type Reconciler struct {
	entries  store.EntryStore
	profiles store.ProfileStore
	history  store.HistoryStore
}

func NewReconciler(entries store.EntryStore, profiles store.ProfileStore, history store.HistoryStore) *Reconciler {
	return &Reconciler{
		entries:  entries,
		profiles: profiles,
		history:  history,
	}
}

// Reconcile fetches the day's entries and the profile concurrently, runs the
// aggregator, and upserts the daily history row with a fresh goal snapshot.
// It never retries: a store failure is returned to the caller, who keeps
// showing live-computed totals while persistence lags.
func (r *Reconciler) Reconcile(ctx context.Context, userID uint, date datatypes.Date) (*models.DailyHistory, error) {
	var (
		wg sync.WaitGroup

		food       []models.FoodEntry
		water      []models.WaterEntry
		workouts   []models.WorkoutEntry
		profile    *models.Profile
		foodErr    error
		waterErr   error
		workoutErr error
		profileErr error
	)

	// The four fetches are independent, scatter/gather them.
	wg.Add(4)
	go func() {
		defer wg.Done()
		food, foodErr = r.entries.ListFoodEntries(ctx, userID, date)
	}()
	go func() {
		defer wg.Done()
		water, waterErr = r.entries.ListWaterEntries(ctx, userID, date)
	}()
	go func() {
		defer wg.Done()
		workouts, workoutErr = r.entries.ListWorkoutEntries(ctx, userID, date)
	}()
	go func() {
		defer wg.Done()
		profile, profileErr = r.profiles.GetProfile(ctx, userID)
	}()
	wg.Wait()

	for _, err := range []error{foodErr, waterErr, workoutErr, profileErr} {
		if err != nil {
			return nil, fmt.Errorf("reconcile user %d on %s: %w", userID, models.FormatDate(date), err)
		}
	}

	totals := Aggregate(food, water, workouts)
	calorieGoal, waterGoal, weight := SnapshotGoals(profile)

	row := &models.DailyHistory{
		UserID:               userID,
		Date:                 date,
		TotalCalories:        totals.TotalCalories,
		TotalWater:           totals.TotalWater,
		TotalWorkoutCalories: totals.TotalWorkoutCalories,
		CalorieGoal:          calorieGoal,
		WaterGoal:            waterGoal,
		Weight:               weight,
	}

	persisted, err := r.history.UpsertDailyHistory(ctx, row)
	if err != nil {
		return nil, fmt.Errorf("reconcile user %d on %s: %w", userID, models.FormatDate(date), err)
	}
	return persisted, nil
}
