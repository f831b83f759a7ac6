package handlers

import (
	"context"
	"log"

	"github.com/vitalog-dev/vitalog/internal/models"
	"github.com/vitalog-dev/vitalog/internal/services"
	"github.com/vitalog-dev/vitalog/internal/store"
	"gorm.io/datatypes"
)

// Handler carries the store and the services the tracker endpoints share.
// Auth endpoints stay package-level functions against the users table — the
// identity boundary sits outside the tracker store.
type Handler struct {
	store      store.Store
	reconciler *services.Reconciler
	history    *services.HistoryService
	hub        *Hub
}

func NewHandler(s store.Store) *Handler {
	return &Handler{
		store:      s,
		reconciler: services.NewReconciler(s, s, s),
		history:    services.NewHistoryService(s),
		hub:        NewHub(),
	}
}

// refreshDay reconciles the day's history row and broadcasts the result to
// the user's live connections. On failure it logs and falls back to a
// summary computed from the live entries, so the response the caller shows
// stays correct even when persistence lags. No retry here — the next
// trigger reconciles again.
func (h *Handler) refreshDay(ctx context.Context, userID uint, date datatypes.Date) DaySummary {
	row, err := h.reconciler.Reconcile(ctx, userID, date)
	if err != nil {
		log.Printf("Reconcile failed for user %d on %s: %v", userID, models.FormatDate(date), err)
		return h.liveDaySummary(ctx, userID, date)
	}

	summary := summaryFromHistory(row)
	h.hub.BroadcastDayUpdated(userID, summary)
	return summary
}

// liveDaySummary aggregates the day in memory without touching the history
// table. Used as the fallback when reconciliation fails and as the source of
// dashboard numbers.
func (h *Handler) liveDaySummary(ctx context.Context, userID uint, date datatypes.Date) DaySummary {
	var (
		food     []models.FoodEntry
		water    []models.WaterEntry
		workouts []models.WorkoutEntry
		profile  *models.Profile
	)

	food, err := h.store.ListFoodEntries(ctx, userID, date)
	if err != nil {
		log.Printf("Failed to list food entries for user %d: %v", userID, err)
	}
	water, err = h.store.ListWaterEntries(ctx, userID, date)
	if err != nil {
		log.Printf("Failed to list water entries for user %d: %v", userID, err)
	}
	workouts, err = h.store.ListWorkoutEntries(ctx, userID, date)
	if err != nil {
		log.Printf("Failed to list workout entries for user %d: %v", userID, err)
	}
	profile, err = h.store.GetProfile(ctx, userID)
	if err != nil {
		log.Printf("Failed to get profile for user %d: %v", userID, err)
	}

	totals := services.Aggregate(food, water, workouts)
	calorieGoal, waterGoal, _ := services.SnapshotGoals(profile)
	return buildDaySummary(date, totals, calorieGoal, waterGoal, false)
}
