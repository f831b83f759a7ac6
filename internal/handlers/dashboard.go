package handlers

import (
	"log"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vitalog-dev/vitalog/internal/goals"
	"github.com/vitalog-dev/vitalog/internal/models"
	"github.com/vitalog-dev/vitalog/internal/services"
	"github.com/vitalog-dev/vitalog/internal/utils"
	"gorm.io/datatypes"
)

// DaySummary is the per-day rollup shown on the dashboard and pushed over the
// live channel. CalorieProgress tracks net calories (consumed minus burned)
// against the goal; WaterProgress tracks intake against the hydration goal.
type DaySummary struct {
	Date                 string  `json:"date"`
	TotalCalories        int     `json:"total_calories"`
	TotalWater           int     `json:"total_water"`
	TotalWorkoutCalories int     `json:"total_workout_calories"`
	NetCalories          int     `json:"net_calories"`
	CalorieGoal          int     `json:"calorie_goal"`
	WaterGoal            int     `json:"water_goal"`
	CalorieProgress      int     `json:"calorie_progress"`
	WaterProgress        int     `json:"water_progress"`
	Persisted            bool    `json:"persisted"`
}

// HealthMetrics are derived from the profile alone. Absent inputs leave the
// corresponding field nil rather than producing an error.
type HealthMetrics struct {
	BMI            *float64 `json:"bmi"`
	BMICategory    *string  `json:"bmi_category"`
	IdealWeight    *float64 `json:"ideal_weight"`
	WeightProgress float64  `json:"weight_progress"`
	CalorieGoal    int      `json:"calorie_goal"`
	WaterGoal      int      `json:"water_goal"`
}

type DashboardResponse struct {
	Summary  DaySummary             `json:"summary"`
	Health   HealthMetrics          `json:"health"`
	Food     []FoodEntryResponse    `json:"food_entries"`
	Water    []WaterEntryResponse   `json:"water_entries"`
	Workouts []WorkoutEntryResponse `json:"workout_entries"`
}

func buildDaySummary(date datatypes.Date, totals services.DayTotals, calorieGoal, waterGoal int, persisted bool) DaySummary {
	net := totals.NetCalories()
	return DaySummary{
		Date:                 models.FormatDate(date),
		TotalCalories:        totals.TotalCalories,
		TotalWater:           totals.TotalWater,
		TotalWorkoutCalories: totals.TotalWorkoutCalories,
		NetCalories:          net,
		CalorieGoal:          calorieGoal,
		WaterGoal:            waterGoal,
		CalorieProgress:      int(math.Round(goals.Progress(net, calorieGoal))),
		WaterProgress:        int(math.Round(goals.Progress(totals.TotalWater, waterGoal))),
		Persisted:            persisted,
	}
}

func summaryFromHistory(row *models.DailyHistory) DaySummary {
	totals := services.DayTotals{
		TotalCalories:        row.TotalCalories,
		TotalWater:           row.TotalWater,
		TotalWorkoutCalories: row.TotalWorkoutCalories,
	}
	return buildDaySummary(row.Date, totals, row.CalorieGoal, row.WaterGoal, true)
}

func buildHealthMetrics(profile *models.Profile) HealthMetrics {
	calorieGoal, waterGoal, _ := services.SnapshotGoals(profile)
	metrics := HealthMetrics{
		CalorieGoal: calorieGoal,
		WaterGoal:   waterGoal,
	}

	if profile == nil {
		return metrics
	}

	var height, weight float64
	if profile.Height != nil {
		height = *profile.Height
	}
	if profile.Weight != nil {
		weight = *profile.Weight
	}

	if bmi, ok := goals.BMI(height, weight); ok {
		category := goals.BMICategory(bmi)
		metrics.BMI = &bmi
		metrics.BMICategory = &category
	}

	gender := ""
	if profile.Gender != nil {
		gender = *profile.Gender
	}
	if ideal, ok := goals.IdealWeight(height, gender); ok {
		metrics.IdealWeight = &ideal
		metrics.WeightProgress = goals.WeightProgress(weight, ideal)
	}

	return metrics
}

// requestDate resolves the optional ?date= query parameter, defaulting to
// today. The second return value reports whether parsing succeeded; the
// handler has already written the error response when it is false.
func requestDate(ctx *gin.Context) (datatypes.Date, bool) {
	raw := ctx.Query("date")
	if raw == "" {
		return models.DateOf(time.Now()), true
	}

	date, err := models.ParseDate(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Date must be formatted as YYYY-MM-DD"})
		return datatypes.Date{}, false
	}
	return date, true
}

// GetDashboard returns the live view of one day: entries, totals, progress,
// and profile-derived health metrics. Loading a day is also the opportunistic
// reconciliation trigger, mirroring how entry mutations refresh the history
// row.
func (h *Handler) GetDashboard(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	date, ok := requestDate(ctx)
	if !ok {
		return
	}

	food, err := h.store.ListFoodEntries(ctx, userID, date)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load food entries"})
		return
	}
	water, err := h.store.ListWaterEntries(ctx, userID, date)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load water entries"})
		return
	}
	workouts, err := h.store.ListWorkoutEntries(ctx, userID, date)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load workout entries"})
		return
	}
	profile, err := h.store.GetProfile(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	// Summary and entry lists derive from the same reads so the response is
	// internally consistent; the reconciled row only feeds the broadcast.
	totals := services.Aggregate(food, water, workouts)
	calorieGoal, waterGoal, _ := services.SnapshotGoals(profile)

	persisted := false
	if row, err := h.reconciler.Reconcile(ctx, userID, date); err != nil {
		log.Printf("Reconcile failed for user %d on %s: %v", userID, models.FormatDate(date), err)
	} else {
		persisted = true
		h.hub.BroadcastDayUpdated(userID, summaryFromHistory(row))
	}

	summary := buildDaySummary(date, totals, calorieGoal, waterGoal, persisted)

	ctx.JSON(http.StatusOK, DashboardResponse{
		Summary:  summary,
		Health:   buildHealthMetrics(profile),
		Food:     foodEntryResponses(food),
		Water:    waterEntryResponses(water),
		Workouts: workoutEntryResponses(workouts),
	})
}
