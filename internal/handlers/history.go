package handlers

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vitalog-dev/vitalog/internal/goals"
	"github.com/vitalog-dev/vitalog/internal/models"
	"github.com/vitalog-dev/vitalog/internal/services"
	"github.com/vitalog-dev/vitalog/internal/utils"
)

// HistoryRow is one reconciled day. Percentages are derived from the row's
// own goal snapshots so later goal changes never rewrite past days.
type HistoryRow struct {
	Date                 string   `json:"date"`
	TotalCalories        int      `json:"total_calories"`
	TotalWater           int      `json:"total_water"`
	TotalWorkoutCalories int      `json:"total_workout_calories"`
	NetCalories          int      `json:"net_calories"`
	CalorieGoal          int      `json:"calorie_goal"`
	WaterGoal            int      `json:"water_goal"`
	CalorieProgress      int      `json:"calorie_progress"`
	WaterProgress        int      `json:"water_progress"`
	Weight               *float64 `json:"weight"`
}

// GetHistory returns the daily rollup descending by date, optionally bounded
// by ?start= and ?end= (inclusive). No matching rows is an empty list.
func (h *Handler) GetHistory(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	rows, err := h.history.Query(ctx, userID, ctx.Query("start"), ctx.Query("end"))
	if err != nil {
		if errors.Is(err, services.ErrBadDate) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Dates must be formatted as YYYY-MM-DD"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history"})
		return
	}

	out := make([]HistoryRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, HistoryRow{
			Date:                 models.FormatDate(row.Date),
			TotalCalories:        row.TotalCalories,
			TotalWater:           row.TotalWater,
			TotalWorkoutCalories: row.TotalWorkoutCalories,
			NetCalories:          goals.NetCalories(row.TotalCalories, row.TotalWorkoutCalories),
			CalorieGoal:          row.CalorieGoal,
			WaterGoal:            row.WaterGoal,
			CalorieProgress:      int(math.Round(goals.Progress(row.TotalCalories, row.CalorieGoal))),
			WaterProgress:        int(math.Round(goals.Progress(row.TotalWater, row.WaterGoal))),
			Weight:               row.Weight,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"history": out})
}
