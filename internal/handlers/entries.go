package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vitalog-dev/vitalog/internal/models"
	"github.com/vitalog-dev/vitalog/internal/store"
	"github.com/vitalog-dev/vitalog/internal/utils"
	"gorm.io/datatypes"
)

type CreateFoodEntryRequest struct {
	Name     string `json:"name" binding:"required"`
	Calories int    `json:"calories" binding:"required,gt=0"`
	Meal     string `json:"meal" binding:"required"`
	Time     string `json:"time"`
	Date     string `json:"date" binding:"required"`
}

type CreateWaterEntryRequest struct {
	Amount int    `json:"amount" binding:"required,gt=0"`
	Time   string `json:"time"`
	Date   string `json:"date" binding:"required"`
}

type CreateWorkoutEntryRequest struct {
	Name     string `json:"name" binding:"required"`
	Duration int    `json:"duration" binding:"required,gt=0"`
	Calories int    `json:"calories" binding:"required,gt=0"`
	Time     string `json:"time"`
	Date     string `json:"date" binding:"required"`
}

type FoodEntryResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	Meal     string `json:"meal"`
	Time     string `json:"time"`
	Date     string `json:"date"`
}

type WaterEntryResponse struct {
	ID     uint   `json:"id"`
	Amount int    `json:"amount"`
	Time   string `json:"time"`
	Date   string `json:"date"`
}

type WorkoutEntryResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Duration int    `json:"duration"`
	Calories int    `json:"calories"`
	Time     string `json:"time"`
	Date     string `json:"date"`
}

func foodEntryResponses(entries []models.FoodEntry) []FoodEntryResponse {
	out := make([]FoodEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FoodEntryResponse{
			ID:       e.ID,
			Name:     e.Name,
			Calories: e.Calories,
			Meal:     e.Meal,
			Time:     e.Time,
			Date:     models.FormatDate(e.Date),
		})
	}
	return out
}

func waterEntryResponses(entries []models.WaterEntry) []WaterEntryResponse {
	out := make([]WaterEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, WaterEntryResponse{
			ID:     e.ID,
			Amount: e.Amount,
			Time:   e.Time,
			Date:   models.FormatDate(e.Date),
		})
	}
	return out
}

func workoutEntryResponses(entries []models.WorkoutEntry) []WorkoutEntryResponse {
	out := make([]WorkoutEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, WorkoutEntryResponse{
			ID:       e.ID,
			Name:     e.Name,
			Duration: e.Duration,
			Calories: e.Calories,
			Time:     e.Time,
			Date:     models.FormatDate(e.Date),
		})
	}
	return out
}

// entryContext resolves the authenticated user and the date string shared by
// all entry creation requests. Writes the error response itself when ok is
// false.
func entryContext(ctx *gin.Context, rawDate string) (userID uint, date datatypes.Date, ok bool) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return 0, datatypes.Date{}, false
	}

	date, err = models.ParseDate(rawDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Date must be formatted as YYYY-MM-DD"})
		return 0, datatypes.Date{}, false
	}
	return userID, date, true
}

func entryTime(raw string) string {
	if raw != "" {
		return raw
	}
	return time.Now().Format("15:04")
}

func entryID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry id"})
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) ListFoodEntries(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	date, ok := requestDate(ctx)
	if !ok {
		return
	}

	entries, err := h.store.ListFoodEntries(ctx, userID, date)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load food entries"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"entries": foodEntryResponses(entries)})
}

func (h *Handler) CreateFoodEntry(ctx *gin.Context) {
	var req CreateFoodEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.Meals[req.Meal] {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Meal must be one of: breakfast, lunch, dinner, snack"})
		return
	}

	userID, date, ok := entryContext(ctx, req.Date)
	if !ok {
		return
	}

	entry := models.FoodEntry{
		UserID:   userID,
		Name:     req.Name,
		Calories: req.Calories,
		Meal:     req.Meal,
		Time:     entryTime(req.Time),
		Date:     date,
	}

	if err := h.store.InsertFoodEntry(ctx, &entry); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create food entry"})
		return
	}

	summary := h.refreshDay(ctx, userID, date)

	ctx.JSON(http.StatusCreated, gin.H{
		"entry":   foodEntryResponses([]models.FoodEntry{entry})[0],
		"summary": summary,
	})
}

func (h *Handler) DeleteFoodEntry(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	id, ok := entryID(ctx)
	if !ok {
		return
	}
	date, ok := requestDate(ctx)
	if !ok {
		return
	}

	if err := h.store.DeleteFoodEntry(ctx, userID, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Food entry not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete food entry"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"summary": h.refreshDay(ctx, userID, date)})
}

func (h *Handler) ListWaterEntries(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	date, ok := requestDate(ctx)
	if !ok {
		return
	}

	entries, err := h.store.ListWaterEntries(ctx, userID, date)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load water entries"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"entries": waterEntryResponses(entries)})
}

func (h *Handler) CreateWaterEntry(ctx *gin.Context) {
	var req CreateWaterEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, date, ok := entryContext(ctx, req.Date)
	if !ok {
		return
	}

	entry := models.WaterEntry{
		UserID: userID,
		Amount: req.Amount,
		Time:   entryTime(req.Time),
		Date:   date,
	}

	if err := h.store.InsertWaterEntry(ctx, &entry); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create water entry"})
		return
	}

	summary := h.refreshDay(ctx, userID, date)

	ctx.JSON(http.StatusCreated, gin.H{
		"entry":   waterEntryResponses([]models.WaterEntry{entry})[0],
		"summary": summary,
	})
}

func (h *Handler) DeleteWaterEntry(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	id, ok := entryID(ctx)
	if !ok {
		return
	}
	date, ok := requestDate(ctx)
	if !ok {
		return
	}

	if err := h.store.DeleteWaterEntry(ctx, userID, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Water entry not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete water entry"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"summary": h.refreshDay(ctx, userID, date)})
}

func (h *Handler) ListWorkoutEntries(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	date, ok := requestDate(ctx)
	if !ok {
		return
	}

	entries, err := h.store.ListWorkoutEntries(ctx, userID, date)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load workout entries"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"entries": workoutEntryResponses(entries)})
}

func (h *Handler) CreateWorkoutEntry(ctx *gin.Context) {
	var req CreateWorkoutEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, date, ok := entryContext(ctx, req.Date)
	if !ok {
		return
	}

	entry := models.WorkoutEntry{
		UserID:   userID,
		Name:     req.Name,
		Duration: req.Duration,
		Calories: req.Calories,
		Time:     entryTime(req.Time),
		Date:     date,
	}

	if err := h.store.InsertWorkoutEntry(ctx, &entry); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create workout entry"})
		return
	}

	summary := h.refreshDay(ctx, userID, date)

	ctx.JSON(http.StatusCreated, gin.H{
		"entry":   workoutEntryResponses([]models.WorkoutEntry{entry})[0],
		"summary": summary,
	})
}

func (h *Handler) DeleteWorkoutEntry(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	id, ok := entryID(ctx)
	if !ok {
		return
	}
	date, ok := requestDate(ctx)
	if !ok {
		return
	}

	if err := h.store.DeleteWorkoutEntry(ctx, userID, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Workout entry not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete workout entry"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"summary": h.refreshDay(ctx, userID, date)})
}
