package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vitalog-dev/vitalog/internal/models"
	"github.com/vitalog-dev/vitalog/internal/store"
	"github.com/vitalog-dev/vitalog/internal/types"
)

type CatalogFoodResponse struct {
	ID              uint     `json:"id"`
	Name            string   `json:"name"`
	CaloriesPer100g int      `json:"calories_per_100g"`
	ProteinPer100g  *float64 `json:"protein_per_100g,omitempty"`
	CarbsPer100g    *float64 `json:"carbs_per_100g,omitempty"`
	FatPer100g      *float64 `json:"fat_per_100g,omitempty"`
	FiberPer100g    *float64 `json:"fiber_per_100g,omitempty"`
	Category        *string  `json:"category,omitempty"`
	ServingCalories *int     `json:"serving_calories,omitempty"`
}

func catalogFoodResponse(food *models.CatalogFood) CatalogFoodResponse {
	return CatalogFoodResponse{
		ID:              food.ID,
		Name:            food.Name,
		CaloriesPer100g: food.CaloriesPer100g,
		ProteinPer100g:  food.ProteinPer100g,
		CarbsPer100g:    food.CarbsPer100g,
		FatPer100g:      food.FatPer100g,
		FiberPer100g:    food.FiberPer100g,
		Category:        food.Category,
	}
}

// ServingCalories scales a per-100g calorie value to a serving size in grams.
func ServingCalories(caloriesPer100g int, grams float64) int {
	return int(math.Round(float64(caloriesPer100g) * grams / 100))
}

// SearchCatalog does a case-insensitive substring lookup, capped at
// types.CatalogSearchLimit rows.
func (h *Handler) SearchCatalog(ctx *gin.Context) {
	query := ctx.Query("q")
	if query == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter q is required"})
		return
	}

	foods, err := h.store.SearchCatalog(ctx, query, types.CatalogSearchLimit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search catalog"})
		return
	}

	out := make([]CatalogFoodResponse, 0, len(foods))
	for i := range foods {
		out = append(out, catalogFoodResponse(&foods[i]))
	}
	ctx.JSON(http.StatusOK, gin.H{"results": out})
}

// GetCatalogFood returns one catalog item. An optional ?grams= parameter adds
// the calories for that serving size, the number entry forms prefill with.
func (h *Handler) GetCatalogFood(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid food id"})
		return
	}

	food, err := h.store.GetCatalogFood(ctx, uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Food not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load food"})
		return
	}

	resp := catalogFoodResponse(food)

	if raw := ctx.Query("grams"); raw != "" {
		grams, err := strconv.ParseFloat(raw, 64)
		if err != nil || grams <= 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "grams must be a positive number"})
			return
		}
		serving := ServingCalories(food.CaloriesPer100g, grams)
		resp.ServingCalories = &serving
	}

	ctx.JSON(http.StatusOK, resp)
}
