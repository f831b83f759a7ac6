package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vitalog-dev/vitalog/internal/goals"
	"github.com/vitalog-dev/vitalog/internal/models"
	"github.com/vitalog-dev/vitalog/internal/utils"
)

// SaveProfileRequest is a patch: every field is a pointer so "not provided"
// is distinguishable from zero, and only provided fields get merged into the
// stored profile. The water goal is never accepted from the client — it is
// recomputed from weight on every save.
type SaveProfileRequest struct {
	Height        *float64 `json:"height"`
	Weight        *float64 `json:"weight"`
	TargetWeight  *float64 `json:"target_weight"`
	Age           *int     `json:"age"`
	Gender        *string  `json:"gender"`
	ActivityLevel *string  `json:"activity_level"`
	CalorieGoal   *int     `json:"calorie_goal"`
}

type ProfileResponse struct {
	Height        *float64 `json:"height"`
	Weight        *float64 `json:"weight"`
	TargetWeight  *float64 `json:"target_weight"`
	Age           *int     `json:"age"`
	Gender        *string  `json:"gender"`
	ActivityLevel *string  `json:"activity_level"`
	CalorieGoal   int      `json:"calorie_goal"`
	WaterGoal     int      `json:"water_goal"`
}

func profileResponse(profile *models.Profile) *ProfileResponse {
	if profile == nil {
		return nil
	}
	return &ProfileResponse{
		Height:        profile.Height,
		Weight:        profile.Weight,
		TargetWeight:  profile.TargetWeight,
		Age:           profile.Age,
		Gender:        profile.Gender,
		ActivityLevel: profile.ActivityLevel,
		CalorieGoal:   profile.CalorieGoal,
		WaterGoal:     profile.WaterGoal,
	}
}

// GetProfile returns the stored profile, or a null profile with default-based
// health metrics when the user hasn't saved one yet. Absence is a valid
// "no data yet" state, not an error.
func (h *Handler) GetProfile(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	profile, err := h.store.GetProfile(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"profile": profileResponse(profile),
		"health":  buildHealthMetrics(profile),
	})
}

func validateProfilePatch(req *SaveProfileRequest) string {
	if req.Height != nil && *req.Height <= 0 {
		return "Height must be positive"
	}
	if req.Weight != nil && *req.Weight <= 0 {
		return "Weight must be positive"
	}
	if req.TargetWeight != nil && *req.TargetWeight <= 0 {
		return "Target weight must be positive"
	}
	if req.Age != nil && *req.Age <= 0 {
		return "Age must be positive"
	}
	if req.Gender != nil && !models.Genders[*req.Gender] {
		return "Gender must be one of: male, female, other"
	}
	if req.ActivityLevel != nil && !models.ActivityLevels[*req.ActivityLevel] {
		return "Activity level must be one of: sedentary, light, moderate, active, very_active"
	}
	if req.CalorieGoal != nil && *req.CalorieGoal <= 0 {
		return "Calorie goal must be positive"
	}
	return ""
}

// SaveProfile upserts the profile: first save creates it, later saves merge
// the provided fields. The stored water goal is purely a cache of the
// weight-derived value.
func (h *Handler) SaveProfile(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req SaveProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if msg := validateProfilePatch(&req); msg != "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	profile, err := h.store.GetProfile(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}
	if profile == nil {
		profile = &models.Profile{
			UserID:      userID,
			CalorieGoal: goals.DefaultCalorieGoal,
		}
	}

	if req.Height != nil {
		profile.Height = req.Height
	}
	if req.Weight != nil {
		profile.Weight = req.Weight
	}
	if req.TargetWeight != nil {
		profile.TargetWeight = req.TargetWeight
	}
	if req.Age != nil {
		profile.Age = req.Age
	}
	if req.Gender != nil {
		profile.Gender = req.Gender
	}
	if req.ActivityLevel != nil {
		profile.ActivityLevel = req.ActivityLevel
	}
	if req.CalorieGoal != nil {
		profile.CalorieGoal = *req.CalorieGoal
	}

	// Refresh the derived cache from the authoritative function.
	weight := 0.0
	if profile.Weight != nil {
		weight = *profile.Weight
	}
	profile.WaterGoal = goals.WaterGoal(weight)

	if err := h.store.UpsertProfile(ctx, profile); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"profile": profileResponse(profile),
		"health":  buildHealthMetrics(profile),
	})
}
