package services

import (
	"github.com/vitalog-dev/vitalog/internal/goals"
	"github.com/vitalog-dev/vitalog/internal/models"
)

// DayTotals is the aggregate of one user's entries for one calendar date.
type DayTotals struct {
	TotalCalories        int `json:"total_calories"`
	TotalWater           int `json:"total_water"`
	TotalWorkoutCalories int `json:"total_workout_calories"`
}

// Aggregate sums raw entries into per-category totals. Empty slices sum to
// zero, so a day with no data aggregates cleanly.
func Aggregate(food []models.FoodEntry, water []models.WaterEntry, workouts []models.WorkoutEntry) DayTotals {
	var totals DayTotals
	for _, entry := range food {
		totals.TotalCalories += entry.Calories
	}
	for _, entry := range water {
		totals.TotalWater += entry.Amount
	}
	for _, entry := range workouts {
		totals.TotalWorkoutCalories += entry.Calories
	}
	return totals
}

// NetCalories is consumed minus burned for the day. May be negative.
func (t DayTotals) NetCalories() int {
	return goals.NetCalories(t.TotalCalories, t.TotalWorkoutCalories)
}

// SnapshotGoals resolves the goal values to record alongside a day's totals.
// A missing profile falls back to the defaults; the water goal is always
// recomputed from current weight rather than read from the stored cache.
func SnapshotGoals(profile *models.Profile) (calorieGoal, waterGoal int, weight *float64) {
	calorieGoal = goals.DefaultCalorieGoal
	waterGoal = goals.DefaultWaterGoal

	if profile == nil {
		return calorieGoal, waterGoal, nil
	}

	if profile.CalorieGoal > 0 {
		calorieGoal = profile.CalorieGoal
	}
	if profile.Weight != nil {
		waterGoal = goals.WaterGoal(*profile.Weight)
		weight = profile.Weight
	}
	return calorieGoal, waterGoal, weight
}
