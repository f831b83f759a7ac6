// Package goals holds the pure goal-derivation and progress math. Every
// function here is total: missing or non-positive inputs map to a default or
// an ok=false result, never to an error.
package goals

import "math"

const (
	// DefaultCalorieGoal is used when a user has no profile yet.
	DefaultCalorieGoal = 2000
	// DefaultWaterGoal is used when no body weight is known.
	DefaultWaterGoal = 2500

	waterMlPerKg = 35
	// maxWeightDelta is the deviation from ideal weight treated as 0% progress.
	maxWeightDelta = 30.0
)

// WaterGoal derives the daily hydration goal in ml from body weight in kg.
func WaterGoal(weightKg float64) int {
	if weightKg > 0 {
		return int(math.Round(weightKg * waterMlPerKg))
	}
	return DefaultWaterGoal
}

// BMI returns the body mass index rounded to one decimal. ok is false unless
// both height (cm) and weight (kg) are positive.
func BMI(heightCm, weightKg float64) (float64, bool) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, false
	}
	m := heightCm / 100
	return round1(weightKg / (m * m)), true
}

// BMICategory classifies a BMI value using the standard WHO thresholds.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "underweight"
	case bmi < 25:
		return "normal"
	case bmi < 30:
		return "overweight"
	default:
		return "obese"
	}
}

// IdealWeight computes the Devine-formula ideal weight in kg, rounded to one
// decimal. Gender picks the base: 50 for male, 45.5 for female, 47.75 for
// anything else. ok is false when height is missing.
func IdealWeight(heightCm float64, gender string) (float64, bool) {
	if heightCm <= 0 {
		return 0, false
	}
	heightIn := heightCm / 2.54
	var base float64
	switch gender {
	case "male":
		base = 50
	case "female":
		base = 45.5
	default:
		base = 47.75
	}
	return round1(base + 2.3*(heightIn-60)), true
}

// WeightProgress maps the distance between current and ideal weight onto a
// 0-100 scale, where 0 means 30kg or more away and 100 means spot on.
// Returns 0 when either input is missing.
func WeightProgress(currentKg, idealKg float64) float64 {
	if currentKg <= 0 || idealKg <= 0 {
		return 0
	}
	diff := math.Abs(currentKg - idealKg)
	pct := (maxWeightDelta - diff) / maxWeightDelta * 100
	return math.Max(0, math.Min(100, pct))
}

// Progress returns value against goal as a percentage capped at 100.
// A goal of zero (or less) means "no target" and yields 0 rather than a
// division by zero.
func Progress(value, goal int) float64 {
	if goal <= 0 {
		return 0
	}
	return math.Min(float64(value)/float64(goal)*100, 100)
}

// NetCalories is consumed minus burned. May be negative; no clamping.
func NetCalories(consumed, burned int) int {
	return consumed - burned
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
