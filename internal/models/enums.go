package models

// Meals is the set of valid meal categories for a food entry.
var Meals = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snack":     true,
}

// Genders is the set of valid profile gender values.
var Genders = map[string]bool{
	"male":   true,
	"female": true,
	"other":  true,
}

// ActivityLevels is the set of valid profile activity levels. Informational
// only for now — the calorie goal stays user-set.
var ActivityLevels = map[string]bool{
	"sedentary":   true,
	"light":       true,
	"moderate":    true,
	"active":      true,
	"very_active": true,
}
