package models

const (
	ItemTypeFood  = "food"
	ItemTypeDrink = "drink"

	SubTypeSweet  = "sweet"
	SubTypeSavory = "savory"

	MoodHealthy = "healthy"
	MoodJunk    = "junk"

	LossReasonSchoolLunch = "school_lunch"
	LossReasonPrice       = "price"
	LossReasonStockout    = "stockout"
	LossReasonFastFood    = "fastfood"

	CategoryHealthy = "healthy"
	CategoryFried   = "fried"
	CategorySweet   = "sweet"
	CategorySavory  = "savory"
	CategorySnack   = "snack"

	CategoryEnergy = "energy"
	CategorySoda   = "soda"
	CategoryJuice  = "juice"
	CategoryWater  = "water"
	CategoryMilk   = "milk"
	CategoryCoffee = "coffee"
)

// FoodCategories and DrinkCategories are the valid category sets per item type.
var FoodCategories = map[string]bool{
	CategoryHealthy: true,
	CategoryFried:   true,
	CategorySweet:   true,
	CategorySavory:  true,
	CategorySnack:   true,
}

var DrinkCategories = map[string]bool{
	CategoryEnergy: true,
	CategorySoda:   true,
	CategoryJuice:  true,
	CategoryWater:  true,
	CategoryMilk:   true,
	CategoryCoffee: true,
}

var ValidSubTypes = map[string]bool{
	SubTypeSweet:  true,
	SubTypeSavory: true,
}

// Canonical survey answer strings. The loader normalises free-text CSV
// answers to these values; the scorer and daily-state generator key off them.
const (
	AnswerSweetOften     = "Yes, I often crave something sweet"
	AnswerSweetSometimes = "Sometimes"
	AnswerSweetRarely    = "Rarely"
	AnswerPrefersSavory  = "No, I prefer savory"

	AnswerHealthyVeryImportant     = "Very important - I always try to choose nutritious options"
	AnswerHealthySomewhatImportant = "Somewhat important - I try to balance healthy and tasty"
	AnswerHealthyNotImportant      = "Not really important - I just eat what tastes good"

	AnswerMoneyLow    = "Less than $7"
	AnswerMoneyMedium = "$7-$10"
	AnswerMoneyHigh   = "More than $10"

	AnswerVeryActive    = "Very active (exercise daily)"
	AnswerActive        = "Active (exercise 3-4 times a week)"
	AnswerNotVeryActive = "Not very active"

	AnswerMetabolismFast    = "Fast - I can eat a lot without gaining weight"
	AnswerMetabolismSlow    = "Slow - I get full easily"
	AnswerMetabolismAverage = "Average"

	AnswerGoalLoseWeight = "Lose weight"
	AnswerGoalMaintain   = "Maintain weight"
	AnswerGoalGainMuscle = "Gain weight/muscle"
	AnswerGoalNotFocused = "Not focused on weight"

	IncomeLow    = "Low"
	IncomeMedium = "Medium"
	IncomeHigh   = "High"
)

// SweetPreferenceValues maps the sweet-craving survey answer to whether the
// student gets the sweet-item bonus. "Sometimes" counts as a partial craving.
var SweetPreferenceValues = map[string]bool{
	AnswerSweetOften:     true,
	AnswerSweetSometimes: true,
	AnswerSweetRarely:    false,
	AnswerPrefersSavory:  false,
}

var HighActivityLevels = map[string]bool{
	AnswerVeryActive: true,
	AnswerActive:     true,
}

var HighMetabolismValues = map[string]bool{
	AnswerMetabolismFast: true,
}
