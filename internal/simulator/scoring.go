package simulator

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/lunchsim/lunchsim/internal/models"
)

// Keyword heuristics used when the fuzzy match is inconclusive: a food item's
// category scores against hints in the student's stated favorite food.
var (
	healthyKeywords = []string{"salad", "veggie", "fruit", "yogurt", "grilled", "wrap"}
	friedKeywords   = []string{"fries", "burger", "tenders", "rings", "corn dog", "nachos", "cheese"}
	sweetKeywords   = []string{"brownie", "cookie", "ice cream", "churro", "cinnamon", "funnel", "parfait"}
	savoryKeywords  = []string{"bowl", "wrap", "sandwich", "burrito", "chicken", "beef", "pork", "tacos"}
)

// fuzzyMatchScore compares an item name against the student's favorite food
// using several string-similarity strategies and keeps the best, 0-100.
func fuzzyMatchScore(itemName, favorite string) int {
	itemLower := strings.ToLower(itemName)
	favoriteLower := strings.ToLower(favorite)

	best := fuzzy.Ratio(itemLower, favoriteLower)
	if s := fuzzy.PartialRatio(itemLower, favoriteLower); s > best {
		best = s
	}
	if s := fuzzy.TokenSortRatio(itemLower, favoriteLower); s > best {
		best = s
	}
	if s := fuzzy.TokenSetRatio(itemLower, favoriteLower); s > best {
		best = s
	}
	return best
}

// drinkCategoryRank maps a drink item's category to the student's survey
// rank for that category, 1 best, 5 unranked. Milk is grouped with
// coffee/tea the way the survey grouped them.
func drinkCategoryRank(item *models.MenuItem, profile *models.StudentProfile) int {
	switch strings.ToLower(item.Category) {
	case models.CategoryEnergy:
		return profile.EnergyDrinkRank
	case models.CategorySoda:
		return profile.SodaRank
	case models.CategoryJuice:
		return profile.JuiceRank
	case models.CategoryWater:
		return profile.WaterRank
	case models.CategoryMilk, models.CategoryCoffee:
		return profile.CoffeeTeaRank
	default:
		return 5
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// scorePreference rates how well the item matches the student's tastes,
// returning the 0-1 subscore and the underlying fuzzy score.
func scorePreference(item *models.MenuItem, profile *models.StudentProfile, params *models.SimParams) (float64, int) {
	fuzzyScore := fuzzyMatchScore(item.Name, profile.FavoriteFood)

	if fuzzyScore >= params.FuzzyThresholdHigh {
		return 1.0, fuzzyScore
	}
	if fuzzyScore >= params.FuzzyThresholdMedium {
		return 0.85, fuzzyScore
	}

	if item.ItemType == models.ItemTypeDrink {
		rank := drinkCategoryRank(item, profile)
		drinkScore := float64(6-rank) / 5.0
		if drinkScore < 0.3 {
			drinkScore = 0.3
		}
		return drinkScore, fuzzyScore
	}

	favoriteLower := strings.ToLower(profile.FavoriteFood)
	switch strings.ToLower(item.Category) {
	case models.CategoryHealthy:
		if containsAny(favoriteLower, healthyKeywords) {
			return 0.75, fuzzyScore
		}
	case models.CategoryFried:
		if containsAny(favoriteLower, friedKeywords) {
			return 0.75, fuzzyScore
		}
	case models.CategorySweet:
		if containsAny(favoriteLower, sweetKeywords) {
			return 0.75, fuzzyScore
		}
	case models.CategorySavory:
		if containsAny(favoriteLower, savoryKeywords) {
			return 0.70, fuzzyScore
		}
	case models.CategorySnack:
		return 0.50, fuzzyScore
	}

	return 0.40, fuzzyScore
}

// scoreAffordability rates the item against today's budget. An unaffordable
// item scores 0, which forces the total score to 0. Free items count as
// leaving the whole budget intact so a zero budget never divides by zero.
func scoreAffordability(item *models.MenuItem, state *models.StudentDailyState) float64 {
	if item.Price > state.AvailableMoney {
		return 0.0
	}
	remainingFraction := 1.0
	if item.Price > 0 {
		remainingFraction = (state.AvailableMoney - item.Price) / state.AvailableMoney
	}
	return 0.3 + remainingFraction*0.7
}

// scoreMoodHealth rates the item's health rating against today's mood:
// healthy moods want high ratings, junk moods the inverse.
func scoreMoodHealth(item *models.MenuItem, state *models.StudentDailyState) float64 {
	healthScore := float64(item.HealthRating) / 10.0
	if state.Mood == models.MoodHealthy {
		return healthScore
	}
	return 1.0 - healthScore
}

// bonusMultiplier stacks the multiplicative bonuses. Order-independent; the
// sweet and savory bonuses are mutually exclusive.
func bonusMultiplier(item *models.MenuItem, profile *models.StudentProfile, state *models.StudentDailyState, fuzzyScore int, params *models.SimParams) float64 {
	bonus := 1.0

	if fuzzyScore >= params.FuzzyThresholdHigh {
		bonus *= params.BonusFuzzyMatchHigh
	} else if fuzzyScore >= params.FuzzyThresholdMedium {
		bonus *= params.BonusFuzzyMatchMedium
	}

	wantsSweet := models.SweetPreferenceValues[profile.WantsSweet]
	prefersSavory := profile.WantsSweet == models.AnswerPrefersSavory

	if wantsSweet && item.SubType == models.SubTypeSweet {
		bonus *= params.BonusSweet
	} else if prefersSavory && item.SubType == models.SubTypeSavory {
		bonus *= params.BonusSavory
	}

	if state.IsDrowsy && item.EnergyBoost {
		bonus *= params.BonusEnergy
	}

	isActive := models.HighActivityLevels[profile.ActivityLevel]
	fastMetabolism := models.HighMetabolismValues[profile.Metabolism]
	if (isActive || fastMetabolism) && item.Calories >= params.HighCalorieThreshold {
		bonus *= params.BonusHighCalorie
	}

	if state.Mood == models.MoodHealthy && item.Category == models.CategoryHealthy {
		bonus *= params.BonusCategoryMatch
	} else if state.Mood == models.MoodJunk && (item.Category == models.CategoryFried || item.Category == models.CategorySweet) {
		bonus *= params.BonusCategoryMatch
	}

	return bonus
}

// ScoreItem computes the full weighted-and-bonused score of an item for one
// student on one day. Pure: randomness only enters upstream in daily-state
// generation. Always >= 0, and exactly 0 for unaffordable items.
func ScoreItem(item *models.MenuItem, profile *models.StudentProfile, state *models.StudentDailyState, params *models.SimParams) float64 {
	preferenceScore, fuzzyScore := scorePreference(item, profile, params)
	affordabilityScore := scoreAffordability(item, state)
	moodScore := scoreMoodHealth(item, state)

	if affordabilityScore == 0 {
		return 0.0
	}

	baseScore := params.WeightPreference*preferenceScore +
		params.WeightAffordability*affordabilityScore +
		params.WeightMoodHealth*moodScore

	return baseScore * bonusMultiplier(item, profile, state, fuzzyScore, params)
}
