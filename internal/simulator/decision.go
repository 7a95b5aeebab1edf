package simulator

import (
	"github.com/lunchsim/lunchsim/internal/models"
)

// vendorOption is the ephemeral candidate record for one vendor: the best
// food and drink found there and the vendor-level combined score.
type vendorOption struct {
	vendor        models.Vendor
	bestFood      *models.MenuItem
	bestDrink     *models.MenuItem
	combinedScore float64
}

// bestItemsForVendor scans a vendor's listings and keeps the single
// highest-scoring food and drink. Ties keep the first item encountered in
// the vendor's listing order; zero-scored (unaffordable) items are never kept.
func bestItemsForVendor(v models.Vendor, profile *models.StudentProfile, state *models.StudentDailyState, params *models.SimParams) vendorOption {
	var bestFood, bestDrink *models.MenuItem
	var bestFoodScore, bestDrinkScore float64

	for _, item := range v.AvailableFood() {
		if score := ScoreItem(item, profile, state, params); score > bestFoodScore {
			bestFoodScore = score
			bestFood = item
		}
	}

	for _, item := range v.AvailableDrinks() {
		if score := ScoreItem(item, profile, state, params); score > bestDrinkScore {
			bestDrinkScore = score
			bestDrink = item
		}
	}

	// The combined score blends food and drink when the pair fits the
	// budget, otherwise the incomplete-meal penalty applies.
	combinedScore := bestFoodScore
	if bestFood != nil && bestDrink != nil {
		if bestFood.Price+bestDrink.Price <= state.AvailableMoney {
			if blended := (bestFoodScore + bestDrinkScore) / 1.5; blended > combinedScore {
				combinedScore = blended
			}
		} else {
			combinedScore = bestFoodScore * params.PenaltyNoDrink
		}
	}

	return vendorOption{
		vendor:        v,
		bestFood:      bestFood,
		bestDrink:     bestDrink,
		combinedScore: combinedScore,
	}
}

// MakeDecision runs one student's lunch decision: every reachable vendor is
// scored through the same engine and the highest combined score wins. The
// outcome is recorded on state; this never fails, non-availability is data.
//
// Vendors are evaluated in a fixed order (trucks as configured, then the
// cafeteria, then the fast-food stand) and a strictly-greater comparison
// keeps the first maximum, so ties resolve deterministically.
func MakeDecision(profile *models.StudentProfile, state *models.StudentDailyState, trucks []*models.Truck, cafeteria *models.Cafeteria, fastFood *models.FastFoodStand, params *models.SimParams) {
	var candidates []vendorOption

	for _, truck := range trucks {
		if option := bestItemsForVendor(truck, profile, state, params); option.bestFood != nil {
			candidates = append(candidates, option)
		}
	}

	if option := bestItemsForVendor(cafeteria, profile, state, params); option.bestFood != nil {
		candidates = append(candidates, option)
	}

	// The burger joint is only reachable with a car.
	if profile.HasCar && fastFood != nil {
		if option := bestItemsForVendor(fastFood, profile, state, params); option.bestFood != nil {
			candidates = append(candidates, option)
		}
	}

	if len(candidates) == 0 {
		state.ChoseSchoolLunch = true
		state.LossReason = models.LossReasonStockout
		return
	}

	winner := candidates[0]
	for _, c := range candidates[1:] {
		if c.combinedScore > winner.combinedScore {
			winner = c
		}
	}

	switch winner.vendor.(type) {
	case *models.Cafeteria:
		state.ChoseSchoolLunch = true
		state.LossReason = models.LossReasonSchoolLunch
		return
	case *models.FastFoodStand:
		state.ChoseFastFood = true
		state.LossReason = models.LossReasonFastFood
		return
	}

	// Winner is a truck: buy the food, then the drink if it still fits.
	truck := winner.vendor
	remainingMoney := state.AvailableMoney

	if winner.bestFood != nil && winner.bestFood.Price <= remainingMoney {
		if truck.SellItem(winner.bestFood) {
			state.PurchasedItems = append(state.PurchasedItems, winner.bestFood)
			state.TotalSpent += winner.bestFood.Price
			state.PurchasedFromTruck = truck.Name()
			remainingMoney -= winner.bestFood.Price
		}
	}

	if len(state.PurchasedItems) > 0 && winner.bestDrink != nil && winner.bestDrink.Price <= remainingMoney {
		if truck.SellItem(winner.bestDrink) {
			state.PurchasedItems = append(state.PurchasedItems, winner.bestDrink)
			state.TotalSpent += winner.bestDrink.Price
		}
	}

	// Stock can only hit zero between scoring and purchase if something
	// else drained it; sequential execution makes that unreachable, but the
	// fallback keeps the outcome well-defined regardless.
	if len(state.PurchasedItems) == 0 {
		state.ChoseSchoolLunch = true
		state.LossReason = models.LossReasonStockout
		state.PurchasedFromTruck = ""
	}
}
