package simulator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunchsim/lunchsim/internal/models"
)

func emptyCafeteria() *models.Cafeteria {
	return models.NewCafeteria(nil, nil)
}

func TestDecisionBuysFoodThenDrink(t *testing.T) {
	food := models.NewMenuItem("Brick Stew", 4.00, 5, models.ItemTypeFood, models.CategorySavory, models.SubTypeSavory, false, 10, 400)
	drink := models.NewMenuItem("Plain Fizz", 1.50, 5, models.ItemTypeDrink, models.CategorySoda, models.SubTypeSweet, false, 10, 120)
	truck := models.NewTruck("Truck A", []*models.MenuItem{food, drink})

	state := neutralState(10.00)
	MakeDecision(neutralProfile(), state, []*models.Truck{truck}, emptyCafeteria(), nil, testParams())

	require.Len(t, state.PurchasedItems, 2)
	assert.Equal(t, food, state.PurchasedItems[0], "food is bought before the drink")
	assert.Equal(t, drink, state.PurchasedItems[1])
	assert.InDelta(t, 5.50, state.TotalSpent, 1e-9)
	assert.Equal(t, "Truck A", state.PurchasedFromTruck)
	assert.Empty(t, state.LossReason)
	assert.Equal(t, 9, food.CurrentInventory)
	assert.Equal(t, 9, drink.CurrentInventory)
}

func TestSequentialStockContention(t *testing.T) {
	// One unit of stock, two buyers. The second student finds nothing
	// purchasable anywhere and is recorded as a stockout loss.
	food := models.NewMenuItem("Brick Stew", 4.00, 5, models.ItemTypeFood, models.CategorySavory, models.SubTypeSavory, false, 1, 400)
	truck := models.NewTruck("Truck A", []*models.MenuItem{food})
	params := testParams()

	first := neutralState(10.00)
	MakeDecision(neutralProfile(), first, []*models.Truck{truck}, emptyCafeteria(), nil, params)
	require.Len(t, first.PurchasedItems, 1)
	require.Equal(t, 0, food.CurrentInventory)

	second := neutralState(10.00)
	MakeDecision(neutralProfile(), second, []*models.Truck{truck}, emptyCafeteria(), nil, params)
	assert.Empty(t, second.PurchasedItems)
	assert.True(t, second.ChoseSchoolLunch)
	assert.Equal(t, models.LossReasonStockout, second.LossReason)
	assert.Empty(t, second.PurchasedFromTruck)
}

func TestCafeteriaWinsOnScore(t *testing.T) {
	// The cafeteria serves the student's favorite dish; a doubled preference
	// score beats anything the truck offers.
	truckFood := models.NewMenuItem("Brick Stew", 4.00, 5, models.ItemTypeFood, models.CategorySavory, models.SubTypeSavory, false, 10, 400)
	truck := models.NewTruck("Truck A", []*models.MenuItem{truckFood})

	cafeteria := models.NewCafeteria(
		[]*models.MenuItem{models.NewMenuItem("Dragon Noodles", 3.00, 6, models.ItemTypeFood, models.CategorySavory, models.SubTypeSavory, false, 9999, 500)},
		nil,
	)
	params := testParams()
	cafeteria.RotateMenu(rand.New(rand.NewSource(1)), params.CafeteriaDailyFoodCount, params.CafeteriaDailyDrinkCount)

	profile := neutralProfile()
	profile.FavoriteFood = "Dragon Noodles"
	state := neutralState(10.00)

	MakeDecision(profile, state, []*models.Truck{truck}, cafeteria, nil, params)

	assert.True(t, state.ChoseSchoolLunch)
	assert.Equal(t, models.LossReasonSchoolLunch, state.LossReason)
	assert.Empty(t, state.PurchasedItems)
	assert.Empty(t, state.PurchasedFromTruck)
	assert.Equal(t, 10, truckFood.CurrentInventory, "losing truck keeps its stock")
}

func TestFastFoodOnlyReachableByCar(t *testing.T) {
	fastFood := models.NewFastFoodStand(models.DefaultFastFoodMenu())
	params := testParams()

	walker := neutralProfile()
	state := neutralState(10.00)
	MakeDecision(walker, state, nil, emptyCafeteria(), fastFood, params)
	assert.Equal(t, models.LossReasonStockout, state.LossReason, "without a car nothing is reachable")

	driver := neutralProfile()
	driver.HasCar = true
	state = neutralState(10.00)
	MakeDecision(driver, state, nil, emptyCafeteria(), fastFood, params)
	assert.True(t, state.ChoseFastFood)
	assert.Equal(t, models.LossReasonFastFood, state.LossReason)
	assert.Empty(t, state.PurchasedItems)
}

func TestIncompleteMealPenalty(t *testing.T) {
	params := testParams()
	profile := neutralProfile()

	food := models.NewMenuItem("Brick Stew", 6.00, 5, models.ItemTypeFood, models.CategorySavory, models.SubTypeSavory, false, 10, 400)
	pricyDrink := models.NewMenuItem("Plain Fizz", 5.00, 5, models.ItemTypeDrink, models.CategorySoda, models.SubTypeSweet, false, 10, 120)
	truck := models.NewTruck("Truck A", []*models.MenuItem{food, pricyDrink})

	state := neutralState(10.00)
	foodScore := ScoreItem(food, profile, state, params)
	drinkScore := ScoreItem(pricyDrink, profile, state, params)
	require.Positive(t, foodScore)
	require.Positive(t, drinkScore)

	// Pair exceeds the budget: the penalty applies.
	option := bestItemsForVendor(truck, profile, state, params)
	assert.InDelta(t, foodScore*params.PenaltyNoDrink, option.combinedScore, 1e-9)

	// Pair fits: combined is the blend when it improves on food alone.
	cheapDrink := models.NewMenuItem("Plain Fizz", 1.50, 5, models.ItemTypeDrink, models.CategorySoda, models.SubTypeSweet, false, 10, 120)
	truck = models.NewTruck("Truck A", []*models.MenuItem{food, cheapDrink})
	drinkScore = ScoreItem(cheapDrink, profile, state, params)
	want := foodScore
	if blended := (foodScore + drinkScore) / 1.5; blended > want {
		want = blended
	}
	option = bestItemsForVendor(truck, profile, state, params)
	assert.InDelta(t, want, option.combinedScore, 1e-9)
}

func TestDrinkSkippedWhenBudgetExhausted(t *testing.T) {
	food := models.NewMenuItem("Brick Stew", 6.00, 5, models.ItemTypeFood, models.CategorySavory, models.SubTypeSavory, false, 10, 400)
	drink := models.NewMenuItem("Plain Fizz", 5.00, 5, models.ItemTypeDrink, models.CategorySoda, models.SubTypeSweet, false, 10, 120)
	truck := models.NewTruck("Truck A", []*models.MenuItem{food, drink})

	state := neutralState(10.00)
	MakeDecision(neutralProfile(), state, []*models.Truck{truck}, emptyCafeteria(), nil, testParams())

	require.Len(t, state.PurchasedItems, 1)
	assert.Equal(t, food, state.PurchasedItems[0])
	assert.InDelta(t, 6.00, state.TotalSpent, 1e-9)
	assert.Equal(t, 10, drink.CurrentInventory)
}

func TestEqualScoresKeepFirstTruck(t *testing.T) {
	newMenu := func() []*models.MenuItem {
		return []*models.MenuItem{
			models.NewMenuItem("Brick Stew", 4.00, 5, models.ItemTypeFood, models.CategorySavory, models.SubTypeSavory, false, 10, 400),
		}
	}
	truckA := models.NewTruck("Truck A", newMenu())
	truckB := models.NewTruck("Truck B", newMenu())

	state := neutralState(10.00)
	MakeDecision(neutralProfile(), state, []*models.Truck{truckA, truckB}, emptyCafeteria(), nil, testParams())

	assert.Equal(t, "Truck A", state.PurchasedFromTruck)
	assert.Equal(t, 9, truckA.Menu[0].CurrentInventory)
	assert.Equal(t, 10, truckB.Menu[0].CurrentInventory)
}

func TestTiedItemsKeepListingOrder(t *testing.T) {
	first := models.NewMenuItem("Brick Stew", 4.00, 5, models.ItemTypeFood, models.CategorySavory, models.SubTypeSavory, false, 10, 400)
	twin := models.NewMenuItem("Brick Stew", 4.00, 5, models.ItemTypeFood, models.CategorySavory, models.SubTypeSavory, false, 10, 400)
	truck := models.NewTruck("Truck A", []*models.MenuItem{first, twin})

	option := bestItemsForVendor(truck, neutralProfile(), neutralState(10.00), testParams())
	assert.Same(t, first, option.bestFood)
}

func TestNoVendorsMeansStockoutLoss(t *testing.T) {
	state := neutralState(10.00)
	MakeDecision(neutralProfile(), state, nil, emptyCafeteria(), nil, testParams())

	assert.True(t, state.ChoseSchoolLunch)
	assert.Equal(t, models.LossReasonStockout, state.LossReason)
	assert.Empty(t, state.PurchasedItems)
}

func TestUnaffordableEverythingIsStockoutLoss(t *testing.T) {
	food := models.NewMenuItem("Brick Stew", 9.00, 5, models.ItemTypeFood, models.CategorySavory, models.SubTypeSavory, false, 10, 400)
	truck := models.NewTruck("Truck A", []*models.MenuItem{food})

	state := neutralState(2.00)
	MakeDecision(neutralProfile(), state, []*models.Truck{truck}, emptyCafeteria(), nil, testParams())

	assert.Equal(t, models.LossReasonStockout, state.LossReason)
	assert.Equal(t, 10, food.CurrentInventory)
}
