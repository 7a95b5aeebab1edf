package simulator

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunchsim/lunchsim/internal/factories"
	"github.com/lunchsim/lunchsim/internal/models"
)

func testConfig(seed, days int) *models.Config {
	return &models.Config{
		Seed:    seed,
		Days:    days,
		Verbose: false,
		Params:  models.DefaultSimParams(),
	}
}

func testPopulation(t *testing.T, n int) []*models.StudentProfile {
	t.Helper()
	params := models.DefaultSimParams()
	factory := &factories.StudentFactory{}
	students := factory.CreateStudents(n, &params, rand.New(rand.NewSource(17)))
	require.Len(t, students, n)
	return students
}

func tacoTruckMenu() []*models.MenuItem {
	return []*models.MenuItem{
		models.NewMenuItem("Chicken Tacos", 4.00, 6, models.ItemTypeFood, models.CategorySavory, models.SubTypeSavory, false, 60, 450),
		models.NewMenuItem("Carne Asada Burrito", 5.50, 5, models.ItemTypeFood, models.CategorySavory, models.SubTypeSavory, false, 40, 650),
		models.NewMenuItem("Horchata", 2.00, 4, models.ItemTypeDrink, models.CategoryMilk, models.SubTypeSweet, false, 50, 220),
	}
}

func pizzaTruckMenu() []*models.MenuItem {
	return []*models.MenuItem{
		models.NewMenuItem("Pepperoni Pizza", 3.50, 4, models.ItemTypeFood, models.CategorySavory, models.SubTypeSavory, false, 80, 500),
		models.NewMenuItem("Garden Veggie Pizza", 3.50, 7, models.ItemTypeFood, models.CategoryHealthy, models.SubTypeSavory, false, 30, 380),
		models.NewMenuItem("Italian Soda", 2.50, 3, models.ItemTypeDrink, models.CategorySoda, models.SubTypeSweet, false, 60, 180),
	}
}

func newTestSimulator(config *models.Config, students []*models.StudentProfile) *Simulator {
	trucks := []*models.Truck{
		models.NewTruck("Taco Cart", tacoTruckMenu()),
		models.NewTruck("Pizza Wagon", pizzaTruckMenu()),
	}
	return NewSimulator(config, students, trucks)
}

func stripRunIDs(r *models.RunResult) {
	r.RunID = ""
}

func TestRunIsDeterministicForSeed(t *testing.T) {
	students := testPopulation(t, 80)

	a := newTestSimulator(testConfig(42, 5), students).Run()
	b := newTestSimulator(testConfig(42, 5), students).Run()

	stripRunIDs(a)
	stripRunIDs(b)
	assert.Equal(t, a, b)
}

func TestRunDiffersAcrossSeeds(t *testing.T) {
	students := testPopulation(t, 80)

	a := newTestSimulator(testConfig(1, 5), students).Run()
	b := newTestSimulator(testConfig(2, 5), students).Run()

	stripRunIDs(a)
	stripRunIDs(b)
	assert.NotEqual(t, a, b)
}

func TestDayRevenueMatchesStudentSpending(t *testing.T) {
	students := testPopulation(t, 120)
	result := newTestSimulator(testConfig(7, 3), students).Run()

	for _, day := range result.DailyResults {
		spentPerVendor := make(map[string]float64)
		itemsPerVendor := make(map[string]int)
		for _, rec := range day.StudentStates {
			if rec.Vendor == "" {
				continue
			}
			spentPerVendor[rec.Vendor] += rec.TotalSpent
			if rec.PurchasedItems != "" {
				itemsPerVendor[rec.Vendor]++
			}
		}
		for name, tr := range day.TruckResults {
			assert.InDeltaf(t, spentPerVendor[name], tr.Revenue, 1e-6, "day %d truck %s", day.Day, name)
			assert.Equalf(t, itemsPerVendor[name], tr.Customers, "day %d truck %s", day.Day, name)
		}
	}
}

func TestEveryStudentAccountedForEachDay(t *testing.T) {
	students := testPopulation(t, 100)
	result := newTestSimulator(testConfig(21, 4), students).Run()

	for _, day := range result.DailyResults {
		require.Len(t, day.StudentStates, len(students))

		buyers := day.Customers()
		losses := 0
		for _, count := range day.LossesByReason {
			losses += count
		}
		assert.Equalf(t, len(students), buyers+losses, "day %d: buyers plus losses must cover the population", day.Day)
	}

	assert.Equal(t, len(students)*result.TotalDays, result.TotalStudentsServed)
}

func TestRunDayInventoryInvariant(t *testing.T) {
	students := testPopulation(t, 150)
	sim := newTestSimulator(testConfig(13, 1), students)

	day := sim.runDay(1)

	for _, truck := range sim.Trucks {
		tr := day.TruckResults[truck.TruckName]
		require.NotNil(t, tr)
		for _, item := range truck.Menu {
			assert.GreaterOrEqual(t, item.CurrentInventory, 0)
			assert.LessOrEqual(t, item.CurrentInventory, item.InventoryPerDay)
			assert.Equalf(t, item.InventoryPerDay-item.CurrentInventory, tr.ItemsSold[item.Name],
				"units sold of %s must equal the stock decrement", item.Name)
		}
	}
}

func TestStockoutFlagSetWhenStockHitsZero(t *testing.T) {
	students := testPopulation(t, 150)
	config := testConfig(5, 3)

	scarce := models.NewMenuItem("Chicken Tacos", 3.00, 6, models.ItemTypeFood, models.CategorySavory, models.SubTypeSavory, false, 2, 450)
	trucks := []*models.Truck{models.NewTruck("Taco Cart", []*models.MenuItem{scarce})}
	sim := NewSimulator(config, students, trucks)

	result := sim.Run()

	totals := result.TruckTotals["Taco Cart"]
	require.NotNil(t, totals)
	// Two units against 150 hungry students sells out every single day.
	assert.Equal(t, config.Days, totals.TotalStockoutDays["Chicken Tacos"])
	assert.Equal(t, 2*config.Days, totals.TotalItemsSold["Chicken Tacos"])
}

func TestWinnerIsTopRevenueTruck(t *testing.T) {
	students := testPopulation(t, 100)
	config := testConfig(9, 3)

	trucks := []*models.Truck{
		models.NewTruck("Gold Leaf Bistro", []*models.MenuItem{
			models.NewMenuItem("Truffle Tasting Plate", 100.00, 8, models.ItemTypeFood, models.CategorySavory, models.SubTypeSavory, false, 50, 400),
		}),
		models.NewTruck("Taco Cart", tacoTruckMenu()),
	}
	result := NewSimulator(config, students, trucks).Run()

	assert.Equal(t, "Taco Cart", result.Winner)
	assert.Zero(t, result.TruckTotals["Gold Leaf Bistro"].TotalRevenue)
	assert.Positive(t, result.TruckTotals["Taco Cart"].TotalRevenue)
}

func TestWinnerTieGoesToFirstConfiguredTruck(t *testing.T) {
	students := testPopulation(t, 50)
	config := testConfig(3, 2)

	// Nobody can afford either truck; both end on zero revenue.
	unaffordable := func(name string) *models.Truck {
		return models.NewTruck(name, []*models.MenuItem{
			models.NewMenuItem(name+" Special", 500.00, 5, models.ItemTypeFood, models.CategorySavory, models.SubTypeSavory, false, 10, 400),
		})
	}
	result := NewSimulator(config, students, []*models.Truck{unaffordable("First"), unaffordable("Second")}).Run()

	assert.Equal(t, "First", result.Winner)
	assert.Zero(t, result.TruckTotals["First"].TotalRevenue)
	assert.Zero(t, result.TruckTotals["Second"].TotalRevenue)
	assert.Equal(t, []string{"First", "Second"}, result.TruckOrder)
}

func TestAggregatedTotalsMatchDailyResults(t *testing.T) {
	students := testPopulation(t, 90)
	config := testConfig(31, 4)
	result := newTestSimulator(config, students).Run()

	for name, totals := range result.TruckTotals {
		var revenue float64
		var customers int
		for _, day := range result.DailyResults {
			revenue += day.TruckResults[name].Revenue
			customers += day.TruckResults[name].Customers
		}
		assert.InDeltaf(t, revenue, totals.TotalRevenue, 1e-6, "truck %s", name)
		assert.Equalf(t, customers, totals.TotalCustomers, "truck %s", name)
		assert.InDeltaf(t, revenue/float64(config.Days), totals.AvgDailyRevenue, 1e-6, "truck %s", name)
	}

	lossTotal := make(map[string]int)
	for _, day := range result.DailyResults {
		for reason, count := range day.LossesByReason {
			lossTotal[reason] += count
		}
	}
	assert.Equal(t, lossTotal, result.TotalLossesByReason)
}

func TestRunIDsAreUnique(t *testing.T) {
	students := testPopulation(t, 10)
	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		result := newTestSimulator(testConfig(i, 1), students).Run()
		require.NotEmpty(t, result.RunID)
		assert.Falsef(t, seen[result.RunID], "duplicate run id %s", result.RunID)
		seen[result.RunID] = true
	}
}

func TestDayRecordFlattensPurchases(t *testing.T) {
	food := models.NewMenuItem("Chicken Tacos", 4.00, 6, models.ItemTypeFood, models.CategorySavory, models.SubTypeSavory, false, 10, 450)
	drink := models.NewMenuItem("Horchata", 2.00, 4, models.ItemTypeDrink, models.CategoryMilk, models.SubTypeSweet, false, 10, 220)

	state := neutralState(10)
	state.PurchasedItems = []*models.MenuItem{food, drink}
	state.TotalSpent = 6.00
	state.PurchasedFromTruck = "Taco Cart"

	rec := dayRecord(3, state)
	assert.Equal(t, fmt.Sprintf("%s; %s", food.Name, drink.Name), rec.PurchasedItems)
	assert.Equal(t, int32(3), rec.Day)
	assert.Equal(t, "Taco Cart", rec.Vendor)
	assert.InDelta(t, 6.00, rec.TotalSpent, 1e-9)
}
