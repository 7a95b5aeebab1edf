package models

import "math/rand"

// Vendor is the capability set the decision policy sees: list today's food,
// list today's drinks, attempt a sale. Trucks are the only variant whose
// sale can fail; the unlimited-stock variants always succeed.
type Vendor interface {
	Name() string
	AvailableFood() []*MenuItem
	AvailableDrinks() []*MenuItem
	SellItem(item *MenuItem) bool
}

// Truck is a competing food truck with finite per-item daily stock.
type Truck struct {
	TruckName string
	Menu      []*MenuItem
}

func NewTruck(name string, menu []*MenuItem) *Truck {
	return &Truck{TruckName: name, Menu: menu}
}

func (t *Truck) Name() string { return t.TruckName }

// ResetInventory restores every menu item to its daily stock level.
func (t *Truck) ResetInventory() {
	for _, item := range t.Menu {
		item.ResetInventory()
	}
}

func (t *Truck) AvailableFood() []*MenuItem {
	return filterAvailable(t.Menu, ItemTypeFood)
}

func (t *Truck) AvailableDrinks() []*MenuItem {
	return filterAvailable(t.Menu, ItemTypeDrink)
}

func (t *Truck) SellItem(item *MenuItem) bool {
	return item.SellOne()
}

// filterAvailable keeps the menu's listing order, which the decision policy
// relies on for its first-maximum tie-break.
func filterAvailable(menu []*MenuItem, itemType string) []*MenuItem {
	var out []*MenuItem
	for _, item := range menu {
		if item.ItemType == itemType && item.IsAvailable() {
			out = append(out, item)
		}
	}
	return out
}

// Cafeteria is the school-lunch competitor: unlimited stock and a small menu
// resampled from fixed food and drink pools every day.
type Cafeteria struct {
	CafeteriaName string
	FoodPool      []*MenuItem
	DrinkPool     []*MenuItem

	dailyMenu []*MenuItem
}

func NewCafeteria(foodPool, drinkPool []*MenuItem) *Cafeteria {
	return &Cafeteria{
		CafeteriaName: "School Lunch",
		FoodPool:      foodPool,
		DrinkPool:     drinkPool,
	}
}

func (c *Cafeteria) Name() string { return c.CafeteriaName }

// RotateMenu independently samples today's food and drink picks from the
// pools. Counts are clamped to the pool sizes.
func (c *Cafeteria) RotateMenu(rng *rand.Rand, foodCount, drinkCount int) {
	c.dailyMenu = append(sampleItems(rng, c.FoodPool, foodCount), sampleItems(rng, c.DrinkPool, drinkCount)...)
}

func sampleItems(rng *rand.Rand, pool []*MenuItem, n int) []*MenuItem {
	if n > len(pool) {
		n = len(pool)
	}
	picks := make([]*MenuItem, 0, n)
	for _, idx := range rng.Perm(len(pool))[:n] {
		picks = append(picks, pool[idx])
	}
	return picks
}

func (c *Cafeteria) DailyMenu() []*MenuItem { return c.dailyMenu }

func (c *Cafeteria) AvailableFood() []*MenuItem {
	return filterByType(c.dailyMenu, ItemTypeFood)
}

func (c *Cafeteria) AvailableDrinks() []*MenuItem {
	return filterByType(c.dailyMenu, ItemTypeDrink)
}

// SellItem always succeeds; the cafeteria never runs out.
func (c *Cafeteria) SellItem(item *MenuItem) bool { return true }

// FastFoodStand is the off-campus competitor: fixed menu, unlimited stock,
// only reachable by students with a car.
type FastFoodStand struct {
	StandName string
	Menu      []*MenuItem
}

func NewFastFoodStand(menu []*MenuItem) *FastFoodStand {
	return &FastFoodStand{StandName: "Burger Joint", Menu: menu}
}

func (f *FastFoodStand) Name() string { return f.StandName }

func (f *FastFoodStand) AvailableFood() []*MenuItem {
	return filterByType(f.Menu, ItemTypeFood)
}

func (f *FastFoodStand) AvailableDrinks() []*MenuItem {
	return filterByType(f.Menu, ItemTypeDrink)
}

func (f *FastFoodStand) SellItem(item *MenuItem) bool { return true }

func filterByType(menu []*MenuItem, itemType string) []*MenuItem {
	var out []*MenuItem
	for _, item := range menu {
		if item.ItemType == itemType {
			out = append(out, item)
		}
	}
	return out
}

// unlimitedInventory is the stock level given to items of the unlimited
// vendors so IsAvailable never trips.
const unlimitedInventory = 9999

// DefaultCafeteriaFoodPool returns the built-in school-lunch food pool.
func DefaultCafeteriaFoodPool() []*MenuItem {
	return []*MenuItem{
		NewMenuItem("Chicken Tenders", 3.50, 5, ItemTypeFood, CategoryFried, SubTypeSavory, false, unlimitedInventory, 450),
		NewMenuItem("Spaghetti w/ Meat Sauce", 3.00, 6, ItemTypeFood, CategorySavory, SubTypeSavory, false, unlimitedInventory, 500),
		NewMenuItem("Grilled Cheese", 2.50, 5, ItemTypeFood, CategorySavory, SubTypeSavory, false, unlimitedInventory, 400),
		NewMenuItem("Turkey Sandwich", 3.00, 7, ItemTypeFood, CategoryHealthy, SubTypeSavory, false, unlimitedInventory, 350),
		NewMenuItem("Bean & Cheese Burrito", 3.00, 6, ItemTypeFood, CategorySavory, SubTypeSavory, false, unlimitedInventory, 480),
		NewMenuItem("Garden Salad", 2.00, 9, ItemTypeFood, CategoryHealthy, SubTypeSavory, false, unlimitedInventory, 180),
		NewMenuItem("Fish Sticks", 3.00, 5, ItemTypeFood, CategoryFried, SubTypeSavory, false, unlimitedInventory, 400),
		NewMenuItem("Mac & Cheese", 2.50, 4, ItemTypeFood, CategorySavory, SubTypeSavory, false, unlimitedInventory, 450),
		NewMenuItem("Veggie Burger", 3.50, 7, ItemTypeFood, CategoryHealthy, SubTypeSavory, false, unlimitedInventory, 320),
		NewMenuItem("Hamburger", 3.50, 5, ItemTypeFood, CategoryFried, SubTypeSavory, false, unlimitedInventory, 500),
	}
}

// DefaultCafeteriaDrinkPool returns the built-in school-lunch drink pool.
func DefaultCafeteriaDrinkPool() []*MenuItem {
	return []*MenuItem{
		NewMenuItem("Chocolate Milk", 1.50, 5, ItemTypeDrink, CategoryMilk, SubTypeSweet, false, unlimitedInventory, 200),
		NewMenuItem("Apple Juice", 1.50, 7, ItemTypeDrink, CategoryJuice, SubTypeSweet, false, unlimitedInventory, 120),
		NewMenuItem("Fruit Punch", 1.50, 4, ItemTypeDrink, CategoryJuice, SubTypeSweet, false, unlimitedInventory, 150),
		NewMenuItem("Water", 0.00, 10, ItemTypeDrink, CategoryWater, SubTypeSavory, false, unlimitedInventory, 0),
		NewMenuItem("Low-Fat Milk", 1.50, 8, ItemTypeDrink, CategoryMilk, SubTypeSavory, false, unlimitedInventory, 110),
	}
}

// DefaultFastFoodMenu returns the built-in burger-joint menu.
func DefaultFastFoodMenu() []*MenuItem {
	return []*MenuItem{
		NewMenuItem("Cheeseburger", 6.00, 3, ItemTypeFood, CategoryFried, SubTypeSavory, false, unlimitedInventory, 550),
		NewMenuItem("Double Bacon Burger", 9.00, 2, ItemTypeFood, CategoryFried, SubTypeSavory, false, unlimitedInventory, 900),
		NewMenuItem("Chicken Nuggets (10pc)", 7.00, 3, ItemTypeFood, CategoryFried, SubTypeSavory, false, unlimitedInventory, 480),
		NewMenuItem("Large Fries", 5.00, 2, ItemTypeFood, CategoryFried, SubTypeSavory, false, unlimitedInventory, 500),
		NewMenuItem("Hot Dog", 5.00, 3, ItemTypeFood, CategoryFried, SubTypeSavory, false, unlimitedInventory, 400),
		NewMenuItem("Large Soda", 3.00, 1, ItemTypeDrink, CategorySoda, SubTypeSweet, false, unlimitedInventory, 250),
		NewMenuItem("Chocolate Shake", 6.00, 2, ItemTypeDrink, CategoryMilk, SubTypeSweet, false, unlimitedInventory, 700),
		NewMenuItem("Sweet Tea", 3.00, 2, ItemTypeDrink, CategoryJuice, SubTypeSweet, false, unlimitedInventory, 180),
	}
}
