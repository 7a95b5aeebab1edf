package models

// MenuItem is a catalog record owned by a single vendor, plus its per-day
// stock counter. The loader guarantees field invariants (price > 0,
// health rating 1-10, kind-specific category, calories >= 0).
type MenuItem struct {
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	HealthRating    int     `json:"health_rating"` // 1-10 scale
	ItemType        string  `json:"item_type"`     // "food" or "drink"
	Category        string  `json:"category"`
	SubType         string  `json:"sub_type"` // "sweet" or "savory"
	EnergyBoost     bool    `json:"energy_boost"`
	InventoryPerDay int     `json:"inventory_per_day"`
	Calories        int     `json:"calories"`

	CurrentInventory int `json:"current_inventory"`
}

// NewMenuItem returns an item with a full day of stock.
func NewMenuItem(name string, price float64, healthRating int, itemType, category, subType string, energyBoost bool, inventoryPerDay, calories int) *MenuItem {
	return &MenuItem{
		Name:             name,
		Price:            price,
		HealthRating:     healthRating,
		ItemType:         itemType,
		Category:         category,
		SubType:          subType,
		EnergyBoost:      energyBoost,
		InventoryPerDay:  inventoryPerDay,
		Calories:         calories,
		CurrentInventory: inventoryPerDay,
	}
}

// ResetInventory restores stock to the daily maximum.
func (m *MenuItem) ResetInventory() {
	m.CurrentInventory = m.InventoryPerDay
}

func (m *MenuItem) IsAvailable() bool {
	return m.CurrentInventory > 0
}

// SellOne decrements stock by one unit. Returns false when already sold out,
// leaving the counter untouched.
func (m *MenuItem) SellOne() bool {
	if m.CurrentInventory > 0 {
		m.CurrentInventory--
		return true
	}
	return false
}
