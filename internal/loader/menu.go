package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/lunchsim/lunchsim/internal/models"
)

// MenuData is a loaded and validated truck menu.
type MenuData struct {
	Name  string
	Items []*models.MenuItem
}

type menuFile struct {
	Name  string         `json:"name"`
	Items []menuFileItem `json:"items"`
}

type menuFileItem struct {
	Name            *string  `json:"name"`
	Price           *float64 `json:"price"`
	HealthRating    *int     `json:"health_rating"`
	Type            *string  `json:"type"`
	Category        *string  `json:"category"`
	SubType         *string  `json:"sub_type"`
	EnergyBoost     *bool    `json:"energy_boost"`
	InventoryPerDay *int     `json:"inventory_per_day"`
	Calories        *int     `json:"calories"`
}

// LoadMenu reads and validates a JSON menu file. Every field of every item
// is required; violations are rejected here so the simulation core can
// assume the catalog invariants hold.
func LoadMenu(path string) (*MenuData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file: %w", err)
	}

	var raw menuFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse menu file %s: %w", path, err)
	}

	companyName := strings.TrimSpace(raw.Name)
	if companyName == "" {
		return nil, fmt.Errorf("menu file must include a non-empty 'name' field for the company name")
	}

	items := make([]*models.MenuItem, 0, len(raw.Items))
	for idx, it := range raw.Items {
		itemName := fmt.Sprintf("Item %d", idx+1)
		if it.Name != nil && *it.Name != "" {
			itemName = *it.Name
		}

		if err := validateItem(itemName, it); err != nil {
			return nil, err
		}

		items = append(items, models.NewMenuItem(
			*it.Name,
			*it.Price,
			*it.HealthRating,
			*it.Type,
			*it.Category,
			*it.SubType,
			*it.EnergyBoost,
			*it.InventoryPerDay,
			*it.Calories,
		))
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("menu file contains no items")
	}

	return &MenuData{Name: companyName, Items: items}, nil
}

func validateItem(itemName string, it menuFileItem) error {
	missing := func(field string) error {
		return fmt.Errorf("menu item '%s' missing required field: %s", itemName, field)
	}
	switch {
	case it.Name == nil:
		return missing("name")
	case it.Price == nil:
		return missing("price")
	case it.HealthRating == nil:
		return missing("health_rating")
	case it.Type == nil:
		return missing("type")
	case it.Category == nil:
		return missing("category")
	case it.SubType == nil:
		return missing("sub_type")
	case it.EnergyBoost == nil:
		return missing("energy_boost")
	case it.InventoryPerDay == nil:
		return missing("inventory_per_day")
	case it.Calories == nil:
		return missing("calories")
	}

	if *it.Type != models.ItemTypeFood && *it.Type != models.ItemTypeDrink {
		return fmt.Errorf("menu item '%s' has invalid type '%s'. Must be '%s' or '%s'",
			itemName, *it.Type, models.ItemTypeFood, models.ItemTypeDrink)
	}

	if *it.Type == models.ItemTypeFood {
		if !models.FoodCategories[*it.Category] {
			return fmt.Errorf("menu item '%s' has invalid food category '%s'. Must be one of: %s",
				itemName, *it.Category, joinSorted(models.FoodCategories))
		}
	} else if !models.DrinkCategories[*it.Category] {
		return fmt.Errorf("menu item '%s' has invalid drink category '%s'. Must be one of: %s",
			itemName, *it.Category, joinSorted(models.DrinkCategories))
	}

	if !models.ValidSubTypes[*it.SubType] {
		return fmt.Errorf("menu item '%s' has invalid sub_type '%s'. Must be one of: %s",
			itemName, *it.SubType, joinSorted(models.ValidSubTypes))
	}

	if *it.HealthRating < 1 || *it.HealthRating > 10 {
		return fmt.Errorf("menu item '%s' has invalid health_rating %d. Must be between 1 and 10", itemName, *it.HealthRating)
	}
	if *it.Price <= 0 {
		return fmt.Errorf("menu item '%s' has invalid price %v. Must be positive", itemName, *it.Price)
	}
	if *it.InventoryPerDay <= 0 {
		return fmt.Errorf("menu item '%s' has invalid inventory_per_day %d. Must be positive", itemName, *it.InventoryPerDay)
	}
	if *it.Calories < 0 {
		return fmt.Errorf("menu item '%s' has invalid calories %d. Must be non-negative", itemName, *it.Calories)
	}
	return nil
}

func joinSorted(set map[string]bool) string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
