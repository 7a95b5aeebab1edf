package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lunchsim/lunchsim/internal/loader"
	"github.com/lunchsim/lunchsim/internal/models"
)

var validateCmd = &cobra.Command{
	Use:   "validate [menu file]",
	Short: "Validate a truck menu file",
	Long:  `validate checks that a menu JSON file is correctly formatted and that every item satisfies the catalog invariants.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		menuPath := args[0]
		fmt.Printf("Validating: %s\n", menuPath)

		menu, err := loader.LoadMenu(menuPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "INVALID: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Company Name: %s\n", menu.Name)
		fmt.Printf("Total Items: %d\n\n", len(menu.Items))

		printItems(menu.Items, models.ItemTypeFood, "Food Items")
		fmt.Println()
		printItems(menu.Items, models.ItemTypeDrink, "Drink Items")

		fmt.Println("\nVALID: Menu file is correctly formatted.")
	},
}

func printItems(items []*models.MenuItem, itemType, label string) {
	var filtered []*models.MenuItem
	for _, item := range items {
		if item.ItemType == itemType {
			filtered = append(filtered, item)
		}
	}

	fmt.Printf("%s (%d):\n", label, len(filtered))
	for _, item := range filtered {
		energy := ""
		if item.EnergyBoost {
			energy = " [ENERGY]"
		}
		fmt.Printf("  - %s: $%.2f | %s | health:%d/10 | %dcal | inventory:%d/day%s\n",
			item.Name, item.Price, item.Category, item.HealthRating,
			item.Calories, item.InventoryPerDay, energy)
	}
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
