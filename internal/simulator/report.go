package simulator

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/lunchsim/lunchsim/internal/models"
)

// PrintDailySummary writes a human-readable summary of one day to stdout.
func PrintDailySummary(result *models.DailyResult, truckOrder []string) {
	fmt.Printf("\n%s\n", strings.Repeat("=", 60))
	fmt.Printf("Day %d Summary\n", result.Day)
	fmt.Println(strings.Repeat("=", 60))

	for _, truckName := range truckOrder {
		tr := result.TruckResults[truckName]
		fmt.Printf("\n--- %s ---\n", truckName)
		fmt.Printf("Revenue: $%.2f\n", tr.Revenue)
		customerPct := 0.0
		if result.TotalStudents > 0 {
			customerPct = float64(tr.Customers) / float64(result.TotalStudents) * 100
		}
		fmt.Printf("Customers: %d (%.1f%%)\n", tr.Customers, customerPct)

		if len(tr.ItemsSold) > 0 {
			fmt.Println("Items Sold:")
			for _, kv := range sortedByCountDesc(tr.ItemsSold) {
				fmt.Printf("  %s: %d\n", kv.name, kv.count)
			}
		}

		var stockedOut []string
		for _, item := range sortedKeys(tr.Stockouts) {
			if tr.Stockouts[item] > 0 {
				stockedOut = append(stockedOut, item)
			}
		}
		if len(stockedOut) > 0 {
			fmt.Printf("Stockouts: %s\n", strings.Join(stockedOut, ", "))
		}
	}

	fmt.Printf("\n--- Combined ---\n")
	fmt.Printf("Total Revenue: $%.2f\n", result.Revenue())
	fmt.Printf("Total Customers: %d/%d\n", result.Customers(), result.TotalStudents)

	if len(result.LossesByReason) > 0 {
		fmt.Println("\nLost Sales:")
		for _, kv := range sortedByCountDesc(result.LossesByReason) {
			fmt.Printf("  %s: %d\n", kv.name, kv.count)
		}
	}
}

// PrintRunSummary writes the final head-to-head comparison to stdout.
func PrintRunSummary(result *models.RunResult) {
	fmt.Printf("\n%s\n", strings.Repeat("#", 60))
	fmt.Printf("SIMULATION COMPLETE - %d Days\n", result.TotalDays)
	fmt.Println(strings.Repeat("#", 60))

	winner := result.TruckTotals[result.Winner]
	fmt.Printf("\n%s\n", strings.Repeat("*", 60))
	fmt.Printf("  WINNER: %s\n", result.Winner)
	fmt.Printf("  Total Revenue: $%.2f\n", winner.TotalRevenue)
	fmt.Println(strings.Repeat("*", 60))

	fmt.Printf("\n%s\nHEAD-TO-HEAD COMPARISON\n%s\n", strings.Repeat("=", 60), strings.Repeat("=", 60))
	header := fmt.Sprintf("%-25s", "Metric")
	for _, name := range result.TruckOrder {
		header += fmt.Sprintf("%15s", name)
	}
	fmt.Println(header)
	fmt.Println(strings.Repeat("-", 60))

	printRow := func(label string, value func(*models.TruckTotals) string) {
		row := fmt.Sprintf("%-25s", label)
		for _, name := range result.TruckOrder {
			row += fmt.Sprintf("%15s", value(result.TruckTotals[name]))
		}
		fmt.Println(row)
	}
	printRow("Total Revenue", func(t *models.TruckTotals) string { return fmt.Sprintf("$%.2f", t.TotalRevenue) })
	printRow("Total Customers", func(t *models.TruckTotals) string { return strconv.Itoa(t.TotalCustomers) })
	printRow("Avg Daily Revenue", func(t *models.TruckTotals) string { return fmt.Sprintf("$%.2f", t.AvgDailyRevenue) })
	printRow("Avg Daily Customers", func(t *models.TruckTotals) string { return fmt.Sprintf("%.1f", t.AvgDailyCustomers) })

	for _, truckName := range result.TruckOrder {
		totals := result.TruckTotals[truckName]
		fmt.Printf("\n%s\n%s - DETAILED RESULTS\n%s\n", strings.Repeat("=", 60), truckName, strings.Repeat("=", 60))
		fmt.Printf("\nTotal Revenue: $%.2f\n", totals.TotalRevenue)
		fmt.Printf("Total Customers: %d\n", totals.TotalCustomers)

		if len(totals.TotalItemsSold) > 0 {
			fmt.Println("\nItems Sold (Total):")
			for _, kv := range sortedByCountDesc(totals.TotalItemsSold) {
				fmt.Printf("  %s: %d\n", kv.name, kv.count)
			}
		}

		fmt.Println("\nStockouts (Days Sold Out):")
		anyStockout := false
		for _, kv := range sortedByCountDesc(totals.TotalStockoutDays) {
			if kv.count > 0 {
				fmt.Printf("  %s: %d days\n", kv.name, kv.count)
				anyStockout = true
			}
		}
		if !anyStockout {
			fmt.Println("  none")
		}
	}

	fmt.Printf("\n%s\nCOMBINED STATISTICS\n%s\n", strings.Repeat("=", 60), strings.Repeat("=", 60))
	fmt.Printf("Total Students Processed: %d\n", result.TotalStudentsServed)

	if len(result.TotalLossesByReason) > 0 {
		totalLosses := 0
		for _, count := range result.TotalLossesByReason {
			totalLosses += count
		}
		fmt.Println("\nLost Sales by Reason:")
		for _, kv := range sortedByCountDesc(result.TotalLossesByReason) {
			pct := 0.0
			if totalLosses > 0 {
				pct = float64(kv.count) / float64(totalLosses) * 100
			}
			fmt.Printf("  %s: %d (%.1f%%)\n", kv.name, kv.count, pct)
		}
	}
}

// ExportCSV writes one pair of CSV files per truck into dir: a daily
// aggregate file and a per-student purchase file.
func ExportCSV(result *models.RunResult, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	for i, truckName := range result.TruckOrder {
		prefix := fmt.Sprintf("menu%d", i+1)
		if err := writeDailyCSV(result, dir, truckName, prefix); err != nil {
			return err
		}
		if err := writeStudentCSV(result, dir, truckName, prefix); err != nil {
			return err
		}
	}
	return nil
}

func writeDailyCSV(result *models.RunResult, dir, truckName, prefix string) error {
	f, err := os.Create(filepath.Join(dir, prefix+".csv"))
	if err != nil {
		return fmt.Errorf("failed to create daily CSV for %s: %w", truckName, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"day", "revenue", "customers", "items_sold", "stockouts"}); err != nil {
		return err
	}

	for _, daily := range result.DailyResults {
		tr := daily.TruckResults[truckName]

		itemsSold, err := json.Marshal(tr.ItemsSold)
		if err != nil {
			return err
		}
		var stockedOut []string
		for _, item := range sortedKeys(tr.Stockouts) {
			if tr.Stockouts[item] > 0 {
				stockedOut = append(stockedOut, item)
			}
		}

		err = w.Write([]string{
			strconv.Itoa(daily.Day),
			fmt.Sprintf("%.2f", tr.Revenue),
			strconv.Itoa(tr.Customers),
			string(itemsSold),
			strings.Join(stockedOut, ","),
		})
		if err != nil {
			return err
		}
	}
	return w.Error()
}

func writeStudentCSV(result *models.RunResult, dir, truckName, prefix string) error {
	f, err := os.Create(filepath.Join(dir, prefix+"_students.csv"))
	if err != nil {
		return fmt.Errorf("failed to create student CSV for %s: %w", truckName, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"day", "student_id", "purchased_items", "total_spent"}); err != nil {
		return err
	}

	for _, daily := range result.DailyResults {
		for _, state := range daily.StudentStates {
			if state.Vendor != truckName {
				continue
			}
			err := w.Write([]string{
				strconv.Itoa(daily.Day),
				state.StudentID,
				state.PurchasedItems,
				fmt.Sprintf("%.2f", state.TotalSpent),
			})
			if err != nil {
				return err
			}
		}
	}
	return w.Error()
}

type nameCount struct {
	name  string
	count int
}

// sortedByCountDesc orders a tally by descending count, name ascending on
// equal counts so output is stable.
func sortedByCountDesc(m map[string]int) []nameCount {
	out := make([]nameCount, 0, len(m))
	for name, count := range m {
		out = append(out, nameCount{name, count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].name < out[j].name
	})
	return out
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
