package simulator

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSVFile(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestExportCSVWritesPairPerTruck(t *testing.T) {
	dir := t.TempDir()
	result := sampleRunResult()

	require.NoError(t, ExportCSV(result, dir))

	// Trucks are numbered in configured order: menu1 is the Taco Cart.
	daily := readCSVFile(t, filepath.Join(dir, "menu1.csv"))
	require.Len(t, daily, 3) // header + 2 days
	assert.Equal(t, []string{"day", "revenue", "customers", "items_sold", "stockouts"}, daily[0])
	assert.Equal(t, "1", daily[1][0])
	assert.Equal(t, "24.00", daily[1][1])
	assert.Equal(t, "4", daily[1][2])
	assert.JSONEq(t, `{"Chicken Tacos": 4}`, daily[1][3])
	assert.Empty(t, daily[1][4], "no stockout recorded for the taco cart")

	pizzaDaily := readCSVFile(t, filepath.Join(dir, "menu2.csv"))
	assert.Equal(t, "Pepperoni Pizza", pizzaDaily[1][4])

	students := readCSVFile(t, filepath.Join(dir, "menu1_students.csv"))
	require.Len(t, students, 3) // header + one buyer per day
	assert.Equal(t, []string{"day", "student_id", "purchased_items", "total_spent"}, students[0])
	assert.Equal(t, "s1", students[1][1])
	assert.Equal(t, "6.00", students[1][3])

	// Nobody bought pizza in the sample student rows.
	pizzaStudents := readCSVFile(t, filepath.Join(dir, "menu2_students.csv"))
	assert.Len(t, pizzaStudents, 1)
}

func TestSortedByCountDesc(t *testing.T) {
	got := sortedByCountDesc(map[string]int{"b": 2, "a": 2, "c": 7, "d": 1})
	want := []nameCount{{"c", 7}, {"a", 2}, {"b", 2}, {"d", 1}}
	assert.Equal(t, want, got)
}

func TestSortedKeys(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, sortedKeys(map[string]int{"c": 1, "a": 2, "b": 3}))
}

func TestPrintSummariesDoNotPanic(t *testing.T) {
	// Smoke coverage for the stdout reports.
	result := sampleRunResult()
	PrintRunSummary(result)
	for _, day := range result.DailyResults {
		PrintDailySummary(day, result.TruckOrder)
	}
}
