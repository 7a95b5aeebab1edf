package loader

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strings"

	"github.com/lunchsim/lunchsim/internal/models"
)

// normalizeMoneyForLunch maps free-text budget answers to the canonical
// bracket strings the money table is keyed by.
func normalizeMoneyForLunch(v string) string {
	lower := strings.ToLower(v)
	switch {
	case strings.Contains(lower, "less than") || strings.Contains(lower, "low"):
		return models.AnswerMoneyLow
	case strings.Contains(lower, "more than") || strings.Contains(lower, "high"):
		return models.AnswerMoneyHigh
	default:
		return models.AnswerMoneyMedium
	}
}

func normalizeHealthyImportance(v string) string {
	lower := strings.ToLower(v)
	switch {
	case strings.Contains(lower, "very important"):
		return models.AnswerHealthyVeryImportant
	case strings.Contains(lower, "somewhat"):
		return models.AnswerHealthySomewhatImportant
	default:
		return models.AnswerHealthyNotImportant
	}
}

func normalizeWantsSweet(v string) string {
	lower := strings.ToLower(v)
	switch {
	case strings.Contains(lower, "yes") || strings.Contains(lower, "always"):
		return models.AnswerSweetOften
	case strings.Contains(lower, "sometimes"):
		return models.AnswerSweetSometimes
	case strings.Contains(lower, "rarely"):
		return models.AnswerSweetRarely
	default:
		return models.AnswerPrefersSavory
	}
}

func normalizeActivityLevel(v string) string {
	lower := strings.ToLower(v)
	switch {
	case strings.Contains(lower, "very active") || strings.Contains(lower, "sports team"):
		return models.AnswerVeryActive
	case strings.Contains(lower, "active") || strings.Contains(lower, "sometimes") || strings.Contains(lower, "somewhat"):
		return models.AnswerActive
	default:
		return models.AnswerNotVeryActive
	}
}

func normalizeMetabolism(v string) string {
	lower := strings.ToLower(v)
	switch {
	case strings.Contains(lower, "fast") || strings.Contains(lower, "eat a lot") || strings.Contains(lower, "hungry"):
		return models.AnswerMetabolismFast
	case strings.Contains(lower, "slow") || strings.Contains(lower, "full"):
		return models.AnswerMetabolismSlow
	default:
		return models.AnswerMetabolismAverage
	}
}

func normalizeHealthGoal(v string) string {
	lower := strings.ToLower(v)
	switch {
	case strings.Contains(lower, "lose"):
		return models.AnswerGoalLoseWeight
	case strings.Contains(lower, "gain") || strings.Contains(lower, "muscle") || strings.Contains(lower, "stronger"):
		return models.AnswerGoalGainMuscle
	case strings.Contains(lower, "maintain"):
		return models.AnswerGoalMaintain
	default:
		return models.AnswerGoalNotFocused
	}
}

func normalizeSpendOnDrink(v string) string {
	lower := strings.ToLower(v)
	switch {
	case strings.Contains(lower, "$4") || strings.Contains(lower, "more"):
		return "More than $5"
	case strings.Contains(lower, "$3"):
		return "$3-$5"
	case strings.Contains(lower, "$2"):
		return "$2-$3"
	default:
		return "Less than $2"
	}
}

// drinkNameToCategory buckets a named drink from the ranking survey into
// one of the ranked categories. Unrecognized drinks count as soda.
func drinkNameToCategory(drinkName string) string {
	lower := strings.ToLower(drinkName)

	buckets := []struct {
		category string
		keywords []string
	}{
		{"water", []string{"water", "sparkling water"}},
		{"energy_drink", []string{"red bull", "monster", "rockstar", "bang", "energy"}},
		{"coffee_tea", []string{"coffee", "iced coffee", "milk"}},
		{"juice", []string{"juice", "lemonade", "tea"}},
		{"soda", []string{"pepsi", "coca-cola", "coke", "dr pepper", "sprite", "fanta", "mountain dew"}},
	}
	for _, b := range buckets {
		for _, kw := range b.keywords {
			if strings.Contains(lower, kw) {
				return b.category
			}
		}
	}
	return "soda"
}

// readCSVRows reads a CSV file into header-keyed row maps.
func readCSVRows(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	rows := make([]map[string]string, 0, len(records))
	for _, record := range records {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// LoadStudents merges the food-preferences survey with the smaller drink
// survey (drink rows are repeated to cover the population), normalizes the
// free-text answers, and assigns cars to a random slice of the population.
// rng drives grade/gender fill-ins and the car sample.
func LoadStudents(foodCSVPath, drinkCSVPath string, params *models.SimParams, rng *rand.Rand) ([]*models.StudentProfile, error) {
	foodRows, err := readCSVRows(foodCSVPath)
	if err != nil {
		return nil, err
	}
	drinkRows, err := readCSVRows(drinkCSVPath)
	if err != nil {
		return nil, err
	}
	if len(foodRows) == 0 {
		return nil, fmt.Errorf("no student rows in %s", foodCSVPath)
	}

	// Repeat the drink survey so every food-survey row has a drink row.
	drinkByIndex := make(map[int]map[string]string, len(foodRows))
	for i := range foodRows {
		if len(drinkRows) > 0 {
			drinkByIndex[i] = drinkRows[i%len(drinkRows)]
		}
	}

	numWithCars := int(float64(len(foodRows)) * params.HasCarPercentage)
	carIndexes := make(map[int]bool, numWithCars)
	for _, idx := range rng.Perm(len(foodRows))[:numWithCars] {
		carIndexes[idx] = true
	}

	students := make([]*models.StudentProfile, 0, len(foodRows))
	for i, foodRow := range foodRows {
		drinkRow := drinkByIndex[i]

		ranks := map[string]int{"water": 5, "soda": 5, "juice": 5, "energy_drink": 5, "coffee_tea": 5}
		for rankIdx, rankCol := range []string{"Rank1_Drink", "Rank2_Drink", "Rank3_Drink"} {
			if name := drinkRow[rankCol]; name != "" {
				category := drinkNameToCategory(name)
				if ranks[category] == 5 {
					ranks[category] = rankIdx + 1
				}
			}
		}

		studentID := foodRow["StudentID"]
		if studentID == "" {
			studentID = fmt.Sprintf("student-%d", i+1)
		}

		incomeLevel := foodRow["IncomeLevel"]
		if incomeLevel == "" {
			incomeLevel = models.IncomeMedium
		}

		students = append(students, &models.StudentProfile{
			ID:                studentID,
			Grade:             9 + rng.Intn(4),
			Gender:            []string{"M", "F"}[rng.Intn(2)],
			IncomeLevel:       incomeLevel,
			SpendOnDrink:      normalizeSpendOnDrink(drinkRow["Q1_SpendOnDrink"]),
			HealthGoal:        normalizeHealthGoal(foodRow["Q2_HealthGoal"]),
			Metabolism:        normalizeMetabolism(foodRow["Q3_Metabolism"]),
			MoneyForLunch:     normalizeMoneyForLunch(foodRow["Q4_MoneyForLunch"]),
			ActivityLevel:     normalizeActivityLevel(foodRow["Q5_ActivityLevel"]),
			HealthyImportance: normalizeHealthyImportance(foodRow["Q6_HealthyImportance"]),
			WantsSweet:        normalizeWantsSweet(foodRow["Q7_WantsSweet"]),
			FavoriteFood:      foodRow["Q8_LunchChoice"],
			WaterRank:         ranks["water"],
			SodaRank:          ranks["soda"],
			JuiceRank:         ranks["juice"],
			EnergyDrinkRank:   ranks["energy_drink"],
			CoffeeTeaRank:     ranks["coffee_tea"],
			HasCar:            carIndexes[i],
		})
	}

	sort.SliceStable(students, func(i, j int) bool { return students[i].ID < students[j].ID })
	return students, nil
}
