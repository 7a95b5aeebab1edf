package factories

import (
	"math/rand"

	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"

	"github.com/lunchsim/lunchsim/internal/models"
)

var fake = faker.New()

// StudentFactory generates a synthetic survey population for runs without
// real survey CSVs.
type StudentFactory struct{}

var (
	incomeLevels = []string{models.IncomeLow, models.IncomeMedium, models.IncomeHigh}

	spendOnDrinkAnswers = []string{"Less than $2", "$2-$3", "$3-$5", "More than $5"}

	healthGoalAnswers = []string{
		models.AnswerGoalLoseWeight,
		models.AnswerGoalMaintain,
		models.AnswerGoalGainMuscle,
		models.AnswerGoalNotFocused,
	}

	metabolismAnswers = []string{
		models.AnswerMetabolismFast,
		models.AnswerMetabolismSlow,
		models.AnswerMetabolismAverage,
	}

	moneyForLunchAnswers = []string{
		models.AnswerMoneyLow,
		models.AnswerMoneyMedium,
		models.AnswerMoneyHigh,
	}

	activityAnswers = []string{
		models.AnswerVeryActive,
		models.AnswerActive,
		models.AnswerNotVeryActive,
	}

	healthyImportanceAnswers = []string{
		models.AnswerHealthyVeryImportant,
		models.AnswerHealthySomewhatImportant,
		models.AnswerHealthyNotImportant,
	}

	wantsSweetAnswers = []string{
		models.AnswerSweetOften,
		models.AnswerSweetSometimes,
		models.AnswerSweetRarely,
		models.AnswerPrefersSavory,
	}

	favoriteFoods = []string{
		"Chicken Tacos", "Cheeseburger and Fries", "Pepperoni Pizza",
		"Caesar Salad", "Chicken Tenders", "Burrito Bowl", "Grilled Chicken Wrap",
		"Mac & Cheese", "Loaded Nachos", "Teriyaki Chicken Bowl",
		"Ice Cream Sundae", "Chocolate Chip Cookie", "Fruit Parfait",
		"BBQ Pulled Pork Sandwich", "Veggie Wrap", "Corn Dog",
	}
)

// CreateStudent generates one synthetic profile. Car assignment happens at
// population level in CreateStudents.
func (sf *StudentFactory) CreateStudent(rng *rand.Rand) *models.StudentProfile {
	// Drink-category ranks: a random permutation ranks three categories
	// 1-3 and leaves the rest unranked.
	ranks := []int{5, 5, 5, 5, 5}
	for rank, idx := range rng.Perm(5)[:3] {
		ranks[idx] = rank + 1
	}

	return &models.StudentProfile{
		ID:                cuid.New(),
		Grade:             9 + rng.Intn(4),
		Gender:            []string{"M", "F"}[rng.Intn(2)],
		IncomeLevel:       incomeLevels[rng.Intn(len(incomeLevels))],
		SpendOnDrink:      spendOnDrinkAnswers[rng.Intn(len(spendOnDrinkAnswers))],
		HealthGoal:        healthGoalAnswers[rng.Intn(len(healthGoalAnswers))],
		Metabolism:        metabolismAnswers[rng.Intn(len(metabolismAnswers))],
		MoneyForLunch:     moneyForLunchAnswers[rng.Intn(len(moneyForLunchAnswers))],
		ActivityLevel:     activityAnswers[rng.Intn(len(activityAnswers))],
		HealthyImportance: healthyImportanceAnswers[rng.Intn(len(healthyImportanceAnswers))],
		WantsSweet:        wantsSweetAnswers[rng.Intn(len(wantsSweetAnswers))],
		FavoriteFood:      randomFavoriteFood(rng),
		WaterRank:         ranks[0],
		SodaRank:          ranks[1],
		JuiceRank:         ranks[2],
		EnergyDrinkRank:   ranks[3],
		CoffeeTeaRank:     ranks[4],
	}
}

func randomFavoriteFood(rng *rand.Rand) string {
	// Most answers come from the common-dish list; a few are free-form the
	// way real survey answers are.
	if rng.Float64() < 0.85 {
		return favoriteFoods[rng.Intn(len(favoriteFoods))]
	}
	return fake.Lorem().Word() + " " + favoriteFoods[rng.Intn(len(favoriteFoods))]
}

// CreateStudents generates a population of n profiles and assigns cars to
// the configured share of it.
func (sf *StudentFactory) CreateStudents(n int, params *models.SimParams, rng *rand.Rand) []*models.StudentProfile {
	students := make([]*models.StudentProfile, n)
	for i := range students {
		students[i] = sf.CreateStudent(rng)
	}

	numWithCars := int(float64(n) * params.HasCarPercentage)
	for _, idx := range rng.Perm(n)[:numWithCars] {
		students[idx].HasCar = true
	}
	return students
}
