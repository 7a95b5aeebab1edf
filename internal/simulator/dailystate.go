package simulator

import (
	"math"
	"math/rand"

	"github.com/lunchsim/lunchsim/internal/models"
)

// healthyMoodProbability looks up the base probability for the student's
// healthy-importance answer and shifts it by the health-goal modifier,
// clamped to [0,1]. Unknown answers fall back to 0.50.
func healthyMoodProbability(profile *models.StudentProfile, params *models.SimParams) float64 {
	prob, ok := params.HealthyMoodProbability[profile.HealthyImportance]
	if !ok {
		prob = 0.50
	}
	prob += params.HealthGoalModifier[profile.HealthGoal]
	return math.Min(1.0, math.Max(0.0, prob))
}

// GenerateDailyState draws one student's randomized state for a day: budget
// from a Gaussian around the bracket/income base, mood, and drowsiness. The
// three draws always happen in that order so a fixed seed reproduces runs.
func GenerateDailyState(profile *models.StudentProfile, params *models.SimParams, rng *rand.Rand) *models.StudentDailyState {
	baseMoney := params.BaseMoney(profile.MoneyForLunch, profile.IncomeLevel)
	stddev := baseMoney * params.MoneyVariance / 2
	availableMoney := math.Max(0.0, rng.NormFloat64()*stddev+baseMoney)

	mood := models.MoodJunk
	if rng.Float64() < healthyMoodProbability(profile, params) {
		mood = models.MoodHealthy
	}

	isDrowsy := rng.Float64() < params.DrowsinessChance

	return &models.StudentDailyState{
		StudentID:      profile.ID,
		AvailableMoney: math.Round(availableMoney*100) / 100,
		Mood:           mood,
		IsDrowsy:       isDrowsy,
	}
}

// GenerateDailyStates produces fresh states for the whole population in
// profile order.
func GenerateDailyStates(profiles []*models.StudentProfile, params *models.SimParams, rng *rand.Rand) []*models.StudentDailyState {
	states := make([]*models.StudentDailyState, len(profiles))
	for i, profile := range profiles {
		states[i] = GenerateDailyState(profile, params, rng)
	}
	return states
}
