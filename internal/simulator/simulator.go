package simulator

import (
	"log"
	"math/rand"
	"strings"

	"github.com/lucsky/cuid"
	"github.com/schollz/progressbar/v3"

	"github.com/lunchsim/lunchsim/internal/models"
)

// Simulator drives the multi-day lunch competition: N trucks against the
// school cafeteria and the burger joint, one sequential decision per student
// per day. All randomness flows through Rng so a fixed seed reproduces an
// identical run.
type Simulator struct {
	Config    *models.Config
	Students  []*models.StudentProfile
	Trucks    []*models.Truck
	Cafeteria *models.Cafeteria
	FastFood  *models.FastFoodStand
	Rng       *rand.Rand

	profileLookup map[string]*models.StudentProfile
}

func NewSimulator(config *models.Config, students []*models.StudentProfile, trucks []*models.Truck) *Simulator {
	lookup := make(map[string]*models.StudentProfile, len(students))
	for _, p := range students {
		lookup[p.ID] = p
	}
	return &Simulator{
		Config:        config,
		Students:      students,
		Trucks:        trucks,
		Cafeteria:     models.NewCafeteria(models.DefaultCafeteriaFoodPool(), models.DefaultCafeteriaDrinkPool()),
		FastFood:      models.NewFastFoodStand(models.DefaultFastFoodMenu()),
		Rng:           rand.New(rand.NewSource(int64(config.Seed))),
		profileLookup: lookup,
	}
}

// runDay simulates one day and returns its result.
func (s *Simulator) runDay(day int) *models.DailyResult {
	params := &s.Config.Params

	for _, truck := range s.Trucks {
		truck.ResetInventory()
	}
	s.Cafeteria.RotateMenu(s.Rng, params.CafeteriaDailyFoodCount, params.CafeteriaDailyDrinkCount)

	states := GenerateDailyStates(s.Students, params, s.Rng)

	// Random arrival order: earlier students can drain a truck's stock
	// before later students are evaluated.
	s.Rng.Shuffle(len(states), func(i, j int) {
		states[i], states[j] = states[j], states[i]
	})

	truckResults := make(map[string]*models.TruckDailyResult, len(s.Trucks))
	for _, truck := range s.Trucks {
		tr := &models.TruckDailyResult{
			TruckName: truck.TruckName,
			ItemsSold: make(map[string]int),
			Stockouts: make(map[string]int, len(truck.Menu)),
		}
		for _, item := range truck.Menu {
			tr.Stockouts[item.Name] = 0
		}
		truckResults[truck.TruckName] = tr
	}

	lossesByReason := make(map[string]int)
	studentStates := make([]models.StudentDayRecord, 0, len(states))

	for _, state := range states {
		profile := s.profileLookup[state.StudentID]

		MakeDecision(profile, state, s.Trucks, s.Cafeteria, s.FastFood, params)

		if len(state.PurchasedItems) > 0 && state.PurchasedFromTruck != "" {
			tr := truckResults[state.PurchasedFromTruck]
			tr.Customers++
			tr.Revenue += state.TotalSpent
			for _, item := range state.PurchasedItems {
				tr.ItemsSold[item.Name]++
			}
		}

		if state.LossReason != "" {
			lossesByReason[state.LossReason]++
		}

		studentStates = append(studentStates, dayRecord(day, state))
	}

	// Stock only moves downward between resets, so ending the day at zero
	// is exactly the >0 -> 0 transition the flag is meant to capture.
	for _, truck := range s.Trucks {
		for _, item := range truck.Menu {
			if item.CurrentInventory == 0 {
				truckResults[truck.TruckName].Stockouts[item.Name] = 1
			}
		}
	}

	return &models.DailyResult{
		Day:            day,
		TruckResults:   truckResults,
		LossesByReason: lossesByReason,
		TotalStudents:  len(s.Students),
		StudentStates:  studentStates,
	}
}

func dayRecord(day int, state *models.StudentDailyState) models.StudentDayRecord {
	names := make([]string, len(state.PurchasedItems))
	for i, item := range state.PurchasedItems {
		names[i] = item.Name
	}
	return models.StudentDayRecord{
		StudentID:      state.StudentID,
		Day:            int32(day),
		AvailableMoney: state.AvailableMoney,
		Mood:           state.Mood,
		IsDrowsy:       state.IsDrowsy,
		PurchasedItems: strings.Join(names, "; "),
		TotalSpent:     state.TotalSpent,
		Vendor:         state.PurchasedFromTruck,
		LossReason:     state.LossReason,
	}
}

// Run executes the full simulation and aggregates per-truck totals, loss
// tallies, and the winning truck.
func (s *Simulator) Run() *models.RunResult {
	log.Printf("Simulating %d days with %d students and %d trucks", s.Config.Days, len(s.Students), len(s.Trucks))

	var bar *progressbar.ProgressBar
	if !s.Config.Verbose {
		bar = progressbar.Default(int64(s.Config.Days), "simulating")
	}

	dailyResults := make([]*models.DailyResult, 0, s.Config.Days)
	for day := 1; day <= s.Config.Days; day++ {
		result := s.runDay(day)
		dailyResults = append(dailyResults, result)
		if bar != nil {
			_ = bar.Add(1)
		}
		if s.Config.Verbose {
			PrintDailySummary(result, s.truckOrder())
		}
	}

	truckTotals := make(map[string]*models.TruckTotals, len(s.Trucks))
	for _, truck := range s.Trucks {
		totals := &models.TruckTotals{
			TruckName:         truck.TruckName,
			TotalItemsSold:    make(map[string]int),
			TotalStockoutDays: make(map[string]int),
		}
		for _, result := range dailyResults {
			tr := result.TruckResults[truck.TruckName]
			totals.TotalRevenue += tr.Revenue
			totals.TotalCustomers += tr.Customers
			for name, count := range tr.ItemsSold {
				totals.TotalItemsSold[name] += count
			}
			for name, soldOut := range tr.Stockouts {
				totals.TotalStockoutDays[name] += soldOut
			}
		}
		totals.AvgDailyRevenue = totals.TotalRevenue / float64(s.Config.Days)
		totals.AvgDailyCustomers = float64(totals.TotalCustomers) / float64(s.Config.Days)
		truckTotals[truck.TruckName] = totals
	}

	totalLosses := make(map[string]int)
	for _, result := range dailyResults {
		for reason, count := range result.LossesByReason {
			totalLosses[reason] += count
		}
	}

	// Winner is the top-revenue truck; a strictly-greater comparison over
	// the configured order makes revenue ties go to the first truck.
	var winner string
	var winnerRevenue float64
	for _, truck := range s.Trucks {
		if revenue := truckTotals[truck.TruckName].TotalRevenue; winner == "" || revenue > winnerRevenue {
			winner = truck.TruckName
			winnerRevenue = revenue
		}
	}

	return &models.RunResult{
		RunID:               cuid.New(),
		TotalDays:           s.Config.Days,
		TruckOrder:          s.truckOrder(),
		TruckTotals:         truckTotals,
		TotalLossesByReason: totalLosses,
		TotalStudentsServed: len(s.Students) * s.Config.Days,
		Winner:              winner,
		DailyResults:        dailyResults,
	}
}

func (s *Simulator) truckOrder() []string {
	order := make([]string, len(s.Trucks))
	for i, truck := range s.Trucks {
		order[i] = truck.TruckName
	}
	return order
}
