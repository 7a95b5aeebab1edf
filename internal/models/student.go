package models

// StudentProfile is the immutable survey-derived profile of one student,
// created once for the whole run.
type StudentProfile struct {
	ID          string `json:"id"`
	Grade       int    `json:"grade"`
	Gender      string `json:"gender"`
	IncomeLevel string `json:"income_level"` // Low, Medium, High

	SpendOnDrink      string `json:"spend_on_drink"`     // Q1
	HealthGoal        string `json:"health_goal"`        // Q2
	Metabolism        string `json:"metabolism"`         // Q3
	MoneyForLunch     string `json:"money_for_lunch"`    // Q4
	ActivityLevel     string `json:"activity_level"`     // Q5
	HealthyImportance string `json:"healthy_importance"` // Q6
	WantsSweet        string `json:"wants_sweet"`        // Q7
	FavoriteFood      string `json:"favorite_food"`      // Q8, free text

	// Drink-category preference ranks, 1 = most preferred, 5 = unranked.
	WaterRank       int `json:"water_rank"`
	SodaRank        int `json:"soda_rank"`
	JuiceRank       int `json:"juice_rank"`
	EnergyDrinkRank int `json:"energy_drink_rank"`
	CoffeeTeaRank   int `json:"coffee_tea_rank"`

	HasCar bool `json:"has_car"`
}

// StudentDailyState is the per-day randomized state of a student plus the
// outcome of that day's decision. Created fresh every simulated day.
type StudentDailyState struct {
	StudentID      string  `json:"student_id"`
	AvailableMoney float64 `json:"available_money"`
	Mood           string  `json:"mood"` // "healthy" or "junk"
	IsDrowsy       bool    `json:"is_drowsy"`

	// Decision outcome, populated by the decision policy. PurchasedItems
	// is in purchase order: food before drink.
	PurchasedItems     []*MenuItem `json:"purchased_items"`
	TotalSpent         float64     `json:"total_spent"`
	ChoseSchoolLunch   bool        `json:"chose_school_lunch"`
	ChoseFastFood      bool        `json:"chose_fast_food"`
	LossReason         string      `json:"loss_reason"`
	PurchasedFromTruck string      `json:"purchased_from_truck"`
}
