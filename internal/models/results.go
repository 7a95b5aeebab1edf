package models

// TruckDailyResult is one truck's outcome for a single day.
type TruckDailyResult struct {
	TruckName string         `json:"truck_name"`
	Revenue   float64        `json:"revenue"`
	Customers int            `json:"customers"`
	ItemsSold map[string]int `json:"items_sold"`
	Stockouts map[string]int `json:"stockouts"` // item -> 1 if it sold out today
}

// StudentDayRecord is a flattened per-student per-day outcome row, shaped for
// the file and parquet sinks.
type StudentDayRecord struct {
	StudentID      string  `json:"student_id" parquet:"name=student_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Day            int32   `json:"day" parquet:"name=day, type=INT32"`
	AvailableMoney float64 `json:"available_money" parquet:"name=available_money, type=DOUBLE"`
	Mood           string  `json:"mood" parquet:"name=mood, type=BYTE_ARRAY, convertedtype=UTF8"`
	IsDrowsy       bool    `json:"is_drowsy" parquet:"name=is_drowsy, type=BOOLEAN"`
	PurchasedItems string  `json:"purchased_items" parquet:"name=purchased_items, type=BYTE_ARRAY, convertedtype=UTF8"`
	TotalSpent     float64 `json:"total_spent" parquet:"name=total_spent, type=DOUBLE"`
	Vendor         string  `json:"vendor" parquet:"name=vendor, type=BYTE_ARRAY, convertedtype=UTF8"`
	LossReason     string  `json:"loss_reason" parquet:"name=loss_reason, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// DailyResult holds everything that happened on one simulated day.
type DailyResult struct {
	Day            int                          `json:"day"`
	TruckResults   map[string]*TruckDailyResult `json:"truck_results"`
	LossesByReason map[string]int               `json:"losses_by_reason"`
	TotalStudents  int                          `json:"total_students"`
	StudentStates  []StudentDayRecord           `json:"student_states,omitempty"`
}

// Revenue sums the day's revenue across all trucks.
func (d *DailyResult) Revenue() float64 {
	var total float64
	for _, tr := range d.TruckResults {
		total += tr.Revenue
	}
	return total
}

// Customers sums the day's truck customers.
func (d *DailyResult) Customers() int {
	var total int
	for _, tr := range d.TruckResults {
		total += tr.Customers
	}
	return total
}

// TruckTotals aggregates one truck across the whole run.
type TruckTotals struct {
	TruckName         string         `json:"truck_name"`
	TotalRevenue      float64        `json:"total_revenue"`
	TotalCustomers    int            `json:"total_customers"`
	TotalItemsSold    map[string]int `json:"total_items_sold"`
	TotalStockoutDays map[string]int `json:"total_stockout_days"` // item -> days it sold out
	AvgDailyRevenue   float64        `json:"avg_daily_revenue"`
	AvgDailyCustomers float64        `json:"avg_daily_customers"`
}

// RunResult is the full outcome of a multi-day run. TruckOrder preserves the
// configured truck order, which also breaks revenue ties for the winner.
type RunResult struct {
	RunID               string                  `json:"run_id"`
	TotalDays           int                     `json:"total_days"`
	TruckOrder          []string                `json:"truck_order"`
	TruckTotals         map[string]*TruckTotals `json:"truck_totals"`
	TotalLossesByReason map[string]int          `json:"total_losses_by_reason"`
	TotalStudentsServed int                     `json:"total_students_served"`
	Winner              string                  `json:"winner"`
	DailyResults        []*DailyResult          `json:"daily_results"`
}
