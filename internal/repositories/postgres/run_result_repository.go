package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lunchsim/lunchsim/internal/models"
)

type RunResultRepository struct {
	pool *pgxpool.Pool
}

func NewRunResultRepository(pool *pgxpool.Pool) *RunResultRepository {
	return &RunResultRepository{pool: pool}
}

// Create stores the run summary plus one row per truck. Daily results are
// kept as JSON; they are read back for analysis, not queried relationally.
func (r *RunResultRepository) Create(ctx context.Context, result *models.RunResult) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	losses, err := json.Marshal(result.TotalLossesByReason)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
        INSERT INTO simulation_runs (
            id, total_days, total_students_served, winner, losses_by_reason
        ) VALUES ($1, $2, $3, $4, $5)
    `, result.RunID, result.TotalDays, result.TotalStudentsServed, result.Winner, losses)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	for position, truckName := range result.TruckOrder {
		totals := result.TruckTotals[truckName]
		itemsSold, err := json.Marshal(totals.TotalItemsSold)
		if err != nil {
			return err
		}
		stockouts, err := json.Marshal(totals.TotalStockoutDays)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
            INSERT INTO truck_results (
                run_id, truck_name, position, total_revenue, total_customers,
                avg_daily_revenue, avg_daily_customers, items_sold, stockout_days
            ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        `, result.RunID, truckName, position, totals.TotalRevenue, totals.TotalCustomers,
			totals.AvgDailyRevenue, totals.AvgDailyCustomers, itemsSold, stockouts)
		if err != nil {
			return fmt.Errorf("failed to insert truck result for %s: %w", truckName, err)
		}
	}

	return tx.Commit(ctx)
}

// GetWinners tallies how many stored runs each truck has won.
func (r *RunResultRepository) GetWinners(ctx context.Context) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, "SELECT winner, COUNT(*) FROM simulation_runs GROUP BY winner")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	winners := make(map[string]int)
	for rows.Next() {
		var name string
		var count int
		if err := rows.Scan(&name, &count); err != nil {
			return nil, err
		}
		winners[name] = count
	}
	return winners, rows.Err()
}

func (r *RunResultRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM simulation_runs").Scan(&count)
	return count, err
}

func (r *RunResultRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, "DELETE FROM truck_results"); err != nil {
		return err
	}
	_, err := r.pool.Exec(ctx, "DELETE FROM simulation_runs")
	return err
}
