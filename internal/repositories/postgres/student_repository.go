package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lunchsim/lunchsim/internal/models"
)

type StudentRepository struct {
	pool *pgxpool.Pool
}

func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

func (r *StudentRepository) BulkCreate(ctx context.Context, students []*models.StudentProfile) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"student_profiles"},
		[]string{
			"id", "grade", "gender", "income_level", "spend_on_drink",
			"health_goal", "metabolism", "money_for_lunch", "activity_level",
			"healthy_importance", "wants_sweet", "favorite_food",
			"water_rank", "soda_rank", "juice_rank", "energy_drink_rank",
			"coffee_tea_rank", "has_car",
		},
		pgx.CopyFromSlice(len(students), func(i int) ([]interface{}, error) {
			s := students[i]
			return []interface{}{
				s.ID, s.Grade, s.Gender, s.IncomeLevel, s.SpendOnDrink,
				s.HealthGoal, s.Metabolism, s.MoneyForLunch, s.ActivityLevel,
				s.HealthyImportance, s.WantsSweet, s.FavoriteFood,
				s.WaterRank, s.SodaRank, s.JuiceRank, s.EnergyDrinkRank,
				s.CoffeeTeaRank, s.HasCar,
			}, nil
		}),
	)
	return err
}

func (r *StudentRepository) Create(ctx context.Context, student *models.StudentProfile) error {
	query := `
        INSERT INTO student_profiles (
            id, grade, gender, income_level, spend_on_drink, health_goal,
            metabolism, money_for_lunch, activity_level, healthy_importance,
            wants_sweet, favorite_food, water_rank, soda_rank, juice_rank,
            energy_drink_rank, coffee_tea_rank, has_car
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
            $15, $16, $17, $18
        )
    `

	_, err := r.pool.Exec(ctx, query,
		student.ID,
		student.Grade,
		student.Gender,
		student.IncomeLevel,
		student.SpendOnDrink,
		student.HealthGoal,
		student.Metabolism,
		student.MoneyForLunch,
		student.ActivityLevel,
		student.HealthyImportance,
		student.WantsSweet,
		student.FavoriteFood,
		student.WaterRank,
		student.SodaRank,
		student.JuiceRank,
		student.EnergyDrinkRank,
		student.CoffeeTeaRank,
		student.HasCar,
	)
	return err
}

func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.StudentProfile, error) {
	query := `
        SELECT
            id, grade, gender, income_level, spend_on_drink, health_goal,
            metabolism, money_for_lunch, activity_level, healthy_importance,
            wants_sweet, favorite_food, water_rank, soda_rank, juice_rank,
            energy_drink_rank, coffee_tea_rank, has_car
        FROM student_profiles
        ORDER BY id
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.StudentProfile
	for rows.Next() {
		var s models.StudentProfile
		err := rows.Scan(
			&s.ID, &s.Grade, &s.Gender, &s.IncomeLevel, &s.SpendOnDrink,
			&s.HealthGoal, &s.Metabolism, &s.MoneyForLunch, &s.ActivityLevel,
			&s.HealthyImportance, &s.WantsSweet, &s.FavoriteFood,
			&s.WaterRank, &s.SodaRank, &s.JuiceRank, &s.EnergyDrinkRank,
			&s.CoffeeTeaRank, &s.HasCar,
		)
		if err != nil {
			return nil, err
		}
		students = append(students, &s)
	}
	return students, rows.Err()
}

func (r *StudentRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM student_profiles").Scan(&count)
	return count, err
}

func (r *StudentRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM student_profiles")
	return err
}
