package repositories

import (
	"context"

	"github.com/lunchsim/lunchsim/internal/models"
)

type StudentRepository interface {
	BulkCreate(ctx context.Context, students []*models.StudentProfile) error
	Create(ctx context.Context, student *models.StudentProfile) error
	GetAll(ctx context.Context) ([]*models.StudentProfile, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type RunResultRepository interface {
	Create(ctx context.Context, result *models.RunResult) error
	GetWinners(ctx context.Context) (map[string]int, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}
