package ports

import (
	"context"

	"github.com/afyalink/health-system-api/internal/core/domain"
)

// ProgramRepository defines persistence operations for programs.
type ProgramRepository interface {
	Create(ctx context.Context, p *domain.Program) (*domain.Program, error)
	FindByID(ctx context.Context, id uint) (*domain.Program, error)
	List(ctx context.Context) ([]domain.Program, error)
	Update(ctx context.Context, p *domain.Program) (*domain.Program, error)
	// Delete removes the program and all of its enrollment rows in a single
	// transaction.
	Delete(ctx context.Context, id uint) error
	CountEnrollments(ctx context.Context, programID uint) (int64, error)
}
