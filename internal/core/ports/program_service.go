package ports

import (
	"context"

	"github.com/afyalink/health-system-api/internal/core/domain"
)

// ProgramInput carries the fields for creating or replacing a program.
// DurationDays <= 0 means "use the default".
type ProgramInput struct {
	Name         string
	Description  string
	DurationDays int
}

// ProgramDetail is the full program view including how many clients are
// currently enrolled.
type ProgramDetail struct {
	Program       domain.Program
	EnrolledCount int64
}

// ProgramService defines use-case operations for the program catalog.
type ProgramService interface {
	Create(ctx context.Context, input ProgramInput, by domain.AuthContext) (*domain.Program, error)
	Get(ctx context.Context, id uint) (*ProgramDetail, error)
	List(ctx context.Context) ([]domain.Program, error)
	Update(ctx context.Context, id uint, input ProgramInput) (*domain.Program, error)
	Delete(ctx context.Context, id uint) error
}
