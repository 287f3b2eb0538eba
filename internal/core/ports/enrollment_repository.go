package ports

import (
	"context"

	"github.com/afyalink/health-system-api/internal/core/domain"
)

// EnrollmentRepository defines persistence operations for enrollment rows.
type EnrollmentRepository interface {
	// CreateBatch inserts all rows in one transaction. If any (client, program)
	// pair already exists the whole batch is rolled back and
	// domain.ErrAlreadyEnrolled is returned.
	CreateBatch(ctx context.Context, rows []domain.Enrollment) ([]domain.Enrollment, error)
	Find(ctx context.Context, clientID, programID uint) (*domain.Enrollment, error)
	UpdateStatus(ctx context.Context, clientID, programID uint, status domain.EnrollmentStatus) (*domain.Enrollment, error)
	Delete(ctx context.Context, clientID, programID uint) error
}
