package ports

import (
	"context"

	"github.com/afyalink/health-system-api/internal/core/domain"
)

// EnrollInput carries one batch enrollment request. Status defaults to
// active when empty.
type EnrollInput struct {
	ClientID   uint
	ProgramIDs []uint
	Status     domain.EnrollmentStatus
}

// EnrollmentService defines use-case operations for the enrollment ledger.
type EnrollmentService interface {
	// Enroll creates one enrollment row per program as a single atomic batch:
	// either every row is persisted or none is.
	Enroll(ctx context.Context, input EnrollInput, by domain.AuthContext) ([]domain.Enrollment, error)
	Unenroll(ctx context.Context, clientID, programID uint) error
	UpdateStatus(ctx context.Context, clientID, programID uint, status domain.EnrollmentStatus) (*domain.Enrollment, error)
}
