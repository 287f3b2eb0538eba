package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/afyalink/health-system-api/internal/api/metrics"
	"github.com/afyalink/health-system-api/internal/core/domain"
	"github.com/afyalink/health-system-api/internal/core/ports"
)

// EnrollmentService implements the enrollment ledger use cases. The ledger
// stores statuses but does not drive transitions itself; when
// strictTransitions is enabled, status updates are checked against the
// domain transition table before the write.
type EnrollmentService struct {
	enrollments       ports.EnrollmentRepository
	clients           ports.ClientRepository
	programs          ports.ProgramRepository
	strictTransitions bool
	log               zerolog.Logger
}

func NewEnrollmentService(
	enrollments ports.EnrollmentRepository,
	clients ports.ClientRepository,
	programs ports.ProgramRepository,
	strictTransitions bool,
	log zerolog.Logger,
) *EnrollmentService {
	return &EnrollmentService{
		enrollments:       enrollments,
		clients:           clients,
		programs:          programs,
		strictTransitions: strictTransitions,
		log:               log,
	}
}

func (s *EnrollmentService) Enroll(ctx context.Context, input ports.EnrollInput, by domain.AuthContext) ([]domain.Enrollment, error) {
	status := input.Status
	if status == "" {
		status = domain.StatusActive
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	if _, err := s.clients.FindByID(ctx, input.ClientID); err != nil {
		return nil, err
	}

	// Every listed program must exist before any row is built; a missing id
	// fails the whole batch naming the offender.
	now := time.Now().UTC()
	rows := make([]domain.Enrollment, 0, len(input.ProgramIDs))
	for _, programID := range input.ProgramIDs {
		if _, err := s.programs.FindByID(ctx, programID); err != nil {
			if errors.Is(err, domain.ErrProgramNotFound) {
				return nil, fmt.Errorf("program with id %d: %w", programID, domain.ErrProgramNotFound)
			}
			return nil, err
		}
		rows = append(rows, domain.Enrollment{
			ClientID:   input.ClientID,
			ProgramID:  programID,
			EnrolledAt: now,
			Status:     status,
			CreatedBy:  by.UserID,
		})
	}

	created, err := s.enrollments.CreateBatch(ctx, rows)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyEnrolled) {
			metrics.EnrollmentConflictsTotal.Inc()
		}
		return nil, err
	}

	metrics.EnrollmentsCreatedTotal.Add(float64(len(created)))
	s.log.Info().
		Uint("client_id", input.ClientID).
		Int("programs", len(created)).
		Uint("created_by", by.UserID).
		Msg("client enrolled")
	return created, nil
}

func (s *EnrollmentService) Unenroll(ctx context.Context, clientID, programID uint) error {
	if err := s.enrollments.Delete(ctx, clientID, programID); err != nil {
		return err
	}
	s.log.Info().Uint("client_id", clientID).Uint("program_id", programID).Msg("client unenrolled")
	return nil
}

func (s *EnrollmentService) UpdateStatus(ctx context.Context, clientID, programID uint, status domain.EnrollmentStatus) (*domain.Enrollment, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	if s.strictTransitions {
		current, err := s.enrollments.Find(ctx, clientID, programID)
		if err != nil {
			return nil, err
		}
		if current.Status != status && !current.Status.CanTransitionTo(status) {
			return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, current.Status, status)
		}
	}

	return s.enrollments.UpdateStatus(ctx, clientID, programID, status)
}
