package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/afyalink/health-system-api/internal/core/domain"
	"github.com/afyalink/health-system-api/internal/core/ports"
)

// ProgramService implements the program catalog use cases.
type ProgramService struct {
	repo ports.ProgramRepository
	log  zerolog.Logger
}

func NewProgramService(repo ports.ProgramRepository, log zerolog.Logger) *ProgramService {
	return &ProgramService{repo: repo, log: log}
}

func (s *ProgramService) Create(ctx context.Context, input ports.ProgramInput, by domain.AuthContext) (*domain.Program, error) {
	if input.Name == "" {
		return nil, domain.ErrProgramNameRequired
	}

	duration := input.DurationDays
	if duration <= 0 {
		duration = domain.DefaultProgramDuration
	}

	program := &domain.Program{
		Name:         input.Name,
		Description:  input.Description,
		DurationDays: duration,
		CreatedAt:    time.Now().UTC(),
		CreatedBy:    by.UserID,
	}

	created, err := s.repo.Create(ctx, program)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("name", created.Name).Uint("created_by", by.UserID).Msg("program created")
	return created, nil
}

func (s *ProgramService) Get(ctx context.Context, id uint) (*ports.ProgramDetail, error) {
	program, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountEnrollments(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ports.ProgramDetail{Program: *program, EnrolledCount: count}, nil
}

func (s *ProgramService) List(ctx context.Context) ([]domain.Program, error) {
	return s.repo.List(ctx)
}

func (s *ProgramService) Update(ctx context.Context, id uint, input ports.ProgramInput) (*domain.Program, error) {
	if input.Name == "" {
		return nil, domain.ErrProgramNameRequired
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Description = input.Description
	if input.DurationDays > 0 {
		existing.DurationDays = input.DurationDays
	}

	return s.repo.Update(ctx, existing)
}

func (s *ProgramService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Uint("program_id", id).Msg("program deleted with enrollments")
	return nil
}
