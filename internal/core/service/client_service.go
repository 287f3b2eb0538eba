package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/afyalink/health-system-api/internal/api/metrics"
	"github.com/afyalink/health-system-api/internal/core/domain"
	"github.com/afyalink/health-system-api/internal/core/ports"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// ClientService implements the client registry use cases.
type ClientService struct {
	repo ports.ClientRepository
	log  zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, log zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, log: log}
}

func (s *ClientService) Create(ctx context.Context, input ports.ClientInput, by domain.AuthContext) (*domain.Client, error) {
	client, err := clientFromInput(input)
	if err != nil {
		return nil, err
	}
	client.CreatedAt = time.Now().UTC()
	client.CreatedBy = by.UserID

	created, err := s.repo.Create(ctx, client)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create client")
		return nil, err
	}

	metrics.ClientsCreatedTotal.Inc()
	s.log.Info().Uint("client_id", created.ID).Uint("created_by", by.UserID).Msg("client registered")
	return created, nil
}

func (s *ClientService) Get(ctx context.Context, id uint) (*ports.ClientDetail, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	programs, err := s.repo.EnrolledPrograms(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ports.ClientDetail{Client: *client, Programs: programs}, nil
}

func (s *ClientService) Search(ctx context.Context, input ports.SearchClientsInput) (*ports.SearchClientsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	perPage := input.PerPage
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	items, total, err := s.repo.Search(ctx, input.Query, (page-1)*perPage, perPage)
	if err != nil {
		return nil, err
	}

	pages := int((total + int64(perPage) - 1) / int64(perPage))

	return &ports.SearchClientsResult{
		Items:       items,
		Total:       total,
		Pages:       pages,
		CurrentPage: page,
	}, nil
}

// Update replaces every demographic field of the client; there is no
// partial-merge behaviour.
func (s *ClientService) Update(ctx context.Context, id uint, input ports.ClientInput) (*domain.Client, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	replacement, err := clientFromInput(input)
	if err != nil {
		return nil, err
	}
	replacement.ID = existing.ID
	replacement.CreatedAt = existing.CreatedAt
	replacement.CreatedBy = existing.CreatedBy

	return s.repo.Update(ctx, replacement)
}

func (s *ClientService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Uint("client_id", id).Msg("client deleted with enrollments")
	return nil
}

// clientFromInput validates the mandatory fields and the date format before
// any write is attempted.
func clientFromInput(input ports.ClientInput) (*domain.Client, error) {
	if input.FirstName == "" || input.LastName == "" || input.DateOfBirth == "" || input.Gender == "" {
		return nil, domain.ErrMissingRequiredFields
	}

	dob, err := time.Parse(domain.DateLayout, input.DateOfBirth)
	if err != nil {
		return nil, domain.ErrInvalidDateOfBirth
	}

	return &domain.Client{
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		DateOfBirth:   dob,
		Gender:        input.Gender,
		ContactNumber: input.ContactNumber,
		Email:         input.Email,
		Address:       input.Address,
	}, nil
}
