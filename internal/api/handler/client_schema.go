package handler

import (
	"time"

	"github.com/afyalink/health-system-api/internal/core/domain"
	"github.com/afyalink/health-system-api/internal/core/ports"
)

// Request and response types are owned by the transport layer so the JSON
// contract is not coupled to internal service changes. Dates cross the wire
// as ISO-8601 (YYYY-MM-DD) everywhere.

type clientRequest struct {
	FirstName     string `json:"first_name"     validate:"required"`
	LastName      string `json:"last_name"      validate:"required"`
	DateOfBirth   string `json:"date_of_birth"  validate:"required"`
	Gender        string `json:"gender"         validate:"required"`
	ContactNumber string `json:"contact_number"`
	Email         string `json:"email"`
	Address       string `json:"address"`
}

func (r clientRequest) toInput() ports.ClientInput {
	return ports.ClientInput{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		DateOfBirth:   r.DateOfBirth,
		Gender:        r.Gender,
		ContactNumber: r.ContactNumber,
		Email:         r.Email,
		Address:       r.Address,
	}
}

type clientResponse struct {
	ID            uint      `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	DateOfBirth   string    `json:"date_of_birth"`
	Gender        string    `json:"gender"`
	ContactNumber string    `json:"contact_number,omitempty"`
	Email         string    `json:"email,omitempty"`
	Address       string    `json:"address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	CreatedBy     uint      `json:"created_by"`
}

func toClientResponse(c domain.Client) clientResponse {
	return clientResponse{
		ID:            c.ID,
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		DateOfBirth:   c.DateOfBirth.Format(domain.DateLayout),
		Gender:        c.Gender,
		ContactNumber: c.ContactNumber,
		Email:         c.Email,
		Address:       c.Address,
		CreatedAt:     c.CreatedAt,
		CreatedBy:     c.CreatedBy,
	}
}

type enrolledProgramResponse struct {
	ProgramID      uint      `json:"program_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	DurationDays   int       `json:"duration_days"`
	EnrollmentDate time.Time `json:"enrollment_date"`
	Status         string    `json:"status"`
}

type clientDetailResponse struct {
	clientResponse
	Programs []enrolledProgramResponse `json:"programs"`
}

func toClientDetailResponse(d *ports.ClientDetail) clientDetailResponse {
	programs := make([]enrolledProgramResponse, 0, len(d.Programs))
	for _, p := range d.Programs {
		programs = append(programs, enrolledProgramResponse{
			ProgramID:      p.Program.ID,
			Name:           p.Program.Name,
			Description:    p.Program.Description,
			DurationDays:   p.Program.DurationDays,
			EnrollmentDate: p.EnrolledAt,
			Status:         string(p.Status),
		})
	}
	return clientDetailResponse{
		clientResponse: toClientResponse(d.Client),
		Programs:       programs,
	}
}

// searchClientsResponse mirrors the pagination contract: total and pages are
// computed over the full matching set.
type searchClientsResponse struct {
	Items       []clientResponse `json:"items"`
	Total       int64            `json:"total"`
	Pages       int              `json:"pages"`
	CurrentPage int              `json:"current_page"`
}

func toSearchClientsResponse(r *ports.SearchClientsResult) searchClientsResponse {
	items := make([]clientResponse, 0, len(r.Items))
	for _, c := range r.Items {
		items = append(items, toClientResponse(c))
	}
	return searchClientsResponse{
		Items:       items,
		Total:       r.Total,
		Pages:       r.Pages,
		CurrentPage: r.CurrentPage,
	}
}
