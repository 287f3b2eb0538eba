package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/afyalink/health-system-api/internal/api/middleware"
	"github.com/afyalink/health-system-api/internal/core/domain"
	"github.com/afyalink/health-system-api/internal/core/ports"
)

type stubEnrollmentService struct {
	enrollInput ports.EnrollInput
	enrollOut   []domain.Enrollment
	enrollErr   error

	updateOut *domain.Enrollment
	updateErr error

	unenrolled  [2]uint
	unenrollErr error
}

func (s *stubEnrollmentService) Enroll(_ context.Context, input ports.EnrollInput, _ domain.AuthContext) ([]domain.Enrollment, error) {
	s.enrollInput = input
	return s.enrollOut, s.enrollErr
}

func (s *stubEnrollmentService) Unenroll(_ context.Context, clientID, programID uint) error {
	s.unenrolled = [2]uint{clientID, programID}
	return s.unenrollErr
}

func (s *stubEnrollmentService) UpdateStatus(context.Context, uint, uint, domain.EnrollmentStatus) (*domain.Enrollment, error) {
	return s.updateOut, s.updateErr
}

func TestEnrollmentHandler_Enroll_Success(t *testing.T) {
	now := time.Now().UTC()
	svc := &stubEnrollmentService{enrollOut: []domain.Enrollment{
		{ID: 1, ClientID: 1, ProgramID: 10, EnrolledAt: now, Status: domain.StatusActive},
		{ID: 2, ClientID: 1, ProgramID: 11, EnrolledAt: now, Status: domain.StatusActive},
	}}
	h := NewEnrollmentHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/enrollments",
		`{"client_id":1,"program_ids":[10,11]}`)
	c.Set(middleware.AuthContextKey, domain.AuthContext{UserID: 4})

	if err := h.Enroll(c); err != nil {
		t.Fatalf("Enroll returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.enrollInput.ClientID != 1 || len(svc.enrollInput.ProgramIDs) != 2 {
		t.Fatalf("unexpected input: %+v", svc.enrollInput)
	}

	var payload struct {
		Message string `json:"message"`
		Data    []struct {
			ProgramID uint   `json:"program_id"`
			Status    string `json:"status"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Message != "Client enrolled successfully" {
		t.Fatalf("unexpected message %q", payload.Message)
	}
	if len(payload.Data) != 2 || payload.Data[0].ProgramID != 10 || payload.Data[0].Status != "active" {
		t.Fatalf("unexpected data: %+v", payload.Data)
	}
}

func TestEnrollmentHandler_Enroll_EmptyPrograms(t *testing.T) {
	h := NewEnrollmentHandler(&stubEnrollmentService{})
	c, _ := newTestContext(t, http.MethodPost, "/api/enrollments",
		`{"client_id":1,"program_ids":[]}`)
	c.Set(middleware.AuthContextKey, domain.AuthContext{UserID: 4})

	err := h.Enroll(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestEnrollmentHandler_Enroll_Conflict(t *testing.T) {
	h := NewEnrollmentHandler(&stubEnrollmentService{enrollErr: domain.ErrAlreadyEnrolled})
	c, _ := newTestContext(t, http.MethodPost, "/api/enrollments",
		`{"client_id":1,"program_ids":[10]}`)
	c.Set(middleware.AuthContextKey, domain.AuthContext{UserID: 4})

	if err := h.Enroll(c); !errors.Is(err, domain.ErrAlreadyEnrolled) {
		t.Fatalf("expected ErrAlreadyEnrolled, got %v", err)
	}
}

func TestEnrollmentHandler_Enroll_Unauthenticated(t *testing.T) {
	h := NewEnrollmentHandler(&stubEnrollmentService{})
	c, _ := newTestContext(t, http.MethodPost, "/api/enrollments",
		`{"client_id":1,"program_ids":[10]}`)

	err := h.Enroll(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestEnrollmentHandler_UpdateStatus(t *testing.T) {
	svc := &stubEnrollmentService{updateOut: &domain.Enrollment{
		ID: 1, ClientID: 1, ProgramID: 10, Status: domain.StatusCompleted,
	}}
	h := NewEnrollmentHandler(svc)

	c, rec := newTestContext(t, http.MethodPatch, "/api/enrollments/1/10",
		`{"status":"completed"}`)
	c.SetParamNames("clientId", "programId")
	c.SetParamValues("1", "10")

	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	message, data := decodeEnvelope(t, rec)
	if message != "Enrollment updated successfully" {
		t.Fatalf("unexpected message %q", message)
	}
	if data["status"] != "completed" {
		t.Fatalf("unexpected data: %v", data)
	}
}

func TestEnrollmentHandler_UpdateStatus_MissingBody(t *testing.T) {
	h := NewEnrollmentHandler(&stubEnrollmentService{})
	c, _ := newTestContext(t, http.MethodPatch, "/api/enrollments/1/10", `{}`)
	c.SetParamNames("clientId", "programId")
	c.SetParamValues("1", "10")

	err := h.UpdateStatus(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestEnrollmentHandler_Unenroll(t *testing.T) {
	svc := &stubEnrollmentService{}
	h := NewEnrollmentHandler(svc)

	c, rec := newTestContext(t, http.MethodDelete, "/api/enrollments/1/10", "")
	c.SetParamNames("clientId", "programId")
	c.SetParamValues("1", "10")

	if err := h.Unenroll(c); err != nil {
		t.Fatalf("Unenroll returned error: %v", err)
	}
	if svc.unenrolled != [2]uint{1, 10} {
		t.Fatalf("unexpected ids: %v", svc.unenrolled)
	}
	message, _ := decodeEnvelope(t, rec)
	if message != "Client unenrolled successfully" {
		t.Fatalf("unexpected message %q", message)
	}
}

func TestEnrollmentHandler_Unenroll_NotFound(t *testing.T) {
	h := NewEnrollmentHandler(&stubEnrollmentService{unenrollErr: domain.ErrEnrollmentNotFound})
	c, _ := newTestContext(t, http.MethodDelete, "/api/enrollments/1/10", "")
	c.SetParamNames("clientId", "programId")
	c.SetParamValues("1", "10")

	if err := h.Unenroll(c); !errors.Is(err, domain.ErrEnrollmentNotFound) {
		t.Fatalf("expected ErrEnrollmentNotFound, got %v", err)
	}
}

func TestEnrollmentHandler_Unenroll_InvalidID(t *testing.T) {
	h := NewEnrollmentHandler(&stubEnrollmentService{})
	c, _ := newTestContext(t, http.MethodDelete, "/api/enrollments/0/10", "")
	c.SetParamNames("clientId", "programId")
	c.SetParamValues("0", "10")

	err := h.Unenroll(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
