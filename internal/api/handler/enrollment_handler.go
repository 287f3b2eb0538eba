package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/afyalink/health-system-api/internal/core/domain"
	"github.com/afyalink/health-system-api/internal/core/ports"
)

// EnrollmentHandler handles HTTP requests for the enrollment ledger.
type EnrollmentHandler struct {
	service ports.EnrollmentService
}

func NewEnrollmentHandler(service ports.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{service: service}
}

type enrollRequest struct {
	ClientID   uint   `json:"client_id"   validate:"required"`
	ProgramIDs []uint `json:"program_ids" validate:"required,min=1"`
	Status     string `json:"status"`
}

type updateEnrollmentRequest struct {
	Status string `json:"status" validate:"required"`
}

type enrollmentResponse struct {
	ID             uint      `json:"id"`
	ClientID       uint      `json:"client_id"`
	ProgramID      uint      `json:"program_id"`
	EnrollmentDate time.Time `json:"enrollment_date"`
	Status         string    `json:"status"`
}

func toEnrollmentResponse(e domain.Enrollment) enrollmentResponse {
	return enrollmentResponse{
		ID:             e.ID,
		ClientID:       e.ClientID,
		ProgramID:      e.ProgramID,
		EnrollmentDate: e.EnrolledAt,
		Status:         string(e.Status),
	}
}

// Enroll enrolls a client in one or more programs as one atomic batch.
//
// @Summary      Enroll a client in programs
// @Tags         enrollments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      enrollRequest  true  "Client id and program ids"
// @Success      201   {object}  envelope
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/enrollments [post]
func (h *EnrollmentHandler) Enroll(c echo.Context) error {
	principal, err := ctxAuth(c)
	if err != nil {
		return err
	}

	var req enrollRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rows, err := h.service.Enroll(c.Request().Context(), ports.EnrollInput{
		ClientID:   req.ClientID,
		ProgramIDs: req.ProgramIDs,
		Status:     domain.EnrollmentStatus(req.Status),
	}, principal)
	if err != nil {
		return err
	}

	out := make([]enrollmentResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toEnrollmentResponse(row))
	}
	return respond(c, http.StatusCreated, "Client enrolled successfully", out)
}

// UpdateStatus sets the status of one enrollment row.
//
// @Summary      Update an enrollment status
// @Tags         enrollments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        clientId   path      int                      true  "Client id"
// @Param        programId  path      int                      true  "Program id"
// @Param        body       body      updateEnrollmentRequest  true  "New status"
// @Success      200        {object}  envelope
// @Failure      404        {object}  map[string]string
// @Failure      422        {object}  map[string]string
// @Router       /api/enrollments/{clientId}/{programId} [patch]
func (h *EnrollmentHandler) UpdateStatus(c echo.Context) error {
	clientID, err := pathID(c, "clientId")
	if err != nil {
		return err
	}
	programID, err := pathID(c, "programId")
	if err != nil {
		return err
	}

	var req updateEnrollmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	row, err := h.service.UpdateStatus(c.Request().Context(), clientID, programID, domain.EnrollmentStatus(req.Status))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Enrollment updated successfully", toEnrollmentResponse(*row))
}

// Unenroll removes one enrollment row.
//
// @Summary      Unenroll a client from a program
// @Tags         enrollments
// @Produce      json
// @Security     BearerAuth
// @Param        clientId   path      int  true  "Client id"
// @Param        programId  path      int  true  "Program id"
// @Success      200        {object}  envelope
// @Failure      404        {object}  map[string]string
// @Router       /api/enrollments/{clientId}/{programId} [delete]
func (h *EnrollmentHandler) Unenroll(c echo.Context) error {
	clientID, err := pathID(c, "clientId")
	if err != nil {
		return err
	}
	programID, err := pathID(c, "programId")
	if err != nil {
		return err
	}

	if err := h.service.Unenroll(c.Request().Context(), clientID, programID); err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Client unenrolled successfully", nil)
}
