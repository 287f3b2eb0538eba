package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/afyalink/health-system-api/internal/core/domain"
	"github.com/afyalink/health-system-api/internal/core/ports"
)

// ProgramHandler handles HTTP requests for the program catalog.
type ProgramHandler struct {
	service ports.ProgramService
}

func NewProgramHandler(service ports.ProgramService) *ProgramHandler {
	return &ProgramHandler{service: service}
}

type programRequest struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description"`
	DurationDays int    `json:"duration_days"`
}

type programResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	DurationDays int       `json:"duration_days"`
	CreatedAt    time.Time `json:"created_at"`
	CreatedBy    uint      `json:"created_by"`
}

type programDetailResponse struct {
	programResponse
	EnrolledCount int64 `json:"enrolled_count"`
}

func toProgramResponse(p domain.Program) programResponse {
	return programResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		DurationDays: p.DurationDays,
		CreatedAt:    p.CreatedAt,
		CreatedBy:    p.CreatedBy,
	}
}

// Create adds a new health program.
//
// @Summary      Create a health program
// @Tags         programs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      programRequest  true  "Program details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/programs [post]
func (h *ProgramHandler) Create(c echo.Context) error {
	principal, err := ctxAuth(c)
	if err != nil {
		return err
	}

	var req programRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	program, err := h.service.Create(c.Request().Context(), ports.ProgramInput{
		Name:         req.Name,
		Description:  req.Description,
		DurationDays: req.DurationDays,
	}, principal)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "Program created successfully", toProgramResponse(*program))
}

// List returns all programs.
//
// @Summary      List programs
// @Tags         programs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  map[string]string
// @Router       /api/programs [get]
func (h *ProgramHandler) List(c echo.Context) error {
	programs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]programResponse, 0, len(programs))
	for _, p := range programs {
		out = append(out, toProgramResponse(p))
	}
	return respond(c, http.StatusOK, "Success", out)
}

// Get returns one program with its enrolled-client count.
//
// @Summary      Get a program
// @Tags         programs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Program id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  map[string]string
// @Router       /api/programs/{id} [get]
func (h *ProgramHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Success", programDetailResponse{
		programResponse: toProgramResponse(detail.Program),
		EnrolledCount:   detail.EnrolledCount,
	})
}

// Update modifies a program's name, description or duration.
//
// @Summary      Update a program
// @Tags         programs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Program id"
// @Param        body  body      programRequest  true  "Updated program details"
// @Success      200   {object}  envelope
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/programs/{id} [put]
func (h *ProgramHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req programRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	program, err := h.service.Update(c.Request().Context(), id, ports.ProgramInput{
		Name:         req.Name,
		Description:  req.Description,
		DurationDays: req.DurationDays,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Program updated successfully", toProgramResponse(*program))
}

// Delete removes a program and cascades to its enrollments.
//
// @Summary      Delete a program
// @Tags         programs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Program id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  map[string]string
// @Router       /api/programs/{id} [delete]
func (h *ProgramHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Program deleted successfully", nil)
}
