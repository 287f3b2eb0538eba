package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/afyalink/health-system-api/internal/core/ports"
)

// ClientHandler handles HTTP requests for the client registry.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// Create registers a new client.
//
// @Summary      Register a new client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      clientRequest  true  "Client demographics"
// @Success      201   {object}  envelope
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	principal, err := ctxAuth(c)
	if err != nil {
		return err
	}

	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.service.Create(c.Request().Context(), req.toInput(), principal)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "Client registered successfully", toClientResponse(*client))
}

// Search lists clients matching a name query, paginated.
//
// @Summary      Search clients by name
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        query     query     string  false  "Substring matched against first or last name"
// @Param        page      query     int     false  "1-based page number"
// @Param        per_page  query     int     false  "Items per page (max 100)"
// @Success      200       {object}  envelope
// @Failure      401       {object}  map[string]string
// @Router       /api/clients/search [get]
func (h *ClientHandler) Search(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))

	result, err := h.service.Search(c.Request().Context(), ports.SearchClientsInput{
		Query:   c.QueryParam("query"),
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Success", toSearchClientsResponse(result))
}

// Get returns a client profile including enrolled programs.
//
// @Summary      Get a client profile
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Client id"
// @Success      200  {object}  envelope
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Success", toClientDetailResponse(detail))
}

// Update replaces all demographic fields of a client.
//
// @Summary      Update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int            true  "Client id"
// @Param        body  body      clientRequest  true  "Replacement demographics"
// @Success      200   {object}  envelope
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/clients/{id} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.service.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Client updated successfully", toClientResponse(*client))
}

// Delete removes a client and cascades to its enrollments.
//
// @Summary      Delete a client
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Client id"
// @Success      200  {object}  envelope
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Client deleted successfully", nil)
}
