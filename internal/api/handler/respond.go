package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// envelope is the success wrapper used on every 2xx response. Failures render
// {"error": "..."} through the central error handler instead.
type envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, envelope{Message: message, Data: data})
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}
