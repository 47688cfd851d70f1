// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"
	"strings"

	"shoppro/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// parseID parses a numeric identifier taken from a path or query value.
func parseID(raw string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
}

// actorID prefers the body-supplied id and falls back to the query string,
// matching how existing clients send their credentials on mutating requests.
func actorID(bodyID int64, c echo.Context, param string) (int64, error) {
	if bodyID != 0 {
		return bodyID, nil
	}

	return parseID(c.QueryParam(param))
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
