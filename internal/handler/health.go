package handler // declare the package name; contains HTTP handlers

import (
	"net/http" // net/http provides status codes and response helpers
	"time"     // time formats the health check timestamp

	"github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// Health is a simple health-check endpoint used by load balancers and
// monitoring systems to verify that the service is running.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":    "OK",
		"message":   "Server is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Root describes the API surface for anyone hitting the bare host.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Seminar Backend API",
		"version": "1.0.0",
		"endpoints": echo.Map{
			"health":   "/health",
			"seminars": "/api/seminars",
		},
	})
}

// NotFound shapes unmatched routes into the standard failure envelope so
// every response of the service, including routing misses, is uniform.
func NotFound(c echo.Context) error {
	return fail(c, http.StatusNotFound, "requested endpoint not found", nil)
}
