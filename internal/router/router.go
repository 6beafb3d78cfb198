package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/seminar-backend/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes wires every endpoint of the service onto the provided
// Echo instance.  The seminar collection lives under /api/seminars; the
// health and root endpoints sit at the top level for load balancers and
// API discovery.  Anything that matches no route falls through to the
// JSON 404 handler so that even routing misses return the standard
// envelope.
func RegisterRoutes(e *echo.Echo, s *handler.SeminarHandler) {
	e.GET("/health", handler.Health)
	e.GET("/", handler.Root)

	// Seminar collection.  The static /search route is registered
	// alongside /:id; Echo matches static segments before parameters,
	// so "search" is never treated as an id.
	g := e.Group("/api/seminars")
	g.GET("", s.List)
	g.GET("/search", s.Search)
	g.GET("/:id", s.GetByID)
	g.POST("", s.Create)
	g.PUT("/:id", s.Update)
	g.DELETE("/:id", s.Delete)

	e.RouteNotFound("/*", handler.NotFound)
}
