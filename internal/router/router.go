package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/simbaid/backend/internal/handler"
)

// APIPrefix is the versioned prefix every route lives under.
const APIPrefix = "/api/v1"

// RegisterRoutes mounts the API on e under APIPrefix.  The aiMiddleware
// chain (rate limiting) applies to the /ai routes only; health and the
// self-test stay unthrottled so probes keep working under load.
func RegisterRoutes(e *echo.Echo, h *handler.AIHandler, aiMiddleware ...echo.MiddlewareFunc) {
	v1 := e.Group(APIPrefix)

	// liveness
	v1.GET("/health", handler.Health)
	// synthetic end-to-end check: health + echo round-trip
	v1.GET("/testall", h.TestAll)

	ai := v1.Group("/ai", aiMiddleware...)
	ai.POST("/echo", h.Echo)
}
