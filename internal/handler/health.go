package handler // declare the package name; contains HTTP handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/simbaid/backend/internal/model"
)

// Health reports that the process is up.  It does not probe anything and
// always answers 200 {"status":"ok"}, whatever the configuration.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, model.HealthResponse{Status: "ok"})
}
