package router

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/simbaid/backend/internal/config"
	"github.com/simbaid/backend/internal/handler"
	"github.com/simbaid/backend/internal/service"
)

func TestRegisterRoutes(t *testing.T) {
	e := echo.New()
	h := handler.NewAIHandler(service.NewFactory(nil))

	RegisterRoutes(e, h)

	var got []string
	for _, r := range e.Routes() {
		if r.Method == echo.RouteNotFound {
			continue
		}
		got = append(got, r.Method+" "+r.Path)
	}
	sort.Strings(got)

	assert.Equal(t, []string{
		http.MethodGet + " /api/v1/health",
		http.MethodGet + " /api/v1/testall",
		http.MethodPost + " /api/v1/ai/echo",
	}, got)
}

func TestAIMiddlewareScope(t *testing.T) {
	e := echo.New()
	h := handler.NewAIHandler(service.NewFactory(&config.Settings{}))
	mark := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set("X-AI-Route", "1")
			return next(c)
		}
	}
	RegisterRoutes(e, h, mark)

	req := httptest.NewRequest(http.MethodPost, APIPrefix+"/ai/echo", strings.NewReader(`{"text":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-AI-Route"))

	for _, path := range []string{"/health", "/testall"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, APIPrefix+path, nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("X-AI-Route"), path)
	}
}
