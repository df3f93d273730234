package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedEcho(buf *bytes.Buffer) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e := echo.New()
	e.Use(RequestID(), RequestLogger(logger))
	e.GET("/ok", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadGateway, "upstream down")
	})
	return e
}

func TestRequestIDGenerated(t *testing.T) {
	e := newLoggedEcho(&bytes.Buffer{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

	id := rec.Header().Get(echo.HeaderXRequestID)
	_, err := uuid.Parse(id)
	assert.NoError(t, err, "request id %q should be a uuid", id)
}

func TestRequestIDPreserved(t *testing.T) {
	e := newLoggedEcho(&bytes.Buffer{})

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(echo.HeaderXRequestID, "client-id")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "client-id", rec.Header().Get(echo.HeaderXRequestID))
}

func TestRequestLoggerRecords(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var buf bytes.Buffer
		e := newLoggedEcho(&buf)
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "request", rec["msg"])
		assert.Equal(t, "INFO", rec["level"])
		assert.Equal(t, "GET", rec["method"])
		assert.Equal(t, "/ok", rec["uri"])
		assert.EqualValues(t, 200, rec["status"])
		assert.NotEmpty(t, rec["request_id"])
	})

	t.Run("Error", func(t *testing.T) {
		var buf bytes.Buffer
		e := newLoggedEcho(&buf)
		resp := httptest.NewRecorder()
		e.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/boom", nil))

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "ERROR", rec["level"])
		assert.EqualValues(t, 502, rec["status"])
		assert.Contains(t, rec["error"], "upstream down")
		assert.Equal(t, http.StatusBadGateway, resp.Code)
	})
}
