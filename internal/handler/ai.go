package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/simbaid/backend/internal/model"
	"github.com/simbaid/backend/internal/service"
)

// pingProbe is the literal sent through the AI service by the self-test.
const pingProbe = "ping"

// AIHandler serves the AI routes.  A fresh service is taken from NewAI for
// every request.
type AIHandler struct {
	NewAI service.Factory
}

// NewAIHandler constructs an AIHandler and panics if the factory is nil.
func NewAIHandler(newAI service.Factory) *AIHandler {
	if newAI == nil {
		panic("nil service factory passed to NewAIHandler")
	}
	return &AIHandler{NewAI: newAI}
}

// Echo handles POST /ai/echo.  The body must carry a "text" string; an empty
// string is valid and echoes back as "".
func (h *AIHandler) Echo(c echo.Context) error {
	var req model.AIRequest
	if err := c.Bind(&req); err != nil {
		if errors.Is(err, echo.ErrUnsupportedMediaType) {
			return err
		}
		return bindError(err)
	}
	if req.Text == nil {
		return &ValidationError{Issues: []model.ValidationIssue{{
			Loc:  []string{"body", "text"},
			Msg:  "Field required",
			Type: "missing",
		}}}
	}

	reply, err := h.NewAI().Echo(c.Request().Context(), *req.Text)
	if err != nil {
		slog.ErrorContext(c.Request().Context(), "ai echo failed", "error", err)
		return echo.NewHTTPError(http.StatusBadGateway, "ai service unavailable").SetInternal(err)
	}
	return c.JSON(http.StatusOK, model.AIResponse{Reply: reply})
}

// TestAll handles GET /testall.  Health is reported as true without probing;
// ai is true when the echo round-trip of "ping" comes back intact.
func (h *AIHandler) TestAll(c echo.Context) error {
	return c.JSON(http.StatusOK, model.TestAllResponse{
		Health: true,
		AI:     h.probe(c.Request().Context()),
	})
}

// probe never fails the request: errors and panics from the service count as
// a failed round-trip.
func (h *AIHandler) probe(ctx context.Context) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "ai probe panicked", "panic", r)
			ok = false
		}
	}()
	reply, err := h.NewAI().Echo(ctx, pingProbe)
	if err != nil {
		slog.WarnContext(ctx, "ai probe failed", "error", err)
		return false
	}
	return reply == pingProbe
}

// bindError turns a body decoding failure into a validation error.
func bindError(err error) *ValidationError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		loc := []string{"body"}
		if typeErr.Field != "" {
			loc = append(loc, typeErr.Field)
		}
		return &ValidationError{Issues: []model.ValidationIssue{{
			Loc:  loc,
			Msg:  "Input should be a valid string",
			Type: "string_type",
		}}}
	}
	return &ValidationError{Issues: []model.ValidationIssue{{
		Loc:  []string{"body"},
		Msg:  "JSON decode error",
		Type: "json_invalid",
	}}}
}
