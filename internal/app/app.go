// Package app assembles the HTTP application from settings and a service
// factory.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/simbaid/backend/internal/config"
	"github.com/simbaid/backend/internal/handler"
	"github.com/simbaid/backend/internal/middleware"
	"github.com/simbaid/backend/internal/model"
	"github.com/simbaid/backend/internal/router"
	"github.com/simbaid/backend/internal/service"
)

type options struct {
	logger *slog.Logger
	redis  *redis.Client
}

// Option configures New.
type Option func(*options)

// WithLogger sets the logger used for request logs.  slog.Default() is used
// otherwise.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRedis enables the distributed rate limiter on the AI routes.
func WithRedis(rdb *redis.Client) Option {
	return func(o *options) { o.redis = rdb }
}

// New builds an independent application.  settings is read, never written;
// newAI is called once per request needing the AI service, so tests can pass
// a fake.
func New(settings *config.Settings, newAI service.Factory, opts ...Option) *echo.Echo {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(o.logger)

	e.Use(
		middleware.RequestID(),
		middleware.RequestLogger(o.logger),
		echomw.RecoverWithConfig(echomw.RecoverConfig{DisablePrintStack: true, DisableErrorHandler: true}),
	)

	router.RegisterRoutes(e, handler.NewAIHandler(newAI),
		middleware.NewTokenBucket(settings.RateLimit, o.redis),
	)
	return e
}

// errorHandler renders every error as {"detail": ...}.  Unknown routes thus
// answer 404 {"detail":"Not Found"}.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		var detail any = http.StatusText(http.StatusInternalServerError)

		var ve *handler.ValidationError
		var he *echo.HTTPError
		switch {
		case errors.As(err, &ve):
			code = http.StatusUnprocessableEntity
			detail = ve.Issues
		case errors.As(err, &he):
			code = he.Code
			if msg, ok := he.Message.(string); ok {
				detail = msg
			} else {
				detail = fmt.Sprint(he.Message)
			}
		default:
			logger.ErrorContext(c.Request().Context(), "unhandled error", "error", err)
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(code)
		} else {
			werr = c.JSON(code, model.ErrorResponse{Detail: detail})
		}
		if werr != nil {
			logger.ErrorContext(c.Request().Context(), "write error response", "error", werr)
		}
	}
}
