// Package service holds the AI service used by the HTTP handlers and the
// factory that builds one per request.
package service

import (
	"context"

	"github.com/simbaid/backend/internal/config"
)

// AI is the capability the handlers depend on.  A real provider call can
// replace AIService behind this interface without touching the callers.
type AI interface {
	Echo(ctx context.Context, text string) (string, error)
}

// AIService is the placeholder AI backend.  It is request-scoped and never
// mutated after construction, so instances are safe to use concurrently.
type AIService struct {
	credential string

	// HasClient is decided once at construction: true when a credential
	// exists and a provider client could therefore be built.
	HasClient bool
}

// New returns an AIService for the given credential.  An empty credential is
// a valid state and simply leaves HasClient false.
func New(credential string) *AIService {
	return &AIService{
		credential: credential,
		HasClient:  credential != "",
	}
}

// Echo returns text unchanged.  It never builds or uses the provider client,
// so it stays deterministic and offline whether or not a credential is set.
func (s *AIService) Echo(_ context.Context, text string) (string, error) {
	return text, nil
}

// client builds the provider client handle, or returns nil when no
// credential is configured.
func (s *AIService) client() *GroqClient {
	if !s.HasClient {
		return nil
	}
	return NewGroqClient(s.credential)
}

// Factory produces a fresh AI for every call.
type Factory func() AI

// NewFactory returns a Factory reading the credential from settings.  The
// settings pointer is shared; the services it produces are not cached.
func NewFactory(settings *config.Settings) Factory {
	return func() AI {
		return New(settings.GroqAPIKey)
	}
}
