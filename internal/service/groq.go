package service

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultGroqBaseURL is the OpenAI-compatible endpoint of the Groq API.
	DefaultGroqBaseURL = "https://api.groq.com/openai/v1"

	defaultGroqTimeout = 30 * time.Second
	// free-tier request budget
	defaultGroqRPM = 30
)

// GroqClient is the handle a real provider integration would use.  Nothing
// in this service sends requests through it yet.
type GroqClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// GroqOption customizes a GroqClient.
type GroqOption func(*GroqClient)

// WithBaseURL points the client at a different endpoint.
func WithBaseURL(url string) GroqOption {
	return func(c *GroqClient) { c.baseURL = url }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) GroqOption {
	return func(c *GroqClient) { c.http = hc }
}

// WithRequestsPerMinute sets the client-side request budget.
func WithRequestsPerMinute(rpm int) GroqOption {
	return func(c *GroqClient) {
		if rpm > 0 {
			c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), 1)
		}
	}
}

// NewGroqClient returns a client handle for apiKey.
func NewGroqClient(apiKey string, opts ...GroqOption) *GroqClient {
	c := &GroqClient{
		apiKey:  apiKey,
		baseURL: DefaultGroqBaseURL,
		http:    &http.Client{Timeout: defaultGroqTimeout},
		limiter: rate.NewLimiter(rate.Every(time.Minute/defaultGroqRPM), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the endpoint the client targets.
func (c *GroqClient) BaseURL() string { return c.baseURL }

// HTTPClient returns the HTTP client requests would be sent with.
func (c *GroqClient) HTTPClient() *http.Client { return c.http }

// Wait blocks until the client-side limiter admits one request or ctx ends.
func (c *GroqClient) Wait(ctx context.Context) error {
	return c.limiter.Wait(ctx)
}
