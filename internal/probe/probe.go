// Package probe calls the self-test endpoint of a running server, retrying
// once on the dev fallback port when the first address serves something else.
package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is used when neither an argument nor API_URL is given.
	DefaultBaseURL = "http://localhost:8000"
	// FallbackBaseURL is tried when the base URL has no :8000 to swap.
	FallbackBaseURL = "http://localhost:8001"

	testAllPath = "/api/v1/testall"
)

// Result is what the probe got back from the server it settled on.
type Result struct {
	URL        string
	StatusCode int
	Body       string
	FellBack   bool
}

// Client runs probes.  The zero value uses a client with a 10s timeout and
// FallbackFor.
type Client struct {
	HTTP     *http.Client
	Fallback func(base string) string
}

// ResolveBaseURL picks the target: explicit argument, then API_URL, then
// DefaultBaseURL.
func ResolveBaseURL(arg, envURL string) string {
	switch {
	case arg != "":
		return arg
	case envURL != "":
		return envURL
	default:
		return DefaultBaseURL
	}
}

// FallbackFor returns the alternate base URL tried after a route miss.
func FallbackFor(base string) string {
	if strings.Contains(base, ":8000") {
		return strings.Replace(base, ":8000", ":8001", 1)
	}
	return FallbackBaseURL
}

// TestAllURL joins base and the self-test path.
func TestAllURL(base string) string {
	return strings.TrimRight(base, "/") + testAllPath
}

// TestAll fetches the self-test endpoint under base.  When the server
// answers 404 {"detail":"Not Found"} (something else is listening there) it
// retries once against FallbackFor(base).
func (c *Client) TestAll(ctx context.Context, base string) (*Result, error) {
	res, err := c.get(ctx, TestAllURL(base))
	if err != nil {
		return nil, err
	}
	if !isRouteMiss(res) {
		return res, nil
	}

	fallback := c.Fallback
	if fallback == nil {
		fallback = FallbackFor
	}
	res, err = c.get(ctx, TestAllURL(fallback(base)))
	if err != nil {
		return nil, fmt.Errorf("fallback: %w", err)
	}
	res.FellBack = true
	return res, nil
}

func (c *Client) get(ctx context.Context, url string) (*Result, error) {
	hc := c.HTTP
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	return &Result{
		URL:        url,
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(body)),
	}, nil
}

// isRouteMiss reports a 404 whose body is the framework's "Not Found"
// detail, as opposed to any other 404.
func isRouteMiss(res *Result) bool {
	if res.StatusCode != http.StatusNotFound {
		return false
	}
	var body struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal([]byte(res.Body), &body); err != nil {
		return false
	}
	detail, ok := body.Detail.(string)
	return ok && detail == "Not Found"
}
