package model

// HealthResponse is returned by the health check.
type HealthResponse struct {
	Status string `json:"status"`
}

// AIRequest is the body of POST /ai/echo.  Text is a pointer so that a
// missing field can be told apart from an empty string.
type AIRequest struct {
	Text *string `json:"text"`
}

// AIResponse carries the AI service reply.
type AIResponse struct {
	Reply string `json:"reply"`
}

// TestAllResponse is the aggregate self-test summary.
type TestAllResponse struct {
	Health bool `json:"health"`
	AI     bool `json:"ai"`
}

// ValidationIssue describes one rejected field of a request body.
type ValidationIssue struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ErrorResponse is the body of every error response.  Detail is either a
// message string or a list of ValidationIssue.
type ErrorResponse struct {
	Detail any `json:"detail"`
}
