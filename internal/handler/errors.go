package handler

import (
	"strings"

	"github.com/simbaid/backend/internal/model"
)

// ValidationError reports a request body that does not match its contract.
// It is rendered as 422 with the issues as detail.
type ValidationError struct {
	Issues []model.ValidationIssue
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		msgs = append(msgs, strings.Join(is.Loc, ".")+": "+is.Msg)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
