package mastodon

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/mastodon-list-manager/internal/domain"
)

const maxErrorBodyBytes = 64 << 10

// APIError is a non-2xx answer from the server. It unwraps to the domain
// sentinel matching its status where one exists.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
	ResetAt    time.Time
}

func (e *APIError) Error() string {
	status := fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
	msg := fmt.Sprintf("%s %s: %s", e.Method, e.Path, status)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if !e.ResetAt.IsZero() {
		msg += fmt.Sprintf(" (limit resets at %s)", e.ResetAt.Local().Format(time.Kitchen))
	}
	return msg
}

func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrUnauthorized
	case http.StatusTooManyRequests:
		return domain.ErrRateLimited
	default:
		return nil
	}
}

// IsStatus reports whether err carries an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == status
	}
	return false
}

type errorPayload struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func newAPIError(method, path string, resp *http.Response, body []byte) *APIError {
	apiErr := &APIError{
		Method:     method,
		Path:       path,
		StatusCode: resp.StatusCode,
	}

	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		apiErr.Message = payload.Error
		if payload.ErrorDescription != "" {
			apiErr.Message += ": " + payload.ErrorDescription
		}
	} else {
		apiErr.Message = strings.TrimSpace(string(body))
		if len(apiErr.Message) > 200 {
			apiErr.Message = apiErr.Message[:200]
		}
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		apiErr.ResetAt = parseReset(resp.Header.Get("X-RateLimit-Reset"))
	}

	return apiErr
}

func parseReset(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	if parsed, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return parsed
	}
	if seconds, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.Unix(seconds, 0)
	}
	return time.Time{}
}
