package httpclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// HTTPError is returned for every response outside the 2xx range.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.Status)
}

// Message returns the server supplied reason, falling back to the status line.
// Both {"error": "..."} and {"message": "..."} envelopes are understood.
func (e *HTTPError) Message() string {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(e.Body, &envelope) == nil {
		if envelope.Error != "" {
			return envelope.Error
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	if msg := strings.TrimSpace(string(e.Body)); msg != "" && len(msg) < 256 {
		return msg
	}
	return e.Status
}

// StatusCode reports the HTTP status carried by err, if any.
func StatusCode(err error) (int, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.StatusCode, true
	}
	return 0, false
}

// HTTPStatus implements ports.StatusError.
func (e *HTTPError) HTTPStatus() int {
	return e.StatusCode
}
