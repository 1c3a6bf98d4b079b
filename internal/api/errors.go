package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// APIError is returned for every non-2xx reply from the Mingle API.
type APIError struct {
	StatusCode int
	Err        string // "error" field of the body, meant for display
	Action     string // limit kind on 429 limit replies
	Message    string
	Count      *int // structured limit count, if the server sends one
	RequestID  string
	RetryAfter time.Duration
	RawBody    []byte
}

func (e *APIError) Error() string {
	switch {
	case e.Err != "":
		return fmt.Sprintf("[%d] %s", e.StatusCode, e.Err)
	case e.Message != "":
		return fmt.Sprintf("[%d] %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("[%d] %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// IsRateLimited reports whether the reply was a 429.
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// errorBody is the JSON shape of an error reply.
type errorBody struct {
	Error   string `json:"error"`
	Action  string `json:"action"`
	Message string `json:"message"`
	Count   *int   `json:"count"`
}

// parseError builds an APIError from a non-2xx response. Bodies that are not
// JSON are kept raw and leave the structured fields empty.
func parseError(statusCode int, body []byte, headers http.Header) *APIError {
	e := &APIError{
		StatusCode: statusCode,
		RequestID:  headers.Get("X-Request-ID"),
		RawBody:    body,
	}

	var b errorBody
	if len(body) > 0 && json.Unmarshal(body, &b) == nil {
		e.Err = b.Error
		e.Action = b.Action
		e.Message = b.Message
		e.Count = b.Count
	}

	if ra := headers.Get("Retry-After"); ra != "" {
		if secs, err := strconv.Atoi(ra); err == nil {
			e.RetryAfter = time.Duration(secs) * time.Second
		} else if t, err := http.ParseTime(ra); err == nil {
			e.RetryAfter = time.Until(t)
		}
	}
	return e
}

// AsAPIError extracts a non-nil APIError from err's chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr != nil {
		return apiErr, true
	}
	return nil, false
}

// UserMessage returns the server-provided display message carried by err, or
// fallback when there is none.
func UserMessage(err error, fallback string) string {
	if apiErr, ok := AsAPIError(err); ok && apiErr.Err != "" {
		return apiErr.Err
	}
	return fallback
}
