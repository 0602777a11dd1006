package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized reports that the server rejected the bearer token
// (or that no valid credentials were presented). Call sites check it
// with errors.Is and must then clear the session and return to login.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a non-2xx response from the vault server.
type APIError struct {
	StatusCode int
	// Detail is the server-supplied message, when the body carried one.
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("server returned %d", e.StatusCode)
}

// Unwrap maps 401 responses onto ErrUnauthorized so callers can use
// errors.Is without inspecting status codes.
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// Detail returns the server-supplied detail message carried by err,
// or "" when err has none. Views surface it where a per-field message
// helps, falling back to a generic text otherwise.
func Detail(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}

// decodeDetail flattens the error body's "detail" member: either a
// plain string or a validation array of {loc, msg} entries, which is
// joined as "field: message; ...".
func decodeDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(envelope.Detail, &s); err == nil {
		return s
	}

	var fields []struct {
		Loc []any  `json:"loc"`
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &fields); err != nil {
		return ""
	}
	out := ""
	for i, f := range fields {
		if i > 0 {
			out += "; "
		}
		if len(f.Loc) > 0 {
			out += fmt.Sprintf("%v: ", f.Loc[len(f.Loc)-1])
		}
		out += f.Msg
	}
	return out
}
