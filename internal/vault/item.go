// Package vault holds the client-side view of stored credential
// records. Records are owned by the server; the client keeps a
// read-mostly copy that is replaced wholesale on every fetch.
package vault

import "strings"

// Item is a single stored credential record.
type Item struct {
	ID       int    `json:"id"`
	URL      string `json:"url"`
	Username string `json:"username"`
	// Password is only populated by the single-item endpoint; list
	// responses never carry it.
	Password string `json:"password,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// CreateRequest is the payload for inserting a new record.
type CreateRequest struct {
	URL      string `json:"url"`
	Username string `json:"username"`
	Password string `json:"password"`
	Notes    string `json:"notes,omitempty"`
}

// UpdateRequest is a partial update of an existing record. A nil
// Password means "keep the stored secret" and must be absent from the
// payload entirely; an empty string would overwrite the secret.
type UpdateRequest struct {
	URL      string  `json:"url"`
	Username string  `json:"username"`
	Password *string `json:"password,omitempty"`
	Notes    string  `json:"notes,omitempty"`
}

// DisplayName derives the label shown for an item from its URL: the
// scheme and a leading "www." label are stripped, and everything from
// the first path separator on is dropped. An empty URL (or one that
// reduces to nothing) yields the "N/A" placeholder.
func DisplayName(rawURL string) string {
	s := strings.TrimPrefix(rawURL, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "www.")
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return "N/A"
	}
	return s
}
