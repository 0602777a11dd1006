// Package session persists the client's authentication state: the
// bearer token issued at login and the one-shot notice carried from
// one screen to the next (e.g. "registration successful").
package session

// Store abstracts session persistence so that front ends and tests can
// share or fake it. The token survives client restarts; the notice is
// read-once: TakeNotice returns it at most one time.
type Store interface {
	// SaveToken persists the bearer token.
	SaveToken(token string) error

	// Token returns the stored token, or false if none is stored.
	Token() (string, bool)

	// Clear removes the stored token. A pending notice is untouched.
	Clear() error

	// SetNotice stores a message to be shown on the next login screen.
	// It replaces any notice that has not been taken yet.
	SetNotice(msg string) error

	// TakeNotice returns the pending notice and discards it, or false
	// when there is none. A taken notice is never returned again.
	TakeNotice() (string, bool)
}
