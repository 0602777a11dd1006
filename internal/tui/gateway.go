// Package tui is the interactive terminal front end: the login,
// registration and password-reset screens, and the vault browser with
// its modal item editor. Screens are bubbletea models; the root App
// model routes between them and guards the vault behind a stored
// session token.
package tui

import (
	"context"
	"log/slog"
	"time"

	"passvault/internal/session"
	"passvault/internal/vault"
)

// Gateway is the slice of the API client the terminal UI consumes.
// Tests substitute a scripted fake.
type Gateway interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, email, password string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, token, newPassword string) error

	ListItems(ctx context.Context, query string) ([]vault.Item, error)
	GetItem(ctx context.Context, id int) (vault.Item, error)
	CreateItem(ctx context.Context, req vault.CreateRequest) (vault.Item, error)
	UpdateItem(ctx context.Context, id int, req vault.UpdateRequest) (vault.Item, error)
	DeleteItem(ctx context.Context, id int) error

	SetToken(token string)
	ClearToken()
}

// deps carries what every screen needs. One instance is shared by the
// App and all screens it constructs.
type deps struct {
	gw       Gateway
	store    session.Store
	log      *slog.Logger
	timeout  time.Duration
	debounce time.Duration
}

// callCtx bounds a gateway call issued from a tea.Cmd.
func (d *deps) callCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d.timeout)
}
