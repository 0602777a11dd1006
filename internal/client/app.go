// Package client wires together the pieces every front end needs:
// configuration, logging, session storage and the API gateway.
package client

import (
	"log/slog"

	"passvault/internal/client/api"
	"passvault/internal/client/config"
	"passvault/internal/session"
)

type App struct {
	Config  *config.Config
	Log     *slog.Logger
	Session session.Store
	API     *api.Client
}

// New builds the client application. A token already persisted from a
// previous run is loaded into the gateway so protected calls work
// without a fresh login.
func New(cfg *config.Config, log *slog.Logger) *App {
	store := session.NewFileStore(cfg.TokenPath, cfg.NoticePath)
	gateway := api.New(cfg, log)

	if token, ok := store.Token(); ok {
		gateway.SetToken(token)
		log.Debug("loaded stored token")
	}

	return &App{
		Config:  cfg,
		Log:     log,
		Session: store,
		API:     gateway,
	}
}

// Logout clears the persisted token and the gateway credential.
func (a *App) Logout() error {
	a.API.ClearToken()
	return a.Session.Clear()
}
