package tui

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"passvault/internal/client/config"
	"passvault/internal/session"
)

// Screen-switch messages. Screens never construct their siblings; they
// emit one of these and the App builds the target screen, so session
// state (token, one-shot notice) is consulted in exactly one place.
type (
	// gotoLoginMsg routes to the login screen. Status is an optional
	// line shown above the form (used after logout and session expiry).
	gotoLoginMsg struct{ status string }

	gotoRegisterMsg     struct{}
	gotoResetRequestMsg struct{}

	// gotoResetConfirmMsg routes to the confirm-reset screen for an
	// interactively entered token.
	gotoResetConfirmMsg struct{}

	gotoVaultMsg struct{}

	// unauthorizedMsg is emitted by any screen whose gateway call came
	// back 401. The App clears the session and returns to login.
	unauthorizedMsg struct{}
)

const sessionExpiredStatus = "Your session has expired. Please sign in again."

// App is the root model. It owns the current screen and implements the
// route guard: the vault is only reachable while a token is stored.
type App struct {
	deps    *deps
	current tea.Model
	width   int
	height  int
}

// NewApp builds the root model. When resetToken routing is requested
// (the terminal equivalent of opening a reset link), the confirm-reset
// screen is shown first, with its terminal error state if the token
// is missing. Otherwise a stored token selects the vault and its
// absence selects login.
func NewApp(gw Gateway, store session.Store, cfg *config.Config, log *slog.Logger, resetToken string, resetRequested bool) *App {
	d := &deps{
		gw:       gw,
		store:    store,
		log:      log,
		timeout:  cfg.RequestTimeout,
		debounce: cfg.SearchDebounce,
	}

	app := &App{deps: d}
	switch {
	case resetRequested:
		app.current = newResetConfirmModel(d, resetToken, true)
	default:
		if token, ok := store.Token(); ok {
			gw.SetToken(token)
			app.current = newVaultModel(d)
		} else {
			app.current = newLoginModel(d, "")
		}
	}
	return app
}

func (a *App) Init() tea.Cmd {
	return a.current.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height

	case unauthorizedMsg:
		a.deps.log.Debug("unauthorized response, clearing session")
		a.deps.gw.ClearToken()
		if err := a.deps.store.Clear(); err != nil {
			a.deps.log.Warn("clearing session", "error", err)
		}
		return a.switchTo(newLoginModel(a.deps, sessionExpiredStatus))

	case gotoLoginMsg:
		return a.switchTo(newLoginModel(a.deps, msg.status))

	case gotoRegisterMsg:
		return a.switchTo(newRegisterModel(a.deps))

	case gotoResetRequestMsg:
		return a.switchTo(newResetRequestModel(a.deps))

	case gotoResetConfirmMsg:
		return a.switchTo(newResetConfirmModel(a.deps, "", false))

	case gotoVaultMsg:
		return a.switchTo(newVaultModel(a.deps))
	}

	var cmd tea.Cmd
	a.current, cmd = a.current.Update(msg)
	return a, cmd
}

// switchTo replaces the current screen and replays the terminal size
// so the new screen lays itself out immediately.
func (a *App) switchTo(next tea.Model) (tea.Model, tea.Cmd) {
	a.current = next
	initCmd := a.current.Init()

	var sizeCmd tea.Cmd
	if a.width > 0 {
		a.current, sizeCmd = a.current.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
	}
	return a, tea.Batch(initCmd, sizeCmd)
}

func (a *App) View() string {
	return a.current.View()
}

// Run starts the terminal UI and blocks until the user quits.
func Run(gw Gateway, store session.Store, cfg *config.Config, log *slog.Logger, resetToken string, resetRequested bool) error {
	app := NewApp(gw, store, cfg, log, resetToken, resetRequested)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running terminal ui: %w", err)
	}
	return nil
}
