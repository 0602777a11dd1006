package tui

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passvault/internal/client/config"
	"passvault/internal/logging"
	"passvault/internal/session"
	"passvault/internal/vault"
)

func testConfig() *config.Config {
	return &config.Config{
		Env:            logging.EnvLocal,
		ServerURL:      "http://localhost:8000",
		RequestTimeout: 5 * time.Second,
		SearchDebounce: 300 * time.Millisecond,
	}
}

func newTestApp(t *testing.T, gw *fakeGateway, store session.Store, resetToken string, resetRequested bool) *App {
	t.Helper()
	log := newTestDeps(gw, store).log
	return NewApp(gw, store, testConfig(), log, resetToken, resetRequested)
}

// step feeds a message to the App and keeps feeding it the messages
// produced in response, until nothing more happens. It simulates the
// runtime's message loop for synchronous fakes.
func step(app *App, msg tea.Msg) {
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		// Cursor blink messages re-arm their own timer forever; they
		// carry nothing the tests care about.
		if _, blink := next.(cursor.BlinkMsg); blink {
			continue
		}

		_, cmd := app.Update(next)
		queue = append(queue, drain(cmd)...)
	}
}

func TestApp_RouteGuard(t *testing.T) {
	t.Run("no token starts at login", func(t *testing.T) {
		app := newTestApp(t, &fakeGateway{}, session.NewMemStore(), "", false)
		_, ok := app.current.(*loginModel)
		assert.True(t, ok)
	})

	t.Run("stored token starts at vault", func(t *testing.T) {
		gw := &fakeGateway{}
		store := session.NewMemStore()
		require.NoError(t, store.SaveToken("tok"))

		app := newTestApp(t, gw, store, "", false)
		_, ok := app.current.(*vaultModel)
		assert.True(t, ok)
		assert.Equal(t, "tok", gw.token, "the stored token is loaded into the gateway")
	})
}

func TestApp_ResetTokenRoute(t *testing.T) {
	t.Run("with token shows the password form", func(t *testing.T) {
		app := newTestApp(t, &fakeGateway{}, session.NewMemStore(), "reset-tok", true)
		m, ok := app.current.(*resetConfirmModel)
		require.True(t, ok)
		assert.False(t, m.dead)
		assert.Equal(t, "reset-tok", m.token)
	})

	t.Run("empty token is a terminal error", func(t *testing.T) {
		app := newTestApp(t, &fakeGateway{}, session.NewMemStore(), "", true)
		m, ok := app.current.(*resetConfirmModel)
		require.True(t, ok)
		assert.True(t, m.dead)
		assert.Contains(t, app.View(), "Token not found")
	})
}

func TestApp_UnauthorizedCascade(t *testing.T) {
	gw := &fakeGateway{}
	store := session.NewMemStore()
	require.NoError(t, store.SaveToken("expired"))

	app := newTestApp(t, gw, store, "", false)
	require.IsType(t, &vaultModel{}, app.current)

	step(app, unauthorizedMsg{})

	login, ok := app.current.(*loginModel)
	require.True(t, ok, "a 401 lands on the login screen")
	assert.Equal(t, sessionExpiredStatus, login.status)

	_, hasToken := store.Token()
	assert.False(t, hasToken)
	assert.Empty(t, gw.token)
}

func TestApp_RegisterThenLoginFlow(t *testing.T) {
	gw := &fakeGateway{loginToken: "fresh-tok", items: []vault.Item{}}
	store := session.NewMemStore()
	app := newTestApp(t, gw, store, "", false)

	// Login -> register.
	step(app, tea.KeyMsg{Type: tea.KeyCtrlN})
	register, ok := app.current.(*registerModel)
	require.True(t, ok)

	// Fill the form and submit. The fake accepts, so the app routes
	// back to login with the one-shot notice set.
	register.inputs[0].SetValue("alice@example.com")
	register.inputs[1].SetValue("pw")
	step(app, tea.KeyMsg{Type: tea.KeyEnter}) // focus moves to password
	step(app, tea.KeyMsg{Type: tea.KeyEnter}) // submits

	login, ok := app.current.(*loginModel)
	require.True(t, ok)
	assert.Equal(t, registeredNotice, login.notice)

	// The notice was consumed on display: it must not come back.
	_, pending := store.TakeNotice()
	assert.False(t, pending)

	// Sign in; the app lands on the vault with the token stored.
	login.inputs[0].SetValue("alice@example.com")
	login.inputs[1].SetValue("pw")
	step(app, tea.KeyMsg{Type: tea.KeyEnter})
	step(app, tea.KeyMsg{Type: tea.KeyEnter})

	_, ok = app.current.(*vaultModel)
	require.True(t, ok)

	token, hasToken := store.Token()
	require.True(t, hasToken)
	assert.Equal(t, "fresh-tok", token)
	assert.Equal(t, "fresh-tok", gw.token)
}

func TestApp_LoginFailureIsGeneric(t *testing.T) {
	gw := &fakeGateway{loginErr: assert.AnError}
	app := newTestApp(t, gw, session.NewMemStore(), "", false)

	login := app.current.(*loginModel)
	login.inputs[0].SetValue("alice@example.com")
	login.inputs[1].SetValue("wrong")
	step(app, tea.KeyMsg{Type: tea.KeyEnter})
	step(app, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Same(t, login, app.current, "a failed login stays on the login screen")
	assert.Equal(t, "Incorrect email or password.", login.errText)
	assert.False(t, login.submitting)
}

func TestApp_LogoutRoundTrip(t *testing.T) {
	gw := &fakeGateway{items: []vault.Item{}}
	store := session.NewMemStore()
	require.NoError(t, store.SaveToken("tok"))

	app := newTestApp(t, gw, store, "", false)
	require.IsType(t, &vaultModel{}, app.current)

	step(app, tea.KeyMsg{Type: tea.KeyCtrlL})

	login, ok := app.current.(*loginModel)
	require.True(t, ok)
	assert.Equal(t, "Signed out.", login.status)
}

func TestApp_ResetRequestFlow(t *testing.T) {
	gw := &fakeGateway{}
	app := newTestApp(t, gw, session.NewMemStore(), "", false)

	step(app, tea.KeyMsg{Type: tea.KeyCtrlP})
	request, ok := app.current.(*resetRequestModel)
	require.True(t, ok)

	request.email.SetValue("alice@example.com")
	step(app, tea.KeyMsg{Type: tea.KeyEnter})

	// The confirmation is ambiguous on purpose.
	assert.Equal(t, resetRequestedNotice, request.confirmation)
	assert.Contains(t, app.View(), "If an account exists")
}

func TestApp_ResetConfirmFlow(t *testing.T) {
	gw := &fakeGateway{}
	store := session.NewMemStore()
	app := newTestApp(t, gw, store, "good-tok", true)

	confirm := app.current.(*resetConfirmModel)
	confirm.inputs[0].SetValue("new-pw")
	step(app, tea.KeyMsg{Type: tea.KeyEnter})

	// Success routes to login with the one-shot notice.
	login, ok := app.current.(*loginModel)
	require.True(t, ok)
	assert.Equal(t, passwordResetNotice, login.notice)
}

func TestApp_WindowSizeReplayedOnSwitch(t *testing.T) {
	app := newTestApp(t, &fakeGateway{}, session.NewMemStore(), "", false)

	step(app, tea.WindowSizeMsg{Width: 120, Height: 40})
	step(app, tea.KeyMsg{Type: tea.KeyCtrlN})

	register, ok := app.current.(*registerModel)
	require.True(t, ok)
	assert.Equal(t, 120, register.width)
	assert.Equal(t, 40, register.height)
}
