package tui

import (
	"context"
	"io"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"passvault/internal/session"
	"passvault/internal/vault"
)

// fakeGateway is a scripted Gateway. Fields set the canned responses;
// the call records let tests assert what went over the wire.
type fakeGateway struct {
	loginToken      string
	loginErr        error
	registerErr     error
	resetRequestErr error
	resetConfirmErr error

	items     []vault.Item
	listErr   error
	listCalls []string // queries, in order

	item     vault.Item
	getErr   error
	getCalls int

	created   []vault.CreateRequest
	createErr error

	updated   map[int]vault.UpdateRequest
	updateErr error

	deleted   []int
	deleteErr error

	token string
}

func (f *fakeGateway) Login(_ context.Context, _, _ string) (string, error) {
	return f.loginToken, f.loginErr
}

func (f *fakeGateway) Register(_ context.Context, _, _ string) error {
	return f.registerErr
}

func (f *fakeGateway) RequestPasswordReset(_ context.Context, _ string) error {
	return f.resetRequestErr
}

func (f *fakeGateway) ConfirmPasswordReset(_ context.Context, _, _ string) error {
	return f.resetConfirmErr
}

func (f *fakeGateway) ListItems(_ context.Context, query string) ([]vault.Item, error) {
	f.listCalls = append(f.listCalls, query)
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

func (f *fakeGateway) GetItem(_ context.Context, _ int) (vault.Item, error) {
	f.getCalls++
	return f.item, f.getErr
}

func (f *fakeGateway) CreateItem(_ context.Context, req vault.CreateRequest) (vault.Item, error) {
	if f.createErr != nil {
		return vault.Item{}, f.createErr
	}
	f.created = append(f.created, req)
	return vault.Item{ID: 100, URL: req.URL, Username: req.Username}, nil
}

func (f *fakeGateway) UpdateItem(_ context.Context, id int, req vault.UpdateRequest) (vault.Item, error) {
	if f.updateErr != nil {
		return vault.Item{}, f.updateErr
	}
	if f.updated == nil {
		f.updated = make(map[int]vault.UpdateRequest)
	}
	f.updated[id] = req
	return vault.Item{ID: id, URL: req.URL, Username: req.Username}, nil
}

func (f *fakeGateway) DeleteItem(_ context.Context, id int) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeGateway) SetToken(token string) { f.token = token }
func (f *fakeGateway) ClearToken()           { f.token = "" }

func newTestDeps(gw Gateway, store session.Store) *deps {
	return &deps{
		gw:       gw,
		store:    store,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		timeout:  5 * time.Second,
		debounce: 300 * time.Millisecond,
	}
}

// drain executes a command tree and returns every message it
// produces. Scripted fakes answer synchronously, so API commands
// resolve immediately. Tests never drain tick commands; debounce
// timers are injected as messages instead.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// firstMsg drains cmd and returns the first message of type T.
func firstMsg[T tea.Msg](cmd tea.Cmd) (T, bool) {
	for _, msg := range drain(cmd) {
		if typed, ok := msg.(T); ok {
			return typed, true
		}
	}
	var zero T
	return zero, false
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
