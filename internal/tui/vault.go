package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"passvault/internal/client/api"
	"passvault/internal/vault"
)

// searchDebounceMsg fires when the search quiet period elapses. The
// seq identifies the keystroke that scheduled it; ticks from earlier
// keystrokes are discarded so only the last survivor issues a fetch.
type searchDebounceMsg struct {
	seq int
}

// itemsLoadedMsg delivers a finished list fetch. The seq identifies
// the fetch that produced it; responses from superseded fetches are
// discarded so an older response can never overwrite a newer one.
type itemsLoadedMsg struct {
	seq   int
	items []vault.Item
	err   error
}

// itemDeletedMsg delivers the outcome of a delete call.
type itemDeletedMsg struct {
	err error
}

// editorClosedMsg is emitted by the editor modal. When saved, the
// vault re-issues the current fetch: a full reload, not an
// optimistic merge.
type editorClosedMsg struct {
	saved bool
}

type vaultKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	New    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Logout key.Binding
}

// Plain letters are reserved for the search box, so the bindings are
// arrows and control chords only.
var vaultKeys = vaultKeyMap{
	Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
	Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
	New:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "add")),
	Edit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
	Delete: key.NewBinding(key.WithKeys("ctrl+x", "delete"), key.WithHelp("ctrl+x", "delete")),
	Logout: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "sign out")),
}

type vaultModel struct {
	deps   *deps
	search textinput.Model

	items   []vault.Item
	cursor  int
	loading bool
	loaded  bool // at least one fetch succeeded
	errText string

	// searchSeq is bumped on every search edit; fetchSeq on every
	// issued fetch. Together they implement debounce cancellation and
	// the stale-response guard.
	searchSeq int
	fetchSeq  int

	pendingDelete *vault.Item
	deleting      bool

	editor *editorModel

	width  int
	height int
}

func newVaultModel(d *deps) *vaultModel {
	search := newInput("search by user, url, notes…", false)
	search.Focus()
	return &vaultModel{deps: d, search: search}
}

func (m *vaultModel) Init() tea.Cmd {
	// Initial load goes out immediately; the debounce only applies to
	// subsequent edits of the search text.
	return tea.Batch(textinput.Blink, m.fetch())
}

// fetch issues a list fetch for the current search text and marks it
// as the only one whose response will be applied.
func (m *vaultModel) fetch() tea.Cmd {
	m.fetchSeq++
	m.loading = true

	seq := m.fetchSeq
	query := m.search.Value()
	d := m.deps
	return func() tea.Msg {
		ctx, cancel := d.callCtx()
		defer cancel()
		items, err := d.gw.ListItems(ctx, query)
		return itemsLoadedMsg{seq: seq, items: items, err: err}
	}
}

func (m *vaultModel) deleteCmd(id int) tea.Cmd {
	d := m.deps
	return func() tea.Msg {
		ctx, cancel := d.callCtx()
		defer cancel()
		return itemDeletedMsg{err: d.gw.DeleteItem(ctx, id)}
	}
}

func (m *vaultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case searchDebounceMsg:
		if msg.seq != m.searchSeq {
			// A newer keystroke superseded this timer.
			return m, nil
		}
		return m, m.fetch()

	case itemsLoadedMsg:
		if msg.seq != m.fetchSeq {
			// Response from a superseded fetch; the newer one wins
			// regardless of arrival order.
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			if errors.Is(msg.err, api.ErrUnauthorized) {
				return m, emit(unauthorizedMsg{})
			}
			m.deps.log.Debug("list fetch failed", "error", msg.err)
			m.errText = "Could not load your passwords."
			return m, nil
		}
		m.errText = ""
		m.items = msg.items
		m.loaded = true
		if m.cursor >= len(m.items) {
			m.cursor = len(m.items) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case itemDeletedMsg:
		m.deleting = false
		if msg.err != nil {
			if errors.Is(msg.err, api.ErrUnauthorized) {
				return m, emit(unauthorizedMsg{})
			}
			m.deps.log.Debug("delete failed", "error", msg.err)
			// The item stays visible until the next successful fetch.
			m.errText = "Could not delete the password."
			return m, nil
		}
		return m, m.fetch()

	case editorClosedMsg:
		m.editor = nil
		if msg.saved {
			return m, m.fetch()
		}
		return m, nil
	}

	if m.editor != nil {
		return m, m.editor.update(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(keyMsg)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *vaultModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.pendingDelete != nil {
		switch msg.String() {
		case "y":
			item := m.pendingDelete
			m.pendingDelete = nil
			m.deleting = true
			return m, m.deleteCmd(item.ID)
		case "n", "esc":
			m.pendingDelete = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, vaultKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, vaultKeys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, vaultKeys.New):
		m.editor = newEditorModel(m.deps, nil)
		return m, m.editor.init()

	case key.Matches(msg, vaultKeys.Edit):
		if item, ok := m.selected(); ok {
			m.editor = newEditorModel(m.deps, &item)
			return m, m.editor.init()
		}
		return m, nil

	case key.Matches(msg, vaultKeys.Delete):
		if m.deleting {
			return m, nil
		}
		if item, ok := m.selected(); ok {
			m.pendingDelete = &item
		}
		return m, nil

	case key.Matches(msg, vaultKeys.Logout):
		m.deps.gw.ClearToken()
		if err := m.deps.store.Clear(); err != nil {
			m.deps.log.Warn("clearing session", "error", err)
		}
		return m, emit(gotoLoginMsg{status: "Signed out."})
	}

	// Everything else edits the search text. Each actual change
	// restarts the quiet-period timer; stale timers are recognized by
	// their seq and dropped.
	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == before {
		return m, cmd
	}

	m.searchSeq++
	seq := m.searchSeq
	debounce := tea.Tick(m.deps.debounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
	return m, tea.Batch(cmd, debounce)
}

func (m *vaultModel) selected() (vault.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return vault.Item{}, false
	}
	return m.items[m.cursor], true
}

func (m *vaultModel) View() string {
	if m.editor != nil {
		return centered(m.width, m.height, m.editor.view())
	}

	var b strings.Builder

	header := titleStyle.Render("My Vault")
	b.WriteString(header)
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Search: "))
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	// An error does not hide the list: rows stay on screen until the
	// next successful fetch replaces them.
	if m.errText != "" {
		b.WriteString(errorStyle.Render(m.errText))
		b.WriteString("\n\n")
	}

	switch {
	case m.loading && !m.loaded:
		b.WriteString(faintStyle.Render("Loading…"))
	case len(m.items) > 0:
		b.WriteString(m.renderItems())
	case m.errText != "":
		// The error line above is the whole story.
	case m.search.Value() != "":
		b.WriteString(faintStyle.Render("No results found."))
	default:
		b.WriteString(faintStyle.Render("You don't have any saved passwords yet."))
	}
	b.WriteString("\n\n")

	if m.pendingDelete != nil {
		b.WriteString(statusStyle.Render(fmt.Sprintf(
			"Delete %s? (y/n)", vault.DisplayName(m.pendingDelete.URL))))
		b.WriteString("\n")
	}
	if m.deleting {
		b.WriteString(faintStyle.Render("Deleting…"))
		b.WriteString("\n")
	}

	b.WriteString(faintStyle.Render(
		"↑/↓ select • enter edit • ctrl+n add • ctrl+x delete • ctrl+l sign out • ctrl+c quit"))

	return b.String()
}

func (m *vaultModel) renderItems() string {
	// Keep the cursor visible inside the space left by the chrome.
	visible := m.height - 8
	if visible < 3 {
		visible = len(m.items)
	}
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := start + visible
	if end > len(m.items) {
		end = len(m.items)
	}

	var rows []string
	for i := start; i < end; i++ {
		item := m.items[i]
		row := fmt.Sprintf("%-28s %s", vault.DisplayName(item.URL), item.Username)
		if i == m.cursor {
			rows = append(rows, selectedStyle.Render("› "+row))
		} else {
			rows = append(rows, "  "+row)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
