package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"passvault/internal/client/api"
	"passvault/internal/vault"
)

type editorSaveResultMsg struct {
	err error
}

type passwordRevealedMsg struct {
	password string
	err      error
}

const (
	editorFieldURL = iota
	editorFieldUsername
	editorFieldPassword
	editorFieldNotes
	editorFieldCount
)

// editorModel is the add/edit modal. A fresh model is built every
// time it opens, so nothing leaks between items. In edit mode the
// password field starts blank and masked; blank means "keep the
// stored secret".
type editorModel struct {
	deps *deps
	item *vault.Item // nil in create mode

	inputs [editorFieldCount]textinput.Model
	focus  int

	revealed  bool
	revealing bool
	saving    bool
	errText   string
}

func newEditorModel(d *deps, item *vault.Item) *editorModel {
	e := &editorModel{deps: d, item: item}

	e.inputs[editorFieldURL] = newInput("https://example.com", false)
	e.inputs[editorFieldUsername] = newInput("username or email", false)
	e.inputs[editorFieldPassword] = newInput("password", item != nil)
	e.inputs[editorFieldNotes] = newInput("notes (optional)", false)

	if item != nil {
		e.inputs[editorFieldURL].SetValue(item.URL)
		e.inputs[editorFieldUsername].SetValue(item.Username)
		e.inputs[editorFieldNotes].SetValue(item.Notes)
	}

	setFocus(e.inputs[:], 0)
	return e
}

func (e *editorModel) init() tea.Cmd {
	return textinput.Blink
}

func (e *editorModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case editorSaveResultMsg:
		e.saving = false
		if msg.err != nil {
			if errors.Is(msg.err, api.ErrUnauthorized) {
				return emit(unauthorizedMsg{})
			}
			e.deps.log.Debug("save failed", "error", msg.err)
			if detail := api.Detail(msg.err); detail != "" {
				e.errText = detail
			} else {
				e.errText = "Could not save. The URL must start with http:// or https://."
			}
			return nil
		}
		return emit(editorClosedMsg{saved: true})

	case passwordRevealedMsg:
		e.revealing = false
		if msg.err != nil {
			if errors.Is(msg.err, api.ErrUnauthorized) {
				return emit(unauthorizedMsg{})
			}
			e.deps.log.Debug("reveal failed", "error", msg.err)
			e.errText = "Could not load the password."
			return nil
		}
		e.inputs[editorFieldPassword].SetValue(msg.password)
		e.unmask()
		return nil

	case tea.KeyMsg:
		if e.saving {
			return nil
		}
		switch msg.String() {
		case "esc":
			return emit(editorClosedMsg{saved: false})
		case "ctrl+r":
			return e.toggleReveal()
		case "tab", "down":
			e.focus = (e.focus + 1) % editorFieldCount
			setFocus(e.inputs[:], e.focus)
			return nil
		case "shift+tab", "up":
			e.focus = (e.focus + editorFieldCount - 1) % editorFieldCount
			setFocus(e.inputs[:], e.focus)
			return nil
		case "enter":
			if e.focus < editorFieldCount-1 {
				e.focus++
				setFocus(e.inputs[:], e.focus)
				return nil
			}
			return e.submit()
		case "ctrl+s":
			return e.submit()
		}
	}

	return updateFocused(e.inputs[:], e.focus, msg)
}

// toggleReveal handles ctrl+r in edit mode. The stored secret is
// fetched only when the field is blank; a value the user already
// typed is never overwritten by the fetch.
func (e *editorModel) toggleReveal() tea.Cmd {
	if e.item == nil || e.revealing {
		return nil
	}
	if e.revealed {
		e.revealed = false
		e.inputs[editorFieldPassword].EchoMode = textinput.EchoPassword
		return nil
	}
	if e.inputs[editorFieldPassword].Value() != "" {
		e.unmask()
		return nil
	}

	e.revealing = true
	id := e.item.ID
	d := e.deps
	return func() tea.Msg {
		ctx, cancel := d.callCtx()
		defer cancel()
		item, err := d.gw.GetItem(ctx, id)
		if err != nil {
			return passwordRevealedMsg{err: err}
		}
		return passwordRevealedMsg{password: item.Password}
	}
}

func (e *editorModel) unmask() {
	e.revealed = true
	e.inputs[editorFieldPassword].EchoMode = textinput.EchoNormal
}

func (e *editorModel) submit() tea.Cmd {
	rawURL := strings.TrimSpace(e.inputs[editorFieldURL].Value())
	username := strings.TrimSpace(e.inputs[editorFieldUsername].Value())
	password := e.inputs[editorFieldPassword].Value()
	notes := e.inputs[editorFieldNotes].Value()

	e.errText = ""
	if rawURL == "" || username == "" {
		e.errText = "URL and username are required."
		return nil
	}

	d := e.deps

	if e.item == nil {
		if password == "" {
			e.errText = "Password is required."
			return nil
		}
		req := vault.CreateRequest{
			URL:      rawURL,
			Username: username,
			Password: password,
			Notes:    notes,
		}
		e.saving = true
		return func() tea.Msg {
			ctx, cancel := d.callCtx()
			defer cancel()
			_, err := d.gw.CreateItem(ctx, req)
			return editorSaveResultMsg{err: err}
		}
	}

	req := vault.UpdateRequest{
		URL:      rawURL,
		Username: username,
		Notes:    notes,
	}
	if password != "" {
		req.Password = &password
	}
	id := e.item.ID
	e.saving = true
	return func() tea.Msg {
		ctx, cancel := d.callCtx()
		defer cancel()
		_, err := d.gw.UpdateItem(ctx, id, req)
		return editorSaveResultMsg{err: err}
	}
}

func (e *editorModel) view() string {
	title := "Add Password"
	if e.item != nil {
		title = "Edit Password"
	}

	lines := []string{
		labelStyle.Render("URL:      ") + e.inputs[editorFieldURL].View(),
		labelStyle.Render("Username: ") + e.inputs[editorFieldUsername].View(),
		labelStyle.Render("Password: ") + e.inputs[editorFieldPassword].View(),
		labelStyle.Render("Notes:    ") + e.inputs[editorFieldNotes].View(),
		"",
	}

	if e.item != nil {
		lines = append(lines, faintStyle.Render("Leave the password blank to keep the current one. ctrl+r show/hide."))
	}
	if e.revealing {
		lines = append(lines, faintStyle.Render("Loading password…"))
	}
	if e.saving {
		lines = append(lines, faintStyle.Render("Saving…"))
	}
	if e.errText != "" {
		lines = append(lines, errorStyle.Render(e.errText))
	}
	lines = append(lines, "", faintStyle.Render("enter save • esc cancel"))

	return renderForm(title, lines)
}
