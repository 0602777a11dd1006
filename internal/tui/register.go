package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"

	"passvault/internal/client/api"
)

const registeredNotice = "Registration successful! You can now sign in."

// registerResultMsg reports the outcome of an account creation attempt.
type registerResultMsg struct {
	err error
}

type registerModel struct {
	deps   *deps
	inputs []textinput.Model // 0: email, 1: password
	focus  int

	errText    string
	submitting bool

	width  int
	height int
}

func newRegisterModel(d *deps) *registerModel {
	m := &registerModel{
		deps: d,
		inputs: []textinput.Model{
			newInput("you@example.com", false),
			newInput("password", true),
		},
	}
	setFocus(m.inputs, 0)
	return m
}

func (m *registerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *registerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case registerResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.deps.log.Debug("registration failed", "error", msg.err)
			// Unlike login, the server's detail is safe to surface
			// here ("email already registered" and the like).
			if detail := api.Detail(msg.err); detail != "" {
				m.errText = detail
			} else {
				m.errText = "An error occurred during registration."
			}
			return m, nil
		}
		if err := m.deps.store.SetNotice(registeredNotice); err != nil {
			m.deps.log.Warn("saving notice", "error", err)
		}
		return m, emit(gotoLoginMsg{})

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.Type {
		case tea.KeyEsc:
			return m, emit(gotoLoginMsg{})
		case tea.KeyTab, tea.KeyDown:
			m.focus = (m.focus + 1) % len(m.inputs)
			return m, setFocus(m.inputs, m.focus)
		case tea.KeyShiftTab, tea.KeyUp:
			m.focus = (m.focus + len(m.inputs) - 1) % len(m.inputs)
			return m, setFocus(m.inputs, m.focus)
		case tea.KeyEnter:
			if m.focus < len(m.inputs)-1 {
				m.focus++
				return m, setFocus(m.inputs, m.focus)
			}
			return m, m.submit()
		}
	}

	return m, updateFocused(m.inputs, m.focus, msg)
}

func (m *registerModel) submit() tea.Cmd {
	email := m.inputs[0].Value()
	password := m.inputs[1].Value()

	m.errText = ""
	if email == "" || password == "" {
		m.errText = "Email and password are required."
		return nil
	}

	m.submitting = true
	d := m.deps
	return func() tea.Msg {
		ctx, cancel := d.callCtx()
		defer cancel()
		return registerResultMsg{err: d.gw.Register(ctx, email, password)}
	}
}

func (m *registerModel) View() string {
	lines := []string{
		labelStyle.Render("Email"),
		m.inputs[0].View(),
		"",
		labelStyle.Render("Password"),
		m.inputs[1].View(),
	}
	if m.errText != "" {
		lines = append(lines, "", errorStyle.Render(m.errText))
	}
	if m.submitting {
		lines = append(lines, "", faintStyle.Render("Registering…"))
	}
	lines = append(lines, "",
		faintStyle.Render("enter register • esc back to sign in"))

	return centered(m.width, m.height, renderForm("Create Account", lines))
}
