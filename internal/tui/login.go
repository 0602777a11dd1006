package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"
)

// loginResultMsg reports the outcome of a sign-in attempt.
type loginResultMsg struct {
	token string
	err   error
}

type loginModel struct {
	deps   *deps
	inputs []textinput.Model // 0: email, 1: password
	focus  int

	// notice is the one-shot message taken from the session store on
	// construction (e.g. registration success). Shown until the first
	// submit, never again after that.
	notice string
	// status is a routing hint such as "session expired" or "signed out".
	status     string
	errText    string
	submitting bool

	width  int
	height int
}

func newLoginModel(d *deps, status string) *loginModel {
	notice, _ := d.store.TakeNotice()

	inputs := []textinput.Model{
		newInput("you@example.com", false),
		newInput("password", true),
	}
	m := &loginModel{
		deps:   d,
		inputs: inputs,
		notice: notice,
		status: status,
	}
	setFocus(m.inputs, 0)
	return m
}

func (m *loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *loginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case loginResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.deps.log.Debug("login failed", "error", msg.err)
			// Always the same message: the server must not reveal
			// which of the two fields was wrong.
			m.errText = "Incorrect email or password."
			return m, nil
		}
		if err := m.deps.store.SaveToken(msg.token); err != nil {
			m.errText = "Could not save the session: " + err.Error()
			return m, nil
		}
		m.deps.gw.SetToken(msg.token)
		return m, emit(gotoVaultMsg{})

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.Type {
		case tea.KeyCtrlN:
			return m, emit(gotoRegisterMsg{})
		case tea.KeyCtrlP:
			return m, emit(gotoResetRequestMsg{})
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

func (m *loginModel) submit() tea.Cmd {
	email := m.inputs[0].Value()
	password := m.inputs[1].Value()

	m.notice = ""
	m.status = ""
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
		token, err := d.gw.Login(ctx, email, password)
		return loginResultMsg{token: token, err: err}
	}
}

func (m *loginModel) View() string {
	lines := []string{}
	if m.notice != "" {
		lines = append(lines, noticeStyle.Render(m.notice), "")
	}
	if m.status != "" {
		lines = append(lines, statusStyle.Render(m.status), "")
	}
	lines = append(lines,
		labelStyle.Render("Email"),
		m.inputs[0].View(),
		"",
		labelStyle.Render("Password"),
		m.inputs[1].View(),
	)
	if m.errText != "" {
		lines = append(lines, "", errorStyle.Render(m.errText))
	}
	if m.submitting {
		lines = append(lines, "", faintStyle.Render("Signing in…"))
	}
	lines = append(lines, "",
		faintStyle.Render("enter sign in • ctrl+n create account • ctrl+p forgot password • ctrl+c quit"))

	return centered(m.width, m.height, renderForm("My Password Manager", lines))
}
