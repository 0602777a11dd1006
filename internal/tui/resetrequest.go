package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"
)

// Deliberately the same message whether or not the account exists, so
// the screen cannot be used to probe for registered addresses.
const resetRequestedNotice = "If an account exists with that email address, a recovery link has been sent."

// resetRequestResultMsg reports the outcome of a recovery-mail request.
type resetRequestResultMsg struct {
	err error
}

type resetRequestModel struct {
	deps  *deps
	email textinput.Model

	confirmation string
	errText      string
	submitting   bool

	width  int
	height int
}

func newResetRequestModel(d *deps) *resetRequestModel {
	email := newInput("you@example.com", false)
	email.Focus()
	return &resetRequestModel{deps: d, email: email}
}

func (m *resetRequestModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *resetRequestModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case resetRequestResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.deps.log.Debug("password recovery request failed", "error", msg.err)
			m.errText = "An error occurred. Please try again."
			return m, nil
		}
		m.confirmation = resetRequestedNotice
		return m, nil

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.Type {
		case tea.KeyEsc:
			return m, emit(gotoLoginMsg{})
		case tea.KeyCtrlT:
			return m, emit(gotoResetConfirmMsg{})
		case tea.KeyEnter:
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.email, cmd = m.email.Update(msg)
	return m, cmd
}

func (m *resetRequestModel) submit() tea.Cmd {
	email := m.email.Value()

	m.confirmation = ""
	m.errText = ""
	if email == "" {
		m.errText = "Email is required."
		return nil
	}

	m.submitting = true
	d := m.deps
	return func() tea.Msg {
		ctx, cancel := d.callCtx()
		defer cancel()
		return resetRequestResultMsg{err: d.gw.RequestPasswordReset(ctx, email)}
	}
}

func (m *resetRequestModel) View() string {
	lines := []string{
		faintStyle.Render("Enter your email address and we will send you a"),
		faintStyle.Render("link to reset your password."),
		"",
		labelStyle.Render("Email"),
		m.email.View(),
	}
	if m.confirmation != "" {
		lines = append(lines, "", noticeStyle.Render(m.confirmation))
	}
	if m.errText != "" {
		lines = append(lines, "", errorStyle.Render(m.errText))
	}
	if m.submitting {
		lines = append(lines, "", faintStyle.Render("Sending…"))
	}
	lines = append(lines, "",
		faintStyle.Render("enter send • ctrl+t I have a token • esc back to sign in"))

	return centered(m.width, m.height, renderForm("Recover Password", lines))
}
