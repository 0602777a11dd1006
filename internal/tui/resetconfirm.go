package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"
)

const passwordResetNotice = "Password successfully updated! You can now sign in."

// resetConfirmResultMsg reports the outcome of redeeming a reset token.
type resetConfirmResultMsg struct {
	err error
}

// resetConfirmModel sets a new password from a recovery token. The
// token either arrives with the route (--reset-token, the terminal
// equivalent of a mailed link) or is typed into an extra field when
// the screen was reached interactively.
type resetConfirmModel struct {
	deps   *deps
	inputs []textinput.Model
	focus  int

	// token carries the route-supplied token; empty when the user
	// types it instead (inputs then include a token field).
	token     string
	tokenFrom bool // token came from the route

	// dead marks the terminal state: the route demanded a token but
	// none was supplied. The form is not rendered.
	dead bool

	errText    string
	submitting bool

	width  int
	height int
}

func newResetConfirmModel(d *deps, token string, fromRoute bool) *resetConfirmModel {
	m := &resetConfirmModel{deps: d, token: token, tokenFrom: fromRoute}

	if fromRoute && token == "" {
		m.dead = true
		return m
	}

	if fromRoute {
		m.inputs = []textinput.Model{newInput("new password", true)}
	} else {
		m.inputs = []textinput.Model{
			newInput("reset token", false),
			newInput("new password", true),
		}
	}
	setFocus(m.inputs, 0)
	return m
}

func (m *resetConfirmModel) Init() tea.Cmd {
	if m.dead {
		return nil
	}
	return textinput.Blink
}

func (m *resetConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case resetConfirmResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.deps.log.Debug("password reset failed", "error", msg.err)
			// Token problems and password problems are not told apart
			// client-side.
			m.errText = "The token is invalid or expired, or the password is not valid."
			return m, nil
		}
		if err := m.deps.store.SetNotice(passwordResetNotice); err != nil {
			m.deps.log.Warn("saving notice", "error", err)
		}
		return m, emit(gotoLoginMsg{})

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		if m.dead {
			if msg.Type == tea.KeyEsc || msg.Type == tea.KeyEnter {
				return m, emit(gotoLoginMsg{})
			}
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

	if m.dead {
		return m, nil
	}
	return m, updateFocused(m.inputs, m.focus, msg)
}

func (m *resetConfirmModel) submit() tea.Cmd {
	token := m.token
	password := m.inputs[len(m.inputs)-1].Value()
	if !m.tokenFrom {
		token = m.inputs[0].Value()
	}

	m.errText = ""
	if token == "" {
		m.errText = "Cannot proceed without a valid token."
		return nil
	}
	if password == "" {
		m.errText = "New password is required."
		return nil
	}

	m.submitting = true
	d := m.deps
	return func() tea.Msg {
		ctx, cancel := d.callCtx()
		defer cancel()
		return resetConfirmResultMsg{err: d.gw.ConfirmPasswordReset(ctx, token, password)}
	}
}

func (m *resetConfirmModel) View() string {
	if m.dead {
		lines := []string{
			errorStyle.Render("Token not found. The link may be invalid or have expired."),
			"",
			faintStyle.Render("enter back to sign in"),
		}
		return centered(m.width, m.height, renderForm("Set New Password", lines))
	}

	var lines []string
	if !m.tokenFrom {
		lines = append(lines,
			labelStyle.Render("Reset token"),
			m.inputs[0].View(),
			"")
	}
	lines = append(lines,
		labelStyle.Render("New password"),
		m.inputs[len(m.inputs)-1].View(),
	)
	if m.errText != "" {
		lines = append(lines, "", errorStyle.Render(m.errText))
	}
	if m.submitting {
		lines = append(lines, "", faintStyle.Render("Saving…"))
	}
	lines = append(lines, "",
		faintStyle.Render("enter save password • esc back to sign in"))

	return centered(m.width, m.height, renderForm("Set New Password", lines))
}
