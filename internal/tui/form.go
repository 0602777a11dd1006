package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// newInput builds a single-line form field. Secret fields echo '•'.
func newInput(placeholder string, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 256
	in.Width = 36
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '•'
	}
	return in
}

// setFocus focuses inputs[idx] and blurs the rest.
func setFocus(inputs []textinput.Model, idx int) tea.Cmd {
	var cmd tea.Cmd
	for i := range inputs {
		if i == idx {
			cmd = inputs[i].Focus()
		} else {
			inputs[i].Blur()
		}
	}
	return cmd
}

// updateFocused forwards a message to the focused input only.
func updateFocused(inputs []textinput.Model, focus int, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	inputs[focus], cmd = inputs[focus].Update(msg)
	return cmd
}

// emit wraps a message in a command, for routing decisions made inside
// Update.
func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// renderForm lays out labelled fields with optional notice, status and
// error lines in a bordered box.
func renderForm(title string, lines []string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(lines, "\n"))
	return boxStyle.Render(b.String())
}
