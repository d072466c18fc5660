package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// verifyState holds the email verification token form.
type verifyState struct {
	token     textinput.Model
	busy      bool
	message   string
	errNotice string
}

type verifyResultMsg struct {
	message string
	err     error
}

func (m *Model) enterVerify() tea.Cmd {
	token := textinput.New()
	token.Placeholder = "verification token"
	token.CharLimit = 200
	token.Focus()

	m.verify = verifyState{token: token}
	return textinput.Blink
}

func (m *Model) handleVerifyKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.verify.busy {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		return m, m.navigate(Route{Name: HomeRoute})
	case "enter":
		token := m.verify.token.Value()
		if token == "" {
			m.verify.errNotice = "Introduce el token de verificación"
			return m, nil
		}
		m.verify.busy = true
		m.verify.errNotice = ""
		return m, m.submitVerify(token)
	}

	var cmd tea.Cmd
	m.verify.token, cmd = m.verify.token.Update(msg)
	return m, cmd
}

func (m *Model) submitVerify(token string) tea.Cmd {
	return func() tea.Msg {
		message, err := m.deps.Auth.VerifyEmail(m.ctx, token)
		return verifyResultMsg{message: message, err: err}
	}
}

func (m *Model) handleVerifyResult(msg verifyResultMsg) (tea.Model, tea.Cmd) {
	m.verify.busy = false
	if msg.err != nil {
		m.verify.errNotice = "No se pudo verificar el email. Comprueba el token."
		return m, nil
	}
	m.verify.message = msg.message
	return m, nil
}

func (m *Model) renderVerify() string {
	title := styles.title.Render("Verify Email")

	if m.verify.message != "" {
		body := styles.ok.Render(m.verify.message)
		footer := styles.help.Render("l login • esc back")
		return fmt.Sprintf("%s\n%s\n\n%s", title, body, footer)
	}

	var notice string
	if m.verify.busy {
		notice = styles.help.Render("Verifying...")
	} else if m.verify.errNotice != "" {
		notice = styles.err.Render(m.verify.errNotice)
	}

	footer := styles.help.Render("enter verify • esc back")
	return fmt.Sprintf("%s\n%s\n\n%s\n%s", title, m.verify.token.View(), notice, footer)
}
