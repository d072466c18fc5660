package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/bookmatch/internal/shared"
)

// loginState holds the credential form and its last rejection message.
type loginState struct {
	email     textinput.Model
	password  textinput.Model
	focus     int
	busy      bool
	errNotice string
}

type loginResultMsg struct {
	err error
}

func (m *Model) enterLogin() tea.Cmd {
	email := textinput.New()
	email.Placeholder = "email"
	email.Focus()
	email.CharLimit = 120

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 120

	m.login = loginState{email: email, password: password}
	return textinput.Blink
}

func (m *Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.login.busy {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		return m, m.navigate(Route{Name: HomeRoute})
	case "tab", "shift+tab":
		m.login.focus = (m.login.focus + 1) % 2
		if m.login.focus == 0 {
			m.login.email.Focus()
			m.login.password.Blur()
		} else {
			m.login.email.Blur()
			m.login.password.Focus()
		}
		return m, textinput.Blink
	case "enter":
		email := m.login.email.Value()
		password := m.login.password.Value()
		if email == "" || password == "" {
			m.login.errNotice = "Introduce email y contraseña"
			return m, nil
		}
		m.login.busy = true
		m.login.errNotice = ""
		return m, m.submitLogin(email, password)
	}

	var cmd tea.Cmd
	if m.login.focus == 0 {
		m.login.email, cmd = m.login.email.Update(msg)
	} else {
		m.login.password, cmd = m.login.password.Update(msg)
	}
	return m, cmd
}

func (m *Model) submitLogin(email, password string) tea.Cmd {
	return func() tea.Msg {
		return loginResultMsg{err: m.deps.Session.Login(m.ctx, email, password)}
	}
}

func (m *Model) handleLoginResult(msg loginResultMsg) (tea.Model, tea.Cmd) {
	m.login.busy = false
	if msg.err != nil {
		m.login.errNotice = loginErrorMessage(msg.err)
		return m, nil
	}
	return m, m.navigate(Route{Name: HomeRoute})
}

// loginErrorMessage maps login rejections to the user-facing copy.
func loginErrorMessage(err error) string {
	switch {
	case errors.Is(err, shared.ErrUnverifiedAccount):
		return "Debes verificar tu email antes de iniciar sesión. Revisa tu correo."
	case errors.Is(err, shared.ErrUnauthorized):
		return "Credenciales incorrectas"
	default:
		return "Error al iniciar sesión. Por favor, inténtalo de nuevo."
	}
}

func (m *Model) renderLogin() string {
	title := styles.title.Render("Sign In")
	form := fmt.Sprintf("%s\n%s", m.login.email.View(), m.login.password.View())

	var notice string
	if m.login.busy {
		notice = styles.help.Render("Signing in...")
	} else if m.login.errNotice != "" {
		notice = styles.err.Render(m.login.errNotice)
	}

	footer := styles.help.Render("tab next field • enter submit • esc back")
	return fmt.Sprintf("%s\n%s\n\n%s\n%s", title, form, notice, footer)
}
