package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/bookmatch/internal/models"
	"github.com/desertthunder/bookmatch/internal/shared"
)

// registerState holds the signup form. Genre and tag preferences are a
// CLI concern (register command flags), not part of the TUI form.
type registerState struct {
	username  textinput.Model
	email     textinput.Model
	password  textinput.Model
	focus     int
	busy      bool
	message   string
	errNotice string
}

type registerResultMsg struct {
	message string
	err     error
}

func (m *Model) enterRegister() tea.Cmd {
	username := textinput.New()
	username.Placeholder = "username"
	username.Focus()
	username.CharLimit = 60

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 120

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 120

	m.register = registerState{username: username, email: email, password: password}
	return textinput.Blink
}

func (m *Model) registerInputs() []*textinput.Model {
	return []*textinput.Model{&m.register.username, &m.register.email, &m.register.password}
}

func (m *Model) handleRegisterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.register.busy {
		return m, nil
	}

	inputs := m.registerInputs()

	switch msg.String() {
	case "esc":
		return m, m.navigate(Route{Name: HomeRoute})
	case "tab":
		m.register.focus = (m.register.focus + 1) % len(inputs)
		for i, input := range inputs {
			if i == m.register.focus {
				input.Focus()
			} else {
				input.Blur()
			}
		}
		return m, textinput.Blink
	case "enter":
		username := m.register.username.Value()
		email := m.register.email.Value()
		password := m.register.password.Value()
		if username == "" || email == "" || password == "" {
			m.register.errNotice = "Completa todos los campos"
			return m, nil
		}
		m.register.busy = true
		m.register.errNotice = ""
		return m, m.submitRegister(username, email, password)
	}

	var cmd tea.Cmd
	*inputs[m.register.focus], cmd = inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m *Model) submitRegister(username, email, password string) tea.Cmd {
	return func() tea.Msg {
		message, err := m.deps.Auth.Register(m.ctx, models.RegisterRequest{
			Username: username,
			Email:    email,
			Password: password,
		})
		return registerResultMsg{message: message, err: err}
	}
}

func (m *Model) handleRegisterResult(msg registerResultMsg) (tea.Model, tea.Cmd) {
	m.register.busy = false
	if msg.err != nil {
		if errors.Is(msg.err, shared.ErrConflict) {
			m.register.errNotice = "Ese usuario o email ya está registrado"
		} else {
			m.register.errNotice = "Error al registrarse. Por favor, inténtalo de nuevo."
		}
		return m, nil
	}
	m.register.message = msg.message
	return m, nil
}

func (m *Model) renderRegister() string {
	title := styles.title.Render("Create Account")

	if m.register.message != "" {
		body := styles.ok.Render(m.register.message)
		footer := styles.help.Render("Revisa tu correo para verificar la cuenta • esc back")
		return fmt.Sprintf("%s\n%s\n\n%s", title, body, footer)
	}

	form := fmt.Sprintf("%s\n%s\n%s",
		m.register.username.View(), m.register.email.View(), m.register.password.View())

	var notice string
	if m.register.busy {
		notice = styles.help.Render("Registering...")
	} else if m.register.errNotice != "" {
		notice = styles.err.Render(m.register.errNotice)
	}

	footer := styles.help.Render("tab next field • enter submit • esc back")
	return fmt.Sprintf("%s\n%s\n\n%s\n%s", title, form, notice, footer)
}
