package ui

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/bookmatch/internal/shared"
)

func loginModel(t *testing.T) *Model {
	t.Helper()
	m := NewModel(context.Background(), Deps{}, Route{Name: LoginRoute})
	m.view = LoginView
	m.enterLogin()
	return m
}

func TestLoginRejectionMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "bad credentials",
			err:  fmt.Errorf("%w: login failed", shared.ErrUnauthorized),
			want: "Credenciales incorrectas",
		},
		{
			name: "unverified account",
			err:  fmt.Errorf("%w: login failed", shared.ErrUnverifiedAccount),
			want: "Debes verificar tu email antes de iniciar sesión. Revisa tu correo.",
		},
		{
			name: "backend unreachable",
			err:  fmt.Errorf("%w: connection refused", shared.ErrAPIRequest),
			want: "Error al iniciar sesión. Por favor, inténtalo de nuevo.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := loginModel(t)
			m.login.busy = true

			m.handleLoginResult(loginResultMsg{err: tc.err})

			if m.login.errNotice != tc.want {
				t.Errorf("expected notice %q, got %q", tc.want, m.login.errNotice)
			}
			if m.login.busy {
				t.Error("expected the form to unlock after a rejection")
			}
			if m.view != LoginView {
				t.Error("expected to stay on the login view after a rejection")
			}
			if m.status.Authenticated {
				t.Error("expected the session to remain unauthenticated")
			}
		})
	}
}

func TestLoginSuccessNavigatesHome(t *testing.T) {
	m := loginModel(t)
	m.login.busy = true

	m.handleLoginResult(loginResultMsg{})

	if m.view != HomeView {
		t.Errorf("expected home after login, got view %v", m.view)
	}
	if m.login.errNotice != "" {
		t.Errorf("expected no notice on success, got %q", m.login.errNotice)
	}
}

func TestLoginRequiresBothFields(t *testing.T) {
	m := loginModel(t)
	m.login.email.SetValue("ana@example.com")

	if _, cmd := m.handleLoginKeys(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("expected no submission with an empty password")
	}
	if m.login.errNotice != "Introduce email y contraseña" {
		t.Errorf("unexpected notice %q", m.login.errNotice)
	}
}
