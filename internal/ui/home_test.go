package ui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	tu "github.com/desertthunder/bookmatch/internal/testing"
)

func homeModel(t *testing.T) *Model {
	t.Helper()
	m := NewModel(context.Background(), Deps{Books: &tu.MockBooks{}}, Route{Name: HomeRoute})
	m.view = HomeView
	return m
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestHomeKeysWhileLoading(t *testing.T) {
	m := homeModel(t)
	m.enterHome()

	model, _ := m.handleHomeKeys(keyPress('x'))
	if model == nil {
		t.Fatal("expected the model back")
	}
	if !m.home.loading {
		t.Error("expected home to stay in the loading state")
	}
}

func TestHomeKeysAfterFetchFailure(t *testing.T) {
	m := homeModel(t)
	m.enterHome()
	m.handleHomeFetched(homeFetchedMsg{err: errors.New("backend down")})

	model, _ := m.handleHomeKeys(keyPress('x'))
	if model == nil {
		t.Fatal("expected the model back")
	}
	if m.home.err == nil {
		t.Error("expected the fetch error to be kept")
	}
}

func TestHomeEnterWithoutSelectionIsNoOp(t *testing.T) {
	m := homeModel(t)
	m.enterHome()

	if _, cmd := m.handleHomeKeys(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("expected no navigation with nothing selected")
	}
}
