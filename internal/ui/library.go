package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/bookmatch/internal/models"
)

// libraryState holds the user's custom lists. The slice is a cache that
// is re-fetched after every mutation rather than patched in place.
type libraryState struct {
	lists    []models.CustomList
	listView list.Model
	loading  bool
	err      error
	notice   string

	creating  bool
	nameInput textinput.Model
	descInput textinput.Model
	focus     int
	public    bool
}

type listsFetchedMsg struct {
	lists []models.CustomList
	err   error
}

type listMutatedMsg struct {
	err error
}

func (m *Model) enterLibrary() tea.Cmd {
	lv := newItemList(nil, "My Library")
	if !m.status.Authenticated {
		m.library = libraryState{listView: lv, notice: "Inicia sesión para ver tu biblioteca"}
		return nil
	}
	m.library = libraryState{listView: lv, loading: true}
	return m.fetchLists()
}

func (m *Model) fetchLists() tea.Cmd {
	return func() tea.Msg {
		lists, err := m.deps.Library.CustomLists(m.ctx)
		return listsFetchedMsg{lists: lists, err: err}
	}
}

func (m *Model) handleListsFetched(msg listsFetchedMsg) (tea.Model, tea.Cmd) {
	m.library.loading = false
	if msg.err != nil {
		m.library.err = msg.err
		return m, nil
	}

	m.library.lists = msg.lists
	items := make([]list.Item, len(msg.lists))
	for i, cl := range msg.lists {
		items[i] = customListItem{list: cl}
	}
	m.library.listView = newItemList(items, "My Library")
	m.library.listView.SetSize(m.width-4, m.height-8)
	return m, nil
}

func (m *Model) handleLibraryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.library.creating {
		return m.handleListFormKeys(msg)
	}

	switch msg.String() {
	case "esc":
		return m, m.navigate(Route{Name: HomeRoute})
	case "n":
		if !m.status.Authenticated {
			return m, nil
		}
		name := textinput.New()
		name.Placeholder = "list name"
		name.CharLimit = 80
		name.Focus()
		desc := textinput.New()
		desc.Placeholder = "description"
		desc.CharLimit = 200
		m.library.creating = true
		m.library.nameInput = name
		m.library.descInput = desc
		m.library.focus = 0
		m.library.public = false
		return m, textinput.Blink
	case "d":
		if item, ok := m.library.listView.SelectedItem().(customListItem); ok {
			return m, m.deleteList(item.list.ListID)
		}
		return m, nil
	}

	if model, cmd, handled := m.handleGlobalNav(msg); handled {
		return model, cmd
	}

	var cmd tea.Cmd
	m.library.listView, cmd = m.library.listView.Update(msg)
	return m, cmd
}

func (m *Model) handleListFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.library.creating = false
		return m, nil
	case "tab":
		m.library.focus = (m.library.focus + 1) % 2
		if m.library.focus == 0 {
			m.library.nameInput.Focus()
			m.library.descInput.Blur()
		} else {
			m.library.nameInput.Blur()
			m.library.descInput.Focus()
		}
		return m, textinput.Blink
	case "ctrl+p":
		m.library.public = !m.library.public
		return m, nil
	case "enter":
		name := m.library.nameInput.Value()
		if name == "" {
			m.library.notice = "La lista necesita un nombre"
			return m, nil
		}
		m.library.creating = false
		return m, m.createList(name, m.library.descInput.Value(), m.library.public)
	}

	var cmd tea.Cmd
	if m.library.focus == 0 {
		m.library.nameInput, cmd = m.library.nameInput.Update(msg)
	} else {
		m.library.descInput, cmd = m.library.descInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) createList(name, description string, isPublic bool) tea.Cmd {
	return func() tea.Msg {
		return listMutatedMsg{err: m.deps.Library.CreateCustomList(m.ctx, name, description, isPublic)}
	}
}

func (m *Model) deleteList(listID int64) tea.Cmd {
	return func() tea.Msg {
		return listMutatedMsg{err: m.deps.Library.DeleteCustomList(m.ctx, listID)}
	}
}

func (m *Model) handleListMutated(msg listMutatedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.library.notice = "No se pudo guardar el cambio"
		return m, nil
	}
	// Mutations invalidate the cached lists wholesale.
	m.library.loading = true
	m.library.notice = ""
	return m, m.fetchLists()
}

func (m *Model) renderLibrary() string {
	if !m.status.Authenticated {
		return styles.warn.Render(m.library.notice) + "\n" + styles.help.Render("l login • esc back")
	}
	if m.library.loading {
		return "Loading your lists..."
	}
	if m.library.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v", m.library.err))
	}

	if m.library.creating {
		title := styles.title.Render("New List")
		visibility := "private"
		if m.library.public {
			visibility = "public"
		}
		form := fmt.Sprintf("%s\n%s\nVisibility: %s",
			m.library.nameInput.View(), m.library.descInput.View(), visibility)
		footer := styles.help.Render("tab next field • ctrl+p toggle visibility • enter create • esc cancel")
		return fmt.Sprintf("%s\n%s\n\n%s", title, form, footer)
	}

	var notice string
	if m.library.notice != "" {
		notice = "\n" + styles.warn.Render(m.library.notice)
	}

	footer := styles.help.Render("n new list • d delete • esc back")
	return fmt.Sprintf("%s%s\n\n%s", m.library.listView.View(), notice, footer)
}
