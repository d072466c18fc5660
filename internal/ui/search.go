package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/bookmatch/internal/models"
	"github.com/desertthunder/bookmatch/internal/shared"
)

// searchState holds the active query and its results. requestID pins the
// in-flight request so a slow earlier response can never clobber a newer
// query's results.
type searchState struct {
	input      textinput.Model
	requestID  string
	query      string
	resultList list.Model
	results    []models.Book
	loading    bool
	searched   bool
	err        error
}

type searchResultsMsg struct {
	requestID string
	books     []models.Book
	err       error
}

func (m *Model) enterSearch() tea.Cmd {
	input := textinput.New()
	input.Placeholder = "search books..."
	input.Focus()
	input.CharLimit = 200

	m.search = searchState{input: input, resultList: newItemList(nil, "Results")}
	return textinput.Blink
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.search.input.Focused() {
		switch msg.String() {
		case "esc":
			if m.search.searched {
				m.search.input.Blur()
				return m, nil
			}
			return m, m.navigate(Route{Name: HomeRoute})
		case "enter":
			return m, m.submitSearch()
		}

		var cmd tea.Cmd
		m.search.input, cmd = m.search.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "esc":
		return m, m.navigate(Route{Name: HomeRoute})
	case "/", "i":
		m.search.input.Focus()
		return m, textinput.Blink
	case "enter":
		if book, ok := selectedBook(m.search.resultList); ok {
			return m, m.navigate(Route{Name: BookDetailRoute, Param: bookParam(book)})
		}
		return m, nil
	}

	if model, cmd, handled := m.handleGlobalNav(msg); handled {
		return model, cmd
	}

	var cmd tea.Cmd
	m.search.resultList, cmd = m.search.resultList.Update(msg)
	return m, cmd
}

// submitSearch issues a new query. Blank and whitespace-only queries are
// ignored without clearing existing results.
func (m *Model) submitSearch() tea.Cmd {
	query := shared.NormalizeQuery(m.search.input.Value())
	if query == "" {
		return nil
	}

	m.search.query = query
	m.search.requestID = shared.GenerateID()
	m.search.loading = true
	m.search.err = nil
	m.search.results = nil
	return m.fetchSearch(m.search.requestID, query)
}

func (m *Model) fetchSearch(requestID, query string) tea.Cmd {
	return func() tea.Msg {
		books, err := m.deps.Books.Search(m.ctx, query)
		return searchResultsMsg{requestID: requestID, books: books, err: err}
	}
}

func (m *Model) handleSearchResults(msg searchResultsMsg) (tea.Model, tea.Cmd) {
	// Stale response from a superseded query.
	if msg.requestID != m.search.requestID {
		return m, nil
	}

	m.search.loading = false
	m.search.searched = true
	if msg.err != nil {
		m.search.err = msg.err
		return m, nil
	}

	m.search.results = msg.books
	items := make([]list.Item, len(msg.books))
	for i, book := range msg.books {
		items[i] = bookItem{book: book}
	}
	m.search.resultList = newItemList(items, fmt.Sprintf("Results for '%s'", m.search.query))
	m.search.resultList.SetSize(m.width-4, m.height-8)
	m.search.input.Blur()
	return m, nil
}

func (m *Model) renderSearch() string {
	title := styles.title.Render("Search")

	var body string
	switch {
	case m.search.loading:
		body = "Searching..."
	case m.search.err != nil:
		body = styles.err.Render(fmt.Sprintf("Error: %v", m.search.err))
	case m.search.searched && len(m.search.results) == 0:
		body = styles.warn.Render(fmt.Sprintf("No se encontraron libros para '%s'", m.search.query))
	case m.search.searched:
		body = m.search.resultList.View()
	}

	helpView := m.help.ShortHelpView([]key.Binding{m.keys.enter, m.keys.back, m.keys.quit})
	return fmt.Sprintf("%s\n%s\n\n%s\n%s", title, m.search.input.View(), body, helpView)
}
