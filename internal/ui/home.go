package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/bookmatch/internal/models"
)

// homeState holds the aggregate home payload and the featured book picker.
type homeState struct {
	data     *models.Home
	bookList list.Model
	loading  bool
	err      error
}

type homeFetchedMsg struct {
	home *models.Home
	err  error
}

func (m *Model) enterHome() tea.Cmd {
	m.home = homeState{loading: true, bookList: newItemList(nil, "Featured Books")}
	return m.fetchHome()
}

func (m *Model) fetchHome() tea.Cmd {
	return func() tea.Msg {
		home, err := m.deps.Books.Home(m.ctx)
		return homeFetchedMsg{home: home, err: err}
	}
}

func (m *Model) handleHomeFetched(msg homeFetchedMsg) (tea.Model, tea.Cmd) {
	m.home.loading = false
	if msg.err != nil {
		m.home.err = msg.err
		return m, nil
	}

	m.home.data = msg.home
	items := make([]list.Item, 0, len(msg.home.FeaturedBooks)+len(msg.home.PersonalRecommendations))
	for _, rec := range msg.home.PersonalRecommendations {
		items = append(items, recommendationItem{rec: rec})
	}
	for _, book := range msg.home.FeaturedBooks {
		items = append(items, bookItem{book: book})
	}
	m.home.bookList = newItemList(items, "Featured Books")
	if len(msg.home.PersonalRecommendations) > 0 {
		m.home.bookList.Title = "For You & Featured"
	}
	m.home.bookList.SetSize(m.width-4, m.height-8)
	return m, nil
}

func (m *Model) handleHomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		if book, ok := selectedBook(m.home.bookList); ok {
			return m, m.navigate(Route{Name: BookDetailRoute, Param: bookParam(book)})
		}
		return m, nil
	}

	if model, cmd, handled := m.handleGlobalNav(msg); handled {
		return model, cmd
	}

	var cmd tea.Cmd
	m.home.bookList, cmd = m.home.bookList.Update(msg)
	return m, cmd
}

func (m *Model) renderHome() string {
	if m.home.loading {
		return "Loading home..."
	}
	if m.home.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v", m.home.err))
	}
	if m.home.data == nil {
		return ""
	}

	var taxonomy string
	if len(m.home.data.MainGenres) > 0 {
		names := make([]string, 0, len(m.home.data.MainGenres))
		for _, g := range m.home.data.MainGenres {
			names = append(names, g.Name)
		}
		taxonomy = styles.help.Render("Genres: " + strings.Join(names, ", "))
	}

	helpView := m.help.ShortHelpView([]key.Binding{m.keys.enter, m.keys.search, m.keys.quit})
	return fmt.Sprintf("%s\n%s\n\n%s", m.home.bookList.View(), taxonomy, helpView)
}

// selectedBook extracts the book behind the highlighted item, whether it
// is a plain book or a scored recommendation.
func selectedBook(l list.Model) (models.Book, bool) {
	switch item := l.SelectedItem().(type) {
	case bookItem:
		return item.book, true
	case recommendationItem:
		return item.rec.Book, true
	default:
		return models.Book{}, false
	}
}

// bookParam picks the route parameter for a book, preferring the local
// numeric id when the backend has assigned one.
func bookParam(book models.Book) string {
	if book.BookID > 0 {
		return strconv.FormatInt(book.BookID, 10)
	}
	return book.GoogleBookID
}
