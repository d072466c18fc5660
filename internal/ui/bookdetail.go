package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/bookmatch/internal/models"
	"github.com/desertthunder/bookmatch/internal/shared"
)

// statusChoices maps the numeric shortcut row to shelf states.
var statusChoices = []models.ReadingStatus{
	models.StatusWantToRead,
	models.StatusReading,
	models.StatusRead,
	models.StatusDropped,
}

// detailState holds one book record, its reviews and the review editor.
type detailState struct {
	param         string
	book          *models.Book
	reviews       []models.Review
	loading       bool
	err           error
	notice        string
	editingReview bool
	comment       textinput.Model
	rating        int
	busy          bool
}

type bookLoadedMsg struct {
	book *models.Book
	err  error
}

type reviewsFetchedMsg struct {
	googleBookID string
	reviews      []models.Review
	err          error
}

type statusSavedMsg struct {
	status models.ReadingStatus
	err    error
}

type reviewCreatedMsg struct {
	review *models.Review
	err    error
}

func (m *Model) enterDetail(param string) tea.Cmd {
	m.detail = detailState{param: param, loading: true, rating: 5}
	return m.fetchBook(param)
}

// fetchBook loads the record behind param. Numeric parameters are local
// book ids; when the local lookup misses (book not yet persisted) the
// identifier falls back to catalog search and the first match wins.
func (m *Model) fetchBook(param string) tea.Cmd {
	return func() tea.Msg {
		if id, err := strconv.ParseInt(param, 10, 64); err == nil {
			if book, err := m.deps.Books.Get(m.ctx, id); err == nil {
				return bookLoadedMsg{book: book}
			}
		}

		books, err := m.deps.Books.Search(m.ctx, param)
		if err != nil {
			return bookLoadedMsg{err: err}
		}
		if len(books) == 0 {
			return bookLoadedMsg{err: fmt.Errorf("%w: %s", shared.ErrBookNotFound, param)}
		}
		return bookLoadedMsg{book: &books[0]}
	}
}

func (m *Model) handleBookLoaded(msg bookLoadedMsg) (tea.Model, tea.Cmd) {
	m.detail.loading = false
	if msg.err != nil {
		m.detail.err = msg.err
		return m, nil
	}
	m.detail.book = msg.book
	return m, m.fetchReviews(msg.book.GoogleBookID)
}

func (m *Model) fetchReviews(googleBookID string) tea.Cmd {
	return func() tea.Msg {
		reviews, err := m.deps.Reviews.List(m.ctx, googleBookID)
		return reviewsFetchedMsg{googleBookID: googleBookID, reviews: reviews, err: err}
	}
}

func (m *Model) handleReviewsFetched(msg reviewsFetchedMsg) (tea.Model, tea.Cmd) {
	if m.detail.book == nil || msg.googleBookID != m.detail.book.GoogleBookID {
		return m, nil
	}
	// Review list failures leave the book page usable.
	if msg.err == nil {
		m.detail.reviews = msg.reviews
	}
	return m, nil
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.detail.editingReview {
		return m.handleReviewEditorKeys(msg)
	}

	switch msg.String() {
	case "esc":
		return m, m.navigate(Route{Name: HomeRoute})
	case "1", "2", "3", "4":
		idx := int(msg.String()[0] - '1')
		return m, m.saveStatus(statusChoices[idx])
	case "o":
		if m.detail.book == nil {
			return m, nil
		}
		url := fmt.Sprintf("https://books.google.com/books?id=%s", m.detail.book.GoogleBookID)
		return m, func() tea.Msg {
			_ = shared.OpenBrowser(url)
			return nil
		}
	case "c":
		if m.detail.book == nil {
			return m, nil
		}
		if !m.status.Authenticated {
			m.detail.notice = "Inicia sesión para escribir una reseña"
			return m, nil
		}
		comment := textinput.New()
		comment.Placeholder = "your review..."
		comment.CharLimit = 500
		comment.Focus()
		m.detail.comment = comment
		m.detail.rating = 5
		m.detail.editingReview = true
		return m, textinput.Blink
	}

	if model, cmd, handled := m.handleGlobalNav(msg); handled {
		return model, cmd
	}
	return m, nil
}

func (m *Model) handleReviewEditorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.detail.busy {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.detail.editingReview = false
		return m, nil
	case "up":
		if m.detail.rating < 5 {
			m.detail.rating++
		}
		return m, nil
	case "down":
		if m.detail.rating > 1 {
			m.detail.rating--
		}
		return m, nil
	case "enter":
		comment := strings.TrimSpace(m.detail.comment.Value())
		if comment == "" {
			m.detail.notice = "Escribe un comentario antes de publicar"
			return m, nil
		}
		m.detail.busy = true
		return m, m.submitReview(m.detail.rating, comment)
	}

	var cmd tea.Cmd
	m.detail.comment, cmd = m.detail.comment.Update(msg)
	return m, cmd
}

func (m *Model) saveStatus(status models.ReadingStatus) tea.Cmd {
	if m.detail.book == nil {
		return nil
	}
	if !m.status.Authenticated {
		m.detail.notice = "Inicia sesión para guardar tu estado de lectura"
		return nil
	}

	userID := m.status.UserID
	googleBookID := m.detail.book.GoogleBookID
	return func() tea.Msg {
		err := m.deps.Library.SetStatus(m.ctx, userID, googleBookID, status)
		return statusSavedMsg{status: status, err: err}
	}
}

func (m *Model) handleStatusSaved(msg statusSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.detail.notice = "No se pudo guardar el estado"
		return m, nil
	}
	if m.detail.book != nil {
		m.detail.book.UserReadingStatus = msg.status
	}
	m.detail.notice = fmt.Sprintf("Estado guardado: %s", msg.status)
	return m, nil
}

func (m *Model) submitReview(rating int, comment string) tea.Cmd {
	req := models.ReviewRequest{
		UserID:       m.status.UserID,
		GoogleBookID: m.detail.book.GoogleBookID,
		Rating:       rating,
		Comment:      comment,
	}
	return func() tea.Msg {
		review, err := m.deps.Reviews.Create(m.ctx, req)
		return reviewCreatedMsg{review: review, err: err}
	}
}

func (m *Model) handleReviewCreated(msg reviewCreatedMsg) (tea.Model, tea.Cmd) {
	m.detail.busy = false
	if msg.err != nil {
		m.detail.notice = "No se pudo publicar la reseña"
		return m, nil
	}

	// Append the created review directly instead of re-fetching the list.
	m.detail.reviews = append(m.detail.reviews, *msg.review)
	m.detail.editingReview = false
	m.detail.notice = "Reseña publicada"
	return m, nil
}

func (m *Model) renderDetail() string {
	if m.detail.loading {
		return "Loading book..."
	}
	if m.detail.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v", m.detail.err)) +
			"\n" + styles.help.Render("esc back")
	}

	book := m.detail.book
	if book == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.title.Render(book.Title))
	b.WriteString("\n" + book.Authors)
	if book.AverageRatingAPI > 0 {
		b.WriteString(fmt.Sprintf(" • %.1f★", book.AverageRatingAPI))
	}
	if book.UserReadingStatus != "" {
		b.WriteString("\n" + styles.ok.Render(fmt.Sprintf("On your shelf: %s", book.UserReadingStatus)))
	}
	if book.Description != "" {
		b.WriteString("\n\n" + book.Description)
	}

	if len(m.detail.reviews) > 0 {
		b.WriteString("\n\n" + styles.title.Render("Reviews"))
		for _, review := range m.detail.reviews {
			b.WriteString(fmt.Sprintf("\n%d★ %s: %s", review.Rating, review.Username, review.Comment))
		}
	}

	if m.detail.editingReview {
		stars := strings.Repeat("★", m.detail.rating) + strings.Repeat("☆", 5-m.detail.rating)
		b.WriteString(fmt.Sprintf("\n\nRating: %s (↑/↓)\n%s", stars, m.detail.comment.View()))
		b.WriteString("\n" + styles.help.Render("enter publish • esc cancel"))
	} else {
		b.WriteString("\n\n" + styles.help.Render("1 want to read • 2 reading • 3 read • 4 dropped • c review • o open in browser • esc back"))
	}

	if m.detail.notice != "" {
		b.WriteString("\n" + styles.warn.Render(m.detail.notice))
	}

	return b.String()
}
