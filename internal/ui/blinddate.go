package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/bookmatch/internal/models"
)

// blindDatePhase tracks the reveal flow.
type blindDatePhase int

const (
	blindLoadingCard blindDatePhase = iota
	blindReady
	blindRevealing
	blindRevealed
)

// blindDateState holds the current anonymized card and, after reveal, the
// book behind it. A card is revealed at most once; fetching a new card
// discards everything.
type blindDateState struct {
	phase     blindDatePhase
	card      *models.BlindDateCard
	book      *models.Book
	errNotice string
	loadErr   error
}

type blindCardMsg struct {
	card *models.BlindDateCard
	err  error
}

type blindRevealMsg struct {
	quoteID int64
	book    *models.Book
	err     error
}

func (m *Model) enterBlindDate() tea.Cmd {
	m.blind = blindDateState{phase: blindLoadingCard}
	return m.fetchBlindCard()
}

func (m *Model) fetchBlindCard() tea.Cmd {
	return func() tea.Msg {
		card, err := m.deps.Recs.BlindDate(m.ctx)
		return blindCardMsg{card: card, err: err}
	}
}

func (m *Model) handleBlindCard(msg blindCardMsg) (tea.Model, tea.Cmd) {
	if m.blind.phase != blindLoadingCard {
		return m, nil
	}
	if msg.err != nil {
		m.blind.loadErr = msg.err
		return m, nil
	}
	m.blind.phase = blindReady
	m.blind.card = msg.card
	return m, nil
}

func (m *Model) handleBlindDateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, m.navigate(Route{Name: HomeRoute})
	case "r":
		return m, m.revealCard()
	case "n":
		// A new card may replace a waiting or revealed one, but not
		// interrupt a reveal in flight.
		if m.blind.phase == blindReady || m.blind.phase == blindRevealed {
			m.blind = blindDateState{phase: blindLoadingCard}
			return m, m.fetchBlindCard()
		}
		return m, nil
	case "enter":
		if m.blind.phase == blindRevealed && m.blind.book != nil {
			return m, m.navigate(Route{Name: BookDetailRoute, Param: bookParam(*m.blind.book)})
		}
		return m, nil
	}

	if model, cmd, handled := m.handleGlobalNav(msg); handled {
		return model, cmd
	}
	return m, nil
}

// revealCard resolves the book behind the current card. Only one reveal
// may be in flight; repeat presses while revealing are no-ops.
func (m *Model) revealCard() tea.Cmd {
	if m.blind.phase != blindReady || m.blind.card == nil {
		return nil
	}

	m.blind.phase = blindRevealing
	m.blind.errNotice = ""
	quoteID := m.blind.card.QuoteID
	googleBookID := m.blind.card.GoogleBookID
	return func() tea.Msg {
		books, err := m.deps.Books.Search(m.ctx, googleBookID)
		if err != nil {
			return blindRevealMsg{quoteID: quoteID, err: err}
		}
		if len(books) == 0 {
			return blindRevealMsg{quoteID: quoteID}
		}
		return blindRevealMsg{quoteID: quoteID, book: &books[0]}
	}
}

func (m *Model) handleBlindReveal(msg blindRevealMsg) (tea.Model, tea.Cmd) {
	// Stale reveal for a card that has since been replaced.
	if m.blind.phase != blindRevealing || m.blind.card == nil || m.blind.card.QuoteID != msg.quoteID {
		return m, nil
	}

	if msg.err != nil || msg.book == nil {
		// Lookup failed; the card stays intact so reveal can be retried.
		m.blind.phase = blindReady
		m.blind.errNotice = "No pudimos encontrar el libro. Inténtalo de nuevo."
		return m, nil
	}

	m.blind.phase = blindRevealed
	m.blind.book = msg.book
	return m, nil
}

func (m *Model) renderBlindDate() string {
	title := styles.title.Render("Blind Date with a Book")

	if m.blind.loadErr != nil {
		return title + "\n" + styles.err.Render(fmt.Sprintf("Error: %v", m.blind.loadErr))
	}

	switch m.blind.phase {
	case blindLoadingCard:
		return title + "\nDrawing a card..."

	case blindReady, blindRevealing:
		card := m.blind.card
		body := styles.quote.Render(fmt.Sprintf("“%s”", card.QuoteText))
		if card.GenreHint != "" {
			body += "\n\n" + styles.warn.Render("Genre: "+card.GenreHint)
		}
		var notice string
		if m.blind.phase == blindRevealing {
			notice = "\n\nRevealing..."
		} else if m.blind.errNotice != "" {
			notice = "\n\n" + styles.err.Render(m.blind.errNotice)
		}
		footer := styles.help.Render("r reveal • n new card • esc back")
		return fmt.Sprintf("%s\n%s%s\n\n%s", title, body, notice, footer)

	case blindRevealed:
		book := m.blind.book
		body := styles.ok.Render("✓ "+book.Title) + "\n" + book.Authors
		if book.Description != "" {
			body += "\n\n" + book.Description
		}
		footer := styles.help.Render("enter view book • n new card • esc back")
		return fmt.Sprintf("%s\n%s\n\n%s", title, body, footer)
	}

	return ""
}
