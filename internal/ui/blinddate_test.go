package ui

import (
	"context"
	"testing"

	"github.com/desertthunder/bookmatch/internal/models"
	tu "github.com/desertthunder/bookmatch/internal/testing"
)

func blindDateModel(t *testing.T) *Model {
	t.Helper()
	deps := Deps{
		Recs:  &tu.MockRecommendations{},
		Books: &tu.MockBooks{},
	}
	m := NewModel(context.Background(), deps, Route{Name: BlindDateRoute})
	m.view = BlindDateView
	return m
}

func testCard() *models.BlindDateCard {
	return &models.BlindDateCard{
		QuoteID:      7,
		QuoteText:    "It was a pleasure to burn.",
		GoogleBookID: "fahrenheit-451",
		GenreHint:    "Dystopia",
	}
}

func TestBlindDateRevealOnlyFromReady(t *testing.T) {
	m := blindDateModel(t)
	m.blind = blindDateState{phase: blindLoadingCard}

	if cmd := m.revealCard(); cmd != nil {
		t.Error("expected reveal before the card arrives to be a no-op")
	}

	m.handleBlindCard(blindCardMsg{card: testCard()})
	if m.blind.phase != blindReady {
		t.Fatalf("expected ready after card fetch, got %v", m.blind.phase)
	}

	if cmd := m.revealCard(); cmd == nil {
		t.Error("expected reveal from ready to produce a lookup command")
	}
	if m.blind.phase != blindRevealing {
		t.Errorf("expected revealing phase, got %v", m.blind.phase)
	}
}

func TestBlindDateSecondRevealIsIgnored(t *testing.T) {
	m := blindDateModel(t)
	m.blind = blindDateState{phase: blindLoadingCard}
	m.handleBlindCard(blindCardMsg{card: testCard()})

	if cmd := m.revealCard(); cmd == nil {
		t.Fatal("expected first reveal to produce a command")
	}
	if cmd := m.revealCard(); cmd != nil {
		t.Error("expected second reveal while revealing to be a no-op")
	}
}

func TestBlindDateEmptyLookupKeepsCard(t *testing.T) {
	m := blindDateModel(t)
	m.blind = blindDateState{phase: blindLoadingCard}
	m.handleBlindCard(blindCardMsg{card: testCard()})
	m.revealCard()

	m.handleBlindReveal(blindRevealMsg{quoteID: 7})

	if m.blind.phase != blindReady {
		t.Errorf("expected ready after empty lookup, got %v", m.blind.phase)
	}
	if m.blind.card == nil || m.blind.card.QuoteID != 7 {
		t.Error("expected the card to survive a failed lookup")
	}
	if m.blind.errNotice == "" {
		t.Error("expected a lookup-failed notice")
	}

	// The intact card can be revealed again.
	if cmd := m.revealCard(); cmd == nil {
		t.Error("expected retry reveal to produce a command")
	}
}

func TestBlindDateStaleRevealIgnored(t *testing.T) {
	m := blindDateModel(t)
	m.blind = blindDateState{phase: blindLoadingCard}
	m.handleBlindCard(blindCardMsg{card: testCard()})
	m.revealCard()

	// A different card's reveal result arrives late.
	m.handleBlindReveal(blindRevealMsg{quoteID: 99, book: &models.Book{Title: "Wrong Book"}})

	if m.blind.phase != blindRevealing {
		t.Errorf("expected stale reveal to be ignored, got phase %v", m.blind.phase)
	}
	if m.blind.book != nil {
		t.Error("expected no book recorded from a stale reveal")
	}
}

func TestBlindDateRevealSuccess(t *testing.T) {
	m := blindDateModel(t)
	m.blind = blindDateState{phase: blindLoadingCard}
	m.handleBlindCard(blindCardMsg{card: testCard()})
	m.revealCard()

	book := &models.Book{Title: "Fahrenheit 451", GoogleBookID: "fahrenheit-451"}
	m.handleBlindReveal(blindRevealMsg{quoteID: 7, book: book})

	if m.blind.phase != blindRevealed {
		t.Errorf("expected revealed phase, got %v", m.blind.phase)
	}
	if m.blind.book == nil || m.blind.book.Title != "Fahrenheit 451" {
		t.Error("expected the revealed book to be stored")
	}
}
