package ui

import (
	"context"
	"errors"
	"testing"

	"github.com/desertthunder/bookmatch/internal/models"
	"github.com/desertthunder/bookmatch/internal/session"
	"github.com/desertthunder/bookmatch/internal/shared"
	tu "github.com/desertthunder/bookmatch/internal/testing"
)

func detailModel(t *testing.T) *Model {
	t.Helper()
	deps := Deps{
		Books:   &tu.MockBooks{},
		Library: &tu.MockLibrary{},
		Reviews: &tu.MockReviews{},
	}
	m := NewModel(context.Background(), deps, Route{Name: BookDetailRoute, Param: "1"})
	m.view = BookDetailView
	return m
}

func TestDetailReviewAppendsWithoutRefetch(t *testing.T) {
	m := detailModel(t)
	m.detail = detailState{
		book:    &models.Book{GoogleBookID: "g1", Title: "Dune"},
		reviews: []models.Review{{ReviewID: 1, Username: "ana", Rating: 4, Comment: "good"}},
	}

	created := &models.Review{ReviewID: 2, Username: "bob", Rating: 5, Comment: "great"}
	m.handleReviewCreated(reviewCreatedMsg{review: created})

	if len(m.detail.reviews) != 2 {
		t.Fatalf("expected 2 reviews after append, got %d", len(m.detail.reviews))
	}
	if m.detail.reviews[1].ReviewID != 2 {
		t.Errorf("expected the created review appended last, got %+v", m.detail.reviews[1])
	}
	if m.detail.editingReview {
		t.Error("expected the editor to close after publishing")
	}
}

func TestFetchBookNumericMissFallsBackToSearch(t *testing.T) {
	m := detailModel(t)
	m.deps.Books = &tu.MockBooks{
		GetFn: func(ctx context.Context, id int64) (*models.Book, error) {
			return nil, errors.New("row not found")
		},
		SearchFn: func(ctx context.Context, query string) ([]models.Book, error) {
			if query != "42" {
				t.Errorf("expected the raw identifier as the query, got %q", query)
			}
			return []models.Book{
				{GoogleBookID: "g1", Title: "First Match"},
				{GoogleBookID: "g2", Title: "Second Match"},
			}, nil
		},
	}

	msg, ok := m.fetchBook("42")().(bookLoadedMsg)
	if !ok {
		t.Fatal("expected a book load message")
	}
	if msg.err != nil {
		t.Fatalf("expected the fallback to succeed, got %v", msg.err)
	}
	if msg.book == nil || msg.book.GoogleBookID != "g1" {
		t.Errorf("expected the first match to win, got %+v", msg.book)
	}
}

func TestFetchBookNoMatchesReportsNotFound(t *testing.T) {
	m := detailModel(t)
	m.deps.Books = &tu.MockBooks{
		GetFn: func(ctx context.Context, id int64) (*models.Book, error) {
			return nil, errors.New("row not found")
		},
		SearchFn: func(ctx context.Context, query string) ([]models.Book, error) {
			return nil, nil
		},
	}

	msg := m.fetchBook("42")().(bookLoadedMsg)
	if !errors.Is(msg.err, shared.ErrBookNotFound) {
		t.Errorf("expected a book-not-found error, got %v", msg.err)
	}
}

func TestFetchBookNonNumericSearchesDirectly(t *testing.T) {
	m := detailModel(t)
	var gotCalled bool
	m.deps.Books = &tu.MockBooks{
		GetFn: func(ctx context.Context, id int64) (*models.Book, error) {
			gotCalled = true
			return nil, errors.New("unexpected local lookup")
		},
		SearchFn: func(ctx context.Context, query string) ([]models.Book, error) {
			return []models.Book{{GoogleBookID: "abc123", Title: "Dune"}}, nil
		},
	}

	msg := m.fetchBook("abc123")().(bookLoadedMsg)
	if gotCalled {
		t.Error("expected no local lookup for a non-numeric identifier")
	}
	if msg.book == nil || msg.book.GoogleBookID != "abc123" {
		t.Errorf("expected the search result, got %+v", msg.book)
	}
}

func TestDetailStatusRequiresAuth(t *testing.T) {
	m := detailModel(t)
	m.detail = detailState{book: &models.Book{GoogleBookID: "g1"}}
	m.status = session.Status{}

	if cmd := m.saveStatus(models.StatusReading); cmd != nil {
		t.Error("expected no mutation while signed out")
	}
	if m.detail.notice == "" {
		t.Error("expected a sign-in notice")
	}
}

func TestDetailStatusSavedUpdatesBook(t *testing.T) {
	m := detailModel(t)
	m.detail = detailState{book: &models.Book{GoogleBookID: "g1"}}
	m.status = session.Status{Authenticated: true, UserID: 3}

	if cmd := m.saveStatus(models.StatusRead); cmd == nil {
		t.Fatal("expected a mutation command while signed in")
	}

	m.handleStatusSaved(statusSavedMsg{status: models.StatusRead})
	if m.detail.book.UserReadingStatus != models.StatusRead {
		t.Errorf("expected shelf state on the book, got %q", m.detail.book.UserReadingStatus)
	}
}

func TestDetailStaleReviewListIgnored(t *testing.T) {
	m := detailModel(t)
	m.detail = detailState{book: &models.Book{GoogleBookID: "current"}}

	m.handleReviewsFetched(reviewsFetchedMsg{
		googleBookID: "previous",
		reviews:      []models.Review{{ReviewID: 9}},
	})

	if len(m.detail.reviews) != 0 {
		t.Error("expected reviews for another book to be dropped")
	}
}
