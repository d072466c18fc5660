package ui

import (
	"context"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/desertthunder/bookmatch/internal/models"
	tu "github.com/desertthunder/bookmatch/internal/testing"
)

func searchModel(t *testing.T) *Model {
	t.Helper()
	m := NewModel(context.Background(), Deps{Books: &tu.MockBooks{}}, Route{Name: SearchRoute})
	m.view = SearchView
	m.search = searchState{input: textinput.New()}
	return m
}

func TestSearchIgnoresWhitespaceQueries(t *testing.T) {
	for _, query := range []string{"", "   ", "\t \n"} {
		m := searchModel(t)
		m.search.input.SetValue(query)

		if cmd := m.submitSearch(); cmd != nil {
			t.Errorf("expected no request for query %q", query)
		}
		if m.search.loading {
			t.Errorf("expected no loading state for query %q", query)
		}
	}
}

func TestSearchNormalizesQuery(t *testing.T) {
	m := searchModel(t)
	m.search.input.SetValue("  the   left hand  ")

	if cmd := m.submitSearch(); cmd == nil {
		t.Fatal("expected a request for a non-blank query")
	}
	if m.search.query != "the left hand" {
		t.Errorf("expected collapsed query, got %q", m.search.query)
	}
	if !m.search.loading {
		t.Error("expected loading state after submit")
	}
}

func TestSearchDropsStaleResponses(t *testing.T) {
	m := searchModel(t)

	m.search.input.SetValue("first")
	m.submitSearch()
	firstID := m.search.requestID

	m.search.input.SetValue("second")
	m.submitSearch()

	// The superseded request resolves late.
	m.handleSearchResults(searchResultsMsg{
		requestID: firstID,
		books:     []models.Book{{Title: "Stale"}},
	})

	if !m.search.loading {
		t.Error("expected the newer request to still be in flight")
	}
	if len(m.search.results) != 0 {
		t.Error("expected stale results to be dropped")
	}

	m.handleSearchResults(searchResultsMsg{
		requestID: m.search.requestID,
		books:     []models.Book{{Title: "Fresh"}},
	})

	if m.search.loading {
		t.Error("expected loading cleared after the current request resolves")
	}
	if len(m.search.results) != 1 || m.search.results[0].Title != "Fresh" {
		t.Errorf("expected fresh results, got %+v", m.search.results)
	}
}

func TestSearchEachRequestGetsDistinctID(t *testing.T) {
	m := searchModel(t)

	m.search.input.SetValue("query")
	m.submitSearch()
	first := m.search.requestID

	m.submitSearch()
	if m.search.requestID == first {
		t.Error("expected a fresh request id per submission")
	}
}
