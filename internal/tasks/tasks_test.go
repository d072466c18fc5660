package tasks

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/desertthunder/bookmatch/internal/models"
	tu "github.com/desertthunder/bookmatch/internal/testing"
)

type recordingCache struct {
	books []models.Book
}

func (c *recordingCache) Put(book models.Book) error {
	c.books = append(c.books, book)
	return nil
}

func testLists() []models.CustomList {
	return []models.CustomList{
		{
			ListID: 1,
			Name:   "Resolved",
			Books: []models.Book{
				{GoogleBookID: "g1", Title: "Dune", Authors: "Frank Herbert"},
			},
		},
		{
			ListID: 2,
			Name:   "Abbreviated",
			Books: []models.Book{
				{GoogleBookID: "g2"},
			},
		},
	}
}

func TestExportRunWritesEveryList(t *testing.T) {
	library := &tu.MockLibrary{
		CustomListsFn: func(ctx context.Context) ([]models.CustomList, error) {
			return testLists(), nil
		},
	}
	books := &tu.MockBooks{
		SearchFn: func(ctx context.Context, query string) ([]models.Book, error) {
			if query == "g2" {
				return []models.Book{{GoogleBookID: "g2", Title: "Piranesi", Authors: "Susanna Clarke"}}, nil
			}
			return nil, nil
		},
	}
	cache := &recordingCache{}

	engine := NewExportEngine(library, books, cache)
	opts := ExportOpts{Format: "json", OutputDir: t.TempDir(), RateLimit: 1000}

	result, err := engine.Run(context.Background(), nil, opts)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.TotalLists != 2 || result.Successful != 2 || result.Failed != 0 {
		t.Errorf("unexpected totals: %+v", result)
	}
	for _, res := range result.Results {
		if !res.Success {
			t.Errorf("list %s failed: %v", res.ListName, res.Error)
			continue
		}
		if filepath.Ext(res.File) != ".json" {
			t.Errorf("unexpected output file %s", res.File)
		}
		if res.Resolved != 1 {
			t.Errorf("list %s resolved %d books, want 1", res.ListName, res.Resolved)
		}
	}

	// Both the already-complete and the searched book land in the cache.
	if len(cache.books) != 2 {
		t.Errorf("expected 2 cached books, got %d", len(cache.books))
	}
}

func TestExportRunCountsUnresolvedBooks(t *testing.T) {
	library := &tu.MockLibrary{
		CustomListsFn: func(ctx context.Context) ([]models.CustomList, error) {
			return []models.CustomList{{
				ListID: 1,
				Name:   "Ghosts",
				Books:  []models.Book{{GoogleBookID: "missing"}, {}},
			}}, nil
		},
	}
	books := &tu.MockBooks{
		SearchFn: func(ctx context.Context, query string) ([]models.Book, error) {
			return nil, nil
		},
	}

	engine := NewExportEngine(library, books, nil)
	result, err := engine.Run(context.Background(), nil, ExportOpts{OutputDir: t.TempDir(), RateLimit: 1000})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.Successful != 1 {
		t.Fatalf("expected the list to still export, got %+v", result)
	}
	if result.Results[0].Missing != 2 {
		t.Errorf("expected 2 unresolved books, got %d", result.Results[0].Missing)
	}
	if result.Results[0].Resolved != 0 {
		t.Errorf("expected no resolved books, got %d", result.Results[0].Resolved)
	}
}

func TestExportRunFailsWhenListsUnavailable(t *testing.T) {
	library := &tu.MockLibrary{
		CustomListsFn: func(ctx context.Context) ([]models.CustomList, error) {
			return nil, errors.New("backend down")
		},
	}

	engine := NewExportEngine(library, &tu.MockBooks{}, nil)
	if _, err := engine.Run(context.Background(), nil, ExportOpts{OutputDir: t.TempDir()}); err == nil {
		t.Error("expected an error when lists cannot be fetched")
	}
}

func TestExportRunSendsProgressUpdates(t *testing.T) {
	library := &tu.MockLibrary{
		CustomListsFn: func(ctx context.Context) ([]models.CustomList, error) {
			return testLists(), nil
		},
	}
	books := &tu.MockBooks{
		SearchFn: func(ctx context.Context, query string) ([]models.Book, error) {
			return []models.Book{{GoogleBookID: query, Title: fmt.Sprintf("Book %s", query)}}, nil
		},
	}

	prog := make(chan ProgressUpdate, 50)
	engine := NewExportEngine(library, books, nil)
	if _, err := engine.Run(context.Background(), prog, ExportOpts{OutputDir: t.TempDir(), RateLimit: 1000}); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	close(prog)

	var phases []ProgressPhase
	for update := range prog {
		phases = append(phases, update.Phase)
	}
	if len(phases) == 0 {
		t.Fatal("expected progress updates")
	}
	if phases[0] != FetchLists {
		t.Errorf("expected the run to start with FetchLists, got %v", phases[0])
	}
}
