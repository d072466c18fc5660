package repositories

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/desertthunder/bookmatch/internal/models"
	"github.com/desertthunder/bookmatch/internal/shared"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return db
}

func TestSessionRepositoryRoundTrip(t *testing.T) {
	repo := NewSessionRepository(testDB(t))

	creds, err := repo.Load()
	if err != nil {
		t.Fatalf("load on empty table failed: %v", err)
	}
	if creds != nil {
		t.Errorf("expected no credentials on fresh database, got %+v", creds)
	}

	if err := repo.Save(Credentials{Token: "tok-1", Username: "ana"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	creds, err = repo.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if creds == nil || creds.Token != "tok-1" || creds.Username != "ana" {
		t.Errorf("unexpected credentials: %+v", creds)
	}
}

func TestSessionRepositoryOverwritesSingleRow(t *testing.T) {
	repo := NewSessionRepository(testDB(t))

	if err := repo.Save(Credentials{Token: "old", Username: "ana"}); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	if err := repo.Save(Credentials{Token: "new", Username: "bob"}); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	creds, err := repo.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if creds.Token != "new" || creds.Username != "bob" {
		t.Errorf("expected the newer credentials, got %+v", creds)
	}
}

func TestSessionRepositoryClear(t *testing.T) {
	repo := NewSessionRepository(testDB(t))

	// Clearing an absent session is not an error.
	if err := repo.Clear(); err != nil {
		t.Fatalf("clear on empty table failed: %v", err)
	}

	if err := repo.Save(Credentials{Token: "tok", Username: "ana"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := repo.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	creds, err := repo.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if creds != nil {
		t.Errorf("expected no credentials after clear, got %+v", creds)
	}
}

func TestBookCachePutAndGet(t *testing.T) {
	cache := NewBookCacheRepository(testDB(t))

	book := models.Book{
		GoogleBookID:     "g1",
		BookID:           42,
		Title:            "Dune",
		Authors:          "Frank Herbert",
		AverageRatingAPI: 4.5,
	}
	if err := cache.Put(book); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, err := cache.Get("g1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Title != "Dune" || got.BookID != 42 || got.AverageRatingAPI != 4.5 {
		t.Errorf("unexpected cached book: %+v", got)
	}
}

func TestBookCacheUpsertByGoogleBookID(t *testing.T) {
	cache := NewBookCacheRepository(testDB(t))

	if err := cache.Put(models.Book{GoogleBookID: "g1", Title: "Old Title"}); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if err := cache.Put(models.Book{GoogleBookID: "g1", Title: "New Title"}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	books, err := cache.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(books) != 1 {
		t.Fatalf("expected one row after upsert, got %d", len(books))
	}
	if books[0].Title != "New Title" {
		t.Errorf("expected updated title, got %q", books[0].Title)
	}
}

func TestBookCacheRejectsEmptyID(t *testing.T) {
	cache := NewBookCacheRepository(testDB(t))

	err := cache.Put(models.Book{Title: "No ID"})
	if !errors.Is(err, shared.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestBookCacheGetMissing(t *testing.T) {
	cache := NewBookCacheRepository(testDB(t))

	_, err := cache.Get("absent")
	if !errors.Is(err, shared.ErrBookNotFound) {
		t.Errorf("expected ErrBookNotFound, got %v", err)
	}
}

func TestBookCacheListOrdersByTitle(t *testing.T) {
	cache := NewBookCacheRepository(testDB(t))

	if err := cache.PutAll([]models.Book{
		{GoogleBookID: "g2", Title: "Zazie"},
		{GoogleBookID: "g1", Title: "Anathem"},
		{GoogleBookID: "", Title: "skipped"},
	}); err != nil {
		t.Fatalf("putall failed: %v", err)
	}

	books, err := cache.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(books) != 2 {
		t.Fatalf("expected entries without ids to be skipped, got %d rows", len(books))
	}
	if books[0].Title != "Anathem" || books[1].Title != "Zazie" {
		t.Errorf("expected title order, got %+v", books)
	}
}
