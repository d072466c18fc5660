package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/bookmatch/internal/models"
	"github.com/desertthunder/bookmatch/internal/shared"
)

// BookCacheRepository caches backend book records locally, keyed by
// GoogleBookID. Two records with the same GoogleBookID are the same
// logical book, so Put upserts on that key.
type BookCacheRepository struct {
	db *sql.DB
}

// NewBookCacheRepository creates a new [BookCacheRepository] with the given database connection
func NewBookCacheRepository(db *sql.DB) *BookCacheRepository {
	return &BookCacheRepository{db: db}
}

// Put inserts or refreshes a cached book.
func (r *BookCacheRepository) Put(book models.Book) error {
	if book.GoogleBookID == "" {
		return fmt.Errorf("%w: book has no google id", shared.ErrInvalidInput)
	}

	now := time.Now()
	var bookID sql.NullInt64
	if book.BookID != 0 {
		bookID = sql.NullInt64{Int64: book.BookID, Valid: true}
	}
	var rating sql.NullFloat64
	if book.AverageRatingAPI != 0 {
		rating = sql.NullFloat64{Float64: book.AverageRatingAPI, Valid: true}
	}

	query := `
		INSERT INTO cached_books (id, google_book_id, book_id, title, authors, description, cover_url, average_rating, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (google_book_id) DO UPDATE SET
			book_id = excluded.book_id,
			title = excluded.title,
			authors = excluded.authors,
			description = excluded.description,
			cover_url = excluded.cover_url,
			average_rating = excluded.average_rating,
			updated_at = excluded.updated_at
	`

	_, err := r.db.Exec(query,
		shared.GenerateID(), book.GoogleBookID, bookID,
		book.Title, book.Authors, book.Description, book.CoverURL, rating,
		now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to cache book: %w", err)
	}

	return nil
}

// PutAll caches a batch of books, skipping entries without a Google id.
func (r *BookCacheRepository) PutAll(books []models.Book) error {
	for _, book := range books {
		if book.GoogleBookID == "" {
			continue
		}
		if err := r.Put(book); err != nil {
			return err
		}
	}
	return nil
}

// Get retrieves a cached book by its Google Books identifier.
func (r *BookCacheRepository) Get(googleBookID string) (*models.Book, error) {
	query := `
		SELECT google_book_id, book_id, title, authors, description, cover_url, average_rating
		FROM cached_books
		WHERE google_book_id = ?
	`

	book, err := scanBook(r.db.QueryRow(query, googleBookID))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", shared.ErrBookNotFound, googleBookID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query cached book: %w", err)
	}

	return book, nil
}

// List returns all cached books ordered by title.
func (r *BookCacheRepository) List() ([]models.Book, error) {
	query := `
		SELECT google_book_id, book_id, title, authors, description, cover_url, average_rating
		FROM cached_books
		ORDER BY title ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query cached books: %w", err)
	}
	defer rows.Close()

	var books []models.Book
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cached book: %w", err)
		}
		books = append(books, *book)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return books, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanBook(s scanner) (*models.Book, error) {
	var (
		book   models.Book
		bookID sql.NullInt64
		rating sql.NullFloat64
	)

	err := s.Scan(&book.GoogleBookID, &bookID, &book.Title, &book.Authors, &book.Description, &book.CoverURL, &rating)
	if err != nil {
		return nil, err
	}

	if bookID.Valid {
		book.BookID = bookID.Int64
	}
	if rating.Valid {
		book.AverageRatingAPI = rating.Float64
	}

	return &book, nil
}
