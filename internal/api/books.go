package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/desertthunder/bookmatch/internal/models"
)

// BooksService is the catalog surface of the backend.
type BooksService interface {
	// Search queries the catalog. Passing a GoogleBookID as the query
	// performs an exact identifier lookup on the backend.
	Search(ctx context.Context, query string) ([]models.Book, error)

	// Get retrieves a book by its local numeric identifier. Books not yet
	// persisted locally are shared.ErrNotFound.
	Get(ctx context.Context, id int64) (*models.Book, error)

	// Home retrieves the aggregate home payload. Personal recommendations
	// are included only when the request carries a bearer token.
	Home(ctx context.Context) (*models.Home, error)

	Genres(ctx context.Context) ([]models.Genre, error)
	Tags(ctx context.Context) ([]models.Tag, error)
}

// BooksClient implements [BooksService] against /api/books.
type BooksClient struct {
	core *Client
}

// NewBooksClient creates a books client on the given transport core.
func NewBooksClient(core *Client) *BooksClient {
	return &BooksClient{core: core}
}

func (b *BooksClient) Search(ctx context.Context, query string) ([]models.Book, error) {
	path := "/api/books/search?query=" + url.QueryEscape(query)

	var books []models.Book
	if err := b.core.do(ctx, http.MethodGet, path, nil, &books); err != nil {
		return nil, err
	}

	return books, nil
}

func (b *BooksClient) Get(ctx context.Context, id int64) (*models.Book, error) {
	var book models.Book
	if err := b.core.do(ctx, http.MethodGet, fmt.Sprintf("/api/books/%d", id), nil, &book); err != nil {
		return nil, err
	}

	return &book, nil
}

func (b *BooksClient) Home(ctx context.Context) (*models.Home, error) {
	var home models.Home
	if err := b.core.do(ctx, http.MethodGet, "/api/books/home", nil, &home); err != nil {
		return nil, err
	}

	return &home, nil
}

func (b *BooksClient) Genres(ctx context.Context) ([]models.Genre, error) {
	var genres []models.Genre
	if err := b.core.do(ctx, http.MethodGet, "/api/books/genres", nil, &genres); err != nil {
		return nil, err
	}

	return genres, nil
}

func (b *BooksClient) Tags(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := b.core.do(ctx, http.MethodGet, "/api/books/tags", nil, &tags); err != nil {
		return nil, err
	}

	return tags, nil
}
