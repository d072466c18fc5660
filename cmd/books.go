package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/desertthunder/bookmatch/internal/models"
	"github.com/desertthunder/bookmatch/internal/shared"
	"github.com/urfave/cli/v3"
)

// BooksSearch queries the catalog. Whitespace-only queries are rejected
// before any request is issued.
func (r *Runner) BooksSearch(ctx context.Context, cmd *cli.Command) error {
	query := shared.NormalizeQuery(cmd.StringArg("query"))
	if query == "" {
		return fmt.Errorf("%w: search query", shared.ErrMissingArgument)
	}

	r.logger.Info("searching catalog", "query", query)

	books, err := r.books.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(books, cmd.Bool("pretty"))
	}

	if len(books) == 0 {
		return r.writePlain("No books found for '%s'\n", query)
	}

	r.writePlainHeader(fmt.Sprintf("Results for '%s'", query))
	for _, book := range books {
		r.writeBookLine(book)
	}
	return nil
}

// BooksShow loads one book and its reviews. Numeric ids use the local
// lookup; anything else (or a local miss) falls back to catalog search.
func (r *Runner) BooksShow(ctx context.Context, cmd *cli.Command) error {
	param := cmd.StringArg("id")
	if param == "" {
		return fmt.Errorf("%w: book id", shared.ErrMissingArgument)
	}

	book, err := r.resolveBook(ctx, param)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(book, true)
	}

	r.writePlainHeader(book.Title)
	r.writePlain("%s\n", book.Authors)
	if book.AverageRatingAPI > 0 {
		r.writePlain("Rating: %.1f\n", book.AverageRatingAPI)
	}
	if book.UserReadingStatus != "" {
		r.writePlain("Shelf: %s\n", book.UserReadingStatus)
	}
	if book.Description != "" {
		r.writePlainln("%s", book.Description)
	}

	reviews, err := r.reviews.List(ctx, book.GoogleBookID)
	if err != nil {
		r.logger.Warn("failed to fetch reviews", "error", err)
		return nil
	}
	if len(reviews) > 0 {
		r.writePlainln("Reviews:")
		for _, review := range reviews {
			r.writePlain("  %d★ %s: %s\n", review.Rating, review.Username, review.Comment)
		}
	}
	return nil
}

// BooksOpen resolves a book and opens its Google Books page in the
// default browser.
func (r *Runner) BooksOpen(ctx context.Context, cmd *cli.Command) error {
	param := cmd.StringArg("id")
	if param == "" {
		return fmt.Errorf("%w: book id", shared.ErrMissingArgument)
	}

	book, err := r.resolveBook(ctx, param)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("https://books.google.com/books?id=%s", book.GoogleBookID)
	r.writePlain("→ Opening '%s' in your browser...\n", book.Title)
	if err := shared.OpenBrowser(url); err != nil {
		r.logger.Warn("failed to open browser automatically", "error", err)
		r.writePlainln("⚠ Could not open browser automatically.")
		r.writePlain("Please open this URL in your browser:\n%s\n", url)
	}
	return nil
}

// BooksHome prints the aggregate home payload.
func (r *Runner) BooksHome(ctx context.Context, cmd *cli.Command) error {
	home, err := r.books.Home(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch home: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(home, true)
	}

	r.writePlainHeader("Featured Books")
	for _, book := range home.FeaturedBooks {
		r.writeBookLine(book)
	}

	if len(home.PersonalRecommendations) > 0 {
		r.writePlainln("For you:")
		for _, rec := range home.PersonalRecommendations {
			r.writePlain("  %s (%.0f%%)\n", rec.Book.Title, rec.Score)
		}
	}
	return nil
}

// BooksGenres lists the backend's curated genres.
func (r *Runner) BooksGenres(ctx context.Context, cmd *cli.Command) error {
	genres, err := r.books.Genres(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch genres: %w", err)
	}

	for _, genre := range genres {
		r.writePlain("%d\t%s\n", genre.ID, genre.Name)
	}
	return nil
}

// BooksTags lists the backend's curated tags.
func (r *Runner) BooksTags(ctx context.Context, cmd *cli.Command) error {
	tags, err := r.books.Tags(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch tags: %w", err)
	}

	for _, tag := range tags {
		r.writePlain("%d\t%s\n", tag.ID, tag.Name)
	}
	return nil
}

// resolveBook loads a book by local numeric id, falling back to an
// identifier search whose first match wins.
func (r *Runner) resolveBook(ctx context.Context, param string) (*models.Book, error) {
	if id, err := strconv.ParseInt(param, 10, 64); err == nil {
		if book, err := r.books.Get(ctx, id); err == nil {
			return book, nil
		}
	}

	books, err := r.books.Search(ctx, param)
	if err != nil {
		return nil, fmt.Errorf("lookup failed: %w", err)
	}
	if len(books) == 0 {
		return nil, fmt.Errorf("%w: %s", shared.ErrBookNotFound, param)
	}
	return &books[0], nil
}

func (r *Runner) writeBookLine(book models.Book) {
	line := fmt.Sprintf("%s by %s", book.Title, book.Authors)
	if book.AverageRatingAPI > 0 {
		line = fmt.Sprintf("%s (%.1f★)", line, book.AverageRatingAPI)
	}
	r.writePlain("%s\n  id: %s\n", line, bookRef(book))
}

// bookRef prefers the local numeric id, falling back to the external id.
func bookRef(book models.Book) string {
	if book.BookID > 0 {
		return strconv.FormatInt(book.BookID, 10)
	}
	return book.GoogleBookID
}
