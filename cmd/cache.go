package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/bookmatch/internal/shared"
	"github.com/urfave/cli/v3"
)

// CacheList lists locally cached book records.
func (r *Runner) CacheList(ctx context.Context, cmd *cli.Command) error {
	if r.cache == nil {
		return fmt.Errorf("%w: book cache unavailable, run 'bookmatch setup database' first", shared.ErrServiceUnavailable)
	}

	books, err := r.cache.List()
	if err != nil {
		return fmt.Errorf("failed to read cache: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(books, true)
	}

	if len(books) == 0 {
		return r.writePlain("Cache is empty\n")
	}

	for _, book := range books {
		r.writePlain("%s\t%s by %s\n", book.GoogleBookID, book.Title, book.Authors)
	}
	return nil
}

// CacheShow prints one cached book by Google Books id.
func (r *Runner) CacheShow(ctx context.Context, cmd *cli.Command) error {
	if r.cache == nil {
		return fmt.Errorf("%w: book cache unavailable, run 'bookmatch setup database' first", shared.ErrServiceUnavailable)
	}

	googleBookID := cmd.StringArg("id")
	if googleBookID == "" {
		return fmt.Errorf("%w: book id", shared.ErrMissingArgument)
	}

	book, err := r.cache.Get(googleBookID)
	if err != nil {
		return err
	}

	return r.writeJSON(book, true)
}
