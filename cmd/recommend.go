package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/bookmatch/internal/shared"
	"github.com/urfave/cli/v3"
)

// RecommendBlindDate draws an anonymized quote card, optionally revealing
// the book behind it immediately.
func (r *Runner) RecommendBlindDate(ctx context.Context, cmd *cli.Command) error {
	card, err := r.recs.BlindDate(ctx)
	if err != nil {
		return fmt.Errorf("failed to draw a card: %w", err)
	}

	r.writePlainHeader("Blind Date with a Book")
	r.writePlain("“%s”\n", card.QuoteText)
	if card.GenreHint != "" {
		r.writePlain("Genre: %s\n", card.GenreHint)
	}

	if !cmd.Bool("reveal") {
		r.writePlainln("Run with --reveal to see which book this is")
		return nil
	}

	books, err := r.books.Search(ctx, card.GoogleBookID)
	if err != nil {
		return fmt.Errorf("reveal failed: %w", err)
	}
	if len(books) == 0 {
		return fmt.Errorf("%w: the card's book could not be found", shared.ErrBookNotFound)
	}

	book := books[0]
	r.writePlainln("✓ It was: %s by %s", book.Title, book.Authors)
	return nil
}

// RecommendPersonal shows the caller's scored recommendations.
func (r *Runner) RecommendPersonal(ctx context.Context, cmd *cli.Command) error {
	if _, err := r.requireAuth(); err != nil {
		return err
	}

	recs, err := r.recs.PersonalScored(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch recommendations: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(recs, true)
	}

	if len(recs) == 0 {
		return r.writePlain("No recommendations yet. Rate some books or take the quiz.\n")
	}

	r.writePlainHeader("Recommended for You")
	for _, rec := range recs {
		r.writePlain("%.0f%%\t%s by %s\n", rec.Score, rec.Book.Title, rec.Book.Authors)
		for _, reason := range rec.Reasons {
			r.writePlain("\t- %s\n", reason)
		}
	}
	return nil
}
