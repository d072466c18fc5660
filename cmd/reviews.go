package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/bookmatch/internal/models"
	"github.com/desertthunder/bookmatch/internal/shared"
	"github.com/urfave/cli/v3"
)

// ReviewsList lists reviews for a book by Google Books id.
func (r *Runner) ReviewsList(ctx context.Context, cmd *cli.Command) error {
	googleBookID := cmd.StringArg("book")
	if googleBookID == "" {
		return fmt.Errorf("%w: book id", shared.ErrMissingArgument)
	}

	reviews, err := r.reviews.List(ctx, googleBookID)
	if err != nil {
		return fmt.Errorf("failed to fetch reviews: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(reviews, true)
	}

	if len(reviews) == 0 {
		return r.writePlain("No reviews yet for %s\n", googleBookID)
	}

	for _, review := range reviews {
		r.writePlain("%d★ %s: %s\n", review.Rating, review.Username, review.Comment)
	}
	return nil
}

// ReviewsCreate publishes a review for the signed-in user.
func (r *Runner) ReviewsCreate(ctx context.Context, cmd *cli.Command) error {
	status, err := r.requireAuth()
	if err != nil {
		return err
	}

	rating := cmd.Int("rating")
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", shared.ErrInvalidFlag)
	}

	req := models.ReviewRequest{
		UserID:       status.UserID,
		GoogleBookID: cmd.String("book"),
		Rating:       rating,
		Comment:      cmd.String("comment"),
	}

	review, err := r.reviews.Create(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to publish review: %w", err)
	}

	return r.writePlain("✓ Review %d published\n", review.ReviewID)
}
