package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/desertthunder/bookmatch/internal/models"
)

// ReviewsService is the review surface of the backend.
type ReviewsService interface {
	List(ctx context.Context, googleBookID string) ([]models.Review, error)

	// Create submits a new review and returns the created record so the
	// caller can append it without re-fetching the list.
	Create(ctx context.Context, req models.ReviewRequest) (*models.Review, error)
}

// ReviewsClient implements [ReviewsService] against /api/reviews.
type ReviewsClient struct {
	core *Client
}

// NewReviewsClient creates a reviews client on the given transport core.
func NewReviewsClient(core *Client) *ReviewsClient {
	return &ReviewsClient{core: core}
}

func (r *ReviewsClient) List(ctx context.Context, googleBookID string) ([]models.Review, error) {
	var reviews []models.Review
	path := "/api/reviews/" + url.PathEscape(googleBookID)
	if err := r.core.do(ctx, http.MethodGet, path, nil, &reviews); err != nil {
		return nil, err
	}

	return reviews, nil
}

func (r *ReviewsClient) Create(ctx context.Context, req models.ReviewRequest) (*models.Review, error) {
	var review models.Review
	if err := r.core.do(ctx, http.MethodPost, "/api/reviews", req, &review); err != nil {
		return nil, err
	}

	return &review, nil
}
