package api

import (
	"context"
	"net/http"

	"github.com/desertthunder/bookmatch/internal/models"
)

// RecommendationsService is the recommendation surface of the backend.
type RecommendationsService interface {
	// BlindDate returns a fresh anonymized card. The book behind it is
	// resolved separately via BooksService.Search on reveal.
	BlindDate(ctx context.Context) (*models.BlindDateCard, error)

	// PersonalScored returns scored recommendations for the authenticated
	// user.
	PersonalScored(ctx context.Context) ([]models.Recommendation, error)
}

// RecommendationsClient implements [RecommendationsService] against
// /api/recommendations.
type RecommendationsClient struct {
	core *Client
}

// NewRecommendationsClient creates a recommendations client on the given
// transport core.
func NewRecommendationsClient(core *Client) *RecommendationsClient {
	return &RecommendationsClient{core: core}
}

func (r *RecommendationsClient) BlindDate(ctx context.Context) (*models.BlindDateCard, error) {
	var card models.BlindDateCard
	if err := r.core.do(ctx, http.MethodGet, "/api/recommendations/blind-date", nil, &card); err != nil {
		return nil, err
	}

	return &card, nil
}

func (r *RecommendationsClient) PersonalScored(ctx context.Context) ([]models.Recommendation, error) {
	var recs []models.Recommendation
	if err := r.core.do(ctx, http.MethodGet, "/api/recommendations/personal/scored", nil, &recs); err != nil {
		return nil, err
	}

	return recs, nil
}
