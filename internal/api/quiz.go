package api

import (
	"context"
	"net/http"

	"github.com/desertthunder/bookmatch/internal/models"
)

// QuizService is the recommendation-quiz surface of the backend.
type QuizService interface {
	// Questions returns the full ordered question sequence. The quiz view
	// fetches it once per entry.
	Questions(ctx context.Context) ([]models.QuizQuestion, error)

	// Submit sends the complete answer sequence and returns the terminal
	// recommendation. A failed submission leaves no partial result.
	Submit(ctx context.Context, answers []models.QuizAnswer) (*models.QuizResult, error)
}

// QuizClient implements [QuizService] against /api/quiz.
type QuizClient struct {
	core *Client
}

// NewQuizClient creates a quiz client on the given transport core.
func NewQuizClient(core *Client) *QuizClient {
	return &QuizClient{core: core}
}

func (q *QuizClient) Questions(ctx context.Context) ([]models.QuizQuestion, error) {
	var questions []models.QuizQuestion
	if err := q.core.do(ctx, http.MethodGet, "/api/quiz/questions", nil, &questions); err != nil {
		return nil, err
	}

	return questions, nil
}

func (q *QuizClient) Submit(ctx context.Context, answers []models.QuizAnswer) (*models.QuizResult, error) {
	req := struct {
		Answers []models.QuizAnswer `json:"answers"`
	}{Answers: answers}

	var result models.QuizResult
	if err := q.core.do(ctx, http.MethodPost, "/api/quiz/answer", req, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
