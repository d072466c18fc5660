// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/desertthunder/bookmatch/internal/models"
)

// MockAuth is a test double for [api.AuthService]. Function fields steer
// behavior per test; nil fields return zero values.
type MockAuth struct {
	LoginFn       func(ctx context.Context, email, password string) (*models.AuthResponse, error)
	RegisterFn    func(ctx context.Context, req models.RegisterRequest) (string, error)
	VerifyEmailFn func(ctx context.Context, token string) (string, error)
}

func (m *MockAuth) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, email, password)
	}
	return &models.AuthResponse{Token: "test-token", Username: "tester"}, nil
}

func (m *MockAuth) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, req)
	}
	return "registered", nil
}

func (m *MockAuth) VerifyEmail(ctx context.Context, token string) (string, error) {
	if m.VerifyEmailFn != nil {
		return m.VerifyEmailFn(ctx, token)
	}
	return "verified", nil
}

// MockBooks is a test double for [api.BooksService]
type MockBooks struct {
	SearchFn func(ctx context.Context, query string) ([]models.Book, error)
	GetFn    func(ctx context.Context, id int64) (*models.Book, error)
	HomeFn   func(ctx context.Context) (*models.Home, error)
	GenresFn func(ctx context.Context) ([]models.Genre, error)
	TagsFn   func(ctx context.Context) ([]models.Tag, error)
}

func (m *MockBooks) Search(ctx context.Context, query string) ([]models.Book, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, query)
	}
	return []models.Book{}, nil
}

func (m *MockBooks) Get(ctx context.Context, id int64) (*models.Book, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return &models.Book{BookID: id}, nil
}

func (m *MockBooks) Home(ctx context.Context) (*models.Home, error) {
	if m.HomeFn != nil {
		return m.HomeFn(ctx)
	}
	return &models.Home{}, nil
}

func (m *MockBooks) Genres(ctx context.Context) ([]models.Genre, error) {
	if m.GenresFn != nil {
		return m.GenresFn(ctx)
	}
	return []models.Genre{}, nil
}

func (m *MockBooks) Tags(ctx context.Context) ([]models.Tag, error) {
	if m.TagsFn != nil {
		return m.TagsFn(ctx)
	}
	return []models.Tag{}, nil
}

// MockLibrary is a test double for [api.LibraryService]
type MockLibrary struct {
	SetStatusFn        func(ctx context.Context, userID int64, googleBookID string, status models.ReadingStatus) error
	CustomListsFn      func(ctx context.Context) ([]models.CustomList, error)
	CreateCustomListFn func(ctx context.Context, name, description string, isPublic bool) error
	DeleteCustomListFn func(ctx context.Context, listID int64) error
}

func (m *MockLibrary) SetStatus(ctx context.Context, userID int64, googleBookID string, status models.ReadingStatus) error {
	if m.SetStatusFn != nil {
		return m.SetStatusFn(ctx, userID, googleBookID, status)
	}
	return nil
}

func (m *MockLibrary) CustomLists(ctx context.Context) ([]models.CustomList, error) {
	if m.CustomListsFn != nil {
		return m.CustomListsFn(ctx)
	}
	return []models.CustomList{}, nil
}

func (m *MockLibrary) CreateCustomList(ctx context.Context, name, description string, isPublic bool) error {
	if m.CreateCustomListFn != nil {
		return m.CreateCustomListFn(ctx, name, description, isPublic)
	}
	return nil
}

func (m *MockLibrary) DeleteCustomList(ctx context.Context, listID int64) error {
	if m.DeleteCustomListFn != nil {
		return m.DeleteCustomListFn(ctx, listID)
	}
	return nil
}

// MockQuiz is a test double for [api.QuizService]
type MockQuiz struct {
	QuestionsFn func(ctx context.Context) ([]models.QuizQuestion, error)
	SubmitFn    func(ctx context.Context, answers []models.QuizAnswer) (*models.QuizResult, error)
}

func (m *MockQuiz) Questions(ctx context.Context) ([]models.QuizQuestion, error) {
	if m.QuestionsFn != nil {
		return m.QuestionsFn(ctx)
	}
	return []models.QuizQuestion{}, nil
}

func (m *MockQuiz) Submit(ctx context.Context, answers []models.QuizAnswer) (*models.QuizResult, error) {
	if m.SubmitFn != nil {
		return m.SubmitFn(ctx, answers)
	}
	return &models.QuizResult{}, nil
}

// MockRecommendations is a test double for [api.RecommendationsService]
type MockRecommendations struct {
	BlindDateFn      func(ctx context.Context) (*models.BlindDateCard, error)
	PersonalScoredFn func(ctx context.Context) ([]models.Recommendation, error)
}

func (m *MockRecommendations) BlindDate(ctx context.Context) (*models.BlindDateCard, error) {
	if m.BlindDateFn != nil {
		return m.BlindDateFn(ctx)
	}
	return &models.BlindDateCard{}, nil
}

func (m *MockRecommendations) PersonalScored(ctx context.Context) ([]models.Recommendation, error) {
	if m.PersonalScoredFn != nil {
		return m.PersonalScoredFn(ctx)
	}
	return []models.Recommendation{}, nil
}

// MockReviews is a test double for [api.ReviewsService]
type MockReviews struct {
	ListFn   func(ctx context.Context, googleBookID string) ([]models.Review, error)
	CreateFn func(ctx context.Context, req models.ReviewRequest) (*models.Review, error)
}

func (m *MockReviews) List(ctx context.Context, googleBookID string) ([]models.Review, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, googleBookID)
	}
	return []models.Review{}, nil
}

func (m *MockReviews) Create(ctx context.Context, req models.ReviewRequest) (*models.Review, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, req)
	}
	return &models.Review{}, nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}
