package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/desertthunder/bookmatch/internal/models"
	"github.com/desertthunder/bookmatch/internal/shared"
)

// LibraryService is the personal-library surface of the backend. All
// operations require authentication.
type LibraryService interface {
	// SetStatus records the shelf state of a book for the given user.
	SetStatus(ctx context.Context, userID int64, googleBookID string, status models.ReadingStatus) error

	// CustomLists returns the caller's custom lists. The client treats the
	// returned slice as a cache refreshed after every mutation.
	CustomLists(ctx context.Context) ([]models.CustomList, error)

	CreateCustomList(ctx context.Context, name, description string, isPublic bool) error
	DeleteCustomList(ctx context.Context, listID int64) error
}

// LibraryClient implements [LibraryService] against /api/library.
type LibraryClient struct {
	core *Client
}

// NewLibraryClient creates a library client on the given transport core.
func NewLibraryClient(core *Client) *LibraryClient {
	return &LibraryClient{core: core}
}

func (l *LibraryClient) SetStatus(ctx context.Context, userID int64, googleBookID string, status models.ReadingStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown reading status %q", shared.ErrInvalidInput, status)
	}

	req := models.StatusRequest{UserID: userID, GoogleBookID: googleBookID, Status: status}
	return l.core.do(ctx, http.MethodPost, "/api/library/status", req, nil)
}

func (l *LibraryClient) CustomLists(ctx context.Context) ([]models.CustomList, error) {
	var lists []models.CustomList
	if err := l.core.do(ctx, http.MethodGet, "/api/library/custom-lists", nil, &lists); err != nil {
		return nil, err
	}

	return lists, nil
}

func (l *LibraryClient) CreateCustomList(ctx context.Context, name, description string, isPublic bool) error {
	req := models.CreateListRequest{Name: name, Description: description, IsPublic: isPublic}
	return l.core.do(ctx, http.MethodPost, "/api/library/custom-list", req, nil)
}

func (l *LibraryClient) DeleteCustomList(ctx context.Context, listID int64) error {
	return l.core.do(ctx, http.MethodDelete, fmt.Sprintf("/api/library/custom-list/%d", listID), nil, nil)
}
