package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/desertthunder/bookmatch/internal/models"
)

// AuthService is the authentication surface of the backend.
type AuthService interface {
	// Login exchanges credentials for a bearer token. Rejections are
	// classified: shared.ErrUnauthorized for bad credentials,
	// shared.ErrUnverifiedAccount when the account still awaits email
	// verification.
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)

	// Register creates a new account with the given preference ids and
	// returns the backend's confirmation message. Duplicate accounts are
	// shared.ErrConflict.
	Register(ctx context.Context, req models.RegisterRequest) (string, error)

	// VerifyEmail redeems an email verification token.
	VerifyEmail(ctx context.Context, token string) (string, error)
}

// AuthClient implements [AuthService] against /api/auth.
type AuthClient struct {
	core *Client
}

// NewAuthClient creates an auth client on the given transport core.
func NewAuthClient(core *Client) *AuthClient {
	return &AuthClient{core: core}
}

func (a *AuthClient) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	req := models.LoginRequest{Email: email, Password: password}

	var resp models.AuthResponse
	if err := a.core.do(ctx, http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (a *AuthClient) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	if req.GenrePreferenceIDs == nil {
		req.GenrePreferenceIDs = []int64{}
	}
	if req.TagPreferenceIDs == nil {
		req.TagPreferenceIDs = []int64{}
	}

	// The backend answers registration with a plain-text confirmation.
	return a.core.textPost(ctx, "/api/auth/register", req)
}

func (a *AuthClient) VerifyEmail(ctx context.Context, token string) (string, error) {
	path := "/api/auth/verify?token=" + url.QueryEscape(token)
	return a.core.text(ctx, http.MethodGet, path)
}
