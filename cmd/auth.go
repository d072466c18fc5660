package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/desertthunder/bookmatch/internal/models"
	"github.com/desertthunder/bookmatch/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthLogin signs in and persists the session token locally.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	email := cmd.String("email")
	password := cmd.String("password")

	r.logger.Info("signing in", "email", email)

	if err := r.session.Login(ctx, email, password); err != nil {
		switch {
		case errors.Is(err, shared.ErrUnverifiedAccount):
			return fmt.Errorf("%w: verify your email before signing in", err)
		case errors.Is(err, shared.ErrUnauthorized):
			return fmt.Errorf("%w: check your email and password", err)
		default:
			return fmt.Errorf("login failed: %w", err)
		}
	}

	status := r.session.Current()
	return r.writePlain("✓ Signed in as %s\n", status.Username)
}

// AuthLogout clears the persisted session. Always succeeds locally even
// when the credential store cannot be written.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	if err := r.session.Logout(); err != nil {
		r.logger.Warn("failed to clear persisted credentials", "error", err)
	}

	return r.writePlain("✓ Signed out\n")
}

// AuthRegister creates a new account with optional genre/tag preferences.
func (r *Runner) AuthRegister(ctx context.Context, cmd *cli.Command) error {
	req := models.RegisterRequest{
		Username:           cmd.String("username"),
		Email:              cmd.String("email"),
		Password:           cmd.String("password"),
		GenrePreferenceIDs: cmd.Int64Slice("genres"),
		TagPreferenceIDs:   cmd.Int64Slice("tags"),
	}

	r.logger.Info("registering account", "username", req.Username)

	message, err := r.auth.Register(ctx, req)
	if err != nil {
		if errors.Is(err, shared.ErrConflict) {
			return fmt.Errorf("%w: username or email already registered", err)
		}
		return fmt.Errorf("registration failed: %w", err)
	}

	r.writePlain("✓ %s\n", message)
	return r.writePlain("Check your inbox for a verification link, then run 'bookmatch auth verify <token>'\n")
}

// AuthVerify redeems an email verification token.
func (r *Runner) AuthVerify(ctx context.Context, cmd *cli.Command) error {
	token := cmd.StringArg("token")
	if token == "" {
		return fmt.Errorf("%w: verification token", shared.ErrMissingArgument)
	}

	message, err := r.auth.VerifyEmail(ctx, token)
	if err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	return r.writePlain("✓ %s\n", message)
}

// AuthStatus shows the current session state without a network call.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	status := r.session.Current()
	if !status.Authenticated {
		return r.writePlain("✗ Not signed in\n")
	}

	r.writePlain("✓ Signed in as %s\n", status.Username)
	if status.UserID > 0 {
		r.writePlain("User id: %d\n", status.UserID)
	}
	return nil
}
