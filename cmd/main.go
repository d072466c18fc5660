package main

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/bookmatch/internal/api"
	"github.com/desertthunder/bookmatch/internal/repositories"
	"github.com/desertthunder/bookmatch/internal/session"
	"github.com/desertthunder/bookmatch/internal/shared"
	"github.com/urfave/cli/v3"
)

// lazyTokenSource breaks the construction cycle between the transport
// core (which attaches tokens) and the session store (which is built on
// an auth client using that core).
type lazyTokenSource struct {
	store *session.Store
}

func (t *lazyTokenSource) Token() string {
	if t.store == nil {
		return ""
	}
	return t.store.Token()
}

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	if level, err := log.ParseLevel(config.Log.Level); err == nil {
		shared.SetLogLevel(logger, level)
	}

	tokens := &lazyTokenSource{}
	core := api.NewClient(config.API.BaseURL, &http.Client{Timeout: config.API.Timeout()}, tokens)
	authClient := api.NewAuthClient(core)

	opts := RunnerOpts{
		Config:  config,
		Auth:    authClient,
		Books:   api.NewBooksClient(core),
		Library: api.NewLibraryClient(core),
		Quiz:    api.NewQuizClient(core),
		Recs:    api.NewRecommendationsClient(core),
		Reviews: api.NewReviewsClient(core),
		Logger:  logger,
	}

	if db, err := shared.NewDatabase(config.Database.Path); err == nil {
		shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)
		opts.DB = db
		opts.Cache = repositories.NewBookCacheRepository(db)

		store, err := session.NewStore(repositories.NewSessionRepository(db), authClient)
		if err != nil {
			logger.Warn("session state unavailable, run 'bookmatch setup database'", "error", err)
		} else {
			tokens.store = store
			opts.Session = store
		}
	} else {
		logger.Warn("database unavailable", "path", config.Database.Path, "error", err)
	}

	runner := NewRunner(opts)

	app := &cli.Command{
		Name:     "bookmatch",
		Usage:    "Browse, match and track books from the terminal",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
