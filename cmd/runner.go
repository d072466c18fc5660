package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/bookmatch/internal/api"
	"github.com/desertthunder/bookmatch/internal/repositories"
	"github.com/desertthunder/bookmatch/internal/session"
	"github.com/desertthunder/bookmatch/internal/shared"
	"github.com/desertthunder/bookmatch/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config  *shared.Config
	db      *sql.DB
	session *session.Store
	auth    api.AuthService
	books   api.BooksService
	library api.LibraryService
	quiz    api.QuizService
	recs    api.RecommendationsService
	reviews api.ReviewsService
	cache   *repositories.BookCacheRepository
	engine  *tasks.ExportEngine
	logger  *log.Logger
	output  io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config  *shared.Config
	DB      *sql.DB
	Session *session.Store
	Auth    api.AuthService
	Books   api.BooksService
	Library api.LibraryService
	Quiz    api.QuizService
	Recs    api.RecommendationsService
	Reviews api.ReviewsService
	Cache   *repositories.BookCacheRepository
	Logger  *log.Logger
	Output  io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	var engine *tasks.ExportEngine
	if opts.Library != nil && opts.Books != nil {
		var cache tasks.BookCacher
		if opts.Cache != nil {
			cache = opts.Cache
		}
		engine = tasks.NewExportEngine(opts.Library, opts.Books, cache)
	}

	return &Runner{
		config:  opts.Config,
		db:      opts.DB,
		session: opts.Session,
		auth:    opts.Auth,
		books:   opts.Books,
		library: opts.Library,
		quiz:    opts.Quiz,
		recs:    opts.Recs,
		reviews: opts.Reviews,
		cache:   opts.Cache,
		engine:  engine,
		logger:  opts.Logger,
		output:  opts.Output,
	}
}

// SetLogger swaps the runner's logger, used when the TUI takes over the terminal.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, booksCommand, libraryCommand, quizCommand, recommendCommand, reviewsCommand, cacheCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// requireSession guards actions that need durable session state.
func (r *Runner) requireSession() error {
	if r.session == nil {
		return fmt.Errorf("%w: session storage unavailable, run 'bookmatch setup database' first", shared.ErrServiceUnavailable)
	}
	return nil
}

// requireAuth guards actions the backend rejects for anonymous callers.
func (r *Runner) requireAuth() (session.Status, error) {
	if err := r.requireSession(); err != nil {
		return session.Status{}, err
	}
	status := r.session.Current()
	if !status.Authenticated {
		return status, fmt.Errorf("%w: sign in with 'bookmatch auth login' first", shared.ErrNotAuthenticated)
	}
	return status, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
