package tasks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/desertthunder/bookmatch/internal/api"
	"github.com/desertthunder/bookmatch/internal/formatter"
	"github.com/desertthunder/bookmatch/internal/models"
	"github.com/desertthunder/bookmatch/internal/shared"
	"golang.org/x/time/rate"
)

// BookCacher stores resolved books locally. Implemented by
// repositories.BookCacheRepository; a nil cacher disables caching.
type BookCacher interface {
	Put(book models.Book) error
}

// ExportOpts contains configuration for custom-list exports.
type ExportOpts struct {
	Format     string  // Export format: json, csv, markdown, txt
	OutputDir  string  // Base output directory (default: bookmatch_export_{epoch})
	NumWorkers int     // Concurrent list workers (default: 3)
	RateLimit  float64 // Book lookups per second (default: 5)
}

// ListExportResult records the outcome of exporting one list.
type ListExportResult struct {
	ListID   int64
	ListName string
	File     string
	Resolved int
	Missing  int
	Success  bool
	Error    error
}

// ExportRunResult summarizes a full export run.
type ExportRunResult struct {
	TotalLists      int
	Successful      int
	Failed          int
	OutputDirectory string
	Results         []ListExportResult
}

// ExportEngine exports a user's custom lists to files.
type ExportEngine struct {
	library api.LibraryService
	books   api.BooksService
	cache   BookCacher
}

// NewExportEngine creates an export engine. cache may be nil.
func NewExportEngine(library api.LibraryService, books api.BooksService, cache BookCacher) *ExportEngine {
	return &ExportEngine{library: library, books: books, cache: cache}
}

// Run exports every custom list of the authenticated user.
//
// Lists are processed by a small worker pool; books missing full records
// are resolved through identifier search under a shared rate limiter so a
// large library cannot hammer the backend. Progress updates are sent to
// prog when it is non-nil.
func (e *ExportEngine) Run(ctx context.Context, prog chan<- ProgressUpdate, opts ExportOpts) (*ExportRunResult, error) {
	if e.library == nil || e.books == nil {
		return nil, fmt.Errorf("%w: export engine not initialized", shared.ErrServiceUnavailable)
	}

	if opts.OutputDir == "" {
		opts.OutputDir = fmt.Sprintf("bookmatch_export_%d", time.Now().Unix())
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 3
	}
	if opts.NumWorkers > 8 {
		opts.NumWorkers = 8
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 5.0
	}

	e.sendProgress(prog, fetchListsUpdate())

	lists, err := e.library.CustomLists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch custom lists: %w", err)
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &ExportRunResult{
		TotalLists:      len(lists),
		OutputDirectory: opts.OutputDir,
		Results:         make([]ListExportResult, 0, len(lists)),
	}

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	jobs := make(chan models.CustomList, len(lists))
	results := make(chan ListExportResult, len(lists))

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go e.exportWorker(ctx, &wg, limiter, jobs, results, opts)
	}

	for i, list := range lists {
		e.sendProgress(prog, resolveUpdate(i+1, len(lists), list.Name))
		jobs <- list
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	completed := 0
	for res := range results {
		completed++
		result.Results = append(result.Results, res)

		if res.Success {
			result.Successful++
			e.sendProgress(prog, writeUpdate(completed, len(lists), res.ListName))
		} else {
			result.Failed++
			e.sendProgress(prog, writeFailedUpdate(completed, len(lists), res.ListName, res.Error))
		}
	}

	return result, nil
}

// exportWorker exports lists from the jobs channel until it is drained.
func (e *ExportEngine) exportWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	limiter *rate.Limiter,
	jobs <-chan models.CustomList,
	results chan<- ListExportResult,
	opts ExportOpts,
) {
	defer wg.Done()

	for list := range jobs {
		select {
		case <-ctx.Done():
			results <- ListExportResult{ListID: list.ListID, ListName: list.Name, Error: ctx.Err()}
			continue
		default:
		}

		results <- e.exportSingleList(ctx, limiter, list, opts)
	}
}

// exportSingleList resolves a list's books and writes it in the requested format.
func (e *ExportEngine) exportSingleList(ctx context.Context, limiter *rate.Limiter, list models.CustomList, opts ExportOpts) ListExportResult {
	result := ListExportResult{ListID: list.ListID, ListName: list.Name}

	export := &formatter.ListExport{List: list}
	for _, book := range list.Books {
		resolved, err := e.resolveBook(ctx, limiter, book)
		if err != nil {
			result.Missing++
			continue
		}
		result.Resolved++
		export.Books = append(export.Books, *resolved)
	}

	base := filepath.Join(opts.OutputDir, fmt.Sprintf("list_%d", list.ListID))
	file, err := formatter.WriteExport(export, opts.Format, base)
	if err != nil {
		result.Error = err
		return result
	}

	result.File = file
	result.Success = true
	return result
}

// resolveBook returns a full record for book, searching by identifier when
// the list entry is abbreviated (no title yet).
func (e *ExportEngine) resolveBook(ctx context.Context, limiter *rate.Limiter, book models.Book) (*models.Book, error) {
	if book.Title != "" {
		e.cacheBook(book)
		return &book, nil
	}

	if book.GoogleBookID == "" {
		return nil, fmt.Errorf("%w: list entry has no identifier", shared.ErrBookNotFound)
	}

	if err := limiter.Wait(ctx); err != nil {
		return nil, err
	}

	matches, err := e.books.Search(ctx, book.GoogleBookID)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %s", shared.ErrBookNotFound, book.GoogleBookID)
	}

	e.cacheBook(matches[0])
	return &matches[0], nil
}

func (e *ExportEngine) cacheBook(book models.Book) {
	if e.cache == nil || book.GoogleBookID == "" {
		return
	}
	// Cache failures never fail an export.
	_ = e.cache.Put(book)
}

// sendProgress delivers an update without blocking when the consumer lags.
func (e *ExportEngine) sendProgress(prog chan<- ProgressUpdate, update ProgressUpdate) {
	if prog == nil {
		return
	}
	select {
	case prog <- update:
	default:
	}
}
