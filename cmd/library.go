package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/desertthunder/bookmatch/internal/models"
	"github.com/desertthunder/bookmatch/internal/shared"
	"github.com/desertthunder/bookmatch/internal/tasks"
	"github.com/urfave/cli/v3"
)

// LibraryStatus sets the reading status of a book on the caller's shelf.
func (r *Runner) LibraryStatus(ctx context.Context, cmd *cli.Command) error {
	status, err := r.requireAuth()
	if err != nil {
		return err
	}

	state := models.ReadingStatus(strings.ToUpper(cmd.String("state")))
	if !state.Valid() {
		return fmt.Errorf("%w: state must be one of WANT_TO_READ, READING, READ, DROPPED", shared.ErrInvalidFlag)
	}

	googleBookID := cmd.String("book")
	r.logger.Info("updating reading status", "book", googleBookID, "state", state)

	if err := r.library.SetStatus(ctx, status.UserID, googleBookID, state); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	return r.writePlain("✓ %s marked as %s\n", googleBookID, state)
}

// LibraryLists shows the caller's custom lists.
func (r *Runner) LibraryLists(ctx context.Context, cmd *cli.Command) error {
	if _, err := r.requireAuth(); err != nil {
		return err
	}

	lists, err := r.library.CustomLists(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch lists: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(lists, true)
	}

	if len(lists) == 0 {
		return r.writePlain("No custom lists yet\n")
	}

	r.writePlainHeader("My Library")
	for _, list := range lists {
		visibility := "private"
		if list.IsPublic {
			visibility = "public"
		}
		r.writePlain("%d\t%s (%d books, %s)\n", list.ListID, list.Name, list.BookCount, visibility)
	}
	return nil
}

// LibraryCreate creates a custom list.
func (r *Runner) LibraryCreate(ctx context.Context, cmd *cli.Command) error {
	if _, err := r.requireAuth(); err != nil {
		return err
	}

	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("%w: list name", shared.ErrMissingArgument)
	}

	if err := r.library.CreateCustomList(ctx, name, cmd.String("description"), cmd.Bool("public")); err != nil {
		return fmt.Errorf("failed to create list: %w", err)
	}

	return r.writePlain("✓ Created list '%s'\n", name)
}

// LibraryDelete deletes a custom list by id.
func (r *Runner) LibraryDelete(ctx context.Context, cmd *cli.Command) error {
	if _, err := r.requireAuth(); err != nil {
		return err
	}

	listID, err := strconv.ParseInt(cmd.StringArg("id"), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: list id must be numeric", shared.ErrInvalidArgument)
	}

	if err := r.library.DeleteCustomList(ctx, listID); err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
	}

	return r.writePlain("✓ Deleted list %d\n", listID)
}

// LibraryExport exports every custom list to files, resolving abbreviated
// book entries through the rate-limited export engine.
func (r *Runner) LibraryExport(ctx context.Context, cmd *cli.Command) error {
	if _, err := r.requireAuth(); err != nil {
		return err
	}
	if r.engine == nil {
		return fmt.Errorf("%w: export engine not initialized", shared.ErrServiceUnavailable)
	}

	opts := tasks.ExportOpts{
		Format:     cmd.String("format"),
		OutputDir:  cmd.String("output"),
		NumWorkers: cmd.Int("workers"),
		RateLimit:  cmd.Float("rate-limit"),
	}

	prog := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		for update := range prog {
			r.logger.Info(update.Message, "step", update.Step, "total", update.Total)
		}
		close(done)
	}()

	result, err := r.engine.Run(ctx, prog, opts)
	close(prog)
	<-done
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	r.writePlainHeader("Export Complete")
	r.writePlain("Lists: %d (%d ok, %d failed)\n", result.TotalLists, result.Successful, result.Failed)
	r.writePlain("Output: %s\n", result.OutputDirectory)
	for _, res := range result.Results {
		if res.Success {
			r.writePlain("  ✓ %s → %s (%d books", res.ListName, res.File, res.Resolved)
			if res.Missing > 0 {
				r.writePlain(", %d unresolved", res.Missing)
			}
			r.writePlain(")\n")
		} else {
			r.writePlain("  ✗ %s: %v\n", res.ListName, res.Error)
		}
	}
	return nil
}
