package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/bookmatch/internal/shared"
	"github.com/desertthunder/bookmatch/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal browser.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	logPath := r.config.Log.File
	if logPath == "" {
		logPath = "./tmp/bookmatch-tui.log"
	}
	fileLogger, err := shared.NewFileLogger(logPath)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(shared.WithLogger(fileLogger, "component", "tui"))

	route := ui.ParseRoute(cmd.String("route"))
	model := ui.NewModel(ctx, ui.Deps{
		Session: r.session,
		Auth:    r.auth,
		Books:   r.books,
		Library: r.library,
		Quiz:    r.quiz,
		Recs:    r.recs,
		Reviews: r.reviews,
	}, route)

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
