// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand handles setup operations for the local database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// authCommand handles account and session operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage your BookMatch account",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Sign in and persist the session token",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Account email",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Required: true,
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:   "logout",
				Usage:  "Clear the persisted session",
				Action: r.AuthLogout,
			},
			{
				Name:  "register",
				Usage: "Create a new account",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "username",
						Aliases:  []string{"u"},
						Usage:    "Account username",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Account email",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Required: true,
					},
					&cli.Int64SliceFlag{
						Name:  "genres",
						Usage: "Preferred genre ids (see 'bookmatch books genres')",
					},
					&cli.Int64SliceFlag{
						Name:  "tags",
						Usage: "Preferred tag ids (see 'bookmatch books tags')",
					},
				},
				Action: r.AuthRegister,
			},
			{
				Name:  "verify",
				Usage: "Redeem an email verification token",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "token"},
				},
				Action: r.AuthVerify,
			},
			{
				Name:   "status",
				Usage:  "Show the current session state",
				Action: r.AuthStatus,
			},
		},
	}
}

// booksCommand handles catalog operations
func booksCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "books",
		Aliases: []string{"book"},
		Usage:   "Browse the book catalog",
		Commands: []*cli.Command{
			{
				Name:  "search",
				Usage: "Search the catalog",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "query"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.BooksSearch,
			},
			{
				Name:  "show",
				Usage: "Show one book with its reviews",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.BooksShow,
			},
			{
				Name:  "open",
				Usage: "Open a book's Google Books page in the browser",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.BooksOpen,
			},
			{
				Name:  "home",
				Usage: "Show featured books and personal recommendations",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.BooksHome,
			},
			{
				Name:   "genres",
				Usage:  "List catalog genres",
				Action: r.BooksGenres,
			},
			{
				Name:   "tags",
				Usage:  "List catalog tags",
				Action: r.BooksTags,
			},
		},
	}
}

// libraryCommand handles shelf and custom-list operations
func libraryCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "library",
		Aliases: []string{"lib"},
		Usage:   "Manage your shelves and custom lists",
		Commands: []*cli.Command{
			{
				Name:  "status",
				Usage: "Set the reading status of a book",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "book",
						Usage:    "Google Books volume id",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "state",
						Usage:    "One of WANT_TO_READ, READING, READ, DROPPED",
						Required: true,
					},
				},
				Action: r.LibraryStatus,
			},
			{
				Name:  "lists",
				Usage: "Show your custom lists",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.LibraryLists,
			},
			{
				Name:  "create",
				Usage: "Create a custom list",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "name"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "description",
						Usage: "List description",
					},
					&cli.BoolFlag{
						Name:  "public",
						Usage: "Make the list publicly visible",
					},
				},
				Action: r.LibraryCreate,
			},
			{
				Name:  "delete",
				Usage: "Delete a custom list",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.LibraryDelete,
			},
			{
				Name:  "export",
				Usage: "Export every custom list to files",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format: json, csv, markdown, txt",
						Value:   "json",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output directory",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Concurrent list workers",
						Value: 3,
					},
					&cli.FloatFlag{
						Name:  "rate-limit",
						Usage: "Book lookups per second",
						Value: 5,
					},
				},
				Action: r.LibraryExport,
			},
		},
	}
}

// quizCommand handles the recommendation quiz
func quizCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "quiz",
		Usage: "Recommendation quiz",
		Commands: []*cli.Command{
			{
				Name:  "questions",
				Usage: "List quiz questions and their options",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.QuizQuestions,
			},
			{
				Name:  "answer",
				Usage: "Submit answers as questionId:optionId pairs",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "answers"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.QuizAnswer,
			},
		},
	}
}

// recommendCommand handles recommendation feeds
func recommendCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "recommend",
		Aliases: []string{"rec"},
		Usage:   "Recommendation feeds",
		Commands: []*cli.Command{
			{
				Name:  "blind-date",
				Usage: "Draw an anonymized quote card",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "reveal",
						Usage: "Immediately reveal the book behind the card",
					},
				},
				Action: r.RecommendBlindDate,
			},
			{
				Name:  "personal",
				Usage: "Show scored personal recommendations",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.RecommendPersonal,
			},
		},
	}
}

// reviewsCommand handles book reviews
func reviewsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "reviews",
		Usage: "Read and write book reviews",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List reviews for a book",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "book"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.ReviewsList,
			},
			{
				Name:  "create",
				Usage: "Publish a review",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "book",
						Usage:    "Google Books volume id",
						Required: true,
					},
					&cli.IntFlag{
						Name:     "rating",
						Usage:    "Rating from 1 to 5",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "comment",
						Usage:    "Review text",
						Required: true,
					},
				},
				Action: r.ReviewsCreate,
			},
		},
	}
}

// cacheCommand inspects the local book cache
func cacheCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Inspect locally cached book records",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List cached books",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.CacheList,
			},
			{
				Name:  "show",
				Usage: "Show one cached book",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.CacheShow,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive browsing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive browser",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "route",
				Usage: "Starting view path (e.g. /quiz, /book/42)",
				Value: "/",
			},
		},
		Action: r.TUI,
	}
}
