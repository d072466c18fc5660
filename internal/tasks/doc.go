// Package tasks implements multi-step operations composed from the api
// clients, currently the custom-list export engine.
//
// The engine fetches the user's custom lists, resolves every book that the
// backend returned in abbreviated form through identifier search (rate
// limited, worker pool), refreshes the local book cache with the results,
// and renders each list through the formatter package. Progress flows to
// the caller over an optional channel so the CLI and TUI can report it
// without blocking the export.
package tasks
