// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for browsing and tracking books:
//  1. [HomeView] : Featured books, genres and personal recommendations
//  2. [SearchView] : Catalog search with live results
//  3. [BookDetailView] : Book record, reviews and shelf controls
//  4. [QuizView] : Guided recommendation quiz wizard
//  5. [BlindDateView] : Anonymized quote cards with a reveal step
//  6. [LibraryView] : Custom list management
//  7. [LoginView], [RegisterView], [VerifyEmailView] : Account flows
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Remote calls run as [tea.Cmd] closures that resolve to typed messages, so the
// update loop never blocks on the network.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with contextual
// help displayed via charmbracelet/bubbles/help.
package ui
