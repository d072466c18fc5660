package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/bookmatch/internal/api"
	"github.com/desertthunder/bookmatch/internal/session"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	HomeView ViewState = iota
	LoginView
	RegisterView
	SearchView
	BookDetailView
	QuizView
	BlindDateView
	LibraryView
	VerifyEmailView
)

// Deps bundles the services the TUI depends on.
type Deps struct {
	Session *session.Store
	Auth    api.AuthService
	Books   api.BooksService
	Library api.LibraryService
	Quiz    api.QuizService
	Recs    api.RecommendationsService
	Reviews api.ReviewsService
}

// Model represents the TUI application state.
type Model struct {
	ctx          context.Context
	view         ViewState
	initialRoute Route
	deps         Deps
	width        int
	height       int

	status      session.Status
	sessionCh   chan session.Status
	unsubscribe func()

	home     homeState
	login    loginState
	register registerState
	search   searchState
	detail   detailState
	quiz     quizState
	blind    blindDateState
	library  libraryState
	verify   verifyState

	help help.Model
	keys keyMap
}

type sessionChangedMsg session.Status

// NewModel creates a new TUI model with the provided dependencies,
// starting at the view bound to initial.
func NewModel(ctx context.Context, deps Deps, initial Route) *Model {
	m := &Model{
		ctx:       ctx,
		deps:      deps,
		sessionCh: make(chan session.Status, 8),
		help:      help.New(),
		keys:      newKeyMap(),
	}

	if deps.Session != nil {
		m.status = deps.Session.Current()
		m.unsubscribe = deps.Session.Subscribe(func(s session.Status) {
			select {
			case m.sessionCh <- s:
			default:
			}
		})
	}

	m.initialRoute = initial
	return m
}

// Init performs the first navigation and starts watching session changes.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.navigate(m.initialRoute), m.waitForSession())
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case sessionChangedMsg:
		m.status = session.Status(msg)
		return m, m.waitForSession()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.view {
		case HomeView:
			return m.handleHomeKeys(msg)
		case LoginView:
			return m.handleLoginKeys(msg)
		case RegisterView:
			return m.handleRegisterKeys(msg)
		case SearchView:
			return m.handleSearchKeys(msg)
		case BookDetailView:
			return m.handleDetailKeys(msg)
		case QuizView:
			return m.handleQuizKeys(msg)
		case BlindDateView:
			return m.handleBlindDateKeys(msg)
		case LibraryView:
			return m.handleLibraryKeys(msg)
		case VerifyEmailView:
			return m.handleVerifyKeys(msg)
		}

	case homeFetchedMsg:
		return m.handleHomeFetched(msg)
	case searchResultsMsg:
		return m.handleSearchResults(msg)
	case bookLoadedMsg:
		return m.handleBookLoaded(msg)
	case reviewsFetchedMsg:
		return m.handleReviewsFetched(msg)
	case statusSavedMsg:
		return m.handleStatusSaved(msg)
	case reviewCreatedMsg:
		return m.handleReviewCreated(msg)
	case quizQuestionsMsg:
		return m.handleQuizQuestions(msg)
	case quizResultMsg:
		return m.handleQuizResult(msg)
	case blindCardMsg:
		return m.handleBlindCard(msg)
	case blindRevealMsg:
		return m.handleBlindReveal(msg)
	case listsFetchedMsg:
		return m.handleListsFetched(msg)
	case listMutatedMsg:
		return m.handleListMutated(msg)
	case loginResultMsg:
		return m.handleLoginResult(msg)
	case registerResultMsg:
		return m.handleRegisterResult(msg)
	case verifyResultMsg:
		return m.handleVerifyResult(msg)
	}

	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	var body string
	switch m.view {
	case HomeView:
		body = m.renderHome()
	case LoginView:
		body = m.renderLogin()
	case RegisterView:
		body = m.renderRegister()
	case SearchView:
		body = m.renderSearch()
	case BookDetailView:
		body = m.renderDetail()
	case QuizView:
		body = m.renderQuiz()
	case BlindDateView:
		body = m.renderBlindDate()
	case LibraryView:
		body = m.renderLibrary()
	case VerifyEmailView:
		body = m.renderVerify()
	}

	return m.renderNavbar() + "\n" + body
}

// navigate switches to the view bound to route and returns its load command.
// Entering a view resets its transient state.
func (m *Model) navigate(route Route) tea.Cmd {
	switch route.Name {
	case HomeRoute:
		m.view = HomeView
		return m.enterHome()
	case LoginRoute:
		m.view = LoginView
		return m.enterLogin()
	case RegisterRoute:
		m.view = RegisterView
		return m.enterRegister()
	case SearchRoute:
		m.view = SearchView
		return m.enterSearch()
	case BookDetailRoute:
		m.view = BookDetailView
		return m.enterDetail(route.Param)
	case QuizRoute:
		m.view = QuizView
		return m.enterQuiz()
	case BlindDateRoute:
		m.view = BlindDateView
		return m.enterBlindDate()
	case LibraryRoute:
		m.view = LibraryView
		return m.enterLibrary()
	case VerifyEmailRoute:
		m.view = VerifyEmailView
		return m.enterVerify()
	default:
		m.view = HomeView
		return m.enterHome()
	}
}

// handleGlobalNav handles nav shortcuts shared by the browse views.
// Views with focused text inputs never reach this.
func (m *Model) handleGlobalNav(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "q":
		return m, tea.Quit, true
	case "h":
		return m, m.navigate(Route{Name: HomeRoute}), true
	case "/":
		return m, m.navigate(Route{Name: SearchRoute}), true
	case "z":
		return m, m.navigate(Route{Name: QuizRoute}), true
	case "b":
		return m, m.navigate(Route{Name: BlindDateRoute}), true
	case "m":
		return m, m.navigate(Route{Name: LibraryRoute}), true
	case "l":
		if m.status.Authenticated {
			return m, m.logoutCmd(), true
		}
		return m, m.navigate(Route{Name: LoginRoute}), true
	}
	return m, nil, false
}

func (m *Model) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		_ = m.deps.Session.Logout()
		return sessionChangedMsg(m.deps.Session.Current())
	}
}

func (m *Model) waitForSession() tea.Cmd {
	return func() tea.Msg {
		return sessionChangedMsg(<-m.sessionCh)
	}
}

func (m *Model) resizeLists() {
	w, h := m.width-4, m.height-8
	if m.home.bookList.Width() > 0 {
		m.home.bookList.SetSize(w, h)
	}
	if m.search.resultList.Width() > 0 {
		m.search.resultList.SetSize(w, h)
	}
	if m.library.listView.Width() > 0 {
		m.library.listView.SetSize(w, h)
	}
}

func (m *Model) renderNavbar() string {
	account := "not signed in • l login"
	if m.status.Authenticated {
		account = m.status.Username + " • l logout"
	}
	return styles.title.Render("BookMatch") + "  " + styles.help.Render(
		"h home • / search • z quiz • b blind date • m library • "+account,
	)
}
