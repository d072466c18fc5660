package ui

import "strings"

// RouteName identifies a navigable view.
type RouteName int

const (
	HomeRoute RouteName = iota
	LoginRoute
	RegisterRoute
	SearchRoute
	BookDetailRoute
	QuizRoute
	BlindDateRoute
	LibraryRoute
	VerifyEmailRoute
)

// Route is a parsed navigation target. Param carries the single path
// parameter of parameterized routes, passed through verbatim.
type Route struct {
	Name  RouteName
	Param string
}

// ParseRoute maps a path to a route. Unknown paths fall back to home
// rather than failing, so stale links always land somewhere usable.
func ParseRoute(path string) Route {
	path = strings.Trim(strings.TrimSpace(path), "/")

	segments := strings.Split(path, "/")
	switch segments[0] {
	case "", "home":
		return Route{Name: HomeRoute}
	case "login":
		return Route{Name: LoginRoute}
	case "register":
		return Route{Name: RegisterRoute}
	case "search":
		return Route{Name: SearchRoute}
	case "quiz":
		return Route{Name: QuizRoute}
	case "blind-date":
		return Route{Name: BlindDateRoute}
	case "my-library":
		return Route{Name: LibraryRoute}
	case "verify-email":
		return Route{Name: VerifyEmailRoute}
	case "book":
		if len(segments) == 2 && segments[1] != "" {
			return Route{Name: BookDetailRoute, Param: segments[1]}
		}
		return Route{Name: HomeRoute}
	default:
		return Route{Name: HomeRoute}
	}
}

func (r RouteName) String() string {
	switch r {
	case HomeRoute:
		return "home"
	case LoginRoute:
		return "login"
	case RegisterRoute:
		return "register"
	case SearchRoute:
		return "search"
	case BookDetailRoute:
		return "book"
	case QuizRoute:
		return "quiz"
	case BlindDateRoute:
		return "blind-date"
	case LibraryRoute:
		return "my-library"
	case VerifyEmailRoute:
		return "verify-email"
	default:
		return "unknown"
	}
}
