package ui

import "testing"

func TestParseRoute(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		want  RouteName
		param string
	}{
		{"empty path", "", HomeRoute, ""},
		{"root", "/", HomeRoute, ""},
		{"home alias", "/home", HomeRoute, ""},
		{"login", "/login", LoginRoute, ""},
		{"register", "register", RegisterRoute, ""},
		{"search", "/search", SearchRoute, ""},
		{"quiz", "/quiz", QuizRoute, ""},
		{"blind date", "/blind-date", BlindDateRoute, ""},
		{"library", "/my-library", LibraryRoute, ""},
		{"verify email", "/verify-email", VerifyEmailRoute, ""},
		{"book with numeric id", "/book/42", BookDetailRoute, "42"},
		{"book with external id", "/book/zyTCAlFPjgYC", BookDetailRoute, "zyTCAlFPjgYC"},
		{"book without id", "/book", HomeRoute, ""},
		{"trailing slash", "/quiz/", QuizRoute, ""},
		{"unknown path", "/does-not-exist", HomeRoute, ""},
		{"deep unknown path", "/a/b/c", HomeRoute, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route := ParseRoute(tt.path)
			if route.Name != tt.want {
				t.Errorf("ParseRoute(%q).Name = %v, want %v", tt.path, route.Name, tt.want)
			}
			if route.Param != tt.param {
				t.Errorf("ParseRoute(%q).Param = %q, want %q", tt.path, route.Param, tt.param)
			}
		})
	}
}

func TestParseRoutePreservesParamVerbatim(t *testing.T) {
	route := ParseRoute("/book/abc%20def")
	if route.Param != "abc%20def" {
		t.Errorf("expected raw parameter, got %q", route.Param)
	}
}
