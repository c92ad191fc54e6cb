package walker

import "github.com/mj1618/window-walker/internal/model"

// Matcher selects the windows a walk acts on.
type Matcher interface {
	Match(w model.Window) bool
}

// MatchFunc adapts a function to Matcher.
type MatchFunc func(w model.Window) bool

func (f MatchFunc) Match(w model.Window) bool { return f(w) }

// TitleEquals matches windows whose title is exactly title. There is no case
// folding or substring matching: "微信" does not match "微信 - Chat".
func TitleEquals(title string) Matcher {
	return titleMatcher(title)
}

type titleMatcher string

func (t titleMatcher) Match(w model.Window) bool { return w.Title == string(t) }

// Filter returns the windows accepted by m, preserving order. A nil matcher
// accepts every window.
func Filter(windows []model.Window, m Matcher) []model.Window {
	if m == nil {
		return windows
	}
	var out []model.Window
	for _, w := range windows {
		if m.Match(w) {
			out = append(out, w)
		}
	}
	return out
}
