package platform

import (
	"errors"
	"fmt"
	"strings"
)

// ErrStaleWindow is returned when a window handle is no longer valid,
// typically because the window closed after enumeration.
var ErrStaleWindow = errors.New("window no longer exists")

// ListOptions controls window listing.
type ListOptions struct {
	CurrentDesktop bool   // Only windows on the active virtual desktop
	Title          string // Exact title match (empty = all)
}

// Keys accepted by Inputter.KeyPress.
const (
	KeyEnter  = "enter"
	KeyTab    = "tab"
	KeyEscape = "escape"
)

// ParseKey normalizes a key name for Inputter.KeyPress.
func ParseKey(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "enter", "return":
		return KeyEnter, nil
	case "tab":
		return KeyTab, nil
	case "esc", "escape":
		return KeyEscape, nil
	default:
		return "", fmt.Errorf("unknown key: %q (expected enter, tab, or escape)", s)
	}
}
