package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Window represents a top-level application window.
type Window struct {
	Handle  uintptr `yaml:"handle"          json:"handle"`
	Title   string  `yaml:"title"           json:"title"`
	Class   string  `yaml:"class,omitempty" json:"class,omitempty"`
	PID     int     `yaml:"pid,omitempty"   json:"pid,omitempty"`
	ZOrder  int     `yaml:"z"               json:"z"`
	Desktop Desktop `yaml:"desktop"         json:"desktop"`
	Focused bool    `yaml:"focused,omitempty" json:"focused,omitempty"`
}

// String identifies the window in log lines, e.g. `0x1a2b "Notepad"`.
func (w Window) String() string {
	return fmt.Sprintf("%#x %q", w.Handle, w.Title)
}

// Desktop represents a virtual desktop.
type Desktop struct {
	Number  int       `yaml:"number"            json:"number"`
	ID      uuid.UUID `yaml:"id"                json:"id"`
	Name    string    `yaml:"name,omitempty"    json:"name,omitempty"`
	Current bool      `yaml:"current,omitempty" json:"current,omitempty"`
}

// NoDesktop is the desktop reported when the owning desktop is unknown.
var NoDesktop = Desktop{Number: -1}

// Known reports whether the desktop number was resolved.
func (d Desktop) Known() bool {
	return d.Number >= 0
}

// Label returns the display name of the desktop, falling back to
// "Desktop N" (1-based, as Windows names them) when no name is set.
func (d Desktop) Label() string {
	if d.Name != "" {
		return d.Name
	}
	if !d.Known() {
		return "unknown"
	}
	return fmt.Sprintf("Desktop %d", d.Number+1)
}
