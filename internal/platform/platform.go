package platform

import "github.com/mj1618/window-walker/internal/model"

// Reader enumerates windows and desktops.
type Reader interface {
	// ListWindows returns application windows in front-to-back z-order.
	ListWindows(opts ListOptions) ([]model.Window, error)

	// CurrentWindow returns the window that currently holds focus.
	CurrentWindow() (model.Window, error)

	// ListDesktops returns the virtual desktops in order.
	ListDesktops() ([]model.Desktop, error)
}

// WindowManager switches virtual desktops and window focus.
type WindowManager interface {
	SwitchDesktop(desktop model.Desktop) error
	FocusWindow(w model.Window) error
}

// Inputter simulates keyboard input into the focused window.
type Inputter interface {
	TypeText(text string, delayMs int) error
	KeyPress(key string) error
}
