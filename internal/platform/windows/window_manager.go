//go:build windows

package windows

import (
	"fmt"

	"github.com/mj1618/window-walker/internal/model"
	"github.com/mj1618/window-walker/internal/platform"
	"golang.org/x/sys/windows"
)

// SwitchDesktop makes desktop the active virtual desktop. Without the
// accessor DLL, or for an unknown desktop, it does nothing and relies on
// Windows switching desktops when the window is focused.
func (p *windowsProvider) SwitchDesktop(desktop model.Desktop) error {
	if p.accessor == nil || !desktop.Known() {
		return nil
	}
	if p.accessor.currentNumber() == desktop.Number {
		return nil
	}
	return p.accessor.goTo(desktop.Number)
}

func (p *windowsProvider) FocusWindow(w model.Window) error {
	hwnd := windows.HWND(w.Handle)
	if !windows.IsWindow(hwnd) {
		return fmt.Errorf("%s: %w", w, platform.ErrStaleWindow)
	}
	if isIconic(hwnd) {
		showWindow(hwnd, swRestore)
	}
	if setForegroundWindow(hwnd) {
		return nil
	}

	// Windows only lets the foreground thread hand over focus, so borrow its
	// input state for the second attempt.
	self := windows.GetCurrentThreadId()
	fgThread, _ := windows.GetWindowThreadProcessId(windows.GetForegroundWindow(), nil)
	if fgThread != 0 && fgThread != self {
		attachThreadInput(self, fgThread, true)
		defer attachThreadInput(self, fgThread, false)
	}
	bringWindowToTop(hwnd)
	if !setForegroundWindow(hwnd) {
		if !windows.IsWindow(hwnd) {
			return fmt.Errorf("%s: %w", w, platform.ErrStaleWindow)
		}
		return fmt.Errorf("SetForegroundWindow refused focus for %s", w)
	}
	return nil
}
