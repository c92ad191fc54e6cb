//go:build windows

package windows

import (
	"fmt"

	"github.com/mj1618/window-walker/internal/model"
	"github.com/mj1618/window-walker/internal/platform"
	"golang.org/x/sys/windows"
)

// windowsProvider implements platform.Reader, platform.WindowManager and
// platform.Inputter. accessor is nil when VirtualDesktopAccessor.dll could not
// be loaded; desktop numbers are then reported as unknown.
type windowsProvider struct {
	accessor *accessor
}

func (p *windowsProvider) ListWindows(opts platform.ListOptions) ([]model.Window, error) {
	hwnds, err := topLevelWindows()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate windows: %w", err)
	}

	current := -1
	if p.accessor != nil {
		current = p.accessor.currentNumber()
	}
	foreground := windows.GetForegroundWindow()

	var result []model.Window
	err = withDesktopManager(func(m *desktopManager) error {
		for _, hwnd := range hwnds {
			info := windowInfo{
				visible: windows.IsWindowVisible(hwnd),
				owned:   getOwner(hwnd) != 0,
				exStyle: getExStyle(hwnd),
				cloaked: cloakState(hwnd),
				class:   className(hwnd),
			}
			if !isAppWindow(info) {
				continue
			}
			if opts.CurrentDesktop {
				on, err := m.isOnCurrent(hwnd)
				if err != nil || !on {
					continue
				}
			}
			title := windowText(hwnd)
			if opts.Title != "" && title != opts.Title {
				continue
			}
			result = append(result, model.Window{
				Handle:  uintptr(hwnd),
				Title:   title,
				Class:   info.class,
				PID:     windowPID(hwnd),
				ZOrder:  len(result),
				Desktop: p.desktopOf(m, hwnd, current),
				Focused: hwnd == foreground,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (p *windowsProvider) CurrentWindow() (model.Window, error) {
	hwnd := windows.GetForegroundWindow()
	if hwnd == 0 {
		return model.Window{}, fmt.Errorf("no foreground window")
	}
	current := -1
	if p.accessor != nil {
		current = p.accessor.currentNumber()
	}
	w := model.Window{
		Handle:  uintptr(hwnd),
		Title:   windowText(hwnd),
		Class:   className(hwnd),
		PID:     windowPID(hwnd),
		Focused: true,
		Desktop: p.desktopOf(nil, hwnd, current),
	}
	// The COM lookup only adds the desktop GUID; a failure leaves it unset.
	_ = withDesktopManager(func(m *desktopManager) error {
		w.Desktop = p.desktopOf(m, hwnd, current)
		return nil
	})
	return w, nil
}

func (p *windowsProvider) ListDesktops() ([]model.Desktop, error) {
	if p.accessor == nil {
		return nil, fmt.Errorf("virtual desktop listing requires %s", defaultAccessorDLL)
	}
	n := p.accessor.count()
	current := p.accessor.currentNumber()
	desktops := make([]model.Desktop, 0, n)
	for i := 0; i < n; i++ {
		desktops = append(desktops, model.Desktop{
			Number:  i,
			Name:    p.accessor.name(i),
			Current: i == current,
		})
	}
	return desktops, nil
}
