//go:build windows

package windows

import (
	"testing"

	"golang.org/x/sys/windows"
)

func TestUser32ProcsResolve(t *testing.T) {
	procs := []*windows.LazyProc{
		procGetWindow, procGetWindowLongPtrW, procIsIconic, procShowWindow,
		procGetWindowTextW, procSetForegroundWindow, procBringWindowToTop,
		procAttachThreadInput, procSendInput,
	}
	for _, p := range procs {
		if err := p.Find(); err != nil {
			t.Errorf("%s: %v", p.Name, err)
		}
	}
}

func TestWindowText_InvalidHandle(t *testing.T) {
	if got := windowText(0); got != "" {
		t.Errorf("expected empty title for a null handle, got %q", got)
	}
}

func TestTopLevelWindows_TitlesReadable(t *testing.T) {
	hwnds, err := topLevelWindows()
	if err != nil {
		t.Fatal(err)
	}
	// Any desktop session has at least the shell's windows.
	if len(hwnds) == 0 {
		t.Skip("no top-level windows in this session")
	}
	for _, h := range hwnds {
		_ = windowText(h)
		_ = className(h)
	}
}
