package windows

// Window styles and attributes used to tell application windows apart from
// tool windows, shell surfaces and hidden helpers.
const (
	wsExToolWindow = 0x00000080
	wsExAppWindow  = 0x00040000
	wsExNoActivate = 0x08000000

	dwmCloakedApp       = 0x1
	dwmCloakedShell     = 0x2
	dwmCloakedInherited = 0x4
)

// shellClasses are always-present shell windows that are never walked.
var shellClasses = map[string]bool{
	"Progman":                    true,
	"WorkerW":                    true,
	"Shell_TrayWnd":              true,
	"Shell_SecondaryTrayWnd":     true,
	"Windows.UI.Core.CoreWindow": true,
}

// windowInfo is the subset of window state the app-window test needs.
type windowInfo struct {
	visible bool
	owned   bool
	exStyle uint32
	cloaked uint32
	class   string
}

// isAppWindow reports whether a top-level window is an application window in
// the Alt+Tab sense. Windows on other virtual desktops are cloaked by the
// shell and still count; windows cloaked by their app do not.
func isAppWindow(i windowInfo) bool {
	if !i.visible || shellClasses[i.class] {
		return false
	}
	if i.cloaked&^dwmCloakedShell != 0 {
		return false
	}
	if i.exStyle&wsExAppWindow != 0 {
		return true
	}
	if i.owned {
		return false
	}
	return i.exStyle&(wsExToolWindow|wsExNoActivate) == 0
}
