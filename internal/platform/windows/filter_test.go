package windows

import "testing"

func TestIsAppWindow(t *testing.T) {
	tests := []struct {
		name string
		info windowInfo
		want bool
	}{
		{"plain app", windowInfo{visible: true, class: "Notepad"}, true},
		{"hidden", windowInfo{visible: false, class: "Notepad"}, false},
		{"other desktop", windowInfo{visible: true, cloaked: dwmCloakedShell, class: "Chrome_WidgetWin_1"}, true},
		{"cloaked by app", windowInfo{visible: true, cloaked: dwmCloakedApp, class: "ApplicationFrameWindow"}, false},
		{"cloaked inherited", windowInfo{visible: true, cloaked: dwmCloakedShell | dwmCloakedInherited}, false},
		{"tool window", windowInfo{visible: true, exStyle: wsExToolWindow}, false},
		{"no activate", windowInfo{visible: true, exStyle: wsExNoActivate}, false},
		{"owned dialog", windowInfo{visible: true, owned: true}, false},
		{"owned app window", windowInfo{visible: true, owned: true, exStyle: wsExAppWindow}, true},
		{"tool app window", windowInfo{visible: true, exStyle: wsExToolWindow | wsExAppWindow}, true},
		{"desktop", windowInfo{visible: true, class: "Progman"}, false},
		{"taskbar", windowInfo{visible: true, class: "Shell_TrayWnd"}, false},
	}
	for _, tt := range tests {
		if got := isAppWindow(tt.info); got != tt.want {
			t.Errorf("%s: isAppWindow = %v, want %v", tt.name, got, tt.want)
		}
	}
}
