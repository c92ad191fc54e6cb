//go:build windows

package windows

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procGetWindow           = user32.NewProc("GetWindow")
	procGetWindowLongPtrW   = user32.NewProc("GetWindowLongPtrW")
	procIsIconic            = user32.NewProc("IsIconic")
	procShowWindow          = user32.NewProc("ShowWindow")
	procGetWindowTextW      = user32.NewProc("GetWindowTextW")
	procSetForegroundWindow = user32.NewProc("SetForegroundWindow")
	procBringWindowToTop    = user32.NewProc("BringWindowToTop")
	procAttachThreadInput   = user32.NewProc("AttachThreadInput")
	procSendInput           = user32.NewProc("SendInput")
)

const (
	gwOwner       = 4
	swRestore     = 9
	gwlExStyle    = -20
	dwmwaCloaked  = 14
	inputKeyboard = 1
)

func getOwner(hwnd windows.HWND) windows.HWND {
	r, _, _ := procGetWindow.Call(uintptr(hwnd), gwOwner)
	return windows.HWND(r)
}

func getExStyle(hwnd windows.HWND) uint32 {
	idx := int32(gwlExStyle)
	r, _, _ := procGetWindowLongPtrW.Call(uintptr(hwnd), uintptr(idx))
	return uint32(r)
}

func isIconic(hwnd windows.HWND) bool {
	r, _, _ := procIsIconic.Call(uintptr(hwnd))
	return r != 0
}

func showWindow(hwnd windows.HWND, cmd int32) {
	procShowWindow.Call(uintptr(hwnd), uintptr(cmd))
}

func setForegroundWindow(hwnd windows.HWND) bool {
	r, _, _ := procSetForegroundWindow.Call(uintptr(hwnd))
	return r != 0
}

func bringWindowToTop(hwnd windows.HWND) {
	procBringWindowToTop.Call(uintptr(hwnd))
}

func attachThreadInput(from, to uint32, attach bool) {
	var flag uintptr
	if attach {
		flag = 1
	}
	procAttachThreadInput.Call(uintptr(from), uintptr(to), flag)
}

func cloakState(hwnd windows.HWND) uint32 {
	var cloaked uint32
	if err := windows.DwmGetWindowAttribute(hwnd, dwmwaCloaked, unsafe.Pointer(&cloaked), uint32(unsafe.Sizeof(cloaked))); err != nil {
		return 0
	}
	return cloaked
}

func windowText(hwnd windows.HWND) string {
	buf := make([]uint16, 512)
	r, _, _ := procGetWindowTextW.Call(
		uintptr(hwnd),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
	)
	if r == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:r])
}

func className(hwnd windows.HWND) string {
	buf := make([]uint16, 256)
	n, err := windows.GetClassName(hwnd, &buf[0], int32(len(buf)))
	if err != nil || n == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}

func windowPID(hwnd windows.HWND) int {
	var pid uint32
	windows.GetWindowThreadProcessId(hwnd, &pid)
	return int(pid)
}

var enumWindowsCallback = windows.NewCallback(func(hwnd windows.HWND, lParam uintptr) uintptr {
	hwnds := (*[]windows.HWND)(unsafe.Pointer(lParam))
	*hwnds = append(*hwnds, hwnd)
	return 1
})

// topLevelWindows returns every top-level window handle in z-order, foremost
// first.
func topLevelWindows() ([]windows.HWND, error) {
	var hwnds []windows.HWND
	if err := windows.EnumWindows(enumWindowsCallback, unsafe.Pointer(&hwnds)); err != nil {
		return nil, err
	}
	return hwnds, nil
}
