//go:build windows

package windows

import (
	"bytes"
	"fmt"
	"runtime"
	"syscall"
	"unsafe"

	"github.com/go-ole/go-ole"
	"github.com/google/uuid"
	"github.com/mj1618/window-walker/internal/model"
	"golang.org/x/sys/windows"
)

const defaultAccessorDLL = "VirtualDesktopAccessor.dll"

// accessor wraps VirtualDesktopAccessor.dll, which exposes desktop numbers,
// names and switching that the documented COM interface lacks.
type accessor struct {
	dll *windows.LazyDLL

	getCurrentDesktopNumber *windows.LazyProc
	getDesktopCount         *windows.LazyProc
	getWindowDesktopNumber  *windows.LazyProc
	goToDesktopNumber       *windows.LazyProc
	getDesktopName          *windows.LazyProc
}

// loadAccessor loads the DLL at path. It returns an error when the DLL or any
// required export is missing.
func loadAccessor(path string) (*accessor, error) {
	if path == "" {
		path = defaultAccessorDLL
	}
	dll := windows.NewLazyDLL(path)
	if err := dll.Load(); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	a := &accessor{
		dll:                     dll,
		getCurrentDesktopNumber: dll.NewProc("GetCurrentDesktopNumber"),
		getDesktopCount:         dll.NewProc("GetDesktopCount"),
		getWindowDesktopNumber:  dll.NewProc("GetWindowDesktopNumber"),
		goToDesktopNumber:       dll.NewProc("GoToDesktopNumber"),
		getDesktopName:          dll.NewProc("GetDesktopName"),
	}
	for _, p := range []*windows.LazyProc{a.getCurrentDesktopNumber, a.getDesktopCount, a.getWindowDesktopNumber, a.goToDesktopNumber} {
		if err := p.Find(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return a, nil
}

func (a *accessor) currentNumber() int {
	r, _, _ := a.getCurrentDesktopNumber.Call()
	return int(int32(r))
}

func (a *accessor) count() int {
	r, _, _ := a.getDesktopCount.Call()
	return int(int32(r))
}

func (a *accessor) windowNumber(hwnd windows.HWND) int {
	r, _, _ := a.getWindowDesktopNumber.Call(uintptr(hwnd))
	return int(int32(r))
}

func (a *accessor) goTo(number int) error {
	r, _, _ := a.goToDesktopNumber.Call(uintptr(number))
	if int32(r) < 0 {
		return fmt.Errorf("GoToDesktopNumber(%d) failed", number)
	}
	return nil
}

func (a *accessor) name(number int) string {
	if a.getDesktopName.Find() != nil {
		return ""
	}
	buf := make([]byte, 256)
	r, _, _ := a.getDesktopName.Call(uintptr(number), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if int32(r) < 0 {
		return ""
	}
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf)
}

var (
	clsidVirtualDesktopManager = ole.NewGUID("{AA509086-5CA9-4C25-8F95-589D3C07B48A}")
	iidIVirtualDesktopManager  = ole.NewGUID("{A5CD92FF-29BE-454C-8D04-D82879FB3F1B}")
)

type virtualDesktopManagerVtbl struct {
	ole.IUnknownVtbl
	IsWindowOnCurrentVirtualDesktop uintptr
	GetWindowDesktopId              uintptr
	MoveWindowToDesktop             uintptr
}

// desktopManager is the documented IVirtualDesktopManager COM object.
type desktopManager struct {
	unk *ole.IUnknown
}

func (m *desktopManager) vtbl() *virtualDesktopManagerVtbl {
	return (*virtualDesktopManagerVtbl)(unsafe.Pointer(m.unk.RawVTable))
}

func (m *desktopManager) isOnCurrent(hwnd windows.HWND) (bool, error) {
	var on int32
	hr, _, _ := syscall.SyscallN(m.vtbl().IsWindowOnCurrentVirtualDesktop,
		uintptr(unsafe.Pointer(m.unk)), uintptr(hwnd), uintptr(unsafe.Pointer(&on)))
	if hr != 0 {
		return false, ole.NewError(hr)
	}
	return on != 0, nil
}

func (m *desktopManager) desktopID(hwnd windows.HWND) (uuid.UUID, error) {
	var guid ole.GUID
	hr, _, _ := syscall.SyscallN(m.vtbl().GetWindowDesktopId,
		uintptr(unsafe.Pointer(m.unk)), uintptr(hwnd), uintptr(unsafe.Pointer(&guid)))
	if hr != 0 {
		return uuid.Nil, ole.NewError(hr)
	}
	return uuid.Parse(guid.String())
}

// withDesktopManager runs fn on a COM-initialized, locked OS thread.
func withDesktopManager(fn func(m *desktopManager) error) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		// S_FALSE: COM was already initialized on this thread.
		if oleErr, ok := err.(*ole.OleError); !ok || oleErr.Code() != 1 {
			return fmt.Errorf("CoInitializeEx: %w", err)
		}
	}
	defer ole.CoUninitialize()

	unk, err := ole.CreateInstance(clsidVirtualDesktopManager, iidIVirtualDesktopManager)
	if err != nil {
		return fmt.Errorf("failed to create IVirtualDesktopManager: %w", err)
	}
	defer unk.Release()

	return fn(&desktopManager{unk: unk})
}

// desktopOf resolves the desktop that owns hwnd. Missing pieces are left at
// their zero values rather than failing the lookup.
func (p *windowsProvider) desktopOf(m *desktopManager, hwnd windows.HWND, current int) model.Desktop {
	d := model.NoDesktop
	if m != nil {
		if id, err := m.desktopID(hwnd); err == nil {
			d.ID = id
		}
	}
	if p.accessor != nil {
		d.Number = p.accessor.windowNumber(hwnd)
		if d.Known() {
			d.Name = p.accessor.name(d.Number)
			d.Current = d.Number == current
		}
	}
	return d
}
