//go:build windows

package lock

import (
	"os"

	"golang.org/x/sys/windows"
)

func lockFile(file *os.File) error {
	handle := windows.Handle(file.Fd())
	overlapped := &windows.Overlapped{}
	return windows.LockFileEx(handle, windows.LOCKFILE_EXCLUSIVE_LOCK|windows.LOCKFILE_FAIL_IMMEDIATELY, 0, 1, 0, overlapped)
}

func unlockFile(file *os.File) {
	handle := windows.Handle(file.Fd())
	overlapped := &windows.Overlapped{}
	windows.UnlockFileEx(handle, 0, 1, 0, overlapped)
}
