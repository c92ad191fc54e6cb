package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles all platform backends for the current OS.
type Provider struct {
	Reader        Reader
	WindowManager WindowManager
	Inputter      Inputter
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("window-walker is not supported on %s/%s; supported: windows/amd64, windows/arm64", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/windows/init.go for the Windows registration.
var NewProviderFunc func(opts ProviderOptions) (*Provider, error)

// ProviderOptions configures backend construction.
type ProviderOptions struct {
	// AccessorDLL is the path to VirtualDesktopAccessor.dll. Empty uses the
	// DLL search path.
	AccessorDLL string
}

// NewProvider returns a Provider for the current OS.
func NewProvider(opts ProviderOptions) (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc(opts)
}
