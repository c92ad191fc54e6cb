package platform

import (
	"errors"
	"testing"
)

func TestNewProvider_UnsupportedPlatform(t *testing.T) {
	// Temporarily clear the provider func to simulate unsupported platform
	orig := NewProviderFunc
	NewProviderFunc = nil
	defer func() { NewProviderFunc = orig }()

	_, err := NewProvider(ProviderOptions{})
	if err == nil {
		t.Fatal("expected error on unsupported platform")
	}
	if err != ErrUnsupported {
		t.Errorf("expected ErrUnsupported, got: %v", err)
	}
}

func TestNewProvider_PassesOptions(t *testing.T) {
	orig := NewProviderFunc
	defer func() { NewProviderFunc = orig }()

	var got ProviderOptions
	NewProviderFunc = func(opts ProviderOptions) (*Provider, error) {
		got = opts
		return &Provider{}, nil
	}

	if _, err := NewProvider(ProviderOptions{AccessorDLL: `C:\tools\VirtualDesktopAccessor.dll`}); err != nil {
		t.Fatal(err)
	}
	if got.AccessorDLL != `C:\tools\VirtualDesktopAccessor.dll` {
		t.Errorf("AccessorDLL: got %q", got.AccessorDLL)
	}
}

func TestNewProvider_PropagatesError(t *testing.T) {
	orig := NewProviderFunc
	defer func() { NewProviderFunc = orig }()

	boom := errors.New("boom")
	NewProviderFunc = func(ProviderOptions) (*Provider, error) { return nil, boom }

	if _, err := NewProvider(ProviderOptions{}); !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
}
