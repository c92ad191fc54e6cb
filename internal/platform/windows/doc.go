// Package windows provides Windows 11 platform support using user32, the
// IVirtualDesktopManager COM interface and VirtualDesktopAccessor.dll.
// On other operating systems only the OS-independent helpers compile and no
// provider is registered.
package windows
