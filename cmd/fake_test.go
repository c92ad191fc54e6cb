package cmd

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/mj1618/window-walker/internal/model"
	"github.com/mj1618/window-walker/internal/output"
	"github.com/mj1618/window-walker/internal/platform"
	"github.com/spf13/cobra"
)

// fakeDesktop is a recording platform backend.
type fakeDesktop struct {
	windows   []model.Window
	desktops  []model.Desktop
	current   model.Window
	listCalls int
	mutations []string
	typed     []string
}

func (f *fakeDesktop) ListWindows(opts platform.ListOptions) ([]model.Window, error) {
	f.listCalls++
	if opts.Title == "" {
		return f.windows, nil
	}
	var out []model.Window
	for _, w := range f.windows {
		if w.Title == opts.Title {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeDesktop) CurrentWindow() (model.Window, error) { return f.current, nil }

func (f *fakeDesktop) ListDesktops() ([]model.Desktop, error) { return f.desktops, nil }

func (f *fakeDesktop) SwitchDesktop(d model.Desktop) error {
	f.mutations = append(f.mutations, fmt.Sprintf("desktop:%d", d.Number))
	return nil
}

func (f *fakeDesktop) FocusWindow(w model.Window) error {
	f.mutations = append(f.mutations, "focus:"+w.Title)
	return nil
}

func (f *fakeDesktop) TypeText(text string, delayMs int) error {
	f.mutations = append(f.mutations, "type")
	f.typed = append(f.typed, text)
	return nil
}

func (f *fakeDesktop) KeyPress(key string) error {
	f.mutations = append(f.mutations, "key:"+key)
	return nil
}

func sampleDesktop() *fakeDesktop {
	return &fakeDesktop{
		windows: []model.Window{
			{Handle: 1, Title: "Notepad", Desktop: model.Desktop{Number: 0}},
			{Handle: 2, Title: "微信", Desktop: model.Desktop{Number: 1}},
			{Handle: 3, Title: "Chrome", Desktop: model.Desktop{Number: 0}},
		},
		desktops: []model.Desktop{{Number: 0, Current: true}, {Number: 1, Name: "Chat"}},
		current:  model.Window{Handle: 1, Title: "Notepad", Desktop: model.Desktop{Number: 0}},
	}
}

// installFake registers f as the platform backend and returns a counter of
// provider constructions. Output, lock path and config are isolated per test.
func installFake(t *testing.T, f *fakeDesktop) (*int, *bytes.Buffer) {
	t.Helper()
	created := 0

	origFunc, origLock, origConfig := platform.NewProviderFunc, lockPath, appConfig
	origOut, origFormat, origNoColor := output.Out, output.OutputFormat, color.NoColor
	t.Cleanup(func() {
		platform.NewProviderFunc, lockPath, appConfig = origFunc, origLock, origConfig
		output.Out, output.OutputFormat, color.NoColor = origOut, origFormat, origNoColor
	})
	color.NoColor = true

	platform.NewProviderFunc = func(platform.ProviderOptions) (*platform.Provider, error) {
		created++
		return &platform.Provider{Reader: f, WindowManager: f, Inputter: f}, nil
	}
	lockPath = filepath.Join(t.TempDir(), "walker.lock")
	appConfig = nil

	var buf bytes.Buffer
	output.Out = &buf
	output.OutputFormat = output.FormatYAML
	return &created, &buf
}

// setFlags sets flag values on c and restores the defaults after the test.
func setFlags(t *testing.T, c *cobra.Command, values map[string]string) {
	t.Helper()
	for name, v := range values {
		if err := c.Flags().Set(name, v); err != nil {
			t.Fatalf("set --%s: %v", name, err)
		}
	}
	t.Cleanup(func() {
		for name := range values {
			f := c.Flags().Lookup(name)
			f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})
}
