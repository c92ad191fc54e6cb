package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mj1618/window-walker/internal/platform"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Walk.Interval != 200*time.Millisecond {
		t.Errorf("walk interval: got %v", cfg.Walk.Interval)
	}
	if cfg.Walk.DryRunInterval != 0 {
		t.Errorf("dry-run interval: got %v", cfg.Walk.DryRunInterval)
	}
	if cfg.Send.Title != "微信" {
		t.Errorf("send title: got %q", cfg.Send.Title)
	}
	if cfg.Send.SettleDelay != 200*time.Millisecond || cfg.Send.Interval != 100*time.Millisecond {
		t.Errorf("send delays: got %+v", cfg.Send)
	}
}

func TestLoad_OverridesAndDefaults(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
accessor_dll: C:\tools\VirtualDesktopAccessor.dll
walk:
  interval: 500ms
send:
  title: Slack
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level: got %q", cfg.LogLevel)
	}
	if cfg.AccessorDLL != `C:\tools\VirtualDesktopAccessor.dll` {
		t.Errorf("accessor dll: got %q", cfg.AccessorDLL)
	}
	if cfg.Walk.Interval != 500*time.Millisecond {
		t.Errorf("walk interval: got %v", cfg.Walk.Interval)
	}
	if cfg.Send.Title != "Slack" {
		t.Errorf("send title: got %q", cfg.Send.Title)
	}
	if cfg.Send.Content == "" || cfg.Send.SettleDelay == 0 {
		t.Errorf("unset send fields should default, got %+v", cfg.Send)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "walk: [unterminated")
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_RejectsNegativeDelay(t *testing.T) {
	path := writeConfig(t, "send:\n  settle_delay: -1s\n")
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "send.settle_delay") {
		t.Fatalf("expected settle_delay error, got %v", err)
	}
}

func TestLoad_RejectsUnknownLevel(t *testing.T) {
	path := writeConfig(t, "log_level: trace\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected log level error")
	}
}

func TestLoad_ExplicitZeroDisablesDelay(t *testing.T) {
	path := writeConfig(t, `
walk:
  interval: 0s
send:
  interval: 0s
  settle_delay: 0s
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Walk.Interval != 0 {
		t.Errorf("walk interval: got %v, want 0", cfg.Walk.Interval)
	}
	if cfg.Send.Interval != 0 || cfg.Send.SettleDelay != 0 {
		t.Errorf("send delays: got %+v, want zero", cfg.Send)
	}
	if cfg.Send.Title != "微信" {
		t.Errorf("unrelated keys should keep defaults, got title %q", cfg.Send.Title)
	}
}

func TestLoad_SubmitKey(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{"", platform.KeyEnter},
		{"send:\n  submit_key: Return\n", platform.KeyEnter},
		{"send:\n  submit_key: esc\n", platform.KeyEscape},
		{"send:\n  submit_key: tab\n", platform.KeyTab},
	}
	for _, tt := range tests {
		cfg, err := Load(writeConfig(t, "log_level: info\n"+tt.body))
		if err != nil {
			t.Fatalf("%q: %v", tt.body, err)
		}
		if cfg.Send.SubmitKey != tt.want {
			t.Errorf("%q: got %q, want %q", tt.body, cfg.Send.SubmitKey, tt.want)
		}
	}
}

func TestLoad_RejectsUnknownSubmitKey(t *testing.T) {
	path := writeConfig(t, "send:\n  submit_key: space\n")
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "send.submit_key") {
		t.Fatalf("expected submit_key error, got %v", err)
	}
}
