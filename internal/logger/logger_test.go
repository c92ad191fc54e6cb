package logger

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSetLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		SetLevel(tt.in)
		if got := zerolog.GlobalLevel(); got != tt.want {
			t.Errorf("SetLevel(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetOutput_WritesPlainText(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	Warnf("Specifying title: %s", "微信")
	Error("Failed to find window", errors.New("stale"))

	out := buf.String()
	if !strings.Contains(out, "Specifying title: 微信") {
		t.Errorf("missing warning in %q", out)
	}
	if !strings.Contains(out, "stale") {
		t.Errorf("missing error in %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("non-terminal output should not be colored: %q", out)
	}
}

func TestSetOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "walker.log")
	if err := SetOutputFile(path); err != nil {
		t.Fatal(err)
	}
	Warn("written to file")
	CloseLogFile()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "written to file") {
		t.Errorf("log file missing message: %q", data)
	}
}

func TestInfof_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	SetLevel("warn")
	Infof("Walk finished: %d of %d windows visited", 2, 3)
	if buf.Len() != 0 {
		t.Errorf("info should be suppressed at warn level, got %q", buf.String())
	}

	SetLevel("info")
	Infof("Walk finished: %d of %d windows visited", 2, 3)
	if !strings.Contains(buf.String(), "Walk finished: 2 of 3 windows visited") {
		t.Errorf("missing info line in %q", buf.String())
	}
}
