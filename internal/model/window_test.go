package model

import (
	"testing"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

func TestDesktopLabel(t *testing.T) {
	tests := []struct {
		name string
		d    Desktop
		want string
	}{
		{"named", Desktop{Number: 0, Name: "Work"}, "Work"},
		{"unnamed", Desktop{Number: 2}, "Desktop 3"},
		{"unknown", NoDesktop, "unknown"},
	}
	for _, tt := range tests {
		if got := tt.d.Label(); got != tt.want {
			t.Errorf("%s: Label() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestWindowString(t *testing.T) {
	w := Window{Handle: 0x1a2b, Title: "微信"}
	if got, want := w.String(), `0x1a2b "微信"`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestWindowYAML_DesktopID(t *testing.T) {
	id := uuid.MustParse("aa509086-5ca9-4c25-8f95-589d3c07b48a")
	w := Window{Handle: 1, Title: "Notepad", Desktop: Desktop{Number: 0, ID: id}}

	data, err := yaml.Marshal(w)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	desktop, ok := m["desktop"].(map[string]interface{})
	if !ok {
		t.Fatalf("desktop should be a mapping, got %T", m["desktop"])
	}
	if desktop["id"] != id.String() {
		t.Errorf("desktop id: got %v, want %s", desktop["id"], id)
	}
	if _, ok := m["focused"]; ok {
		t.Error("focused=false should be omitted")
	}
}
