package platform

import "testing"

func TestParseKey_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"enter", KeyEnter},
		{"Enter", KeyEnter},
		{"RETURN", KeyEnter},
		{"tab", KeyTab},
		{" esc ", KeyEscape},
		{"Escape", KeyEscape},
	}
	for _, tt := range tests {
		got, err := ParseKey(tt.input)
		if err != nil {
			t.Errorf("ParseKey(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseKey_Invalid(t *testing.T) {
	for _, s := range []string{"", "f13", "ctrl+c"} {
		if _, err := ParseKey(s); err == nil {
			t.Errorf("ParseKey(%q) should fail", s)
		}
	}
}
