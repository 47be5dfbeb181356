package match

import (
	"testing"
)

func TestNormalizeTypeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"int", "int"},
		{"String", "string"},
		{"java.lang.String", "string"},
		{"String[]", "string[]"},
		{"java.lang.String[]", "string[]"},
		{"List<Foo>", "list<foo>"},
		{"java.util.List<com.example.Foo>", "list<com.example.foo>"},
		{"Map<String, Foo>", "map<string,foo>"},
		{"  Calendar ", "calendar"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeTypeName(tt.input); got != tt.expected {
				t.Errorf("NormalizeTypeName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
