package textutil

import "testing"

func TestNormalizeComment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"folds case", "Returns The VALUE", "returns the value"},
		{"strips punctuation", "@param x -- the input, or null.", "param x the input or null"},
		{"keeps digits", "TODO(v2): fix 404s", "todo v2 fix 404s"},
		{"unicode letters", "Über Änderung", "über änderung"},
		{"only symbols", "/** * */", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeComment(tt.input); got != tt.want {
				t.Errorf("NormalizeComment(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCollapseWhitespace(t *testing.T) {
	if got := CollapseWhitespace(" a\tb\n\nc "); got != "a b c" {
		t.Fatalf("CollapseWhitespace = %q", got)
	}
}
