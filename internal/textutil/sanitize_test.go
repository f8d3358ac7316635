package textutil

import "testing"

func TestSanitizeToken(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "unknown"},
		{"   ", "unknown"},
		{"ArgoUML", "argouml"},
		{"cosine 0.7", "cosine_0.7"},
		{"my/dataset:v1", "my_dataset_v1"},
		{"__.--", "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := SanitizeToken(tt.input); got != tt.want {
				t.Errorf("SanitizeToken(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
