package utils

import (
	"bytes"
	"strings"
	"testing"
)

func TestAskConfirmation(t *testing.T) {
	tests := []struct {
		input string
		force bool
		want  bool
	}{
		{"y\n", false, true},
		{"YES\n", false, true},
		{"n\n", false, false},
		{"", false, false},
		{"", true, true},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		in := &InputUtils{in: strings.NewReader(tt.input), out: &out}
		if got := in.AskConfirmation("Truncate?", tt.force); got != tt.want {
			t.Errorf("input %q force %v: got %v, want %v", tt.input, tt.force, got, tt.want)
		}
		if tt.force && out.Len() != 0 {
			t.Error("forced confirmation should not prompt")
		}
	}
}
