package ui

import (
	"strings"
	"testing"
)

func TestMasteryBar(t *testing.T) {
	tests := []struct {
		score, width int
		filled       int
	}{
		{0, 10, 0},
		{55, 10, 5},
		{100, 10, 10},
		{150, 4, 4},
		{-5, 4, 0},
	}
	for _, tt := range tests {
		bar := MasteryBar(tt.score, tt.width)
		if got := strings.Count(bar, "█"); got != tt.filled {
			t.Errorf("MasteryBar(%d, %d): %d filled, want %d", tt.score, tt.width, got, tt.filled)
		}
		if got := strings.Count(bar, "░"); got != tt.width-tt.filled {
			t.Errorf("MasteryBar(%d, %d): %d empty, want %d", tt.score, tt.width, got, tt.width-tt.filled)
		}
	}
	if MasteryBar(50, 0) != "" {
		t.Error("zero width should render nothing")
	}
}

func TestLabelValue(t *testing.T) {
	got := LabelValue("streak", 3)
	if !strings.Contains(got, "streak:") || !strings.HasSuffix(got, " 3") {
		t.Errorf("unexpected label %q", got)
	}
}
