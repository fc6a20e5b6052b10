package components

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestRenderSparkline(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   string
	}{
		{"empty", nil, ""},
		{"flat", []float64{3, 3, 3}, "▅▅▅"},
		{"descending loss", []float64{7, 0}, "█▁"},
		{"midpoint rounds down", []float64{0, 0.5, 1}, "▁▄█"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderSparkline(tt.values); got != tt.want {
				t.Errorf("RenderSparkline(%v) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	p := NewProgress(20, 10)
	p.SetCurrent(5)
	if p.Filled() != 2 {
		t.Errorf("Filled() = %d, want 2", p.Filled())
	}
	if !strings.HasSuffix(p.View(), " 5/20") {
		t.Errorf("View() = %q", p.View())
	}

	p.SetCurrent(99)
	if p.Current != 20 || p.Filled() != 10 {
		t.Errorf("clamp failed: current=%d filled=%d", p.Current, p.Filled())
	}
	if n := strings.Count(p.View(), "░"); n != 0 {
		t.Errorf("full bar has %d empty cells", n)
	}
	if utf8.RuneCountInString(RenderSparkline([]float64{1, 2})) != 2 {
		t.Error("sparkline should have one rune per value")
	}

	zero := NewProgress(0, 10)
	if zero.Filled() != 0 {
		t.Errorf("Filled() on empty total = %d", zero.Filled())
	}
}

func TestHelpBar(t *testing.T) {
	got := NewHelpBar(KeyBinding{"q", "cancel"}, KeyBinding{"ctrl+c", "quit"}).View()
	for _, want := range []string{"q", ":cancel", "ctrl+c", ":quit"} {
		if !strings.Contains(got, want) {
			t.Errorf("View() = %q, missing %q", got, want)
		}
	}
	if NewHelpBar().View() != "" {
		t.Error("empty help bar should render nothing")
	}
}
