package content

import (
	"strings"
	"testing"
)

func TestEstimateReadingTimeStripsMarkup(t *testing.T) {
	body := "<p>one two three</p><pre><code>four five</code></pre>"
	got := EstimateReadingTime(body, 5)
	if got != 1 {
		t.Errorf("EstimateReadingTime = %d, want 1", got)
	}
}

func TestEstimateReadingTimeRoundsUp(t *testing.T) {
	tests := []struct {
		words int
		wpm   int
		want  int
	}{
		{1, 200, 1},
		{200, 200, 1},
		{201, 200, 2},
		{450, 200, 3},
		{10, 5, 2},
	}
	for _, tt := range tests {
		body := "<p>" + strings.Repeat("word ", tt.words) + "</p>"
		got := EstimateReadingTime(body, tt.wpm)
		if got != tt.want {
			t.Errorf("EstimateReadingTime(%d words, %d wpm) = %d, want %d", tt.words, tt.wpm, got, tt.want)
		}
	}
}

func TestEstimateReadingTimeEmptyInput(t *testing.T) {
	for _, body := range []string{"", "   ", "<p></p>", "<div><span> </span></div>"} {
		if got := EstimateReadingTime(body, 200); got != 0 {
			t.Errorf("EstimateReadingTime(%q) = %d, want 0", body, got)
		}
	}
}

func TestEstimateReadingTimeDefaultSpeed(t *testing.T) {
	body := "<p>" + strings.Repeat("word ", 250) + "</p>"
	if got := EstimateReadingTime(body, 0); got != 2 {
		t.Errorf("EstimateReadingTime with default speed = %d, want 2", got)
	}
	if got := EstimateReadingTime(body, -1); got != 2 {
		t.Errorf("EstimateReadingTime with negative speed = %d, want 2", got)
	}
}

func TestEstimateReadingTimeMonotonic(t *testing.T) {
	prev := 0
	for _, words := range []int{10, 100, 250, 600, 1500} {
		body := "<p>" + strings.Repeat("word ", words) + "</p>"
		got := EstimateReadingTime(body, 200)
		if got < prev {
			t.Errorf("reading time decreased from %d to %d at %d words", prev, got, words)
		}
		prev = got
	}
}
