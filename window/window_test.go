package window

import (
	"errors"
	"testing"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name       string
		lineCount  int
		anchorLine int
		maxLines   int
		want       Window
	}{
		{
			name:      "anchor near start",
			lineCount: 1000, anchorLine: 5, maxLines: 128,
			want: Window{Start: 1, End: 128, TruncatedAfter: true},
		},
		{
			name:      "anchor near end",
			lineCount: 1000, anchorLine: 995, maxLines: 128,
			want: Window{Start: 872, End: 1000, TruncatedBefore: true},
		},
		{
			name:      "anchor interior",
			lineCount: 1000, anchorLine: 500, maxLines: 128,
			want: Window{Start: 436, End: 564, TruncatedBefore: true, TruncatedAfter: true},
		},
		{
			name:      "anchor exactly at half-width boundary from start",
			lineCount: 1000, anchorLine: 64, maxLines: 128,
			want: Window{Start: 1, End: 128, TruncatedAfter: true},
		},
		{
			name:      "first interior anchor",
			lineCount: 1000, anchorLine: 65, maxLines: 128,
			want: Window{Start: 1, End: 129, TruncatedBefore: true, TruncatedAfter: true},
		},
		{
			name:      "anchor exactly at half-width boundary from end",
			lineCount: 1000, anchorLine: 937, maxLines: 128,
			want: Window{Start: 872, End: 1000, TruncatedBefore: true},
		},
		{
			name:      "anchor on first line",
			lineCount: 50, anchorLine: 1, maxLines: 10,
			want: Window{Start: 1, End: 10, TruncatedAfter: true},
		},
		{
			name:      "anchor on last line",
			lineCount: 50, anchorLine: 50, maxLines: 10,
			want: Window{Start: 40, End: 50, TruncatedBefore: true},
		},
		{
			name:      "document shorter than max lines clamps to line count",
			lineCount: 5, anchorLine: 2, maxLines: 128,
			want: Window{Start: 1, End: 5, TruncatedAfter: true},
		},
		{
			name:      "single line document",
			lineCount: 1, anchorLine: 1, maxLines: 4,
			want: Window{Start: 1, End: 1, TruncatedAfter: true},
		},
		{
			name:      "end clamp low end at 1",
			lineCount: 10, anchorLine: 9, maxLines: 12,
			want: Window{Start: 1, End: 10, TruncatedBefore: true},
		},
		{
			name:      "odd max lines floors half-width on both sides",
			lineCount: 100, anchorLine: 50, maxLines: 5,
			want: Window{Start: 48, End: 52, TruncatedBefore: true, TruncatedAfter: true},
		},
		{
			name:      "odd max lines near start",
			lineCount: 100, anchorLine: 2, maxLines: 7,
			want: Window{Start: 1, End: 7, TruncatedAfter: true},
		},
		{
			name:      "max lines of one pins the window to the anchor",
			lineCount: 100, anchorLine: 50, maxLines: 1,
			want: Window{Start: 50, End: 50, TruncatedBefore: true, TruncatedAfter: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Select(tt.lineCount, tt.anchorLine, tt.maxLines)
			if err != nil {
				t.Fatalf("Select(%d, %d, %d) error: %v", tt.lineCount, tt.anchorLine, tt.maxLines, err)
			}
			if got != tt.want {
				t.Errorf("Select(%d, %d, %d) = %+v, expected %+v",
					tt.lineCount, tt.anchorLine, tt.maxLines, got, tt.want)
			}

			// Output guarantees hold for every accepted input.
			if got.End-got.Start > tt.maxLines {
				t.Errorf("window span %d exceeds max lines %d", got.End-got.Start, tt.maxLines)
			}
			if got.Start < 1 || got.End > tt.lineCount {
				t.Errorf("window [%d, %d] outside document [1, %d]", got.Start, got.End, tt.lineCount)
			}
			if !got.Contains(tt.anchorLine) {
				t.Errorf("window [%d, %d] does not contain anchor %d", got.Start, got.End, tt.anchorLine)
			}
		})
	}
}

func TestSelect_InvalidInput(t *testing.T) {
	tests := []struct {
		name       string
		lineCount  int
		anchorLine int
		maxLines   int
	}{
		{name: "zero line count", lineCount: 0, anchorLine: 1, maxLines: 10},
		{name: "negative line count", lineCount: -5, anchorLine: 1, maxLines: 10},
		{name: "zero max lines", lineCount: 100, anchorLine: 50, maxLines: 0},
		{name: "negative max lines", lineCount: 100, anchorLine: 50, maxLines: -1},
		{name: "anchor below range", lineCount: 100, anchorLine: 0, maxLines: 10},
		{name: "anchor above range", lineCount: 100, anchorLine: 101, maxLines: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Select(tt.lineCount, tt.anchorLine, tt.maxLines)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Select(%d, %d, %d) error = %v, expected ErrInvalidInput",
					tt.lineCount, tt.anchorLine, tt.maxLines, err)
			}
		})
	}
}

func TestWindow_Len(t *testing.T) {
	w := Window{Start: 436, End: 564}
	if got := w.Len(); got != 129 {
		t.Errorf("Len() = %d, expected 129", got)
	}
}

func TestWindow_Contains(t *testing.T) {
	w := Window{Start: 10, End: 20}

	for _, line := range []int{10, 15, 20} {
		if !w.Contains(line) {
			t.Errorf("Contains(%d) = false, expected true", line)
		}
	}
	for _, line := range []int{9, 21, 1} {
		if w.Contains(line) {
			t.Errorf("Contains(%d) = true, expected false", line)
		}
	}
}
