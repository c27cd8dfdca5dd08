package window

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when the selection inputs are out of range.
var ErrInvalidInput = errors.New("invalid window input")

// Window is an inclusive, 1-based line range selected around an anchor,
// plus flags recording whether lines exist outside the range on each side.
type Window struct {
	// Start is the first line of the range.
	Start int

	// End is the last line of the range.
	End int

	// TruncatedBefore indicates content was cut above the window.
	TruncatedBefore bool

	// TruncatedAfter indicates content was cut below the window.
	TruncatedAfter bool
}

// Len returns the number of lines covered by the window.
func (w Window) Len() int {
	return w.End - w.Start + 1
}

// Contains reports whether the 1-based line index lies inside the window.
func (w Window) Contains(line int) bool {
	return line >= w.Start && line <= w.End
}

// Select computes the line range to keep around anchorLine in a
// document of lineCount lines, spanning at most maxLines.
//
// The half-width is maxLines/2 with integer division applied to both
// sides, so an odd maxLines selects an interior span one line narrower
// than an even one. Three cases:
//
//   - anchor within half a window of the start: keep [1, maxLines]
//     (clamped to lineCount), trailing truncation only
//   - anchor within half a window of the end: keep
//     [lineCount-maxLines, lineCount] (clamped to 1), leading
//     truncation only
//   - otherwise: keep [anchor-h, anchor+h], truncated on both sides
//
// The returned range always satisfies End-Start <= maxLines, lies
// within [1, lineCount], and contains anchorLine.
//
// Select is a reusable unit, so inputs are validated here even when the
// caller already has: lineCount and maxLines must be positive and
// anchorLine must lie within [1, lineCount], otherwise ErrInvalidInput.
func Select(lineCount, anchorLine, maxLines int) (Window, error) {
	switch {
	case lineCount < 1:
		return Window{}, fmt.Errorf("line count %d: %w", lineCount, ErrInvalidInput)
	case maxLines < 1:
		return Window{}, fmt.Errorf("max lines %d: %w", maxLines, ErrInvalidInput)
	case anchorLine < 1 || anchorLine > lineCount:
		return Window{}, fmt.Errorf("anchor line %d outside [1, %d]: %w", anchorLine, lineCount, ErrInvalidInput)
	}

	h := maxLines / 2

	switch {
	case anchorLine-h < 1:
		end := maxLines
		if end > lineCount {
			end = lineCount
		}
		return Window{Start: 1, End: end, TruncatedAfter: true}, nil

	case anchorLine+h > lineCount:
		start := lineCount - maxLines
		if start < 1 {
			start = 1
		}
		return Window{Start: start, End: lineCount, TruncatedBefore: true}, nil

	default:
		return Window{
			Start:           anchorLine - h,
			End:             anchorLine + h,
			TruncatedBefore: true,
			TruncatedAfter:  true,
		}, nil
	}
}
