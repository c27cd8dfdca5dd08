// Package window selects a bounded line range around an anchor line.
//
// Select centers a window of at most maxLines lines on an anchor,
// clamping at the document edges and flagging which side of the range
// was cut. The excerpt package uses it to keep a located tag visible in
// a truncated document; it is equally usable standalone for any
// keep-context-around-a-line task.
//
//	win, err := window.Select(lineCount, anchorLine, 128)
//	// win.Start, win.End: inclusive 1-based range containing anchorLine
//	// win.TruncatedBefore, win.TruncatedAfter: which markers to render
package window
