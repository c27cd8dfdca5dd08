// Package document provides immutable, line-addressable documents.
//
// A Document pairs the raw text of a file with its split lines, using
// 1-based line indexes to match natural line numbering. Documents never
// mutate after construction, so they are safe to share freely.
//
// Load from a string or a file:
//
//	doc := document.New(text)
//	doc, err := document.FromFile("doc/help.txt")
//
// For long-running applications, Watcher reloads a file-backed document
// when it changes on disk:
//
//	w, err := document.NewWatcher("doc/help.txt")
//	go w.Watch(ctx)
//	for doc := range w.Updates() {
//	    // excerpt from the latest doc
//	}
package document
