// Package buffer provides the editor's row store: the ordered sequence of
// logical lines being edited, together with each line's rendered form and
// syntax classes.
//
// The buffer package provides:
//
//   - Row insertion, deletion, splitting and joining
//   - Byte-level insert and delete within a row
//   - Eager re-rendering (tab expansion) and re-highlighting on every change
//   - Logical/visual column conversion for the cursor
//   - Loading lines from disk and serializing them back
//
// Basic usage:
//
//	lines, err := buffer.ReadFile("main.c")
//	if err != nil {
//	    return err
//	}
//	doc := buffer.New(buffer.WithSyntax(highlight.CSyntax()))
//	doc.Load(lines)
//
//	doc.InsertChar(0, 0, '#')
//	row, col := doc.InsertNewline(0, 1)
//
//	n, err := doc.Save("main.c")
//
// A Document is not safe for concurrent use; the editor drives it from a
// single goroutine.
package buffer
