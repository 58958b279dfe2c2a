// Package renderer provides the display layer for the kilo editor.
//
// The renderer is responsible for:
//   - Composing one VT100 byte stream per frame
//   - Slicing document rows to the viewport
//   - Coloring rendered bytes by syntax class
//   - Drawing the status bar and the message line
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│          Renderer (Compositor)          │
//	├─────────────────────────────────────────┤
//	│ Viewport │ Highlight Theme │ StatusLine │
//	├─────────────────────────────────────────┤
//	│           Backend Abstraction           │
//	├─────────────────────────────────────────┤
//	│  Terminal (tcell Tty) │ NullBackend     │
//	└─────────────────────────────────────────┘
//
// Every frame repaints the whole screen: hide the cursor, clear, home, draw
// each text row followed by an erase-to-end-of-line, then the inverted
// status bar, the message line, the cursor position, and show the cursor.
// The frame reaches the terminal in a single Write.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, renderer.DefaultOptions())
//	err := r.Render(renderer.Frame{Rows: doc, View: view, Status: status})
package renderer
