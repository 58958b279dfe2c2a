// Package key provides key event types and decoding for terminal input.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a keyboard key (special keys or runes)
//   - Modifier: The Control modifier carried by control bytes
//   - Event: A single decoded key press with its timestamp
//   - Decoder: The escape sequence state machine
//   - Reader: Pulls bytes from a Source and returns whole events
//
// # Decoding
//
// Bytes 1 through 26 decode as Ctrl plus a letter, except Tab (9) and
// Enter (13). Byte 127 is Backspace. ESC starts a sequence; see Decoder for
// the recognized forms. A sequence that is malformed or that stops arriving
// decodes as Escape.
package key
