// Package highlight provides syntax highlighting for the renderer.
//
// Highlighting is byte oriented: every byte of a row's rendered form gets a
// Class. Multi-line comments are the only construct that crosses row
// boundaries; Classify reports whether a comment is still open at the end of
// the row so the caller can seed the next row.
package highlight

// Class is the syntax category assigned to one rendered byte.
type Class uint8

// Syntax classes.
const (
	ClassNormal Class = iota
	ClassComment
	ClassMLComment
	ClassKeyword1
	ClassKeyword2
	ClassString
	ClassNumber
	ClassMatch

	classCount
)

// String returns the name of the class as used in theme configuration.
func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "unknown"
}

// IsComment returns true for single and multi-line comments.
func (c Class) IsComment() bool {
	return c == ClassComment || c == ClassMLComment
}

// IsKeyword returns true for either keyword class.
func (c Class) IsKeyword() bool {
	return c == ClassKeyword1 || c == ClassKeyword2
}

var classNames = [...]string{
	ClassNormal:    "normal",
	ClassComment:   "comment",
	ClassMLComment: "mlcomment",
	ClassKeyword1:  "keyword1",
	ClassKeyword2:  "keyword2",
	ClassString:    "string",
	ClassNumber:    "number",
	ClassMatch:     "match",
}

// ClassFromString converts a class name back to a Class.
func ClassFromString(name string) (Class, bool) {
	for i, n := range classNames {
		if n == name {
			return Class(i), true
		}
	}
	return ClassNormal, false
}
