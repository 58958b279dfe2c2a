package highlight

import "bytes"

// separators are the punctuation bytes that end a word.
const separators = ",.()+-/*=~%<>[];"

// IsSeparator reports whether b ends a word: whitespace, NUL, or one of the
// punctuation bytes in separators.
func IsSeparator(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r', 0:
		return true
	}
	return bytes.IndexByte([]byte(separators), b) >= 0
}

// Classify assigns a Class to every byte of render.
//
// inComment is the carry-out of the previous row: true when that row ended
// inside an unterminated multi-line comment. The returned openComment is the
// carry-out of this row. With a nil syntax every byte is ClassNormal and the
// carry is always false.
func Classify(syn *Syntax, render []byte, inComment bool) (classes []Class, openComment bool) {
	classes = make([]Class, len(render))
	if syn == nil {
		return classes, false
	}

	scs := []byte(syn.LineComment)
	mcs := []byte(syn.BlockStart)
	mce := []byte(syn.BlockEnd)

	prevSep := true
	var inString byte

	i := 0
	for i < len(render) {
		c := render[i]
		prevClass := ClassNormal
		if i > 0 {
			prevClass = classes[i-1]
		}

		if len(scs) > 0 && inString == 0 && !inComment {
			if bytes.HasPrefix(render[i:], scs) {
				fill(classes[i:], ClassComment)
				break
			}
		}

		if len(mcs) > 0 && len(mce) > 0 && inString == 0 {
			if inComment {
				classes[i] = ClassMLComment
				if bytes.HasPrefix(render[i:], mce) {
					fill(classes[i:i+len(mce)], ClassMLComment)
					i += len(mce)
					inComment = false
					prevSep = true
					continue
				}
				i++
				continue
			}
			if bytes.HasPrefix(render[i:], mcs) {
				fill(classes[i:i+len(mcs)], ClassMLComment)
				i += len(mcs)
				inComment = true
				continue
			}
		}

		if syn.Flags.Has(HighlightStrings) {
			if inString != 0 {
				classes[i] = ClassString
				if c == '\\' && i+1 < len(render) {
					classes[i+1] = ClassString
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			}
			if c == '"' || c == '\'' {
				inString = c
				classes[i] = ClassString
				i++
				continue
			}
		}

		if syn.Flags.Has(HighlightNumbers) {
			if (isDigit(c) && (prevSep || prevClass == ClassNumber)) ||
				(c == '.' && prevClass == ClassNumber) {
				classes[i] = ClassNumber
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if n, class, ok := matchKeyword(syn.Keywords, render[i:]); ok {
				fill(classes[i:i+n], class)
				i += n
				prevSep = false
				continue
			}
		}

		prevSep = IsSeparator(c)
		i++
	}

	return classes, inComment
}

// matchKeyword finds the first keyword that starts text and is followed by a
// separator or the end of text.
func matchKeyword(keywords []string, text []byte) (int, Class, bool) {
	for _, kw := range keywords {
		class := ClassKeyword1
		if n := len(kw); n > 0 && kw[n-1] == KeywordMarker {
			kw = kw[:n-1]
			class = ClassKeyword2
		}
		n := len(kw)
		if n == 0 || n > len(text) || string(text[:n]) != kw {
			continue
		}
		if n < len(text) && !IsSeparator(text[n]) {
			continue
		}
		return n, class, true
	}
	return 0, ClassNormal, false
}

func fill(classes []Class, c Class) {
	for i := range classes {
		classes[i] = c
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
