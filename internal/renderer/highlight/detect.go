package highlight

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// DetectFileType names the language of filename using chroma's lexer
// registry. It is only used for display when no Syntax matches; the
// returned name is lower-cased ("python", "makefile"). Returns "" when
// chroma does not recognize the file.
func DetectFileType(filename string) string {
	if filename == "" {
		return ""
	}
	lexer := lexers.Match(filepath.Base(filename))
	if lexer == nil {
		return ""
	}
	cfg := lexer.Config()
	if cfg == nil {
		return ""
	}
	return strings.ToLower(cfg.Name)
}
