package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/kilo/internal/renderer/highlight"
)

// Defaults.
const (
	DefaultTabStop        = 8
	DefaultQuitTimes      = 3
	DefaultMessageTimeout = 5 * time.Second

	MinTabStop = 1
	MaxTabStop = 16
)

// Config is the complete editor configuration.
type Config struct {
	Editor  EditorConfig      `toml:"editor"`
	Log     LogConfig         `toml:"log"`
	Theme   map[string]string `toml:"theme"`
	Syntax  []SyntaxConfig    `toml:"syntax"`
	Plugins PluginConfig      `toml:"plugins"`

	// Source is the file the configuration was read from, or "" for
	// built-in defaults.
	Source string `toml:"-"`
}

// EditorConfig holds the [editor] section.
type EditorConfig struct {
	TabStop        int      `toml:"tab_stop"`
	QuitTimes      int      `toml:"quit_times"`
	MessageTimeout Duration `toml:"message_timeout"`
	Watch          bool     `toml:"watch"`
}

// LogConfig holds the [log] section.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// PluginConfig holds the [plugins] section.
type PluginConfig struct {
	Dir string `toml:"dir"`
}

// SyntaxConfig is one [[syntax]] entry.
type SyntaxConfig struct {
	FileType    string   `toml:"filetype"`
	FileMatch   []string `toml:"filematch"`
	Keywords    []string `toml:"keywords"`
	LineComment string   `toml:"line_comment"`
	BlockStart  string   `toml:"block_start"`
	BlockEnd    string   `toml:"block_end"`
	Numbers     bool     `toml:"numbers"`
	Strings     bool     `toml:"strings"`
}

// ToSyntax converts the entry into a highlight syntax definition.
func (s SyntaxConfig) ToSyntax() *highlight.Syntax {
	var flags highlight.Flags
	if s.Numbers {
		flags |= highlight.HighlightNumbers
	}
	if s.Strings {
		flags |= highlight.HighlightStrings
	}
	return &highlight.Syntax{
		FileType:    s.FileType,
		FileMatch:   append([]string(nil), s.FileMatch...),
		Keywords:    append([]string(nil), s.Keywords...),
		LineComment: s.LineComment,
		BlockStart:  s.BlockStart,
		BlockEnd:    s.BlockEnd,
		Flags:       flags,
	}
}

// Duration is a time.Duration written as a string such as "5s" or "1m30s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			TabStop:        DefaultTabStop,
			QuitTimes:      DefaultQuitTimes,
			MessageTimeout: Duration{DefaultMessageTimeout},
			Watch:          true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/kilo/config.toml, or the platform
// equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "kilo", "config.toml")
}

// Loader reads configuration files and applies environment overrides.
type Loader struct {
	fs        FileSystem
	lookupEnv func(string) (string, bool)
}

// NewLoader creates a loader on the real file system and environment.
func NewLoader() *Loader {
	return &Loader{fs: OSFS{}, lookupEnv: os.LookupEnv}
}

// NewLoaderWithFS creates a loader with a custom file system and
// environment lookup.
func NewLoaderWithFS(fsys FileSystem, lookupEnv func(string) (string, bool)) *Loader {
	if lookupEnv == nil {
		lookupEnv = func(string) (string, bool) { return "", false }
	}
	return &Loader{fs: fsys, lookupEnv: lookupEnv}
}

// Load reads the configuration at path, then applies environment overrides
// and validates the result. An empty path means DefaultPath, which may be
// absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	return NewLoader().Load(path)
}

// Load reads the configuration at path. See the package-level Load.
func (l *Loader) Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg := Default()
	data, err := l.fs.ReadFile(path)
	switch {
	case err == nil:
		cfg, err = Parse(path, data)
		if err != nil {
			return nil, err
		}
	case errors.Is(err, fs.ErrNotExist):
		if explicit {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
	default:
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := cfg.ApplyEnv(l.lookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes TOML data on top of the defaults. Unknown keys are errors.
// The result is not validated.
func Parse(source string, data []byte) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, newParseError(source, err)
	}
	cfg.Source = source
	return cfg, nil
}

func newParseError(source string, err error) *ParseError {
	pe := &ParseError{Path: source, Message: err.Error(), Err: err}

	var strict *toml.StrictMissingError
	if errors.As(err, &strict) {
		pe.Message = "unknown key"
		if len(strict.Errors) > 0 {
			first := strict.Errors[0]
			pe.Line, pe.Column = first.Position()
			pe.Message = "unknown key " + strings.Join(first.Key(), ".")
		}
		return pe
	}

	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		pe.Line, pe.Column = derr.Position()
		pe.Message = derr.Error()
	}
	return pe
}

// logLevels are the accepted [log] level names.
var logLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "warning": true, "error": true,
}

// Validate checks value ranges and cross-field constraints.
func (c *Config) Validate() error {
	if c.Editor.TabStop < MinTabStop || c.Editor.TabStop > MaxTabStop {
		return &ValidationError{
			Path:    "editor.tab_stop",
			Message: fmt.Sprintf("must be between %d and %d", MinTabStop, MaxTabStop),
			Value:   c.Editor.TabStop,
		}
	}
	if c.Editor.QuitTimes < 0 {
		return &ValidationError{Path: "editor.quit_times", Message: "must not be negative", Value: c.Editor.QuitTimes}
	}
	if c.Editor.MessageTimeout.Duration <= 0 {
		return &ValidationError{Path: "editor.message_timeout", Message: "must be positive", Value: c.Editor.MessageTimeout}
	}
	if !logLevels[strings.ToLower(c.Log.Level)] {
		return &ValidationError{Path: "log.level", Message: "must be debug, info, warn or error", Value: c.Log.Level}
	}
	if _, err := c.BuildTheme(); err != nil {
		return &ValidationError{Path: "theme", Message: err.Error(), Value: c.Theme}
	}
	for i, s := range c.Syntax {
		path := fmt.Sprintf("syntax[%d]", i)
		if s.FileType == "" {
			return &ValidationError{Path: path + ".filetype", Message: "is required", Value: s.FileType}
		}
		if len(s.FileMatch) == 0 {
			return &ValidationError{Path: path + ".filematch", Message: "needs at least one pattern", Value: s.FileMatch}
		}
		if (s.BlockStart == "") != (s.BlockEnd == "") {
			return &ValidationError{Path: path, Message: "block_start and block_end must be set together", Value: s.FileType}
		}
	}
	return nil
}

// BuildTheme returns the default theme with the [theme] overrides applied.
func (c *Config) BuildTheme() (*highlight.Theme, error) {
	theme := highlight.DefaultTheme()
	if err := theme.Override(c.Theme); err != nil {
		return nil, err
	}
	return theme, nil
}

// Syntaxes converts every [[syntax]] entry.
func (c *Config) Syntaxes() []*highlight.Syntax {
	out := make([]*highlight.Syntax, 0, len(c.Syntax))
	for _, s := range c.Syntax {
		out = append(out, s.ToSyntax())
	}
	return out
}

// PluginDir returns the plugin directory with a leading ~ expanded, or "".
func (c *Config) PluginDir() string {
	return expandHome(c.Plugins.Dir)
}

// LogFile returns the log file path with a leading ~ expanded, or "".
func (c *Config) LogFile() string {
	return expandHome(c.Log.File)
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
