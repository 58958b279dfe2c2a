package config

import (
	"fmt"
	"strconv"
)

// Environment variables that override the configuration file.
const (
	EnvTabStop   = "KILO_TAB_STOP"
	EnvQuitTimes = "KILO_QUIT_TIMES"
	EnvLogLevel  = "KILO_LOG_LEVEL"
	EnvLogFile   = "KILO_LOG_FILE"
)

// ApplyEnv overrides settings from environment variables, read through
// lookup. Empty values are treated as set.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvTabStop); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &ValidationError{Path: EnvTabStop, Message: "not an integer", Value: v}
		}
		c.Editor.TabStop = n
	}
	if v, ok := lookup(EnvQuitTimes); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &ValidationError{Path: EnvQuitTimes, Message: "not an integer", Value: v}
		}
		c.Editor.QuitTimes = n
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		c.Log.File = v
	}
	return nil
}

// Overrides are command-line settings, applied last. Zero values leave the
// configuration unchanged.
type Overrides struct {
	LogLevel string
	LogFile  string
}

// Apply sets the non-empty overrides and re-validates.
func (c *Config) Apply(o Overrides) error {
	if o.LogLevel != "" {
		c.Log.Level = o.LogLevel
	}
	if o.LogFile != "" {
		c.Log.File = o.LogFile
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("command line: %w", err)
	}
	return nil
}
