// Package config provides the configuration system for kilo.
//
// Configuration is read from a single TOML file, then overridden in order:
//
//	┌─────────────────────────────┐
//	│  3. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  2. Environment Variables   │  ← KILO_TAB_STOP, KILO_LOG_LEVEL, ...
//	├─────────────────────────────┤
//	│  1. Config File             │  ← ~/.config/kilo/config.toml
//	├─────────────────────────────┤
//	│  0. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// The file is decoded strictly: a misspelled key is a *ParseError carrying
// its line and column, not a silently ignored setting.
//
// # File Format
//
//	[editor]
//	tab_stop = 8
//	quit_times = 3
//	message_timeout = "5s"
//	watch = true
//
//	[log]
//	level = "info"
//	file = "/tmp/kilo.log"
//
//	[theme]
//	keyword1 = "yellow"
//	comment = "gray"
//
//	[[syntax]]
//	filetype = "lua"
//	filematch = [".lua"]
//	keywords = ["local", "function", "end", "nil|"]
//	line_comment = "--"
//	numbers = true
//	strings = true
//
//	[plugins]
//	dir = "~/.config/kilo/plugins"
//
// # Basic Usage
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	theme, _ := cfg.BuildTheme()
package config
