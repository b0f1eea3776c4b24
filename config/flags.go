package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/takaishi/minigrep/editor"
	"github.com/takaishi/minigrep/search"
)

// EnvPrefix prefixes the environment variables that mirror the flags
const EnvPrefix = "MINIGREP"

const (
	ColorAlways = "always"
	ColorNever  = "never"
	ColorAuto   = "auto"
)

// Config holds application configuration
type Config struct {
	Color       string
	Strict      bool
	Interactive bool
	Editor      editor.Editor
	LogLevel    log.Level
	LogFile     string
}

// RegisterFlags adds the configuration flags to fs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("color", ColorAlways, "highlight matches: always, never or auto")
	fs.Bool("strict", false, "abort the search when a file or directory cannot be read")
	fs.BoolP("interactive", "i", false, "browse the results in a terminal UI")
	fs.String("editor", "", "editor used to open a match from the terminal UI (default: auto-detect)")
	fs.String("log-level", "warn", "log level: debug, info, warn or error")
	fs.String("log-file", "", "also write logs to this file, rotated")
}

// Load resolves the configuration from flags, falling back to MINIGREP_* environment variables
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	cfg := &Config{
		Color:       strings.ToLower(v.GetString("color")),
		Strict:      v.GetBool("strict"),
		Interactive: v.GetBool("interactive"),
		Editor:      editor.Editor(v.GetString("editor")),
		LogFile:     v.GetString("log-file"),
	}

	switch cfg.Color {
	case ColorAlways, ColorNever, ColorAuto:
	default:
		return nil, fmt.Errorf("invalid --color value %q (want always, never or auto)", cfg.Color)
	}

	level, err := log.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	cfg.LogLevel = level

	return cfg, nil
}

// Policy returns the error policy the search engine runs with
func (c *Config) Policy() search.ErrorPolicy {
	if c.Strict {
		return search.PolicyStrict
	}
	return search.PolicySkip
}

// Highlighter picks the highlight markers for output written to w
func (c *Config) Highlighter(w io.Writer) search.Highlighter {
	switch c.Color {
	case ColorNever:
		return search.PlainHighlighter
	case ColorAuto:
		if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			return search.DefaultHighlighter
		}
		return search.PlainHighlighter
	default:
		return search.DefaultHighlighter
	}
}

// ResolveEditor returns the configured editor, detecting one when none is set
func (c *Config) ResolveEditor() (editor.Editor, error) {
	if c.Editor != "" {
		return c.Editor, nil
	}
	return editor.Detect()
}
