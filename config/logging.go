package config

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig describes log file rotation
type LogConfig struct {
	LogFile    string // Log file path
	MaxSize    int    // Max size in megabytes
	MaxBackups int    // Max number of backups
	MaxAge     int    // Max age in days
	Compress   bool   // Compress backups
}

// DefaultLogConfig returns the rotation settings used for --log-file
func DefaultLogConfig(file string) LogConfig {
	return LogConfig{
		LogFile:    file,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}
}

// NewLogger builds the logger for a run. Logs go to stderr and, when
// cfg.LogFile is set, to a rotated file as well. The returned closer
// releases the file and is never nil.
func NewLogger(cfg *Config, stderr io.Writer) (*log.Logger, io.Closer, error) {
	var w io.Writer = stderr
	var closer io.Closer = nopCloser{}

	if cfg.LogFile != "" {
		lc := DefaultLogConfig(cfg.LogFile)
		if err := os.MkdirAll(filepath.Dir(lc.LogFile), 0o755); err != nil {
			return nil, nil, err
		}
		file := &lumberjack.Logger{
			Filename:   lc.LogFile,
			MaxSize:    lc.MaxSize,
			MaxBackups: lc.MaxBackups,
			MaxAge:     lc.MaxAge,
			Compress:   lc.Compress,
		}
		w = io.MultiWriter(stderr, file)
		closer = file
	}

	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "minigrep",
		Level:           cfg.LogLevel,
		ReportTimestamp: cfg.LogFile != "",
		TimeFormat:      time.RFC3339,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
