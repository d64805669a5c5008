// Package logging builds the zap logger every casetracker command writes to.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the log destination and verbosity.
type Options struct {
	Level string
	// File receives the logs. Empty means stderr.
	File string
}

// DefaultTUIFile is where the interactive board logs when no file is
// configured, so log lines never overwrite the terminal UI.
func DefaultTUIFile() string {
	return filepath.Join(os.TempDir(), "casetracker.log")
}

// New builds a JSON logger tagged with a fresh session id.
func New(opts Options) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	out := "stderr"
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
		out = opts.File
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.OutputPaths = []string{out}
	config.ErrorOutputPaths = []string{out}
	config.Sampling = nil

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger.With(zap.String("session", uuid.NewString())), nil
}
