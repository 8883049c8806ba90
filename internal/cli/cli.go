// Package cli holds the command-line flags shared by the game binaries.
package cli

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tomz197/polyroids/internal/config"
)

// Flags are the persistent flags of every binary.
type Flags struct {
	ConfigPath string
	Seed       int64
	LogLevel   string
	LogFile    string
}

// Bind registers the flags on cmd as persistent flags.
func (f *Flags) Bind(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&f.ConfigPath, "config", "", "Path to a YAML config file")
	cmd.PersistentFlags().Int64Var(&f.Seed, "seed", 0, "RNG seed (0 = random based on time)")
	cmd.PersistentFlags().StringVar(&f.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&f.LogFile, "log-file", "", "Write logs to this file instead of the default output")
}

// Config loads the game configuration.
func (f *Flags) Config() (config.Config, error) {
	return config.Load(f.ConfigPath)
}

// Rand returns a generator seeded from --seed, or from the clock when it is 0.
func (f *Flags) Rand() *rand.Rand {
	seed := f.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Logger builds a logger writing to --log-file if set, otherwise to
// fallback. The returned closer releases the log file.
func (f *Flags) Logger(fallback io.Writer, prefix string) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(f.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	var closer io.Closer = nopCloser{}
	if f.LogFile != "" {
		file, err := os.OpenFile(f.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closer = file, file
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
