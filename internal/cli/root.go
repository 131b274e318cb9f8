// Package cli wires the command surface: init, tui, add, motd and the
// read-only dumps, all over one shared store bootstrap.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jeanpaul/ppl/internal/config"
	"github.com/jeanpaul/ppl/internal/store"
)

var flagDB string

var rootCmd = &cobra.Command{
	Use:   "ppl",
	Short: "ppl is your local, but everywhere, relationship manager",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "path to the ppl database file")
}

// session is the shared bootstrap result every command runs against.
type session struct {
	cfg *config.Config
	st  *store.Store
	log *zap.Logger
}

func (s *session) close() {
	if s.log != nil {
		s.log.Sync()
	}
	if s.st != nil {
		s.st.Close()
	}
}

// discoverDB resolves the store path using priority: env > flag > config.
func discoverDB(cfg *config.Config) string {
	if envPath := os.Getenv("PPL_DB"); envPath != "" {
		return envPath
	}
	if flagDB != "" {
		return flagDB
	}
	return cfg.DBPath()
}

func openSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	path := discoverDB(cfg)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	log, err := newLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("opening log: %w", err)
	}

	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	return &session{cfg: cfg, st: st, log: log}, nil
}

// newLogger writes structured logs to a file in the data directory so they
// never fight the TUI for the terminal.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.LogLevel {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.EncoderConfig.TimeKey = "timestamp"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.OutputPaths = []string{cfg.LogPath()}
	zc.ErrorOutputPaths = []string{cfg.LogPath()}
	return zc.Build()
}

// requireSelf guards the commands that only make sense after init.
func requireSelf(s *session) (*store.Person, error) {
	self, err := s.st.Self()
	if err != nil {
		return nil, err
	}
	if self == nil {
		return nil, fmt.Errorf("no-one here yet, run `ppl init` first")
	}
	return self, nil
}
