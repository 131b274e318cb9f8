package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NotEmpty(t, cfg.DataDir)
	require.Equal(t, "ppl.sqlite", cfg.DBFile)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestResolvedPaths(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/pp", DBFile: "db.sqlite", LogFile: "out.log"}
	require.Equal(t, filepath.Join("/tmp/pp", "db.sqlite"), cfg.DBPath())
	require.Equal(t, filepath.Join("/tmp/pp", "out.log"), cfg.LogPath())
}

func TestDataDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	require.Equal(t, filepath.Join("/tmp/xdg-data", "ppl"), dataDir())
}
