package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"BOARD_COLUMNS", "BOARD_ROWS", "CLEANUP_INTERVAL_MINUTES", "FINISHED_SESSION_TTL_MINUTES", "IDLE_SESSION_TTL_HOURS"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, 7, cfg.BoardColumns)
	assert.Equal(t, 6, cfg.BoardRows)
	assert.Equal(t, time.Hour, cfg.CleanupInterval)
	assert.Equal(t, time.Hour, cfg.FinishedSessionTTL)
	assert.Equal(t, 24*time.Hour, cfg.IdleSessionTTL)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("BOARD_COLUMNS", "9")
	t.Setenv("BOARD_ROWS", "not-a-number")
	t.Setenv("IDLE_SESSION_TTL_HOURS", "2")

	cfg := LoadConfig()
	assert.Equal(t, 9, cfg.BoardColumns)
	assert.Equal(t, 6, cfg.BoardRows)
	assert.Equal(t, 2*time.Hour, cfg.IdleSessionTTL)
}

func TestLoadConfig_FromDotEnv(t *testing.T) {
	t.Setenv("BOARD_COLUMNS", "")
	t.Setenv("BOARD_ROWS", "")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BOARD_COLUMNS=8\nBOARD_ROWS=5\n"), 0o600))

	env, err := godotenv.Read(path)
	require.NoError(t, err)
	for k, v := range env {
		t.Setenv(k, v)
	}

	cfg := LoadConfig()
	assert.Equal(t, 8, cfg.BoardColumns)
	assert.Equal(t, 5, cfg.BoardRows)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("CONNECT4_TEST_KEY", "")
	assert.Equal(t, "fallback", GetEnv("CONNECT4_TEST_KEY", "fallback"))
	t.Setenv("CONNECT4_TEST_KEY", "set")
	assert.Equal(t, "set", GetEnv("CONNECT4_TEST_KEY", "fallback"))
}
