package logger

import (
	"os"
	"testing"

	"polar-backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesRotatedFile(t *testing.T) {
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Env = "production"
	cfg.Log.Dir = t.TempDir()

	log, err := New(cfg)
	require.NoError(t, err)
	log.Info("[Test] hello")
	_ = log.Sync()

	entries, err := os.ReadDir(cfg.Log.Dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Name(), "polar-backend-")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Log.Level = "loud"

	_, err := New(cfg)
	assert.Error(t, err)
}
