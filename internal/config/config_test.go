package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 400*time.Millisecond, cfg.LoginDelay())
	assert.Equal(t, 24, cfg.JWT.ExpirationHours)
	assert.Equal(t, "0 3 * * *", cfg.Archive.Schedule)
	assert.Empty(t, cfg.Redis.Addr)
	assert.False(t, cfg.Archive.Enabled)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("ARCHIVE_BUCKET", "reports")

	var cfg Config
	applyEnv(&cfg)

	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "reports", cfg.Archive.Bucket)
}
