package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "", cfg.API.Host)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, 5*time.Second, cfg.Poll.Interval)
	assert.Equal(t, 10*time.Minute, cfg.Poll.Timeout)
	assert.False(t, cfg.Global.Verbose)
}

func TestNewConfigReadsEnvironment(t *testing.T) {
	t.Setenv("BOOKALOPE_TOKEN", "from-env")
	t.Setenv("BOOKALOPE_HOST", "https://staging.example.test")
	t.Setenv("BOOKALOPE_POLL_INTERVAL", "1s")
	t.Setenv("BOOKALOPE_VERBOSE", "true")

	cfg := NewConfig()

	assert.Equal(t, "from-env", cfg.API.Token)
	assert.Equal(t, "https://staging.example.test", cfg.API.Host)
	assert.Equal(t, time.Second, cfg.Poll.Interval)
	assert.True(t, cfg.Global.Verbose)
}
