package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	clear1 := setEnv("BJ_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := setEnv("BJ_LOG_LEVEL", "trace")
	defer clear2()

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()
	a.Equal(":6000", cfg.Listen)
	a.Equal(50, cfg.Game.DefaultBid)

	// the environment wins over the file
	a.Equal("trace", cfg.Log.Level)

	// ensure we aren't using a pointer
	cfg.Log.Level = "bad"
	cfg = Instance()
	a.Equal("trace", cfg.Log.Level)
}

func TestDefaults(t *testing.T) {
	clear1 := setEnv("BJ_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear1()

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()
	a.Equal(":5000", cfg.Listen)
	a.Equal(100, cfg.Game.DefaultBid)
	a.False(cfg.Log.DisableAccessLogs)
}

func setEnv(key, val string) func() {
	orig := os.Getenv(key)
	_ = os.Setenv(key, val)
	return func() {
		if orig == "" {
			_ = os.Unsetenv(key)
		} else {
			_ = os.Setenv(key, orig)
		}
	}
}
