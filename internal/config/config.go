package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		API
		Poll
		Global
	}

	API struct {
		Token   string
		Host    string
		Timeout time.Duration
	}
	Poll struct {
		Interval time.Duration // Delay between status checks
		Timeout  time.Duration // Overall deadline for a conversion
	}
	Global struct {
		Verbose bool
	}
)

func NewConfig() *Config {
	// A local .env is optional; real environment variables win.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("bookalope")
	v.AutomaticEnv()
	v.SetDefault("token", "")
	v.SetDefault("host", "") // Empty selects the library's default host
	v.SetDefault("http_timeout", "30s")
	v.SetDefault("poll_interval", "5s")
	v.SetDefault("poll_timeout", "10m")
	v.SetDefault("verbose", false)

	return &Config{
		API: API{
			Token:   v.GetString("TOKEN"),
			Host:    v.GetString("HOST"),
			Timeout: v.GetDuration("HTTP_TIMEOUT"),
		},
		Poll: Poll{
			Interval: v.GetDuration("POLL_INTERVAL"),
			Timeout:  v.GetDuration("POLL_TIMEOUT"),
		},
		Global: Global{
			Verbose: v.GetBool("VERBOSE"),
		},
	}
}
