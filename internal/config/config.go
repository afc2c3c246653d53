package config

import (
	"os"

	"blackjack-server/internal/util"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the blackjack server
type Config struct {
	loaded bool
	Listen string `yaml:"listen" envconfig:"listen"`
	Log    struct {
		Level             string `yaml:"level" envconfig:"log_level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	Game struct {
		DefaultBid int `yaml:"defaultBid" envconfig:"default_bid"`
	} `yaml:"game"`
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration.
// The config file is optional; environment variables and defaults still apply.
func Load() error {
	config = Config{}

	configFile := util.Getenv("BJ_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("bj", &config); err != nil {
		return err
	}

	if config.Listen == "" {
		config.Listen = ":5000"
	}

	if config.Game.DefaultBid == 0 {
		config.Game.DefaultBid = 100
	}

	config.loaded = true
	return nil
}
