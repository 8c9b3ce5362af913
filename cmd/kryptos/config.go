package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
)

const defaultConfigPath = "kryptos.toml"

// Config carries tool-wide defaults. Command-line flags override any
// value set here.
type Config struct {
	// Mode is the default AES mode of operation.
	Mode string `toml:"mode"`
	// Workers is the default worker count for the parallel modes.
	// ECB and CTR fan out across workers when this is greater than 1;
	// CBC and OFB are chained and always run sequentially.
	Workers int `toml:"workers"`
	// LogLevel is the default logrus level.
	LogLevel string `toml:"log_level"`
}

func defaultConfig() *Config {
	return &Config{
		Mode:     "ecb",
		Workers:  1,
		LogLevel: "info",
	}
}

// loadConfig reads the TOML config file. A missing file at the default
// path just yields the defaults; a missing file the user asked for
// explicitly is an error.
func loadConfig(fs afero.Fs, path string, explicit bool) (*Config, error) {
	cfg := defaultConfig()

	content, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("cannot read config %s: %v", path, err)
	}
	if err := toml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("cannot parse config %s: %v", path, err)
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("config %s: workers must be at least 1, got %d", path, cfg.Workers)
	}
	return cfg, nil
}
