package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is the YAML file read when CONFIG_PATH is not set.
const DefaultPath = "./config.yaml"

// Load builds the configuration from a YAML file, environment variables and
// env-default tags, in that order of increasing priority: ENV > YAML >
// defaults.
//
// The file is CONFIG_PATH, or DefaultPath when unset. A missing DefaultPath
// is fine and leaves ENV + defaults; a missing CONFIG_PATH is an error.
func Load() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	var cfg Config
	if err := read(path, explicit, &cfg); err != nil {
		return nil, err
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func read(path string, explicit bool, cfg *Config) error {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit || !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("config: file %s: %w", path, err)
	default:
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return fmt.Errorf("config: read env: %w", err)
		}
	}
	return nil
}

// normalize canonicalizes values that several spellings may express.
func (c *Config) normalize() {
	if dir := strings.TrimSpace(c.Media.Dir); dir != "" {
		c.Media.Dir = filepath.Clean(dir)
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
}
