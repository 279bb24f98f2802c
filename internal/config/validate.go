package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if c.Database.MaxConns < 1 {
		return fmt.Errorf("database.max_conns must be >= 1 (got %d)", c.Database.MaxConns)
	}
	if c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns must be in [0, max_conns] (got %d)", c.Database.MinConns)
	}

	if err := c.Media.validate(); err != nil {
		return fmt.Errorf("media: %w", err)
	}

	if c.Import.MaxFileBytes <= 0 {
		return fmt.Errorf("import.max_file_bytes must be > 0 (got %d)", c.Import.MaxFileBytes)
	}

	if c.Export.Workers < 1 || c.Export.Workers > 64 {
		return fmt.Errorf("export.workers must be in [1, 64] (got %d)", c.Export.Workers)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (m *MediaConfig) validate() error {
	if strings.TrimSpace(m.Dir) == "" {
		return fmt.Errorf("dir is required")
	}
	if m.JPEGQuality < 1 || m.JPEGQuality > 100 {
		return fmt.Errorf("jpeg_quality must be in [1, 100] (got %d)", m.JPEGQuality)
	}
	if m.UpgradeBatch < 1 {
		return fmt.Errorf("upgrade_batch must be >= 1 (got %d)", m.UpgradeBatch)
	}
	return nil
}
