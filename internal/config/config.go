package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Media    MediaConfig    `yaml:"media"`
	Import   ImportConfig   `yaml:"import"`
	Export   ExportConfig   `yaml:"export"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"    env:"DATABASE_CONNECT_TIMEOUT"    env-default:"5s"`
}

// MediaConfig holds the media directory and image export settings.
// UpgradeOnStart makes app.New run the legacy media upgrade; cmd/migrate
// always runs it. Its default must stay false: env-default is applied to any
// zero value, so a default of true would override an explicit false in YAML.
type MediaConfig struct {
	Dir            string `yaml:"dir"              env:"MEDIA_DIR"              env-default:"./media"`
	JPEGQuality    int    `yaml:"jpeg_quality"     env:"MEDIA_JPEG_QUALITY"     env-default:"80"`
	UpgradeOnStart bool   `yaml:"upgrade_on_start" env:"MEDIA_UPGRADE_ON_START" env-default:"false"`
	UpgradeBatch   int    `yaml:"upgrade_batch"    env:"MEDIA_UPGRADE_BATCH"    env-default:"100"`
}

// ImportConfig holds deck import limits.
type ImportConfig struct {
	MaxFileBytes int64 `yaml:"max_file_bytes" env:"IMPORT_MAX_FILE_BYTES" env-default:"104857600"`
}

// ExportConfig holds deck export settings.
type ExportConfig struct {
	Workers int `yaml:"workers" env:"EXPORT_WORKERS" env-default:"4"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
