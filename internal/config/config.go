package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

const (
	EnvFile    = ".env"
	ConfigFile = "config.yaml"
	EnvPrefix  = "NTIS_"
)

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

type DatabaseConfig struct {
	// Driver is sqlite or mysql.
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
	// MaxOpenConns of 0 leaves the pool unbounded.
	MaxOpenConns int `yaml:"max_open_conns"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	// SlowQuery is the threshold above which SQL statements are logged at warn.
	SlowQuery time.Duration `yaml:"slow_query"`
}

func Default() Config {
	return Config{
		Database: DatabaseConfig{Driver: "sqlite", DSN: "wtis.db"},
		Log:      LogConfig{Level: "info", Format: "console", SlowQuery: 200 * time.Millisecond},
	}
}

// Load layers defaults, the YAML file, the .env file and NTIS_* environment variables, in that
// order. A missing file is skipped unless it was named explicitly.
func Load(configPath, envPath string) (Config, error) {
	cfg := Default()

	path, explicit := configPath, configPath != ""
	if !explicit {
		path = ConfigFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	envExplicit := envPath != ""
	if !envExplicit {
		envPath = EnvFile
	}
	if err := godotenv.Load(envPath); err != nil && (envExplicit || !errors.Is(err, fs.ErrNotExist)) {
		return Config{}, fmt.Errorf("load %s: %w", envPath, err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(EnvPrefix + key)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	if v, ok := get("DB_DRIVER"); ok {
		c.Database.Driver = v
	}
	if v, ok := get("DB_DSN"); ok {
		c.Database.DSN = v
	}
	if v, ok := get("DB_MAX_OPEN_CONNS"); ok {
		n, err := cast.ToIntE(v)
		if err != nil {
			return fmt.Errorf("%sDB_MAX_OPEN_CONNS: %w", EnvPrefix, err)
		}
		c.Database.MaxOpenConns = n
	}
	if v, ok := get("LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := get("LOG_FORMAT"); ok {
		c.Log.Format = v
	}
	if v, ok := get("LOG_SLOW_QUERY"); ok {
		d, err := cast.ToDurationE(v)
		if err != nil {
			return fmt.Errorf("%sLOG_SLOW_QUERY: %w", EnvPrefix, err)
		}
		c.Log.SlowQuery = d
	}
	return nil
}

func (c Config) Validate() error {
	switch strings.ToLower(c.Database.Driver) {
	case "sqlite", "mysql":
	default:
		return fmt.Errorf("database.driver must be sqlite or mysql, got %q", c.Database.Driver)
	}
	if strings.TrimSpace(c.Database.DSN) == "" {
		return errors.New("database.dsn is required")
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}
	return nil
}
