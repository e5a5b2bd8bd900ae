package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/aislechef-backend/internal/platform/envutil"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	s := strings.TrimSpace(node.Value)
	if s == "" || s == "null" || s == "~" {
		d.Duration = 0
		return nil
	}
	if dd, err := time.ParseDuration(s); err == nil {
		d.Duration = dd
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("duration must be a string like \"5s\" or integer seconds: %q", s)
	}
	d.Duration = time.Duration(n) * time.Second
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

func Default() *Config {
	return &Config{
		Env: "development",
		HTTP: HTTPConfig{
			Addr:              ":8080",
			ReadHeaderTimeout: Duration{Duration: 5 * time.Second},
			IdleTimeout:       Duration{Duration: 2 * time.Minute},
			ShutdownTimeout:   Duration{Duration: 15 * time.Second},
			CORSOrigins:       []string{"*"},
		},
		Database: DatabaseConfig{
			Driver:        DriverSQLite,
			DSN:           "aisle_chef.db",
			SlowThreshold: Duration{Duration: time.Second},
		},
		Redis: RedisConfig{
			RouteTTL: Duration{Duration: 10 * time.Minute},
		},
		Telemetry: TelemetryConfig{
			ServiceName:    "aislechef",
			OTelSampleRate: 0.1,
		},
	}
}

// Load reads the YAML config file (AISLECHEF_CONFIG_PATH, else
// ./config/config.yaml when present) over the defaults, applies environment
// overrides and validates the result.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit config path. An empty path falls back to
// the lookup Load performs.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	cfgPath := strings.TrimSpace(path)
	if cfgPath == "" {
		cfgPath = strings.TrimSpace(os.Getenv("AISLECHEF_CONFIG_PATH"))
	}
	if cfgPath == "" {
		if wd, err := os.Getwd(); err == nil {
			p := filepath.Join(wd, "config", "config.yaml")
			if _, err := os.Stat(p); err == nil {
				cfgPath = p
			}
		}
	}
	if cfgPath != "" {
		f, err := os.Open(cfgPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if err := Decode(f, cfg); err != nil {
			return nil, fmt.Errorf("config %s: %w", cfgPath, err)
		}
	}

	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode overlays YAML from r onto cfg.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Env = envutil.String("LOG_MODE", cfg.Env)
	if port := envutil.String("PORT", ""); port != "" {
		cfg.HTTP.Addr = ":" + strings.TrimPrefix(port, ":")
	}
	cfg.HTTP.Addr = envutil.String("HTTP_ADDR", cfg.HTTP.Addr)
	cfg.HTTP.ShutdownTimeout.Duration = envutil.Duration("HTTP_SHUTDOWN_TIMEOUT", cfg.HTTP.ShutdownTimeout.Duration)
	cfg.HTTP.CORSOrigins = envutil.List("CORS_ORIGINS", cfg.HTTP.CORSOrigins)

	cfg.Database.Driver = envutil.String("DB_DRIVER", cfg.Database.Driver)
	cfg.Database.DSN = envutil.String("DB_DSN", cfg.Database.DSN)

	cfg.Redis.Addr = envutil.String("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = envutil.String("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = envutil.Int("REDIS_DB", cfg.Redis.DB)
	cfg.Redis.RouteTTL.Duration = envutil.Duration("ROUTE_CACHE_TTL", cfg.Redis.RouteTTL.Duration)

	cfg.Telemetry.MetricsEnabled = envutil.Bool("METRICS_ENABLED", cfg.Telemetry.MetricsEnabled)
	cfg.Telemetry.OTelEnabled = envutil.Bool("OTEL_ENABLED", cfg.Telemetry.OTelEnabled)
	cfg.Telemetry.OTelEndpoint = envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Telemetry.OTelEndpoint)
	cfg.Telemetry.OTelInsecure = envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", cfg.Telemetry.OTelInsecure)
	if v := envutil.String("OTEL_SAMPLER_RATIO", ""); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Telemetry.OTelSampleRate = f
		}
	}

	cfg.Seed.OnStart = envutil.Bool("SEED_ON_START", cfg.Seed.OnStart)
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Env) == "" {
		c.Env = "development"
	}
	if strings.TrimSpace(c.HTTP.Addr) == "" {
		c.HTTP.Addr = ":8080"
	}
	if c.HTTP.ShutdownTimeout.Duration <= 0 {
		c.HTTP.ShutdownTimeout = Duration{Duration: 15 * time.Second}
	}

	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	switch c.Database.Driver {
	case "sqlite3":
		c.Database.Driver = DriverSQLite
	case "postgresql", "pg":
		c.Database.Driver = DriverPostgres
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("invalid database.driver=%q (want sqlite or postgres)", c.Database.Driver)
	}
	if strings.TrimSpace(c.Database.DSN) == "" {
		return errors.New("database.dsn is required")
	}

	if c.Redis.DB < 0 {
		return fmt.Errorf("invalid redis.db=%d", c.Redis.DB)
	}
	if c.Redis.RouteTTL.Duration < 0 {
		return errors.New("redis.route_ttl must not be negative")
	}

	if strings.TrimSpace(c.Telemetry.ServiceName) == "" {
		c.Telemetry.ServiceName = "aislechef"
	}
	if c.Telemetry.OTelSampleRate < 0 {
		c.Telemetry.OTelSampleRate = 0
	}
	if c.Telemetry.OTelSampleRate > 1 {
		c.Telemetry.OTelSampleRate = 1
	}
	return nil
}
