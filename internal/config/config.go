package config

import "time"

type Duration struct {
	Duration time.Duration
}

type HTTPConfig struct {
	Addr              string   `yaml:"addr"`
	ReadHeaderTimeout Duration `yaml:"read_header_timeout"`
	IdleTimeout       Duration `yaml:"idle_timeout"`
	ShutdownTimeout   Duration `yaml:"shutdown_timeout"`

	// CORSOrigins lists allowed browser origins. "*" allows any origin, which is
	// what the local Flutter web client expects.
	CORSOrigins []string `yaml:"cors_origins"`
}

type DatabaseConfig struct {
	// Driver is "sqlite" or "postgres".
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`

	SlowThreshold Duration `yaml:"slow_threshold"`
}

type RedisConfig struct {
	Addr     string   `yaml:"addr"`
	Password string   `yaml:"password"`
	DB       int      `yaml:"db"`
	RouteTTL Duration `yaml:"route_ttl"`
}

func (c RedisConfig) Enabled() bool { return c.Addr != "" }

type TelemetryConfig struct {
	ServiceName    string  `yaml:"service_name"`
	MetricsEnabled bool    `yaml:"metrics_enabled"`
	OTelEnabled    bool    `yaml:"otel_enabled"`
	OTelEndpoint   string  `yaml:"otel_endpoint"`
	OTelInsecure   bool    `yaml:"otel_insecure"`
	OTelSampleRate float64 `yaml:"otel_sample_ratio"`
}

type SeedConfig struct {
	OnStart bool `yaml:"on_start"`
}

type Config struct {
	Env       string          `yaml:"env"`
	HTTP      HTTPConfig      `yaml:"http"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Seed      SeedConfig      `yaml:"seed"`
}
