package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var (
	ErrReadConfig    = errors.New("config: failed to read config file")
	ErrStorageNotSet = errors.New("config: database endpoint is unset or still a placeholder")
)

// Config is the full service configuration, loaded from config.toml with
// selected overrides from the environment (.env is loaded when present).
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Admin         AdminConfig         `toml:"admin"`
	Sessions      SessionsConfig      `toml:"booking_sessions"`
	Notifications NotificationsConfig `toml:"notifications"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN builds the lib/pq connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AdminConfig carries the administrative credentials and the token expected
// by the admin middleware. These are deployment secrets, not user accounts.
type AdminConfig struct {
	Username string `toml:"username"`
	Password string `toml:"password"`
	Token    string `toml:"token"`
}

type SessionsConfig struct {
	TTLMinutes int `toml:"ttl_minutes"`
}

type NotificationsConfig struct {
	// RequireHTTPS refuses plain-http notification targets. Set it when the
	// service itself is served over TLS (mixed-content policy).
	RequireHTTPS   bool `toml:"require_https"`
	QueueSize      int  `toml:"queue_size"`
	SendTimeout    int  `toml:"send_timeout"`
	WebhookTimeout int  `toml:"webhook_timeout"`
}

// Load reads the toml file, applies environment overrides and validates the
// storage endpoint. A missing or placeholder database host is a fatal setup
// error surfaced immediately.
func Load(path string) (*Config, error) {
	// .env is optional; environment wins over file values either way.
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	if cfg.Database.Host == "" || cfg.Database.Host == "sua-url-do-banco" || cfg.Database.Host == "changeme" {
		return nil, ErrStorageNotSet
	}

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("AGENDA_DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("AGENDA_DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("AGENDA_DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("AGENDA_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("AGENDA_DB_NAME"); v != "" {
		cfg.Database.DBName = v
	}
	if v := os.Getenv("AGENDA_ADMIN_PASSWORD"); v != "" {
		cfg.Admin.Password = v
	}
	if v := os.Getenv("AGENDA_ADMIN_TOKEN"); v != "" {
		cfg.Admin.Token = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "agenda-service"
	}
	if cfg.Sessions.TTLMinutes == 0 {
		cfg.Sessions.TTLMinutes = 30
	}
	if cfg.Notifications.QueueSize == 0 {
		cfg.Notifications.QueueSize = 64
	}
	if cfg.Notifications.SendTimeout == 0 {
		cfg.Notifications.SendTimeout = 10
	}
	if cfg.Notifications.WebhookTimeout == 0 {
		cfg.Notifications.WebhookTimeout = 10
	}
}
