package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"db"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig contains the HTTP server settings
type ServerConfig struct {
	Port          int      `mapstructure:"port" validate:"gt=0,lt=65536"`
	GinMode       string   `mapstructure:"gin_mode" validate:"oneof=debug release test"`
	ClientOrigins []string `mapstructure:"client_origin"`
}

// DatabaseConfig contains the store settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver" validate:"oneof=postgres mysql sqlite"`
	URL             string        `mapstructure:"url"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port" validate:"gte=0,lt=65536"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"sslmode" validate:"oneof=disable allow prefer require verify-ca verify-full"`
	SQLitePath      string        `mapstructure:"sqlite_path"`
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" validate:"gte=0"`
}

// LogConfig contains the logging settings
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json text"`
	File   string `mapstructure:"file"`
}

// envBindings maps config keys onto the environment variables of the deployment
var envBindings = map[string]string{
	"server.port":          "PORT",
	"server.gin_mode":      "GIN_MODE",
	"server.client_origin": "CLIENT_ORIGIN",
	"db.driver":            "DB_DRIVER",
	"db.url":               "DATABASE_URL",
	"db.host":              "DB_HOST",
	"db.port":              "DB_PORT",
	"db.user":              "DB_USER",
	"db.password":          "DB_PASSWORD",
	"db.name":              "DB_NAME",
	"db.sslmode":           "DB_SSLMODE",
	"db.sqlite_path":       "SQLITE_PATH",
	"db.max_open_conns":    "DB_MAX_OPEN_CONNS",
	"db.max_idle_conns":    "DB_MAX_IDLE_CONNS",
	"db.conn_max_lifetime": "DB_CONN_MAX_LIFETIME",
	"log.level":            "LOG_LEVEL",
	"log.format":           "LOG_FORMAT",
	"log.file":             "LOG_FILE",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 4000)
	v.SetDefault("server.gin_mode", "debug")
	v.SetDefault("server.client_origin", []string{})
	v.SetDefault("db.driver", DriverPostgres)
	v.SetDefault("db.url", "")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 0)
	v.SetDefault("db.user", "taskuser")
	v.SetDefault("db.password", "taskpassword")
	v.SetDefault("db.name", "task_tracker")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.sqlite_path", "task-tracker.db")
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", time.Hour)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "")
}

// Load reads defaults, then the optional config file at path, then the
// environment. Environment variables win over the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Server.ClientOrigins = splitOrigins(cfg.Server.ClientOrigins)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// splitOrigins normalizes CLIENT_ORIGIN, which may arrive as one
// comma-separated value.
func splitOrigins(raw []string) []string {
	origins := make([]string, 0, len(raw))
	for _, entry := range raw {
		for _, origin := range strings.Split(entry, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
	}
	return origins
}

// DSN returns the connection string for the configured driver. DATABASE_URL
// overrides the individual parts.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}

	switch d.Driver {
	case DriverMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			d.User,
			d.Password,
			d.Host,
			d.portOr(3306),
			d.Name,
		)
	case DriverSQLite:
		return d.SQLitePath
	default:
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=UTC",
			d.Host,
			d.User,
			d.Password,
			d.Name,
			d.portOr(5432),
			d.SSLMode,
		)
	}
}

func (d DatabaseConfig) portOr(fallback int) int {
	if d.Port == 0 {
		return fallback
	}
	return d.Port
}

// Addr returns the listen address of the HTTP server
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}
