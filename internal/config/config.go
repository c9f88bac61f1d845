package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	Shiprocket ShiprocketConfig
	CORS       CORSConfig
	Admin      AdminConfig
	Log        LogConfig
}

// AppConfig holds server settings.
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// DatabaseConfig holds Postgres connection settings.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN builds the Postgres connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// JWTConfig holds token settings.
type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

func (c JWTConfig) Expiry() time.Duration {
	return time.Duration(c.ExpiryHours) * time.Hour
}

// ShiprocketConfig holds the external platform credentials.
type ShiprocketConfig struct {
	BaseURL  string
	Email    string
	Password string
}

// CORSConfig holds the origin allowlist for the dashboard frontend.
type CORSConfig struct {
	AllowedOrigins []string
}

// AdminConfig holds the default admin seeded on an empty user table.
type AdminConfig struct {
	Email    string
	Password string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// Load reads configuration from environment variables with sane defaults for
// local development.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.name", "warehouse-fulfillment-service")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "5000")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "fulfillment")
	v.SetDefault("database.sslmode", "disable")

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiryhours", 10)

	v.SetDefault("shiprocket.baseurl", "https://apiv2.shiprocket.in")
	v.SetDefault("shiprocket.email", "")
	v.SetDefault("shiprocket.password", "")

	v.SetDefault("cors.allowedorigins", "http://localhost:3000")

	v.SetDefault("admin.email", "admin@example.com")
	v.SetDefault("admin.password", "admin123")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("database.host"),
			Port:     v.GetInt("database.port"),
			User:     v.GetString("database.user"),
			Password: v.GetString("database.password"),
			DBName:   v.GetString("database.dbname"),
			SSLMode:  v.GetString("database.sslmode"),
		},
		JWT: JWTConfig{
			Secret:      v.GetString("jwt.secret"),
			ExpiryHours: v.GetInt("jwt.expiryhours"),
		},
		Shiprocket: ShiprocketConfig{
			BaseURL:  v.GetString("shiprocket.baseurl"),
			Email:    v.GetString("shiprocket.email"),
			Password: v.GetString("shiprocket.password"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitOrigins(v.GetString("cors.allowedorigins")),
		},
		Admin: AdminConfig{
			Email:    v.GetString("admin.email"),
			Password: v.GetString("admin.password"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return cfg, nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
