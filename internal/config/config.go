// Package config loads startup configuration from a YAML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultConfigPath = "config.yaml"

// AppConfig holds runtime startup configuration.
type AppConfig struct {
	Port           int      `yaml:"port"`
	DSN            string   `yaml:"dsn"` // MySQL DSN
	RedisURL       string   `yaml:"redis_url"`
	Env            string   `yaml:"env"` // "development" | "production"
	JWTSecret      string   `yaml:"jwt_secret"`
	FrontendAPIKey string   `yaml:"frontend_api_key"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	Database       Database `yaml:"database"`
}

// Database is the split form of the MySQL connection settings, used when no
// full DSN is given.
type Database struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

func (c *AppConfig) IsDev() bool { return c.Env != "production" }

// Load reads the YAML file at path (missing file is not an error), applies
// environment overrides and defaults, and validates the result.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{}

	if raw, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(cfg)
	applyDefaults(cfg)

	if cfg.DSN == "" {
		return nil, fmt.Errorf("no database configured: set dsn or database.* (or DATABASE_DSN)")
	}
	return cfg, nil
}

func applyEnv(cfg *AppConfig) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.DSN = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.RedisURL = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("FRONTEND_API_KEY"); v != "" {
		cfg.FrontendAPIKey = v
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.Env = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		parts := strings.Split(v, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				origins = append(origins, p)
			}
		}
		cfg.AllowedOrigins = origins
	}
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Port == 0 {
		cfg.Port = 3030
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.RedisURL == "" {
		cfg.RedisURL = "redis://localhost:6379/0"
	}
	if cfg.DSN == "" {
		cfg.DSN = buildDSN(cfg.Database)
	}
}

func buildDSN(db Database) string {
	if db.Name == "" {
		return ""
	}
	host := db.Host
	if host == "" {
		host = "localhost"
	}
	port := db.Port
	if port == 0 {
		port = 3306
	}
	user := db.User
	if user == "" {
		user = "root"
	}
	cred := user
	if db.Password != "" {
		cred += ":" + db.Password
	}
	return fmt.Sprintf("%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cred, host, port, db.Name)
}
