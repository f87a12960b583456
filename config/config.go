// Package config loads server settings from defaults, an optional TOML file
// and the environment, in that order of precedence (last wins).
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Port           string        `toml:"port"`
	AppEnv         string        `toml:"app_env"`
	AllowedOrigins string        `toml:"allowed_origins"`
	AdminToken     string        `toml:"admin_token"`
	Log            LogConfig     `toml:"log"`
	DB             DBConfig      `toml:"db"`
	Auth           AuthConfig    `toml:"auth"`
	Catalog        CatalogConfig `toml:"catalog"`
	R2             R2Config      `toml:"r2"`
}

type LogConfig struct {
	Level slog.Level `toml:"level"`
}

type DBConfig struct {
	URL string `toml:"url"`
}

type AuthConfig struct {
	JWTSecret   string `toml:"jwt_secret"`
	JWTTTLHours int    `toml:"jwt_ttl_hours"`
}

type CatalogConfig struct {
	RefreshMinutes int `toml:"refresh_minutes"`
	CacheSize      int `toml:"cache_size"`
}

type R2Config struct {
	AccountID       string `toml:"account_id"`
	AccessKeyID     string `toml:"access_key_id"`
	AccessKeySecret string `toml:"access_key_secret"`
	Bucket          string `toml:"bucket"`
	CDNBaseURL      string `toml:"cdn_base_url"`
	PresignMinutes  int    `toml:"presign_minutes"`
}

func Default() Config {
	return Config{
		Port:           "3000",
		AppEnv:         "development",
		AllowedOrigins: "*",
		Log:            LogConfig{Level: slog.LevelInfo},
		Auth:           AuthConfig{JWTSecret: "default-secret", JWTTTLHours: 168},
		Catalog:        CatalogConfig{RefreshMinutes: 15, CacheSize: 512},
		R2:             R2Config{PresignMinutes: 15},
	}
}

// Load builds the configuration. path may be empty; a missing .env file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open config: %w", err)
		}
		defer file.Close()
		if err := toml.NewDecoder(file).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, reading environment variables directly")
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Port, "PORT")
	setString(&c.AppEnv, "APP_ENV")
	setString(&c.AllowedOrigins, "ALLOWED_ORIGINS")
	setString(&c.AdminToken, "ADMIN_TOKEN")
	setString(&c.DB.URL, "DATABASE_URL")
	setString(&c.Auth.JWTSecret, "JWT_SECRET")
	setString(&c.R2.AccountID, "R2_ACCOUNT_ID")
	setString(&c.R2.AccessKeyID, "R2_ACCESS_KEY_ID")
	setString(&c.R2.AccessKeySecret, "R2_ACCESS_KEY_SECRET")
	setString(&c.R2.Bucket, "R2_BUCKET_NAME")
	setString(&c.R2.CDNBaseURL, "CDN_BASE_URL")

	if v, ok := lookup("LOG_LEVEL"); ok {
		if err := c.Log.Level.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"JWT_TTL_HOURS", &c.Auth.JWTTTLHours},
		{"CATALOG_REFRESH_MINUTES", &c.Catalog.RefreshMinutes},
		{"CATALOG_CACHE_SIZE", &c.Catalog.CacheSize},
		{"R2_PRESIGN_MINUTES", &c.R2.PresignMinutes},
	}
	for _, it := range ints {
		v, ok := lookup(it.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", it.key, err)
		}
		*it.dst = n
	}
	return nil
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	var errs []error
	if c.DB.URL == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	}
	if c.Auth.JWTTTLHours <= 0 {
		errs = append(errs, errors.New("JWT_TTL_HOURS must be positive"))
	}
	if c.Catalog.RefreshMinutes <= 0 {
		errs = append(errs, errors.New("CATALOG_REFRESH_MINUTES must be positive"))
	}
	return errors.Join(errs...)
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

func (c *Config) JWTTTL() time.Duration {
	return time.Duration(c.Auth.JWTTTLHours) * time.Hour
}

func (c *Config) CatalogRefreshInterval() time.Duration {
	return time.Duration(c.Catalog.RefreshMinutes) * time.Minute
}

// R2Enabled is true when every credential needed to reach the bucket is set.
func (c *Config) R2Enabled() bool {
	r := c.R2
	return r.AccountID != "" && r.AccessKeyID != "" && r.AccessKeySecret != "" && r.Bucket != ""
}

// AllowedOriginList splits ALLOWED_ORIGINS on commas and trims each entry.
func (c *Config) AllowedOriginList() []string {
	var out []string
	for _, origin := range strings.Split(c.AllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			out = append(out, origin)
		}
	}
	return out
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func setString(dst *string, key string) {
	if v, ok := lookup(key); ok {
		*dst = v
	}
}
