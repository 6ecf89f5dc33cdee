// Package config loads the client configuration from an optional YAML file
// and the environment. Environment variables win over the file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"
	_ "time/tzdata"

	"gopkg.in/yaml.v3"
)

const DefaultFile = "spride.yaml"

type Config struct {
	Addr           string        `yaml:"addr"`
	ServerURL      string        `yaml:"server_url"`
	ClientURL      string        `yaml:"client_url"`
	KakaoClientID  string        `yaml:"kakao_client_id"`
	Timezone       string        `yaml:"timezone"`
	PrefsDSN       string        `yaml:"prefs_dsn"`
	LogLevel       string        `yaml:"log_level"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	NoticeInterval time.Duration `yaml:"notice_interval"`
}

func Default() *Config {
	return &Config{
		Addr:           ":5173",
		ServerURL:      "http://localhost:8080",
		ClientURL:      "http://localhost:5173",
		Timezone:       "Asia/Seoul",
		PrefsDSN:       "file:spride.db",
		LogLevel:       "info",
		RequestTimeout: 10 * time.Second,
		NoticeInterval: 5 * time.Second,
	}
}

// Load reads path (missing file is fine) and applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		case !errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}

	cfg.Addr = getenv("SPRIDE_ADDR", cfg.Addr)
	cfg.ServerURL = getenv("SERVER_URL", cfg.ServerURL)
	cfg.ClientURL = getenv("CLIENT_URL", cfg.ClientURL)
	cfg.KakaoClientID = getenv("KAKAO_CLIENT_ID", cfg.KakaoClientID)
	cfg.Timezone = getenv("SPRIDE_TZ", cfg.Timezone)
	cfg.PrefsDSN = getenv("PREFS_DSN", cfg.PrefsDSN)
	cfg.LogLevel = getenv("LOG_LEVEL", cfg.LogLevel)
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("REQUEST_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = d
	}
	if v := os.Getenv("NOTICE_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("NOTICE_INTERVAL: %w", err)
		}
		cfg.NoticeInterval = d
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := parseBase(c.ServerURL); err != nil {
		return fmt.Errorf("server_url: %w", err)
	}
	if _, err := parseBase(c.ClientURL); err != nil {
		return fmt.Errorf("client_url: %w", err)
	}
	if c.PrefsDSN == "" {
		return errors.New("prefs_dsn is required")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	if c.RequestTimeout <= 0 {
		return errors.New("request_timeout must be positive")
	}
	if c.NoticeInterval <= 0 {
		return errors.New("notice_interval must be positive")
	}
	return nil
}

func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func parseBase(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, errors.New("required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	return u, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
