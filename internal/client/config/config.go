// Package config loads the client configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultEnv            = "local"
	defaultServerURL      = "http://localhost:8000"
	defaultLogLevel       = "info"
	defaultConfigDir      = ".passvault"
	defaultTimeoutSeconds = 30
	defaultDebounceMillis = 300
)

type Config struct {
	Env       string
	ServerURL string
	LogLevel  string

	// ConfigDir holds the token, notice and log files. Created 0700 on
	// first load.
	ConfigDir  string
	TokenPath  string
	NoticePath string
	LogPath    string

	// RequestTimeout bounds every outbound API call.
	RequestTimeout time.Duration

	// SearchDebounce is the quiet period after the last keystroke in
	// the vault search box before a fetch is issued.
	SearchDebounce time.Duration
}

// Load reads configuration from the environment. A .env file in the
// working directory (or its parent) is loaded first when present.
func Load() (*Config, error) {
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("loading %s: %w", envPath, err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("SERVER_URL", defaultServerURL)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("REQUEST_TIMEOUT_SECONDS", defaultTimeoutSeconds)
	viper.SetDefault("SEARCH_DEBOUNCE_MS", defaultDebounceMillis)

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		configDir = filepath.Join(homeDir, configDir)
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	cfg := &Config{
		Env:            viper.GetString("APP_ENV"),
		ServerURL:      viper.GetString("SERVER_URL"),
		LogLevel:       viper.GetString("LOG_LEVEL"),
		ConfigDir:      configDir,
		TokenPath:      filepath.Join(configDir, "token"),
		NoticePath:     filepath.Join(configDir, "notice"),
		LogPath:        filepath.Join(configDir, "client.log"),
		RequestTimeout: time.Duration(viper.GetInt("REQUEST_TIMEOUT_SECONDS")) * time.Second,
		SearchDebounce: time.Duration(viper.GetInt("SEARCH_DEBOUNCE_MS")) * time.Millisecond,
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.ServerURL == "" {
		return fmt.Errorf("SERVER_URL must not be empty")
	}
	u, err := url.Parse(c.ServerURL)
	if err != nil {
		return fmt.Errorf("SERVER_URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("SERVER_URL must be an http or https URL, got %q", c.ServerURL)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT_SECONDS must be positive")
	}
	if c.SearchDebounce <= 0 {
		return fmt.Errorf("SEARCH_DEBOUNCE_MS must be positive")
	}
	return nil
}
