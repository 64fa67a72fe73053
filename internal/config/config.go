package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Server ServerConfig `json:"server"`

	// Entity store configuration
	MongoDB MongoConfig `json:"mongodb"`

	// Media delegate configuration
	Media MediaConfig `json:"media"`

	// Logging configuration
	Logging LoggingConfig `json:"logging"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Port         string `json:"port"`
	Host         string `json:"host"`
	ReadTimeout  int    `json:"read_timeout"`
	WriteTimeout int    `json:"write_timeout"`
	Environment  string `json:"environment"` // development, staging, production
}

// MongoConfig contains the entity store connection configuration
type MongoConfig struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	Database string `json:"database"`
}

// MediaConfig selects and configures the media delegate.
// Mode "hosted" talks to the external service over HTTP, mode "gridfs"
// stores assets in the entity store's GridFS bucket and serves them back
// from this process.
type MediaConfig struct {
	Mode       string `json:"mode"` // hosted, gridfs
	BaseURL    string `json:"base_url"`
	APIKey     string `json:"api_key"`
	APISecret  string `json:"api_secret"`
	TimeoutSec int    `json:"timeout_sec"`
	StagingDir string `json:"staging_dir"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `json:"level"`  // debug, info, warn, error
	Format string `json:"format"` // json, text
}

func LoadConfig() *Config {
	cfg := &Config{
		Server: ServerConfig{
			Host:         envOr("SERVER_HOST", "0.0.0.0"),
			Port:         envOr("SERVER_PORT", "8000"),
			ReadTimeout:  envIntOr("SERVER_READ_TIMEOUT", 30),
			WriteTimeout: envIntOr("SERVER_WRITE_TIMEOUT", 30),
			Environment:  envOr("ENVIRONMENT", "development"),
		},
		MongoDB: MongoConfig{
			Host:     envOr("MONGO_HOST", "localhost"),
			Port:     envOr("MONGO_PORT", "27017"),
			Username: os.Getenv("MONGO_USERNAME"),
			Password: os.Getenv("MONGO_PASSWORD"),
			Database: envOr("MONGO_DATABASE", "vidtube"),
		},
		Media: MediaConfig{
			Mode:       envOr("MEDIA_MODE", "gridfs"),
			BaseURL:    os.Getenv("MEDIA_BASE_URL"),
			APIKey:     os.Getenv("MEDIA_API_KEY"),
			APISecret:  os.Getenv("MEDIA_API_SECRET"),
			TimeoutSec: envIntOr("MEDIA_TIMEOUT", 60),
			StagingDir: envOr("MEDIA_STAGING_DIR", os.TempDir()),
		},
		Logging: LoggingConfig{
			Level:  envOr("LOG_LEVEL", "info"),
			Format: envOr("LOG_FORMAT", "text"),
		},
	}
	return cfg
}

func (cfg *Config) GetMongoURI() string {
	m := cfg.MongoDB
	if m.Username != "" && m.Password != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s", m.Username, m.Password, m.Host, m.Port)
	}
	return fmt.Sprintf("mongodb://%s:%s", m.Host, m.Port)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
