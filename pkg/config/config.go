package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "CATALOG_"

// Config is the full service configuration.
type Config struct {
	Service  ServiceConfig  `koanf:"service"`
	Database DatabaseConfig `koanf:"database"`
	Storage  StorageConfig  `koanf:"storage"`
	NATS     NATSConfig     `koanf:"nats"`
	Encoder  EncoderConfig  `koanf:"encoder"`
	Logger   LoggerConfig   `koanf:"logger"`
}

// ServiceConfig contains service metadata.
type ServiceConfig struct {
	Name        string `koanf:"name"`
	Environment string `koanf:"environment"` // dev, staging, production
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	User            string        `koanf:"user"`
	Password        string        `koanf:"password"`
	Database        string        `koanf:"database"`
	SSLMode         string        `koanf:"ssl_mode"`
	MaxConnections  int           `koanf:"max_connections"`
	MaxConnLifetime time.Duration `koanf:"max_conn_lifetime"`
}

// StorageConfig selects and configures the media storage backend.
type StorageConfig struct {
	Type      string   `koanf:"type"` // "s3" or "local"
	LocalPath string   `koanf:"local_path"`
	S3        S3Config `koanf:"s3"`
}

// S3Config contains S3 media storage settings.
type S3Config struct {
	Bucket string `koanf:"bucket"`
	Region string `koanf:"region"`
	Prefix string `koanf:"prefix"`
}

// NATSConfig contains domain event publishing settings.
type NATSConfig struct {
	URL           string        `koanf:"url"`
	Stream        string        `koanf:"stream"`
	SubjectPrefix string        `koanf:"subject_prefix"`
	MaxReconnect  int           `koanf:"max_reconnect"`
	ReconnectWait time.Duration `koanf:"reconnect_wait"`
}

// EncoderConfig contains the Kafka settings for encoder progress callbacks.
type EncoderConfig struct {
	Brokers []string `koanf:"brokers"`
	GroupID string   `koanf:"group_id"`
	Topic   string   `koanf:"topic"`
}

// LoggerConfig contains logging settings.
type LoggerConfig struct {
	Level       string `koanf:"level"`
	Development bool   `koanf:"development"`
}

// Default returns the development defaults.
func Default() *Config {
	return &Config{
		Service: ServiceConfig{
			Name:        "catalog",
			Environment: "development",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "catalog",
			Password:        "catalog_dev",
			Database:        "catalog_dev",
			SSLMode:         "disable",
			MaxConnections:  25,
			MaxConnLifetime: time.Hour,
		},
		Storage: StorageConfig{
			Type:      "local",
			LocalPath: "/tmp/catalog-media",
		},
		NATS: NATSConfig{
			URL:           "nats://localhost:4222",
			Stream:        "CATALOG_EVENTS",
			SubjectPrefix: "catalog",
			MaxReconnect:  5,
			ReconnectWait: 2 * time.Second,
		},
		Encoder: EncoderConfig{
			Brokers: []string{"localhost:9092"},
			GroupID: "catalog-encoder-callbacks",
			Topic:   "video.encoded",
		},
		Logger: LoggerConfig{
			Level:       "info",
			Development: true,
		},
	}
}

// Load reads configuration from defaults, an optional YAML file and the
// CATALOG_* environment, in that precedence order.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	// CATALOG_DATABASE_HOST -> database.host
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	if c.Service.Name == "" {
		return fmt.Errorf("service name is required")
	}
	if c.Database.Host == "" || c.Database.Database == "" {
		return fmt.Errorf("database host and name are required")
	}
	switch c.Storage.Type {
	case "local":
		if c.Storage.LocalPath == "" {
			return fmt.Errorf("storage local_path is required for local storage")
		}
	case "s3":
		if c.Storage.S3.Bucket == "" {
			return fmt.Errorf("storage s3 bucket is required for s3 storage")
		}
	default:
		return fmt.Errorf("unknown storage type %q", c.Storage.Type)
	}
	if len(c.Encoder.Brokers) == 0 {
		return fmt.Errorf("encoder brokers are required")
	}
	return nil
}

// IsProduction reports whether the service runs in production.
func (c *Config) IsProduction() bool {
	return c.Service.Environment == "production" || c.Service.Environment == "prod"
}
