// Package config loads the service configuration.
//
// Values are resolved in three layers: built-in defaults, an optional YAML
// file, then environment variables (a .env file is honored by the entrypoint).
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverDynamoDB = "dynamodb"
	StorageDriverMemory   = "memory"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	DynamoDB  DynamoDBConfig  `yaml:"dynamodb"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

type ServerConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type StorageConfig struct {
	Driver string `yaml:"driver"`
}

type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
	LogLevel string `yaml:"log_level"`
}

type DynamoDBConfig struct {
	Region          string `yaml:"region"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	Endpoint        string `yaml:"endpoint"`
	DriversTable    string `yaml:"drivers_table"`
	ManifestsTable  string `yaml:"manifests_table"`
	DeliveriesTable string `yaml:"deliveries_table"`
	CountersTable   string `yaml:"counters_table"`
}

// RateLimitConfig disables limiting when RPS <= 0.
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

func Default() Config {
	return Config{
		Server:  ServerConfig{Port: 8080, GinMode: "debug"},
		Storage: StorageConfig{Driver: StorageDriverPostgres},
		Postgres: PostgresConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "postgres",
			Password: "postgres",
			Database: "romaneio",
			SSLMode:  "disable",
			LogLevel: "warn",
		},
		DynamoDB: DynamoDBConfig{
			Region:          "us-east-1",
			AccessKeyID:     "local",
			SecretAccessKey: "local",
			DriversTable:    "drivers",
			ManifestsTable:  "manifests",
			DeliveriesTable: "deliveries",
			CountersTable:   "counters",
		},
		RateLimit: RateLimitConfig{RPS: 20, Burst: 40},
	}
}

// Load builds the configuration. An empty path skips the YAML layer.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDriverPostgres, StorageDriverDynamoDB, StorageDriverMemory:
	default:
		return fmt.Errorf("config: unknown storage driver %q (want postgres, dynamodb or memory)", c.Storage.Driver)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: invalid server port %d", c.Server.Port)
	}
	return nil
}

func applyEnv(c *Config) error {
	setString(&c.Server.GinMode, "GIN_MODE")
	setString(&c.Storage.Driver, "STORAGE_DRIVER")
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))

	setString(&c.Postgres.Host, "DB_HOST")
	setString(&c.Postgres.Port, "DB_PORT")
	setString(&c.Postgres.User, "DB_USER")
	setString(&c.Postgres.Password, "DB_PASS")
	setString(&c.Postgres.Database, "DB_NAME")
	setString(&c.Postgres.SSLMode, "DB_SSLMODE")
	setString(&c.Postgres.LogLevel, "DB_LOG_LEVEL")

	setString(&c.DynamoDB.Region, "AWS_REGION")
	setString(&c.DynamoDB.AccessKeyID, "AWS_ACCESS_KEY_ID")
	setString(&c.DynamoDB.SecretAccessKey, "AWS_SECRET_ACCESS_KEY")
	setString(&c.DynamoDB.Endpoint, "DYNAMODB_ENDPOINT")
	setString(&c.DynamoDB.DriversTable, "DRIVERS_TABLE")
	setString(&c.DynamoDB.ManifestsTable, "MANIFESTS_TABLE")
	setString(&c.DynamoDB.DeliveriesTable, "DELIVERIES_TABLE")
	setString(&c.DynamoDB.CountersTable, "COUNTERS_TABLE")

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: PORT: %w", err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: RATE_LIMIT_RPS: %w", err)
		}
		c.RateLimit.RPS = rps
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: RATE_LIMIT_BURST: %w", err)
		}
		c.RateLimit.Burst = burst
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
