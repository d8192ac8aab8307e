package database

import (
	"context"
	"testing"

	"romaneio_api/internal/infrastructure/config"

	"gorm.io/gorm/logger"
)

func TestPostgresDSN(t *testing.T) {
	dsn := PostgresDSN(config.Default().Postgres)
	want := "host=localhost port=5432 user=postgres password=postgres dbname=romaneio sslmode=disable"
	if dsn != want {
		t.Fatalf("expected %q, got %q", want, dsn)
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]logger.LogLevel{
		"silent": logger.Silent,
		"ERROR":  logger.Error,
		" info ": logger.Info,
		"warn":   logger.Warn,
		"":       logger.Warn,
	}
	for in, want := range cases {
		if got := ParseLogLevel(in); got != want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewDynamoDBConfig(t *testing.T) {
	cfg := config.Default().DynamoDB
	cfg.Region = "sa-east-1"

	awsCfg, err := NewDynamoDBConfig(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if awsCfg.Region != "sa-east-1" {
		t.Fatalf("expected region sa-east-1, got %q", awsCfg.Region)
	}
	creds, err := awsCfg.Credentials.Retrieve(context.Background())
	if err != nil || creds.AccessKeyID != "local" {
		t.Fatalf("unexpected credentials: %+v %v", creds, err)
	}
}
