// Package persistence opens the storage backend selected by configuration.
package persistence

import (
	"context"
	"fmt"
	"log"

	"romaneio_api/internal/adapter/persistence/memory"
	"romaneio_api/internal/adapter/persistence/repository"
	"romaneio_api/internal/infrastructure/config"
	"romaneio_api/internal/infrastructure/database"
	"romaneio_api/internal/usecase/interfaces"
)

// Repositories groups the gateways handed to the use cases.
type Repositories struct {
	Drivers    interfaces.IDriverRepository
	Manifests  interfaces.IManifestRepository
	Deliveries interfaces.IDeliveryRepository

	close func() error
}

// Close releases the underlying connection, if any.
func (r Repositories) Close() error {
	if r.close == nil {
		return nil
	}
	return r.close()
}

// NewMemoryRepositories returns gateways over a fresh in-process store.
func NewMemoryRepositories() Repositories {
	drivers, manifests, deliveries := memory.NewStore().Repositories()
	return Repositories{Drivers: drivers, Manifests: manifests, Deliveries: deliveries}
}

// Open connects to the configured backend.
func Open(ctx context.Context, cfg config.Config) (Repositories, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		db, err := database.ConnectPostgres(cfg.Postgres)
		if err != nil {
			return Repositories{}, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return Repositories{}, err
		}
		return Repositories{
			Drivers:    repository.NewDriverPostgresRepository(db),
			Manifests:  repository.NewManifestPostgresRepository(db),
			Deliveries: repository.NewDeliveryPostgresRepository(db),
			close:      sqlDB.Close,
		}, nil

	case config.StorageDriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return Repositories{}, err
		}
		drivers, manifests, deliveries := repository.NewDynamoRepositories(ddb, repository.DynamoTablesFromConfig(cfg.DynamoDB))
		return Repositories{Drivers: drivers, Manifests: manifests, Deliveries: deliveries}, nil

	case config.StorageDriverMemory:
		log.Printf("[storage][memory] data will not survive a restart")
		return NewMemoryRepositories(), nil

	default:
		return Repositories{}, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// Migrate creates or updates the schema of the configured backend.
func Migrate(ctx context.Context, cfg config.Config) error {
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		db, err := database.ConnectPostgres(cfg.Postgres)
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}
		if err := repository.AutoMigrate(db); err != nil {
			return err
		}
		log.Printf("[migrate][postgres] schema up to date")
		return nil

	case config.StorageDriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return err
		}
		return repository.EnsureDynamoTables(ctx, ddb, repository.DynamoTablesFromConfig(cfg.DynamoDB))

	case config.StorageDriverMemory:
		log.Printf("[migrate][memory] nothing to migrate")
		return nil

	default:
		return fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
