package interfaces

import (
	"context"
	"romaneio_api/internal/domain/entities"
)

//go:generate mockgen -source=manifest_repository_interface.go -destination=mocks/mock_manifest_repository.go -package=mock_interfaces

// IManifestRepository abstracts persistence for Manifest.
//
// The manifest service must be able to:
//   - load one manifest together with all of its deliveries (FindByID)
//   - list manifests without their deliveries (ListAll)
//   - delete a manifest, cascading to its deliveries (Delete)

type IManifestRepository interface {
	Create(ctx context.Context, manifest entities.Manifest) (entities.Manifest, error)
	FindByID(ctx context.Context, id int64) (entities.Manifest, error)
	ListAll(ctx context.Context) ([]entities.Manifest, error)
	UpdateStatus(ctx context.Context, id int64, status entities.ManifestStatus) (entities.Manifest, error)
	Delete(ctx context.Context, id int64) error
}
