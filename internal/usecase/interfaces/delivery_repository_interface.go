package interfaces

import (
	"context"
	"romaneio_api/internal/domain/entities"
)

//go:generate mockgen -source=delivery_repository_interface.go -destination=mocks/mock_delivery_repository.go -package=mock_interfaces

// IDeliveryRepository abstracts persistence for Delivery.
//
// UpdateStatus owns the existence check: it returns *domainerr.NotFoundError
// when no delivery matches the id.

type IDeliveryRepository interface {
	Create(ctx context.Context, d entities.Delivery) (entities.Delivery, error)
	ListByManifestID(ctx context.Context, manifestID int64) ([]entities.Delivery, error)
	UpdateStatus(ctx context.Context, id int64, status entities.DeliveryStatus) (entities.Delivery, error)
	DeleteByManifestID(ctx context.Context, manifestID int64) error
}
