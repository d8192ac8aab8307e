package interfaces

import (
	"context"
	"romaneio_api/internal/domain/entities"
)

//go:generate mockgen -source=driver_repository_interface.go -destination=mocks/mock_driver_repository.go -package=mock_interfaces

// IDriverRepository abstracts persistence for Driver.
//
// Lookups return a zero Driver (ID == 0) and a nil error when nothing matches.
// Update returns *domainerr.NotFoundError when the driver does not exist.

type IDriverRepository interface {
	Create(ctx context.Context, d entities.Driver) (entities.Driver, error)
	FindByID(ctx context.Context, id int64) (entities.Driver, error)
	FindByCPF(ctx context.Context, cpf string) (entities.Driver, error)
	ListAll(ctx context.Context) ([]entities.Driver, error)
	Update(ctx context.Context, id int64, u entities.DriverUpdate) (entities.Driver, error)
}
