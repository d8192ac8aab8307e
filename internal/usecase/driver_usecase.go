package usecase

import (
	"context"
	"log"
	"romaneio_api/internal/domain/domainerr"
	"romaneio_api/internal/domain/entities"
	"romaneio_api/internal/usecase/interfaces"
	"strings"
	"time"
)

const (
	msgDriverNotFound       = "driver not found"
	msgTaxIDAlreadyInUse    = "tax id already registered"
	msgDriverWithIDNotFound = "driver with id %d not found"
)

//go:generate mockgen -source=driver_usecase.go -destination=../adapter/http/handlers/mocks/mock_driver_usecase.go -package=mocks

// IDriverUseCase exposes driver (motorista) operations.
//
// The CPF is unique among all drivers and cannot be changed after creation.

type IDriverUseCase interface {
	Create(ctx context.Context, in CreateDriverInput) (entities.Driver, error)
	GetByID(ctx context.Context, id int64) (entities.Driver, error)
	List(ctx context.Context) ([]entities.Driver, error)
	Update(ctx context.Context, id int64, u entities.DriverUpdate) (entities.Driver, error)
}

type CreateDriverInput struct {
	Name  string
	CPF   string
	Phone string
}

type DriverUseCase struct {
	repo interfaces.IDriverRepository
}

var _ IDriverUseCase = (*DriverUseCase)(nil)

func NewDriverUseCase(repo interfaces.IDriverRepository) *DriverUseCase {
	return &DriverUseCase{repo: repo}
}

func (u *DriverUseCase) Create(ctx context.Context, in CreateDriverInput) (entities.Driver, error) {
	cpf := strings.TrimSpace(in.CPF)

	existing, err := u.repo.FindByCPF(ctx, cpf)
	if err != nil {
		return entities.Driver{}, err
	}
	if existing.ID != 0 {
		return entities.Driver{}, domainerr.NewConflictError(msgTaxIDAlreadyInUse)
	}

	now := time.Now().UTC()
	created, err := u.repo.Create(ctx, entities.Driver{
		Name:      strings.TrimSpace(in.Name),
		CPF:       cpf,
		Phone:     strings.TrimSpace(in.Phone),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return entities.Driver{}, err
	}
	log.Printf("[driver][usecase] created driver_id=%d", created.ID)
	return created, nil
}

func (u *DriverUseCase) GetByID(ctx context.Context, id int64) (entities.Driver, error) {
	d, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return entities.Driver{}, err
	}
	if d.ID == 0 {
		return entities.Driver{}, domainerr.NewNotFoundError(msgDriverNotFound)
	}
	return d, nil
}

func (u *DriverUseCase) List(ctx context.Context) ([]entities.Driver, error) {
	drivers, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if drivers == nil {
		drivers = []entities.Driver{}
	}
	return drivers, nil
}

// Update applies only the fields present in upd. The update timestamp is
// refreshed by the repository even when no field is provided.
func (u *DriverUseCase) Update(ctx context.Context, id int64, upd entities.DriverUpdate) (entities.Driver, error) {
	if _, err := u.GetByID(ctx, id); err != nil {
		return entities.Driver{}, err
	}

	updated, err := u.repo.Update(ctx, id, upd)
	if err != nil {
		return entities.Driver{}, err
	}
	log.Printf("[driver][usecase] updated driver_id=%d", id)
	return updated, nil
}
