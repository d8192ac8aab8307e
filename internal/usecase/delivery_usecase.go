package usecase

import (
	"context"
	"log"
	"romaneio_api/internal/domain/domainerr"
	"romaneio_api/internal/domain/entities"
	"romaneio_api/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// maxDeliveryValue is the exclusive upper bound of a numeric(12,2) value.
var maxDeliveryValue = decimal.New(1, 10)

const (
	msgDeliveryValueNotPositive = "delivery value must be positive"
	msgDeliveryValuePrecision   = "delivery value must have at most 2 decimal places"
	msgDeliveryValueTooLarge    = "delivery value must be less than 10000000000"
	msgInvalidDeliveryStatus    = "invalid status; allowed values: Pendente, Entregue, Cancelada"
)

//go:generate mockgen -source=delivery_usecase.go -destination=../adapter/http/handlers/mocks/mock_delivery_usecase.go -package=mocks

// IDeliveryUseCase exposes delivery (entrega) operations.
type IDeliveryUseCase interface {
	Create(ctx context.Context, in CreateDeliveryInput) (entities.Delivery, error)
	ListByManifestID(ctx context.Context, manifestID int64) ([]entities.Delivery, error)
	UpdateStatus(ctx context.Context, id int64, status entities.DeliveryStatus) (entities.Delivery, error)
}

type CreateDeliveryInput struct {
	ManifestID int64
	Client     string
	Address    string
	Value      decimal.Decimal
}

type DeliveryUseCase struct {
	repo         interfaces.IDeliveryRepository
	manifestRepo interfaces.IManifestRepository
}

var _ IDeliveryUseCase = (*DeliveryUseCase)(nil)

func NewDeliveryUseCase(repo interfaces.IDeliveryRepository, manifestRepo interfaces.IManifestRepository) *DeliveryUseCase {
	return &DeliveryUseCase{repo: repo, manifestRepo: manifestRepo}
}

func (u *DeliveryUseCase) Create(ctx context.Context, in CreateDeliveryInput) (entities.Delivery, error) {
	manifest, err := u.manifestRepo.FindByID(ctx, in.ManifestID)
	if err != nil {
		return entities.Delivery{}, err
	}
	if manifest.ID == 0 {
		return entities.Delivery{}, domainerr.NewNotFoundError(msgManifestNotFound, in.ManifestID)
	}

	if err := validateDeliveryValue(in.Value); err != nil {
		return entities.Delivery{}, err
	}

	now := time.Now().UTC()
	created, err := u.repo.Create(ctx, entities.Delivery{
		ManifestID: in.ManifestID,
		Client:     strings.TrimSpace(in.Client),
		Address:    strings.TrimSpace(in.Address),
		Value:      in.Value,
		Status:     entities.DeliveryStatusPendente,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return entities.Delivery{}, err
	}
	log.Printf("[delivery][usecase] created delivery_id=%d manifest_id=%d value=%s", created.ID, created.ManifestID, created.Value.String())
	return created, nil
}

// ListByManifestID does not check that the manifest exists: an unknown id
// yields an empty list.
func (u *DeliveryUseCase) ListByManifestID(ctx context.Context, manifestID int64) ([]entities.Delivery, error) {
	deliveries, err := u.repo.ListByManifestID(ctx, manifestID)
	if err != nil {
		return nil, err
	}
	if deliveries == nil {
		deliveries = []entities.Delivery{}
	}
	return deliveries, nil
}

// UpdateStatus accepts any known status from any status. Existence is
// checked by the repository, which returns a NotFoundError.
func (u *DeliveryUseCase) UpdateStatus(ctx context.Context, id int64, status entities.DeliveryStatus) (entities.Delivery, error) {
	if !status.IsValid() {
		return entities.Delivery{}, domainerr.NewValidationError(msgInvalidDeliveryStatus)
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Delivery{}, err
	}
	log.Printf("[delivery][usecase] status updated delivery_id=%d status=%q", id, updated.Status)
	return updated, nil
}

// validateDeliveryValue accepts strictly positive amounts in whole cents
// below maxDeliveryValue, so every backend stores them unchanged.
func validateDeliveryValue(v decimal.Decimal) error {
	switch {
	case !v.IsPositive():
		return domainerr.NewValidationError(msgDeliveryValueNotPositive)
	case !v.Equal(v.Truncate(2)):
		return domainerr.NewValidationError(msgDeliveryValuePrecision)
	case v.GreaterThanOrEqual(maxDeliveryValue):
		return domainerr.NewValidationError(msgDeliveryValueTooLarge)
	}
	return nil
}
