package repository

import (
	"context"
	"log"

	"romaneio_api/internal/domain/domainerr"
	"romaneio_api/internal/domain/entities"
	"romaneio_api/internal/usecase/interfaces"
)

// DeliveryDynamoRepository persists deliveries in DynamoDB.
type DeliveryDynamoRepository struct {
	s *dynamoStore
}

var _ interfaces.IDeliveryRepository = (*DeliveryDynamoRepository)(nil)

func (r *DeliveryDynamoRepository) Create(ctx context.Context, d entities.Delivery) (entities.Delivery, error) {
	ok, err := r.s.exists(ctx, r.s.tables.Manifests, d.ManifestID)
	if err != nil {
		return entities.Delivery{}, err
	}
	if !ok {
		return entities.Delivery{}, domainerr.NewNotFoundError("manifest with id %d not found", d.ManifestID)
	}

	id, err := r.s.nextID(ctx, r.s.tables.Deliveries)
	if err != nil {
		return entities.Delivery{}, err
	}
	d.ID = id
	if err := r.s.put(ctx, r.s.tables.Deliveries, toDeliveryItem(d)); err != nil {
		log.Printf("[delivery][dynamodb] put failed delivery_id=%d err=%v", id, err)
		return entities.Delivery{}, err
	}
	return d, nil
}

func (r *DeliveryDynamoRepository) ListByManifestID(ctx context.Context, manifestID int64) ([]entities.Delivery, error) {
	items, err := r.s.deliveriesOf(ctx, manifestID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Delivery, 0, len(items))
	for _, it := range items {
		out = append(out, fromDeliveryItem(it))
	}
	return out, nil
}

func (r *DeliveryDynamoRepository) UpdateStatus(ctx context.Context, id int64, status entities.DeliveryStatus) (entities.Delivery, error) {
	var it deliveryItem
	found, err := r.s.update(ctx, r.s.tables.Deliveries, id, statusUpdate(string(status)), &it)
	if err != nil {
		return entities.Delivery{}, err
	}
	if !found {
		return entities.Delivery{}, domainerr.NewNotFoundError("delivery with id %d not found", id)
	}
	return fromDeliveryItem(it), nil
}

func (r *DeliveryDynamoRepository) DeleteByManifestID(ctx context.Context, manifestID int64) error {
	_, err := r.s.deleteDeliveriesOf(ctx, manifestID)
	return err
}
