package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"romaneio_api/internal/domain/domainerr"
	"romaneio_api/internal/domain/entities"
	"romaneio_api/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// DeliveryPostgresRepository persists deliveries in the entregas table.
type DeliveryPostgresRepository struct {
	db *gorm.DB
}

var _ interfaces.IDeliveryRepository = (*DeliveryPostgresRepository)(nil)

func NewDeliveryPostgresRepository(db *gorm.DB) *DeliveryPostgresRepository {
	return &DeliveryPostgresRepository{db: db}
}

func (r *DeliveryPostgresRepository) Create(ctx context.Context, d entities.Delivery) (entities.Delivery, error) {
	row := toDeliveryModel(d)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		log.Printf("[delivery][postgres] create failed romaneio_id=%d err=%v", d.ManifestID, err)
		return entities.Delivery{}, classifyPgError(err, "", fmt.Sprintf("manifest with id %d not found", d.ManifestID))
	}
	return fromDeliveryModel(row), nil
}

func (r *DeliveryPostgresRepository) ListByManifestID(ctx context.Context, manifestID int64) ([]entities.Delivery, error) {
	var rows []DeliveryModel
	if err := r.db.WithContext(ctx).Where("romaneio_id = ?", manifestID).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Delivery, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromDeliveryModel(row))
	}
	return out, nil
}

func (r *DeliveryPostgresRepository) UpdateStatus(ctx context.Context, id int64, status entities.DeliveryStatus) (entities.Delivery, error) {
	res := r.db.WithContext(ctx).Model(&DeliveryModel{}).Where("id = ?", id).Updates(map[string]any{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	})
	if res.Error != nil {
		return entities.Delivery{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Delivery{}, domainerr.NewNotFoundError("delivery with id %d not found", id)
	}

	var row DeliveryModel
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return entities.Delivery{}, err
	}
	return fromDeliveryModel(row), nil
}

func (r *DeliveryPostgresRepository) DeleteByManifestID(ctx context.Context, manifestID int64) error {
	return r.db.WithContext(ctx).Where("romaneio_id = ?", manifestID).Delete(&DeliveryModel{}).Error
}
