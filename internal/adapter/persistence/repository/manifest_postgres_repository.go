package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"romaneio_api/internal/domain/domainerr"
	"romaneio_api/internal/domain/entities"
	"romaneio_api/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ManifestPostgresRepository persists manifests in the romaneios table.
type ManifestPostgresRepository struct {
	db *gorm.DB
}

var _ interfaces.IManifestRepository = (*ManifestPostgresRepository)(nil)

func NewManifestPostgresRepository(db *gorm.DB) *ManifestPostgresRepository {
	return &ManifestPostgresRepository{db: db}
}

func (r *ManifestPostgresRepository) Create(ctx context.Context, m entities.Manifest) (entities.Manifest, error) {
	row := toManifestModel(m)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
		log.Printf("[manifest][postgres] create failed driver_id=%d err=%v", m.DriverID, err)
		return entities.Manifest{}, classifyPgError(err, "", fmt.Sprintf("driver with id %d not found", m.DriverID))
	}
	return fromManifestModel(row, false), nil
}

func (r *ManifestPostgresRepository) FindByID(ctx context.Context, id int64) (entities.Manifest, error) {
	var row ManifestModel
	err := r.db.WithContext(ctx).
		Preload("Deliveries", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Manifest{}, nil
	}
	if err != nil {
		return entities.Manifest{}, err
	}
	return fromManifestModel(row, true), nil
}

func (r *ManifestPostgresRepository) ListAll(ctx context.Context) ([]entities.Manifest, error) {
	var rows []ManifestModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Manifest, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromManifestModel(row, false))
	}
	return out, nil
}

func (r *ManifestPostgresRepository) UpdateStatus(ctx context.Context, id int64, status entities.ManifestStatus) (entities.Manifest, error) {
	res := r.db.WithContext(ctx).Model(&ManifestModel{}).Where("id = ?", id).Updates(map[string]any{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	})
	if res.Error != nil {
		return entities.Manifest{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Manifest{}, domainerr.NewNotFoundError("manifest with id %d not found", id)
	}

	var row ManifestModel
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return entities.Manifest{}, err
	}
	return fromManifestModel(row, false), nil
}

// Delete removes the manifest and its deliveries in one transaction.
func (r *ManifestPostgresRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("romaneio_id = ?", id).Delete(&DeliveryModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ManifestModel{}, id).Error
	})
}
