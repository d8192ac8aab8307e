package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"romaneio_api/internal/domain/domainerr"
	"romaneio_api/internal/domain/entities"
	"romaneio_api/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// DriverPostgresRepository persists drivers in the motoristas table.
type DriverPostgresRepository struct {
	db *gorm.DB
}

var _ interfaces.IDriverRepository = (*DriverPostgresRepository)(nil)

func NewDriverPostgresRepository(db *gorm.DB) *DriverPostgresRepository {
	return &DriverPostgresRepository{db: db}
}

func (r *DriverPostgresRepository) Create(ctx context.Context, d entities.Driver) (entities.Driver, error) {
	m := toDriverModel(d)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		log.Printf("[driver][postgres] create failed cpf=%s err=%v", d.CPF, err)
		return entities.Driver{}, classifyPgError(err, "tax id already registered", "")
	}
	return fromDriverModel(m), nil
}

func (r *DriverPostgresRepository) FindByID(ctx context.Context, id int64) (entities.Driver, error) {
	var m DriverModel
	err := r.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Driver{}, nil
	}
	if err != nil {
		return entities.Driver{}, err
	}
	return fromDriverModel(m), nil
}

func (r *DriverPostgresRepository) FindByCPF(ctx context.Context, cpf string) (entities.Driver, error) {
	var m DriverModel
	err := r.db.WithContext(ctx).Where("cpf = ?", cpf).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Driver{}, nil
	}
	if err != nil {
		return entities.Driver{}, err
	}
	return fromDriverModel(m), nil
}

func (r *DriverPostgresRepository) ListAll(ctx context.Context) ([]entities.Driver, error) {
	var rows []DriverModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Driver, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromDriverModel(m))
	}
	return out, nil
}

func (r *DriverPostgresRepository) Update(ctx context.Context, id int64, u entities.DriverUpdate) (entities.Driver, error) {
	updates := map[string]any{"updated_at": time.Now().UTC()}
	if u.Name != nil {
		updates["nome"] = *u.Name
	}
	if u.Phone != nil {
		updates["telefone"] = *u.Phone
	}

	res := r.db.WithContext(ctx).Model(&DriverModel{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return entities.Driver{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Driver{}, domainerr.NewNotFoundError("driver not found")
	}
	return r.FindByID(ctx, id)
}
