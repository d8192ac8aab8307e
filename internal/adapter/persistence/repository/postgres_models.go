package repository

import (
	"fmt"
	"time"

	"romaneio_api/internal/domain/entities"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DriverModel is the motoristas row.
type DriverModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"column:nome;size:255;not null"`
	CPF       string    `gorm:"column:cpf;size:11;not null;uniqueIndex:idx_motoristas_cpf"`
	Phone     string    `gorm:"column:telefone;size:20;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (DriverModel) TableName() string { return "motoristas" }

// ManifestModel is the romaneios row. Deliveries are removed with their manifest.
type ManifestModel struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	Number     string          `gorm:"column:numero_romaneio;size:50;not null"`
	IssueDate  time.Time       `gorm:"column:data_emissao;type:timestamptz;not null"`
	DriverID   int64           `gorm:"column:motorista_id;not null"`
	Driver     *DriverModel    `gorm:"foreignKey:DriverID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Vehicle    string          `gorm:"column:veiculo;size:20;not null"`
	Status     string          `gorm:"column:status;size:20;not null;default:Aberto"`
	Deliveries []DeliveryModel `gorm:"foreignKey:ManifestID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time       `gorm:"column:created_at;not null"`
	UpdatedAt  time.Time       `gorm:"column:updated_at;not null"`
}

func (ManifestModel) TableName() string { return "romaneios" }

// DeliveryModel is the entregas row.
type DeliveryModel struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	ManifestID int64           `gorm:"column:romaneio_id;not null"`
	Client     string          `gorm:"column:cliente;size:255;not null"`
	Address    string          `gorm:"column:endereco;type:text;not null"`
	Value      decimal.Decimal `gorm:"column:valor;type:numeric(12,2);not null"`
	Status     string          `gorm:"column:status;size:20;not null;default:Pendente"`
	CreatedAt  time.Time       `gorm:"column:created_at;not null"`
	UpdatedAt  time.Time       `gorm:"column:updated_at;not null"`
}

func (DeliveryModel) TableName() string { return "entregas" }

// AutoMigrate creates or updates the relational schema.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&DriverModel{}, &ManifestModel{}, &DeliveryModel{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func createIndexes(db *gorm.DB) error {
	stmts := []string{
		`CREATE INDEX IF NOT EXISTS idx_romaneios_motorista_id ON romaneios(motorista_id)`,
		`CREATE INDEX IF NOT EXISTS idx_romaneios_status ON romaneios(status)`,
		`CREATE INDEX IF NOT EXISTS idx_entregas_romaneio_id ON entregas(romaneio_id)`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

func toDriverModel(d entities.Driver) DriverModel {
	return DriverModel{
		ID:        d.ID,
		Name:      d.Name,
		CPF:       d.CPF,
		Phone:     d.Phone,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func fromDriverModel(m DriverModel) entities.Driver {
	return entities.Driver{
		ID:        m.ID,
		Name:      m.Name,
		CPF:       m.CPF,
		Phone:     m.Phone,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toManifestModel(m entities.Manifest) ManifestModel {
	return ManifestModel{
		ID:        m.ID,
		Number:    m.Number,
		IssueDate: m.IssueDate,
		DriverID:  m.DriverID,
		Vehicle:   m.Vehicle,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// fromManifestModel attaches deliveries only when withDeliveries is set.
func fromManifestModel(m ManifestModel, withDeliveries bool) entities.Manifest {
	out := entities.Manifest{
		ID:        m.ID,
		Number:    m.Number,
		IssueDate: m.IssueDate,
		DriverID:  m.DriverID,
		Vehicle:   m.Vehicle,
		Status:    entities.ManifestStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if withDeliveries {
		out.Deliveries = make([]entities.Delivery, 0, len(m.Deliveries))
		for _, d := range m.Deliveries {
			out.Deliveries = append(out.Deliveries, fromDeliveryModel(d))
		}
	}
	return out
}

func toDeliveryModel(d entities.Delivery) DeliveryModel {
	return DeliveryModel{
		ID:         d.ID,
		ManifestID: d.ManifestID,
		Client:     d.Client,
		Address:    d.Address,
		Value:      d.Value,
		Status:     string(d.Status),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func fromDeliveryModel(m DeliveryModel) entities.Delivery {
	return entities.Delivery{
		ID:         m.ID,
		ManifestID: m.ManifestID,
		Client:     m.Client,
		Address:    m.Address,
		Value:      m.Value,
		Status:     entities.DeliveryStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
