package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeliveryStatus represents the state of a single drop-off (entrega).
//
// Unlike ManifestStatus there is no transition restriction: any status may be
// set from any other.
type DeliveryStatus string

const (
	DeliveryStatusPendente  DeliveryStatus = "Pendente"
	DeliveryStatusEntregue  DeliveryStatus = "Entregue"
	DeliveryStatusCancelada DeliveryStatus = "Cancelada"
)

func DeliveryStatuses() []DeliveryStatus {
	return []DeliveryStatus{DeliveryStatusPendente, DeliveryStatusEntregue, DeliveryStatusCancelada}
}

func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryStatusPendente, DeliveryStatusEntregue, DeliveryStatusCancelada:
		return true
	}
	return false
}

// Delivery is one client drop-off attached to exactly one manifest.
//
// Storage model:
//   - PK: id (auto-assigned)
//   - FK: romaneio_id -> manifests.id (cascade on delete)
//
// Monetary representation:
//   - Value is an exact decimal; it never goes through float64.
type Delivery struct {
	ID         int64           `json:"id"`
	ManifestID int64           `json:"romaneio_id"`
	Client     string          `json:"cliente"`
	Address    string          `json:"endereco"`
	Value      decimal.Decimal `json:"valor"`
	Status     DeliveryStatus  `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
