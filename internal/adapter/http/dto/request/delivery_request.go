package request

import (
	"strings"

	"romaneio_api/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// CreateDeliveryRequest accepts valor either as a JSON number or a quoted decimal.
type CreateDeliveryRequest struct {
	RomaneioID int64           `json:"romaneioId" binding:"required,gt=0" example:"1"`
	Cliente    string          `json:"cliente" binding:"required,min=1,max=255" example:"Mercado Central"`
	Endereco   string          `json:"endereco" binding:"required" example:"Rua das Flores, 100"`
	Valor      decimal.Decimal `json:"valor" swaggertype:"number" example:"150.75"`
}

// UpdateDeliveryStatusRequest is forwarded as-is; the use case rejects unknown values.
type UpdateDeliveryStatusRequest struct {
	Status string `json:"status" binding:"required" example:"Entregue"`
}

func (r UpdateDeliveryStatusRequest) ResolveStatus() entities.DeliveryStatus {
	return entities.DeliveryStatus(strings.TrimSpace(r.Status))
}
