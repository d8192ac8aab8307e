package response

import (
	"time"

	"romaneio_api/internal/domain/entities"
)

// DeliveryResponse renders valor with two decimal places, as stored.
type DeliveryResponse struct {
	ID         int64     `json:"id"`
	RomaneioID int64     `json:"romaneioId"`
	Cliente    string    `json:"cliente"`
	Endereco   string    `json:"endereco"`
	Valor      string    `json:"valor" example:"150.75"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func FromDelivery(d entities.Delivery) DeliveryResponse {
	return DeliveryResponse{
		ID:         d.ID,
		RomaneioID: d.ManifestID,
		Cliente:    d.Client,
		Endereco:   d.Address,
		Valor:      d.Value.StringFixed(2),
		Status:     string(d.Status),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func FromDeliveries(list []entities.Delivery) []DeliveryResponse {
	out := make([]DeliveryResponse, 0, len(list))
	for _, d := range list {
		out = append(out, FromDelivery(d))
	}
	return out
}
