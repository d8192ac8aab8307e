package response

import (
	"time"

	"romaneio_api/internal/domain/entities"
)

type ManifestResponse struct {
	ID             int64               `json:"id"`
	NumeroRomaneio string              `json:"numeroRomaneio"`
	DataEmissao    time.Time           `json:"dataEmissao"`
	MotoristaID    int64               `json:"motoristaId"`
	Veiculo        string              `json:"veiculo"`
	Status         string              `json:"status"`
	Entregas       *[]DeliveryResponse `json:"entregas,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

// FromManifest includes entregas only when the manifest carries loaded deliveries.
func FromManifest(m entities.Manifest) ManifestResponse {
	res := ManifestResponse{
		ID:             m.ID,
		NumeroRomaneio: m.Number,
		DataEmissao:    m.IssueDate,
		MotoristaID:    m.DriverID,
		Veiculo:        m.Vehicle,
		Status:         string(m.Status),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.DeliveriesLoaded() {
		entregas := FromDeliveries(m.Deliveries)
		res.Entregas = &entregas
	}
	return res
}

func FromManifests(list []entities.Manifest) []ManifestResponse {
	out := make([]ManifestResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromManifest(m))
	}
	return out
}
