package response

import (
	"time"

	"romaneio_api/internal/domain/entities"
)

type DriverResponse struct {
	ID        int64     `json:"id"`
	Nome      string    `json:"nome"`
	CPF       string    `json:"cpf"`
	Telefone  string    `json:"telefone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromDriver(d entities.Driver) DriverResponse {
	return DriverResponse{
		ID:        d.ID,
		Nome:      d.Name,
		CPF:       d.CPF,
		Telefone:  d.Phone,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func FromDrivers(list []entities.Driver) []DriverResponse {
	out := make([]DriverResponse, 0, len(list))
	for _, d := range list {
		out = append(out, FromDriver(d))
	}
	return out
}
