package request

import (
	"strings"

	"romaneio_api/internal/domain/entities"
)

type CreateDriverRequest struct {
	Nome     string `json:"nome" binding:"required,min=3,max=255" example:"Ana Souza"`
	CPF      string `json:"cpf" binding:"required,len=11,numeric" example:"11111111111"`
	Telefone string `json:"telefone" binding:"required,min=10,max=20" example:"11900000000"`
}

// UpdateDriverRequest carries a partial update; absent fields stay untouched.
type UpdateDriverRequest struct {
	Nome     *string `json:"nome,omitempty" binding:"omitempty,min=3,max=255"`
	Telefone *string `json:"telefone,omitempty" binding:"omitempty,min=10,max=20"`
}

func (r UpdateDriverRequest) ToDriverUpdate() entities.DriverUpdate {
	return entities.DriverUpdate{Name: trimmed(r.Nome), Phone: trimmed(r.Telefone)}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
