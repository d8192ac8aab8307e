package request

import (
	"errors"
	"strings"
	"time"

	"romaneio_api/internal/domain/entities"
)

var (
	ErrInvalidIssueDate      = errors.New("dataEmissao must be an ISO 8601 date")
	ErrInvalidManifestStatus = errors.New("status must be one of: Aberto, Em trânsito, Finalizado")
)

type CreateManifestRequest struct {
	NumeroRomaneio string `json:"numeroRomaneio" binding:"required,min=1,max=50" example:"ROM-2025-001"`
	DataEmissao    string `json:"dataEmissao" binding:"required" example:"2025-10-16"`
	MotoristaID    int64  `json:"motoristaId" binding:"required,gt=0" example:"1"`
	Veiculo        string `json:"veiculo" binding:"required,min=1,max=20" example:"ABC-1234"`
}

// ResolveIssueDate accepts a full RFC3339 timestamp or a plain YYYY-MM-DD date.
func (r CreateManifestRequest) ResolveIssueDate() (time.Time, error) {
	v := strings.TrimSpace(r.DataEmissao)
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.DateOnly, v); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidIssueDate
}

type UpdateManifestStatusRequest struct {
	Status string `json:"status" binding:"required" example:"Em trânsito"`
}

func (r UpdateManifestStatusRequest) ResolveStatus() (entities.ManifestStatus, error) {
	s := entities.ManifestStatus(strings.TrimSpace(r.Status))
	if !s.IsValid() {
		return "", ErrInvalidManifestStatus
	}
	return s, nil
}
