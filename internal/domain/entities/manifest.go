package entities

import "time"

// ManifestStatus represents the lifecycle of a manifest (romaneio).
//
// Lifecycle:
//
//	Aberto ----> Em trânsito ----> Finalizado
//	   \_________________________/
//
// Finalizado is terminal.
type ManifestStatus string

const (
	ManifestStatusAberto     ManifestStatus = "Aberto"
	ManifestStatusEmTransito ManifestStatus = "Em trânsito"
	ManifestStatusFinalizado ManifestStatus = "Finalizado"
)

var manifestTransitions = map[ManifestStatus][]ManifestStatus{
	ManifestStatusAberto:     {ManifestStatusEmTransito, ManifestStatusFinalizado},
	ManifestStatusEmTransito: {ManifestStatusFinalizado},
	ManifestStatusFinalizado: {},
}

// ManifestStatuses lists every known status in lifecycle order.
func ManifestStatuses() []ManifestStatus {
	return []ManifestStatus{ManifestStatusAberto, ManifestStatusEmTransito, ManifestStatusFinalizado}
}

func (s ManifestStatus) IsValid() bool {
	_, ok := manifestTransitions[s]
	return ok
}

// CanTransitionTo reports whether the transition table allows moving from s
// to next. Self-transitions are never allowed.
func (s ManifestStatus) CanTransitionTo(next ManifestStatus) bool {
	for _, allowed := range manifestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Manifest is a delivery run grouping deliveries under one driver and vehicle.
//
// Storage model:
//   - PK: id (auto-assigned)
//   - FK: motorista_id -> drivers.id
//
// Deliveries is nil when the manifest was loaded in bulk and a (possibly
// empty) slice when it was loaded by id.
type Manifest struct {
	ID         int64          `json:"id"`
	Number     string         `json:"numero_romaneio"`
	IssueDate  time.Time      `json:"data_emissao"`
	DriverID   int64          `json:"motorista_id"`
	Vehicle    string         `json:"veiculo"`
	Status     ManifestStatus `json:"status"`
	Deliveries []Delivery     `json:"entregas,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// DeliveriesLoaded reports whether Deliveries reflects the stored deliveries.
func (m Manifest) DeliveriesLoaded() bool {
	return m.Deliveries != nil
}
