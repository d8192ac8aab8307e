package usecase

import (
	"context"
	"log"
	"romaneio_api/internal/domain/domainerr"
	"romaneio_api/internal/domain/entities"
	"romaneio_api/internal/usecase/interfaces"
	"strings"
	"time"
)

const (
	msgManifestNotFound        = "manifest with id %d not found"
	msgInvalidStatusTransition = "invalid status transition: cannot move from '%s' to '%s'"
)

//go:generate mockgen -source=manifest_usecase.go -destination=../adapter/http/handlers/mocks/mock_manifest_usecase.go -package=mocks

// IManifestUseCase exposes manifest (romaneio) operations.
//
// Status lifecycle (see entities.ManifestStatus):
//   - created as Aberto
//   - Aberto -> Em trânsito | Finalizado
//   - Em trânsito -> Finalizado
//   - Finalizado is terminal

type IManifestUseCase interface {
	Create(ctx context.Context, in CreateManifestInput) (entities.Manifest, error)
	GetByID(ctx context.Context, id int64) (entities.Manifest, error)
	List(ctx context.Context) ([]entities.Manifest, error)
	UpdateStatus(ctx context.Context, id int64, status entities.ManifestStatus) (entities.Manifest, error)
	Delete(ctx context.Context, id int64) error
}

type CreateManifestInput struct {
	Number    string
	IssueDate time.Time
	DriverID  int64
	Vehicle   string
}

type ManifestUseCase struct {
	repo       interfaces.IManifestRepository
	driverRepo interfaces.IDriverRepository
}

var _ IManifestUseCase = (*ManifestUseCase)(nil)

func NewManifestUseCase(repo interfaces.IManifestRepository, driverRepo interfaces.IDriverRepository) *ManifestUseCase {
	return &ManifestUseCase{repo: repo, driverRepo: driverRepo}
}

func (u *ManifestUseCase) Create(ctx context.Context, in CreateManifestInput) (entities.Manifest, error) {
	driver, err := u.driverRepo.FindByID(ctx, in.DriverID)
	if err != nil {
		return entities.Manifest{}, err
	}
	if driver.ID == 0 {
		return entities.Manifest{}, domainerr.NewNotFoundError(msgDriverWithIDNotFound, in.DriverID)
	}

	now := time.Now().UTC()
	created, err := u.repo.Create(ctx, entities.Manifest{
		Number:    strings.TrimSpace(in.Number),
		IssueDate: in.IssueDate,
		DriverID:  in.DriverID,
		Vehicle:   strings.TrimSpace(in.Vehicle),
		Status:    entities.ManifestStatusAberto,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return entities.Manifest{}, err
	}
	log.Printf("[manifest][usecase] created manifest_id=%d driver_id=%d", created.ID, created.DriverID)
	return created, nil
}

// GetByID returns the manifest with its deliveries loaded (never nil).
func (u *ManifestUseCase) GetByID(ctx context.Context, id int64) (entities.Manifest, error) {
	m, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return entities.Manifest{}, err
	}
	if m.ID == 0 {
		return entities.Manifest{}, domainerr.NewNotFoundError(msgManifestNotFound, id)
	}
	if m.Deliveries == nil {
		m.Deliveries = []entities.Delivery{}
	}
	return m, nil
}

// List returns every manifest without deliveries.
func (u *ManifestUseCase) List(ctx context.Context) ([]entities.Manifest, error) {
	manifests, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if manifests == nil {
		manifests = []entities.Manifest{}
	}
	for i := range manifests {
		manifests[i].Deliveries = nil
	}
	return manifests, nil
}

func (u *ManifestUseCase) UpdateStatus(ctx context.Context, id int64, status entities.ManifestStatus) (entities.Manifest, error) {
	current, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return entities.Manifest{}, err
	}
	if current.ID == 0 {
		return entities.Manifest{}, domainerr.NewNotFoundError(msgManifestNotFound, id)
	}

	if !current.Status.CanTransitionTo(status) {
		return entities.Manifest{}, domainerr.NewValidationError(msgInvalidStatusTransition, current.Status, status)
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Manifest{}, err
	}
	log.Printf("[manifest][usecase] status updated manifest_id=%d from=%q to=%q", id, current.Status, updated.Status)
	return updated, nil
}

// Delete removes the manifest. The repository cascades the deletion to its
// deliveries.
func (u *ManifestUseCase) Delete(ctx context.Context, id int64) error {
	m, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if m.ID == 0 {
		return domainerr.NewNotFoundError(msgManifestNotFound, id)
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("[manifest][usecase] deleted manifest_id=%d deliveries=%d", id, len(m.Deliveries))
	return nil
}
