package memory

import (
	"context"
	"sort"
	"time"

	"romaneio_api/internal/domain/domainerr"
	"romaneio_api/internal/domain/entities"
	"romaneio_api/internal/usecase/interfaces"
)

type DriverRepository struct{ s *Store }

type ManifestRepository struct{ s *Store }

type DeliveryRepository struct{ s *Store }

var (
	_ interfaces.IDriverRepository   = (*DriverRepository)(nil)
	_ interfaces.IManifestRepository = (*ManifestRepository)(nil)
	_ interfaces.IDeliveryRepository = (*DeliveryRepository)(nil)
)

func (r *DriverRepository) Create(_ context.Context, d entities.Driver) (entities.Driver, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.drivers {
		if existing.CPF == d.CPF {
			return entities.Driver{}, domainerr.NewConflictError("tax id already registered")
		}
	}
	d.ID = r.s.nextID("drivers")
	r.s.drivers[d.ID] = d
	return d, nil
}

func (r *DriverRepository) FindByID(_ context.Context, id int64) (entities.Driver, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.drivers[id], nil
}

func (r *DriverRepository) FindByCPF(_ context.Context, cpf string) (entities.Driver, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, d := range r.s.drivers {
		if d.CPF == cpf {
			return d, nil
		}
	}
	return entities.Driver{}, nil
}

func (r *DriverRepository) ListAll(_ context.Context) ([]entities.Driver, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]entities.Driver, 0, len(r.s.drivers))
	for _, d := range r.s.drivers {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *DriverRepository) Update(_ context.Context, id int64, u entities.DriverUpdate) (entities.Driver, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d, ok := r.s.drivers[id]
	if !ok {
		return entities.Driver{}, domainerr.NewNotFoundError("driver not found")
	}
	d = u.Apply(d)
	d.UpdatedAt = time.Now().UTC()
	r.s.drivers[id] = d
	return d, nil
}

func (r *ManifestRepository) Create(_ context.Context, m entities.Manifest) (entities.Manifest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.drivers[m.DriverID]; !ok {
		return entities.Manifest{}, domainerr.NewNotFoundError("driver with id %d not found", m.DriverID)
	}
	m.ID = r.s.nextID("manifests")
	m.Deliveries = nil
	r.s.manifests[m.ID] = m
	return m, nil
}

func (r *ManifestRepository) FindByID(_ context.Context, id int64) (entities.Manifest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.manifests[id]
	if !ok {
		return entities.Manifest{}, nil
	}
	m.Deliveries = r.s.deliveriesOf(id)
	return m, nil
}

func (r *ManifestRepository) ListAll(_ context.Context) ([]entities.Manifest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]entities.Manifest, 0, len(r.s.manifests))
	for _, m := range r.s.manifests {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ManifestRepository) UpdateStatus(_ context.Context, id int64, status entities.ManifestStatus) (entities.Manifest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.manifests[id]
	if !ok {
		return entities.Manifest{}, domainerr.NewNotFoundError("manifest with id %d not found", id)
	}
	m.Status = status
	m.UpdatedAt = time.Now().UTC()
	r.s.manifests[id] = m
	return m, nil
}

func (r *ManifestRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for did, d := range r.s.deliveries {
		if d.ManifestID == id {
			delete(r.s.deliveries, did)
		}
	}
	delete(r.s.manifests, id)
	return nil
}

func (r *DeliveryRepository) Create(_ context.Context, d entities.Delivery) (entities.Delivery, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.manifests[d.ManifestID]; !ok {
		return entities.Delivery{}, domainerr.NewNotFoundError("manifest with id %d not found", d.ManifestID)
	}
	d.ID = r.s.nextID("deliveries")
	r.s.deliveries[d.ID] = d
	return d, nil
}

func (r *DeliveryRepository) ListByManifestID(_ context.Context, manifestID int64) ([]entities.Delivery, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.deliveriesOf(manifestID), nil
}

func (r *DeliveryRepository) UpdateStatus(_ context.Context, id int64, status entities.DeliveryStatus) (entities.Delivery, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d, ok := r.s.deliveries[id]
	if !ok {
		return entities.Delivery{}, domainerr.NewNotFoundError("delivery with id %d not found", id)
	}
	d.Status = status
	d.UpdatedAt = time.Now().UTC()
	r.s.deliveries[id] = d
	return d, nil
}

func (r *DeliveryRepository) DeleteByManifestID(_ context.Context, manifestID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, d := range r.s.deliveries {
		if d.ManifestID == manifestID {
			delete(r.s.deliveries, id)
		}
	}
	return nil
}
