// Package memory implements the repository interfaces on top of
// mutex-guarded maps. It backs the "memory" storage driver and tests.
package memory

import (
	"sort"
	"sync"

	"romaneio_api/internal/domain/entities"
)

// Store holds all three tables. Repositories built from the same Store share
// state, so deleting a manifest is visible to the delivery repository.
type Store struct {
	mu         sync.Mutex
	drivers    map[int64]entities.Driver
	manifests  map[int64]entities.Manifest
	deliveries map[int64]entities.Delivery
	seq        map[string]int64
}

func NewStore() *Store {
	return &Store{
		drivers:    make(map[int64]entities.Driver),
		manifests:  make(map[int64]entities.Manifest),
		deliveries: make(map[int64]entities.Delivery),
		seq:        make(map[string]int64),
	}
}

// nextID must be called with mu held.
func (s *Store) nextID(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

// deliveriesOf must be called with mu held.
func (s *Store) deliveriesOf(manifestID int64) []entities.Delivery {
	out := make([]entities.Delivery, 0)
	for _, d := range s.deliveries {
		if d.ManifestID == manifestID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Repositories returns the three repositories bound to s.
func (s *Store) Repositories() (*DriverRepository, *ManifestRepository, *DeliveryRepository) {
	return &DriverRepository{s: s}, &ManifestRepository{s: s}, &DeliveryRepository{s: s}
}
