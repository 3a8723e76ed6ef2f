package memory

import (
	"context"
	"sort"

	"agoraverse/internal/app/ports"
	"agoraverse/internal/domain/econ"
)

type PropertyRepo struct {
	store *Store
}

func NewPropertyRepo(store *Store) PropertyRepo {
	return PropertyRepo{store: store}
}

func (r PropertyRepo) GetByID(_ context.Context, propertyID string) (econ.Property, error) {
	p, ok := r.store.properties[propertyID]
	if !ok {
		return econ.Property{}, ports.ErrNotFound
	}
	return p, nil
}

func (r PropertyRepo) ListByOwnerID(_ context.Context, ownerID string) ([]econ.Property, error) {
	out := []econ.Property{}
	for _, p := range r.store.properties {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
