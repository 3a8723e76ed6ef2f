package memory

import (
	"context"
	"sort"

	"agoraverse/internal/domain/econ"
)

type BusinessRepo struct {
	store *Store
}

func NewBusinessRepo(store *Store) BusinessRepo {
	return BusinessRepo{store: store}
}

func (r BusinessRepo) ListByOwnerID(_ context.Context, ownerID string) ([]econ.Business, error) {
	out := []econ.Business{}
	for _, b := range r.store.businesses {
		if b.OwnerID == ownerID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
