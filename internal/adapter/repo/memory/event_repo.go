package memory

import (
	"context"
	"sort"

	"agoraverse/internal/domain/econ"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(_ context.Context, events []econ.Event) error {
	r.store.events = append(r.store.events, events...)
	return nil
}

func (r EventRepo) ListByActorID(_ context.Context, actorID string, limit int) ([]econ.Event, error) {
	out := []econ.Event{}
	for _, e := range r.store.events {
		if e.ActorID == actorID {
			out = append(out, e)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (r EventRepo) ListRecentByType(_ context.Context, eventType string, sinceTick int64) ([]econ.Event, error) {
	out := []econ.Event{}
	for _, e := range r.store.events {
		if e.Type == eventType && e.Tick >= sinceTick {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Tick != out[j].Tick {
			return out[i].Tick < out[j].Tick
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
