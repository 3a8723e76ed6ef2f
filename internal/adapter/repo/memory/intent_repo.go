package memory

import (
	"context"

	"agoraverse/internal/app/ports"
	"agoraverse/internal/domain/econ"
)

type IntentRepo struct {
	store *Store
}

func NewIntentRepo(store *Store) IntentRepo {
	return IntentRepo{store: store}
}

func (r IntentRepo) Save(_ context.Context, it econ.Intent) error {
	r.store.intents[it.ID] = it
	return nil
}

func (r IntentRepo) SetStatus(_ context.Context, intentID string, status econ.IntentStatus) error {
	it, ok := r.store.intents[intentID]
	if !ok {
		return ports.ErrNotFound
	}
	it.Status = status
	r.store.intents[intentID] = it
	return nil
}

func (r IntentRepo) GetByID(_ context.Context, intentID string) (econ.Intent, error) {
	it, ok := r.store.intents[intentID]
	if !ok {
		return econ.Intent{}, ports.ErrNotFound
	}
	return it, nil
}
