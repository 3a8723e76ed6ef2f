package memory

import "context"

type ClockRepo struct {
	store *Store
}

func NewClockRepo(store *Store) ClockRepo {
	return ClockRepo{store: store}
}

func (r ClockRepo) Current(_ context.Context) (int64, bool, error) {
	return r.store.clockTick, r.store.clockSet, nil
}

func (r ClockRepo) Save(_ context.Context, tick int64) error {
	r.store.clockTick = tick
	r.store.clockSet = true
	return nil
}
