package memory

import (
	"context"

	"agoraverse/internal/app/ports"
	"agoraverse/internal/domain/econ"
)

type WalletRepo struct {
	store *Store
}

func NewWalletRepo(store *Store) WalletRepo {
	return WalletRepo{store: store}
}

func (r WalletRepo) GetByAgentID(_ context.Context, agentID string) (econ.Wallet, error) {
	wallet, ok := r.store.wallets[agentID]
	if !ok {
		return econ.Wallet{}, ports.ErrNotFound
	}
	return wallet, nil
}
