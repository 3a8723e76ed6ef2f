package gormrepo

import (
	"context"
	"errors"

	"agoraverse/internal/adapter/repo/gorm/model"
	"agoraverse/internal/app/ports"
	"agoraverse/internal/domain/econ"

	"gorm.io/gorm"
)

type WalletRepo struct {
	db *gorm.DB
}

func NewWalletRepo(db *gorm.DB) WalletRepo {
	return WalletRepo{db: db}
}

func (r WalletRepo) GetByAgentID(ctx context.Context, agentID string) (econ.Wallet, error) {
	var m model.Wallet
	if err := getDBFromCtx(ctx, r.db).Where("agent_id = ?", agentID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return econ.Wallet{}, ports.ErrNotFound
		}
		return econ.Wallet{}, err
	}
	return econ.Wallet{AgentID: m.AgentID, Balance: m.Balance, Version: m.Version}, nil
}
