package gormrepo

import (
	"context"

	"gorm.io/gorm"
)

// TxManager opens one database transaction per use-case operation and
// threads it through the context, so every repo and applier call inside fn
// joins the same transaction.
type TxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return TxManager{db: db}
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(withTx(ctx, tx))
	})
}
