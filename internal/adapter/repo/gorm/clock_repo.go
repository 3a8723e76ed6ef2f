package gormrepo

import (
	"context"
	"errors"
	"time"

	"agoraverse/internal/adapter/repo/gorm/model"

	"gorm.io/gorm"
)

type ClockRepo struct {
	db *gorm.DB
}

func NewClockRepo(db *gorm.DB) ClockRepo {
	return ClockRepo{db: db}
}

func (r ClockRepo) Current(ctx context.Context) (int64, bool, error) {
	var row model.WorldClock
	err := getDBFromCtx(ctx, r.db).
		Where(&model.WorldClock{StateKey: "global"}).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return row.Tick, true, nil
}

func (r ClockRepo) Save(ctx context.Context, tick int64) error {
	return getDBFromCtx(ctx, r.db).
		Where(&model.WorldClock{StateKey: "global"}).
		Assign(map[string]any{"tick": tick, "updated_at": time.Now()}).
		FirstOrCreate(&model.WorldClock{}).Error
}
