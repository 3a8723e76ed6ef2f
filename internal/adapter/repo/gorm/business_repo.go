package gormrepo

import (
	"context"

	"agoraverse/internal/adapter/repo/gorm/model"
	"agoraverse/internal/domain/econ"

	"gorm.io/gorm"
)

type BusinessRepo struct {
	db *gorm.DB
}

func NewBusinessRepo(db *gorm.DB) BusinessRepo {
	return BusinessRepo{db: db}
}

func (r BusinessRepo) ListByOwnerID(ctx context.Context, ownerID string) ([]econ.Business, error) {
	rows := []model.Business{}
	if err := getDBFromCtx(ctx, r.db).Where("owner_id = ?", ownerID).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]econ.Business, 0, len(rows))
	for _, m := range rows {
		out = append(out, econ.Business{
			ID:           m.ID,
			OwnerID:      m.OwnerID,
			CityID:       m.CityID,
			Name:         m.Name,
			DailyRevenue: m.DailyRevenue,
		})
	}
	return out, nil
}
