package gormrepo

import (
	"context"
	"errors"

	"agoraverse/internal/adapter/repo/gorm/model"
	"agoraverse/internal/app/ports"
	"agoraverse/internal/domain/econ"

	"gorm.io/gorm"
)

type PropertyRepo struct {
	db *gorm.DB
}

func NewPropertyRepo(db *gorm.DB) PropertyRepo {
	return PropertyRepo{db: db}
}

func (r PropertyRepo) GetByID(ctx context.Context, propertyID string) (econ.Property, error) {
	var m model.Property
	if err := getDBFromCtx(ctx, r.db).Where("id = ?", propertyID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return econ.Property{}, ports.ErrNotFound
		}
		return econ.Property{}, err
	}
	return propertyFromModel(m), nil
}

func (r PropertyRepo) ListByOwnerID(ctx context.Context, ownerID string) ([]econ.Property, error) {
	rows := []model.Property{}
	if err := getDBFromCtx(ctx, r.db).Where("owner_id = ?", ownerID).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]econ.Property, 0, len(rows))
	for _, m := range rows {
		out = append(out, propertyFromModel(m))
	}
	return out, nil
}

func propertyFromModel(m model.Property) econ.Property {
	return econ.Property{
		ID:      m.ID,
		OwnerID: m.OwnerID,
		CityID:  m.CityID,
		Kind:    m.Kind,
		Value:   m.Value,
		Tenant:  m.Tenant,
	}
}
