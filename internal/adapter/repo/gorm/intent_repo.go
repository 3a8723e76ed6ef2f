package gormrepo

import (
	"context"
	"encoding/json"
	"errors"

	"agoraverse/internal/adapter/repo/gorm/model"
	"agoraverse/internal/app/ports"
	"agoraverse/internal/domain/econ"

	"gorm.io/gorm"
)

type IntentRepo struct {
	db *gorm.DB
}

func NewIntentRepo(db *gorm.DB) IntentRepo {
	return IntentRepo{db: db}
}

func (r IntentRepo) Save(ctx context.Context, it econ.Intent) error {
	params, err := json.Marshal(it.Params)
	if err != nil {
		return err
	}
	m := model.Intent{
		ID:       it.ID,
		ActorID:  it.ActorID,
		Kind:     string(it.Kind),
		Params:   params,
		Priority: int32(it.Priority),
		Tick:     it.Tick,
		Status:   string(it.Status),
		Skill:    it.Skill,
	}
	return getDBFromCtx(ctx, r.db).Create(&m).Error
}

func (r IntentRepo) SetStatus(ctx context.Context, intentID string, status econ.IntentStatus) error {
	res := getDBFromCtx(ctx, r.db).Model(&model.Intent{}).
		Where("id = ?", intentID).
		Update("status", string(status))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r IntentRepo) GetByID(ctx context.Context, intentID string) (econ.Intent, error) {
	var m model.Intent
	if err := getDBFromCtx(ctx, r.db).Where("id = ?", intentID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return econ.Intent{}, ports.ErrNotFound
		}
		return econ.Intent{}, err
	}
	var params map[string]any
	if len(m.Params) > 0 {
		if err := json.Unmarshal(m.Params, &params); err != nil {
			return econ.Intent{}, err
		}
	}
	return econ.Intent{
		ID:       m.ID,
		ActorID:  m.ActorID,
		Kind:     econ.IntentKind(m.Kind),
		Params:   params,
		Priority: int(m.Priority),
		Tick:     m.Tick,
		Status:   econ.IntentStatus(m.Status),
		Skill:    m.Skill,
	}, nil
}
