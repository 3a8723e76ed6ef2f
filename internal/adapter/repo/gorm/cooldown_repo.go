package gormrepo

import (
	"context"
	"errors"

	"agoraverse/internal/adapter/repo/gorm/model"
	"agoraverse/internal/app/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CooldownRepo struct {
	db *gorm.DB
}

func NewCooldownRepo(db *gorm.DB) CooldownRepo {
	return CooldownRepo{db: db}
}

func (r CooldownRepo) LastRunTick(ctx context.Context, agentID, skill string) (int64, bool, error) {
	var m model.SkillCooldown
	err := getDBFromCtx(ctx, r.db).
		Where("agent_id = ? AND skill = ?", agentID, skill).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return m.LastRunTick, true, nil
}

func (r CooldownRepo) RecordRun(ctx context.Context, agentID, skill string, tick int64) error {
	m := model.SkillCooldown{AgentID: agentID, Skill: skill, LastRunTick: tick}
	return getDBFromCtx(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "agent_id"}, {Name: "skill"}},
			DoUpdates: clause.AssignmentColumns([]string{"last_run_tick"}),
		}).
		Create(&m).Error
}

func (r CooldownRepo) List(ctx context.Context) ([]ports.CooldownEntry, error) {
	rows := []model.SkillCooldown{}
	if err := getDBFromCtx(ctx, r.db).Order("agent_id, skill").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]ports.CooldownEntry, 0, len(rows))
	for _, m := range rows {
		out = append(out, ports.CooldownEntry{AgentID: m.AgentID, Skill: m.Skill, LastRunTick: m.LastRunTick})
	}
	return out, nil
}
