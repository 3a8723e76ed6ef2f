package gormrepo

import (
	"context"
	"errors"
	"time"

	"agoraverse/internal/adapter/repo/gorm/model"
	"agoraverse/internal/app/ports"
	"agoraverse/internal/domain/econ"

	"gorm.io/gorm"
)

type AgentStateRepo struct {
	db *gorm.DB
}

func NewAgentStateRepo(db *gorm.DB) AgentStateRepo {
	return AgentStateRepo{db: db}
}

func (r AgentStateRepo) GetByAgentID(ctx context.Context, agentID string) (econ.AgentState, error) {
	var m model.AgentState
	if err := getDBFromCtx(ctx, r.db).Where("agent_id = ?", agentID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return econ.AgentState{}, ports.ErrNotFound
		}
		return econ.AgentState{}, err
	}
	return econ.AgentState{
		AgentID: m.AgentID,
		Needs: econ.Needs{
			Health:  int(m.Health),
			Energy:  int(m.Energy),
			Hunger:  int(m.Hunger),
			Social:  int(m.Social),
			Fun:     int(m.Fun),
			Purpose: int(m.Purpose),
		},
		HousingTier:     econ.HousingTier(m.HousingTier),
		WealthTier:      econ.WealthTier(m.WealthTier),
		JobType:         econ.JobType(m.JobType),
		ActivityState:   econ.ActivityState(m.ActivityState),
		ActivityEndTick: m.ActivityEndTick,
		CityID:          m.CityID,
		Version:         m.Version,
		UpdatedAt:       m.UpdatedAt,
	}, nil
}

func (r AgentStateRepo) SaveWithVersion(ctx context.Context, state econ.AgentState, expectedVersion int64) error {
	db := getDBFromCtx(ctx, r.db)
	if expectedVersion == 0 {
		m := model.AgentState{
			AgentID:         state.AgentID,
			Health:          int32(state.Needs.Health),
			Energy:          int32(state.Needs.Energy),
			Hunger:          int32(state.Needs.Hunger),
			Social:          int32(state.Needs.Social),
			Fun:             int32(state.Needs.Fun),
			Purpose:         int32(state.Needs.Purpose),
			HousingTier:     string(state.HousingTier),
			WealthTier:      string(state.WealthTier),
			JobType:         string(state.JobType),
			ActivityState:   string(state.ActivityState),
			ActivityEndTick: state.ActivityEndTick,
			CityID:          state.CityID,
			Version:         1,
			UpdatedAt:       time.Now().UTC(),
		}
		return db.Create(&m).Error
	}

	updates := map[string]any{
		"health":            int32(state.Needs.Health),
		"energy":            int32(state.Needs.Energy),
		"hunger":            int32(state.Needs.Hunger),
		"social":            int32(state.Needs.Social),
		"fun":               int32(state.Needs.Fun),
		"purpose":           int32(state.Needs.Purpose),
		"housing_tier":      string(state.HousingTier),
		"wealth_tier":       string(state.WealthTier),
		"job_type":          string(state.JobType),
		"activity_state":    string(state.ActivityState),
		"activity_end_tick": state.ActivityEndTick,
		"version":           expectedVersion + 1,
		"updated_at":        time.Now().UTC(),
	}

	res := db.Model(&model.AgentState{}).
		Where("agent_id = ? AND version = ?", state.AgentID, expectedVersion).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}
