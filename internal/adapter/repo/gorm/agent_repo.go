package gormrepo

import (
	"context"
	"errors"

	"agoraverse/internal/adapter/repo/gorm/model"
	"agoraverse/internal/app/ports"
	"agoraverse/internal/domain/econ"

	"gorm.io/gorm"
)

type AgentRepo struct {
	db *gorm.DB
}

func NewAgentRepo(db *gorm.DB) AgentRepo {
	return AgentRepo{db: db}
}

func (r AgentRepo) GetByID(ctx context.Context, agentID string) (econ.Agent, error) {
	var m model.Agent
	if err := getDBFromCtx(ctx, r.db).Where("id = ?", agentID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return econ.Agent{}, ports.ErrNotFound
		}
		return econ.Agent{}, err
	}
	return agentFromModel(m), nil
}

func (r AgentRepo) ListActive(ctx context.Context) ([]econ.Agent, error) {
	return r.list(ctx, "frozen = FALSE AND dead = FALSE")
}

func (r AgentRepo) ListFrozen(ctx context.Context) ([]econ.Agent, error) {
	return r.list(ctx, "frozen = TRUE AND dead = FALSE")
}

func (r AgentRepo) list(ctx context.Context, cond string) ([]econ.Agent, error) {
	rows := []model.Agent{}
	if err := getDBFromCtx(ctx, r.db).Where(cond).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]econ.Agent, 0, len(rows))
	for _, m := range rows {
		out = append(out, agentFromModel(m))
	}
	return out, nil
}

func agentFromModel(m model.Agent) econ.Agent {
	return econ.Agent{
		ID:           m.ID,
		Name:         m.Name,
		CityID:       m.CityID,
		Frozen:       m.Frozen,
		FrozenReason: econ.FreezeReason(m.FrozenReason),
		Dead:         m.Dead,
		Reputation:   int(m.Reputation),
		Version:      m.Version,
	}
}
