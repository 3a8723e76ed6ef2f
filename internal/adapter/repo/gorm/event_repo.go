package gormrepo

import (
	"context"
	"encoding/json"

	"agoraverse/internal/adapter/repo/gorm/model"
	"agoraverse/internal/domain/econ"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, events []econ.Event) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]model.Event, 0, len(events))
	for _, e := range events {
		b, _ := json.Marshal(e.Payload)
		rows = append(rows, model.Event{
			ID:         e.ID,
			ActorID:    e.ActorID,
			Type:       e.Type,
			TargetID:   e.TargetID,
			Tick:       e.Tick,
			Outcome:    string(e.Outcome),
			Payload:    b,
			OccurredAt: e.OccurredAt,
		})
	}
	return getDBFromCtx(ctx, r.db).Create(&rows).Error
}

func (r EventRepo) ListByActorID(ctx context.Context, actorID string, limit int) ([]econ.Event, error) {
	rows := []model.Event{}
	query := getDBFromCtx(ctx, r.db).
		Where("actor_id = ?", actorID).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "occurred_at"}, Desc: true}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return fromModels(rows)
}

func (r EventRepo) ListRecentByType(ctx context.Context, eventType string, sinceTick int64) ([]econ.Event, error) {
	rows := []model.Event{}
	err := getDBFromCtx(ctx, r.db).
		Where("type = ? AND tick >= ?", eventType, sinceTick).
		Order("tick, id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return fromModels(rows)
}

func fromModels(rows []model.Event) ([]econ.Event, error) {
	out := make([]econ.Event, 0, len(rows))
	for _, m := range rows {
		var payload map[string]any
		if len(m.Payload) > 0 {
			if err := json.Unmarshal(m.Payload, &payload); err != nil {
				return nil, err
			}
		}
		out = append(out, econ.Event{
			ID:         m.ID,
			ActorID:    m.ActorID,
			Type:       m.Type,
			TargetID:   m.TargetID,
			Tick:       m.Tick,
			Outcome:    econ.EventOutcome(m.Outcome),
			Payload:    payload,
			OccurredAt: m.OccurredAt,
		})
	}
	return out, nil
}
