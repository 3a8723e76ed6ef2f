package gormrepo

import (
	"context"
	"fmt"

	"agoraverse/internal/app/ports"
	"agoraverse/internal/domain/econ"

	"gorm.io/gorm"
)

var tableNames = map[econ.Table]string{
	econ.TableAgents:         "agents",
	econ.TableAgentStates:    "agent_states",
	econ.TableWallets:        "wallets",
	econ.TableProperties:     "properties",
	econ.TableBusinesses:     "businesses",
	econ.TableForumPosts:     "forum_posts",
	econ.TableVotes:          "votes",
	econ.TableModerationLogs: "moderation_logs",
}

// Applier executes declarative update batches as SQL. It runs inside the
// caller's transaction (via the context-carried *gorm.DB), so a batch is
// atomic exactly when the surrounding operation is.
type Applier struct {
	db *gorm.DB
}

func NewApplier(db *gorm.DB) Applier {
	return Applier{db: db}
}

func (a Applier) ApplyBatch(ctx context.Context, updates []econ.StateUpdate) error {
	db := getDBFromCtx(ctx, a.db)
	for i, u := range updates {
		if err := a.apply(db, u); err != nil {
			return fmt.Errorf("update %d (%s %s): %w", i, u.Op, u.Table, err)
		}
	}
	return nil
}

func (a Applier) apply(db *gorm.DB, u econ.StateUpdate) error {
	table, ok := tableNames[u.Table]
	if !ok {
		return fmt.Errorf("unknown table %q", u.Table)
	}

	switch u.Op {
	case econ.OpCreate:
		row, err := assignments(u.Table, u.Patch)
		if err != nil {
			return err
		}
		return db.Table(table).Create(row).Error

	case econ.OpUpdate:
		if len(u.Selector) == 0 {
			return fmt.Errorf("update without selector")
		}
		patch, err := assignments(u.Table, u.Patch)
		if err != nil {
			return err
		}
		res := db.Table(table).Where(u.Selector).Updates(patch)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ports.ErrNotFound
		}
		return nil

	case econ.OpDelete:
		if len(u.Selector) == 0 {
			return fmt.Errorf("delete without selector")
		}
		res := db.Table(table).Where(u.Selector).Delete(nil)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ports.ErrNotFound
		}
		return nil

	default:
		return fmt.Errorf("unknown op %q", u.Op)
	}
}

// needColumns are the agent_states gauges that hold [0, 100].
var needColumns = map[string]bool{
	"health":  true,
	"energy":  true,
	"hunger":  true,
	"social":  true,
	"fun":     true,
	"purpose": true,
}

// assignments lowers patch values to SQL. Increments become column
// expressions so concurrent relative adjustments do not lose updates;
// need gauges are clamped in the expression itself so a decay run can
// never drive a stored need outside its range.
func assignments(table econ.Table, patch map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(patch))
	for field, v := range patch {
		if !validColumn(field) {
			return nil, fmt.Errorf("invalid column name %q", field)
		}
		if inc, ok := v.(econ.Increment); ok {
			if table == econ.TableAgentStates && needColumns[field] {
				out[field] = gorm.Expr("GREATEST(0, LEAST(100, "+field+" + ?))", inc.By)
			} else {
				out[field] = gorm.Expr(field+" + ?", inc.By)
			}
			continue
		}
		out[field] = v
	}
	return out, nil
}

func validColumn(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if (r < 'a' || r > 'z') && r != '_' {
			return false
		}
	}
	return true
}
