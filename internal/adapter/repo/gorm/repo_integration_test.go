package gormrepo

import (
	"context"
	"errors"
	"os"
	"testing"

	"agoraverse/internal/app/ports"
	"agoraverse/internal/domain/econ"
)

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("AGORAVERSE_DB_DSN")
	if dsn == "" {
		t.Skip("AGORAVERSE_DB_DSN is required for integration test")
	}
	return dsn
}

func TestAgentStateRepo_RoundTripAndVersionConflict(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	agentID := "it-state-roundtrip"
	ctx := context.Background()
	_ = db.Exec("DELETE FROM agent_states WHERE agent_id = ?", agentID).Error
	_ = db.Exec("DELETE FROM agents WHERE id = ?", agentID).Error
	if err := db.Exec("INSERT INTO agents(id, name, city_id) VALUES (?, ?, ?)", agentID, "it", "athens").Error; err != nil {
		t.Fatalf("seed agent: %v", err)
	}

	repo := NewAgentStateRepo(db)
	seed := econ.AgentState{
		AgentID:       agentID,
		Needs:         econ.Needs{Health: 88, Energy: 44, Hunger: 55, Social: 60, Fun: 30, Purpose: 70},
		HousingTier:   econ.HousingApartment,
		WealthTier:    econ.WealthMiddle,
		JobType:       econ.JobPrivate,
		ActivityState: econ.ActivityIdle,
		CityID:        "athens",
	}
	if err := repo.SaveWithVersion(ctx, seed, 0); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := repo.GetByAgentID(ctx, agentID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Needs.Health != 88 || got.Needs.Purpose != 70 {
		t.Fatalf("round trip lost needs: %+v", got.Needs)
	}
	if got.HousingTier != econ.HousingApartment || got.JobType != econ.JobPrivate {
		t.Fatalf("round trip lost tiers: %+v", got)
	}

	got.Needs.Energy = 90
	if err := repo.SaveWithVersion(ctx, got, got.Version); err != nil {
		t.Fatalf("versioned save: %v", err)
	}
	if err := repo.SaveWithVersion(ctx, got, got.Version); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("stale version must conflict, got %v", err)
	}
}

func TestApplier_IncrementAndRollback(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	agentID := "it-applier"
	ctx := context.Background()
	_ = db.Exec("DELETE FROM wallets WHERE agent_id = ?", agentID).Error
	_ = db.Exec("DELETE FROM agents WHERE id = ?", agentID).Error
	if err := db.Exec("INSERT INTO agents(id, name, city_id) VALUES (?, ?, ?)", agentID, "it", "athens").Error; err != nil {
		t.Fatalf("seed agent: %v", err)
	}
	if err := db.Exec("INSERT INTO wallets(agent_id, balance) VALUES (?, ?)", agentID, 100.0).Error; err != nil {
		t.Fatalf("seed wallet: %v", err)
	}

	applier := NewApplier(db)
	txm := NewTxManager(db)

	err = txm.RunInTx(ctx, func(txCtx context.Context) error {
		return applier.ApplyBatch(txCtx, []econ.StateUpdate{{
			Table:    econ.TableWallets,
			Op:       econ.OpUpdate,
			Selector: map[string]any{"agent_id": agentID},
			Patch:    map[string]any{"balance": econ.Increment{By: -30}},
		}})
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	wallet, err := NewWalletRepo(db).GetByAgentID(ctx, agentID)
	if err != nil {
		t.Fatalf("get wallet: %v", err)
	}
	if wallet.Balance != 70 {
		t.Fatalf("balance = %v, want 70", wallet.Balance)
	}

	// Second update targets a missing row; the whole batch must roll back.
	err = txm.RunInTx(ctx, func(txCtx context.Context) error {
		return applier.ApplyBatch(txCtx, []econ.StateUpdate{
			{
				Table:    econ.TableWallets,
				Op:       econ.OpUpdate,
				Selector: map[string]any{"agent_id": agentID},
				Patch:    map[string]any{"balance": econ.Increment{By: -30}},
			},
			{
				Table:    econ.TableWallets,
				Op:       econ.OpUpdate,
				Selector: map[string]any{"agent_id": "no-such-agent"},
				Patch:    map[string]any{"balance": econ.Increment{By: 30}},
			},
		})
	})
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	wallet, _ = NewWalletRepo(db).GetByAgentID(ctx, agentID)
	if wallet.Balance != 70 {
		t.Fatalf("failed batch must not partially apply, balance = %v", wallet.Balance)
	}
}

func TestClockRepo_ResumesAcrossConnections(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	ctx := context.Background()
	_ = db.Exec("DELETE FROM world_clock").Error

	if _, ok, err := NewClockRepo(db).Current(ctx); err != nil || ok {
		t.Fatalf("fresh clock must be unset, got ok=%v err=%v", ok, err)
	}
	if err := NewClockRepo(db).Save(ctx, 500); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := NewClockRepo(db).Save(ctx, 501); err != nil {
		t.Fatalf("resave: %v", err)
	}

	db2, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("reopen postgres: %v", err)
	}
	tick, ok, err := NewClockRepo(db2).Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if !ok || tick != 501 {
		t.Fatalf("clock must resume at 501, got %d ok=%v", tick, ok)
	}
}

func TestApplier_NeedDecayClampsAtZero(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	agentID := "it-decay-clamp"
	ctx := context.Background()
	_ = db.Exec("DELETE FROM agent_states WHERE agent_id = ?", agentID).Error
	_ = db.Exec("DELETE FROM agents WHERE id = ?", agentID).Error
	if err := db.Exec("INSERT INTO agents(id, name, city_id) VALUES (?, ?, ?)", agentID, "it", "athens").Error; err != nil {
		t.Fatalf("seed agent: %v", err)
	}
	if err := db.Exec("INSERT INTO agent_states(agent_id, health, energy, hunger, social, fun, purpose, city_id) VALUES (?, 50, 0, 1, 50, 50, 50, ?)", agentID, "athens").Error; err != nil {
		t.Fatalf("seed state: %v", err)
	}

	applier := NewApplier(db)
	txm := NewTxManager(db)

	// Two decay passes: energy is already at the floor, hunger crosses it.
	for i := 0; i < 2; i++ {
		err = txm.RunInTx(ctx, func(txCtx context.Context) error {
			return applier.ApplyBatch(txCtx, []econ.StateUpdate{{
				Table:    econ.TableAgentStates,
				Op:       econ.OpUpdate,
				Selector: map[string]any{"agent_id": agentID},
				Patch: map[string]any{
					"energy": econ.Increment{By: -1},
					"hunger": econ.Increment{By: -1},
				},
			}})
		})
		if err != nil {
			t.Fatalf("decay pass %d: %v", i, err)
		}
	}

	state, err := NewAgentStateRepo(db).GetByAgentID(ctx, agentID)
	if err != nil {
		t.Fatalf("get state: %v", err)
	}
	if state.Needs.Energy != 0 || state.Needs.Hunger != 0 {
		t.Fatalf("needs must clamp at 0, got energy=%d hunger=%d", state.Needs.Energy, state.Needs.Hunger)
	}
}
