package lifecycle

import (
	"context"
	"errors"
	"time"

	"agoraverse/internal/app/ports"
	"agoraverse/internal/domain/econ"

	"github.com/google/uuid"
)

var ErrNotFrozen = errors.New("agent is not frozen")

type Revival struct {
	TxManager ports.TxManager
	Agents    ports.AgentRepository
	States    ports.AgentStateRepository
	Wallets   ports.WalletRepository
	Events    ports.EventRepository
	Applier   ports.BatchApplier
	Metrics   ports.TickMetrics
}

// Revive reverses a freeze after a qualifying deposit. The balance credit,
// the needs reset to the fixed baselines, the flag clear, and the audit
// event commit together or not at all.
func (r Revival) Revive(ctx context.Context, agentID string, deposit float64, tick int64) error {
	agent, err := r.Agents.GetByID(ctx, agentID)
	if err != nil {
		return err
	}
	if !agent.Frozen {
		return ErrNotFrozen
	}

	err = r.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		baseline := econ.RevivalNeeds()
		updates := []econ.StateUpdate{
			{
				Table:    econ.TableAgentStates,
				Op:       econ.OpUpdate,
				Selector: map[string]any{"agent_id": agentID},
				Patch: map[string]any{
					"health":  baseline.Health,
					"energy":  baseline.Energy,
					"hunger":  baseline.Hunger,
					"social":  baseline.Social,
					"fun":     baseline.Fun,
					"purpose": baseline.Purpose,
				},
			},
			{
				Table:    econ.TableAgents,
				Op:       econ.OpUpdate,
				Selector: map[string]any{"id": agentID},
				Patch:    map[string]any{"frozen": false, "frozen_reason": ""},
			},
		}
		if deposit > 0 {
			updates = append([]econ.StateUpdate{{
				Table:    econ.TableWallets,
				Op:       econ.OpUpdate,
				Selector: map[string]any{"agent_id": agentID},
				Patch:    map[string]any{"balance": econ.Increment{By: deposit}},
			}}, updates...)
		}
		if err := r.Applier.ApplyBatch(txCtx, updates); err != nil {
			return err
		}
		return r.Events.Append(txCtx, []econ.Event{{
			ID:         uuid.NewString(),
			ActorID:    agentID,
			Type:       econ.EventAgentRevived,
			Tick:       tick,
			Outcome:    econ.OutcomeSuccess,
			Payload:    map[string]any{"deposit": deposit, "previous_reason": string(agent.FrozenReason)},
			OccurredAt: time.Now().UTC(),
		}})
	})
	if err != nil {
		return err
	}
	if r.Metrics != nil {
		r.Metrics.RecordRevival()
	}
	return nil
}

// SafetyNetSweep revives any frozen agent whose wallet has turned positive,
// e.g. after an out-of-band deposit confirmed by the settlement layer.
func (r Revival) SafetyNetSweep(ctx context.Context, tick int64) (int, error) {
	frozen, err := r.Agents.ListFrozen(ctx)
	if err != nil {
		return 0, err
	}
	revived := 0
	for _, agent := range frozen {
		wallet, err := r.Wallets.GetByAgentID(ctx, agent.ID)
		if err != nil {
			return revived, err
		}
		if wallet.Balance <= 0 {
			continue
		}
		if err := r.Revive(ctx, agent.ID, 0, tick); err != nil {
			return revived, err
		}
		revived++
	}
	return revived, nil
}
