package lifecycle

import (
	"context"
	"time"

	"agoraverse/internal/app/ports"
	"agoraverse/internal/domain/econ"

	"github.com/google/uuid"
)

// FreezeSweep is the world-level collapse check. It runs once per tick (or
// per day), independent of intents, against every non-frozen agent.
type FreezeSweep struct {
	TxManager ports.TxManager
	Agents    ports.AgentRepository
	States    ports.AgentStateRepository
	Wallets   ports.WalletRepository
	Events    ports.EventRepository
	Applier   ports.BatchApplier
	Metrics   ports.TickMetrics
}

type FreezeReport struct {
	Checked int
	Frozen  int
	Reasons map[econ.FreezeReason]int
}

func (s FreezeSweep) Run(ctx context.Context, tick int64) (FreezeReport, error) {
	report := FreezeReport{Reasons: map[econ.FreezeReason]int{}}

	agents, err := s.Agents.ListActive(ctx)
	if err != nil {
		return report, err
	}

	for _, agent := range agents {
		report.Checked++
		state, err := s.States.GetByAgentID(ctx, agent.ID)
		if err != nil {
			return report, err
		}
		wallet, err := s.Wallets.GetByAgentID(ctx, agent.ID)
		if err != nil {
			return report, err
		}
		reason, shouldFreeze := econ.FreezeCheck(state, wallet)
		if !shouldFreeze {
			continue
		}
		if err := s.freeze(ctx, agent, reason, tick); err != nil {
			return report, err
		}
		report.Frozen++
		report.Reasons[reason]++
		if s.Metrics != nil {
			s.Metrics.RecordFreeze(reason)
		}
	}
	return report, nil
}

func (s FreezeSweep) freeze(ctx context.Context, agent econ.Agent, reason econ.FreezeReason, tick int64) error {
	return s.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		updates := []econ.StateUpdate{{
			Table:    econ.TableAgents,
			Op:       econ.OpUpdate,
			Selector: map[string]any{"id": agent.ID},
			Patch:    map[string]any{"frozen": true, "frozen_reason": string(reason)},
		}}
		if err := s.Applier.ApplyBatch(txCtx, updates); err != nil {
			return err
		}
		return s.Events.Append(txCtx, []econ.Event{{
			ID:         uuid.NewString(),
			ActorID:    agent.ID,
			Type:       econ.EventAgentFrozen,
			Tick:       tick,
			Outcome:    econ.OutcomeSuccess,
			Payload:    map[string]any{"reason": string(reason)},
			OccurredAt: time.Now().UTC(),
		}})
	})
}
