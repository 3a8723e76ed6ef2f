package sweep

import (
	"context"
	"time"

	"agoraverse/internal/app/ports"
	"agoraverse/internal/domain/econ"

	"github.com/google/uuid"
)

// DecaySweep drains the time-sensitive needs of every active agent once per
// tick. Health does not decay on its own; it only moves through fights,
// collapse, and revival.
type DecaySweep struct {
	TxManager ports.TxManager
	Agents    ports.AgentRepository
	Events    ports.EventRepository
	Applier   ports.BatchApplier
}

type DecayReport struct {
	Decayed int
}

func (s DecaySweep) Run(ctx context.Context, tick int64) (DecayReport, error) {
	report := DecayReport{}

	agents, err := s.Agents.ListActive(ctx)
	if err != nil {
		return report, err
	}

	for _, agent := range agents {
		err := s.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
			updates := []econ.StateUpdate{{
				Table:    econ.TableAgentStates,
				Op:       econ.OpUpdate,
				Selector: map[string]any{"agent_id": agent.ID},
				Patch: map[string]any{
					"energy": econ.Increment{By: -econ.DecayEnergyPerTick},
					"hunger": econ.Increment{By: -econ.DecayHungerPerTick},
					"social": econ.Increment{By: -econ.DecaySocialPerTick},
					"fun":    econ.Increment{By: -econ.DecayFunPerTick},
				},
			}}
			if err := s.Applier.ApplyBatch(txCtx, updates); err != nil {
				return err
			}
			return s.Events.Append(txCtx, []econ.Event{{
				ID:         uuid.NewString(),
				ActorID:    agent.ID,
				Type:       econ.EventNeedsDecayed,
				Tick:       tick,
				Outcome:    econ.OutcomeSuccess,
				OccurredAt: time.Now().UTC(),
			}})
		})
		if err != nil {
			return report, err
		}
		report.Decayed++
	}
	return report, nil
}
