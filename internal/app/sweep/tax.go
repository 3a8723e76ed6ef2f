package sweep

import (
	"context"
	"fmt"
	"time"

	"agoraverse/internal/app/ports"
	"agoraverse/internal/domain/econ"

	"github.com/google/uuid"
)

// TaxSweep collects the daily wealth tax from every active agent and hands
// the proceeds to the settlement layer asynchronously. A settlement outage
// never blocks the tick: the debit commits locally and the transfer retries
// in the queue.
type TaxSweep struct {
	TxManager  ports.TxManager
	Agents     ports.AgentRepository
	Wallets    ports.WalletRepository
	Events     ports.EventRepository
	Applier    ports.BatchApplier
	Settlement ports.SettlementQueue

	TaxRate float64
}

type TaxReport struct {
	Taxed     int
	Collected float64
}

func (s TaxSweep) Run(ctx context.Context, tick int64) (TaxReport, error) {
	report := TaxReport{}

	agents, err := s.Agents.ListActive(ctx)
	if err != nil {
		return report, err
	}

	for _, agent := range agents {
		wallet, err := s.Wallets.GetByAgentID(ctx, agent.ID)
		if err != nil {
			return report, err
		}
		tax := wallet.Balance * s.TaxRate
		if tax <= 0 {
			continue
		}
		if err := s.collect(ctx, agent, tax, tick); err != nil {
			return report, err
		}
		if s.Settlement != nil {
			s.Settlement.Enqueue(agent.ID, "vault:"+agent.CityID, tax, "daily_tax")
		}
		report.Taxed++
		report.Collected += tax
	}
	return report, nil
}

func (s TaxSweep) collect(ctx context.Context, agent econ.Agent, tax float64, tick int64) error {
	return s.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		updates := []econ.StateUpdate{{
			Table:    econ.TableWallets,
			Op:       econ.OpUpdate,
			Selector: map[string]any{"agent_id": agent.ID},
			Patch:    map[string]any{"balance": econ.Increment{By: -tax}},
		}}
		if err := s.Applier.ApplyBatch(txCtx, updates); err != nil {
			return fmt.Errorf("collect tax from %s: %w", agent.ID, err)
		}
		return s.Events.Append(txCtx, []econ.Event{{
			ID:         uuid.NewString(),
			ActorID:    agent.ID,
			Type:       econ.EventTaxCollected,
			Tick:       tick,
			Outcome:    econ.OutcomeSuccess,
			Payload:    map[string]any{"amount": tax},
			OccurredAt: time.Now().UTC(),
		}})
	})
}
