package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	httpadapter "agoraverse/internal/adapter/http"
	metricsinmem "agoraverse/internal/adapter/metrics/inmemory"
	"agoraverse/internal/adapter/moderation/rulebased"
	gormrepo "agoraverse/internal/adapter/repo/gorm"
	"agoraverse/internal/adapter/settlement/logclient"
	settlementqueue "agoraverse/internal/adapter/settlement/queue"
	textfallback "agoraverse/internal/adapter/textgen/fallback"
	"agoraverse/internal/app/intent"
	"agoraverse/internal/app/lifecycle"
	"agoraverse/internal/app/ports"
	"agoraverse/internal/app/skillrun"
	"agoraverse/internal/app/sweep"
	"agoraverse/internal/app/tick"
	"agoraverse/internal/config"
	"agoraverse/internal/domain/econ"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	cfg, err := config.Load(os.Getenv("AGORAVERSE_CONFIG"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	dsn := os.Getenv("AGORAVERSE_DB_DSN")
	if dsn == "" {
		log.Fatal("AGORAVERSE_DB_DSN is required")
	}
	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.ApplyMigrations(context.Background(), db, cfg.MigrationsDir); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	recorder := metricsinmem.NewRecorder()
	settlement := settlementqueue.New(logclient.New(logger), logger)
	defer settlement.Close()

	agents := gormrepo.NewAgentRepo(db)
	states := gormrepo.NewAgentStateRepo(db)
	wallets := gormrepo.NewWalletRepo(db)
	intents := gormrepo.NewIntentRepo(db)
	events := gormrepo.NewEventRepo(db)
	properties := gormrepo.NewPropertyRepo(db)
	businesses := gormrepo.NewBusinessRepo(db)
	cooldowns := gormrepo.NewCooldownRepo(db)
	clock := gormrepo.NewClockRepo(db)
	applier := gormrepo.NewApplier(db)
	txm := gormrepo.NewTxManager(db)

	runner := skillrun.NewRunner(skillrun.DefaultRegistry())
	entries, err := cooldowns.List(context.Background())
	if err != nil {
		log.Fatalf("load cooldown ledger: %v", err)
	}
	for _, e := range entries {
		runner.Seed(e.AgentID, e.Skill, e.LastRunTick)
	}

	exec := intent.UseCase{
		TxManager:  txm,
		Agents:     agents,
		States:     states,
		Wallets:    wallets,
		Intents:    intents,
		Events:     events,
		Properties: properties,
		Businesses: businesses,
		Applier:    applier,
		Policy:     cfg.PatchPolicy(),
		Settlement: settlement,
		TextGen:    textfallback.New(),
		Moderator:  rulebased.New(),
		Metrics:    recorder,
	}

	tickUC := tick.UseCase{
		Agents:      agents,
		States:      states,
		Wallets:     wallets,
		Properties:  properties,
		Businesses:  businesses,
		Intents:     intents,
		Events:      events,
		Runner:      runner,
		Executor:    exec,
		Metrics:     recorder,
		Log:         logger,
		Cooldowns:   cooldowns,
		RentByTier:  cfg.RentByTier(),
		Subsistence: cfg.Economy.Subsistence,
	}

	freezeSweep := lifecycle.FreezeSweep{
		TxManager: txm, Agents: agents, States: states, Wallets: wallets,
		Events: events, Applier: applier, Metrics: recorder,
	}
	revival := lifecycle.Revival{
		TxManager: txm, Agents: agents, States: states, Wallets: wallets,
		Events: events, Applier: applier, Metrics: recorder,
	}
	decaySweep := sweep.DecaySweep{
		TxManager: txm, Agents: agents, Events: events, Applier: applier,
	}
	taxSweep := sweep.TaxSweep{
		TxManager: txm, Agents: agents, Wallets: wallets, Events: events,
		Applier: applier, Settlement: settlement, TaxRate: cfg.Economy.TaxRate,
	}

	// Resume the world clock; a counter restarting at zero would sit behind
	// every persisted cooldown entry.
	var tickCounter atomic.Int64
	if tick, ok, err := clock.Current(context.Background()); err != nil {
		log.Fatalf("load world clock: %v", err)
	} else if ok {
		tickCounter.Store(tick)
	}
	go runScheduler(cfg.TickPeriod.Std(), &tickCounter, clock, tickUC, decaySweep, freezeSweep, taxSweep, revival, logger)

	h := httpadapter.Handler{
		ExecUC:      exec,
		TickUC:      tickUC,
		Revival:     revival,
		Sweep:       freezeSweep,
		Agents:      agents,
		States:      states,
		Wallets:     wallets,
		Intents:     intents,
		Events:      events,
		CurrentTick: tickCounter.Load,
		KPI:         recorder,
	}

	s := server.Default(server.WithHostPorts(cfg.HTTPAddr))
	h.RegisterRoutes(s)

	log.Printf("agoraverse server listening on %s (tick period %s)", cfg.HTTPAddr, cfg.TickPeriod.Std())
	s.Spin()
}

// runScheduler advances the world clock. Each period runs decay, the tick
// proper, and the freeze sweep; the tax sweep and the revival safety net run
// once per in-world day.
func runScheduler(period time.Duration, counter *atomic.Int64, clock ports.ClockRepository,
	tickUC tick.UseCase, decay sweep.DecaySweep, freeze lifecycle.FreezeSweep,
	tax sweep.TaxSweep, revival lifecycle.Revival, logger *slog.Logger) {

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for range ticker.C {
		tickNo := counter.Add(1)
		ctx := context.Background()

		if err := clock.Save(ctx, tickNo); err != nil {
			logger.Error("world clock save failed", "tick", tickNo, "err", err)
		}

		if _, err := decay.Run(ctx, tickNo); err != nil {
			logger.Error("decay sweep failed", "tick", tickNo, "err", err)
		}
		report, err := tickUC.RunTick(ctx, tickNo)
		if err != nil {
			logger.Error("tick failed", "tick", tickNo, "err", err)
		} else {
			logger.Info("tick complete",
				"tick", tickNo, "agents", report.Agents, "executed", report.Executed,
				"blocked", report.Blocked, "failed", report.Failed,
				"busy", report.Busy, "idle", report.NoCandidates, "defects", report.Defects)
		}
		if _, err := freeze.Run(ctx, tickNo); err != nil {
			logger.Error("freeze sweep failed", "tick", tickNo, "err", err)
		}

		if tickNo%econ.TicksPerDay == 0 {
			if _, err := tax.Run(ctx, tickNo); err != nil {
				logger.Error("tax sweep failed", "tick", tickNo, "err", err)
			}
			if _, err := revival.SafetyNetSweep(ctx, tickNo); err != nil {
				logger.Error("revival safety net failed", "tick", tickNo, "err", err)
			}
		}
	}
}
