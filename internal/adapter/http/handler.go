package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"agoraverse/internal/app/intent"
	"agoraverse/internal/app/lifecycle"
	"agoraverse/internal/app/ports"
	"agoraverse/internal/app/tick"
	"agoraverse/internal/domain/econ"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/google/uuid"
)

type Handler struct {
	ExecUC  intent.UseCase
	TickUC  tick.UseCase
	Revival lifecycle.Revival
	Sweep   lifecycle.FreezeSweep

	Agents  ports.AgentRepository
	States  ports.AgentStateRepository
	Wallets ports.WalletRepository
	Intents ports.IntentRepository
	Events  ports.EventRepository

	// CurrentTick supplies the scheduler's tick counter for requests that do
	// not pin one explicitly.
	CurrentTick func() int64
	KPI         kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	api := s.Group("/api")
	api.POST("/intents", h.submitIntent)
	api.GET("/intents/:id", h.getIntent)
	api.GET("/agents/:id/state", h.agentState)
	api.GET("/agents/:id/events", h.agentEvents)
	api.POST("/agents/:id/revive", h.reviveAgent)

	s.POST("/ops/tick", h.runTick)
	s.POST("/ops/freeze-sweep", h.runFreezeSweep)
	s.GET("/ops/kpi", h.kpi)
}

type submitIntentRequest struct {
	AgentID string         `json:"agent_id"`
	Kind    string         `json:"kind"`
	Params  map[string]any `json:"params,omitempty"`
	Tick    *int64         `json:"tick,omitempty"`
}

func (h Handler) submitIntent(c context.Context, ctx *app.RequestContext) {
	var body submitIntentRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if strings.TrimSpace(body.AgentID) == "" || strings.TrimSpace(body.Kind) == "" {
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_fields", "agent_id and kind are required")
		return
	}

	tickNo := h.tickFor(body.Tick)
	it := econ.Intent{
		ID:      uuid.NewString(),
		ActorID: body.AgentID,
		Kind:    econ.IntentKind(body.Kind),
		Params:  body.Params,
		Tick:    tickNo,
		Status:  econ.IntentPending,
	}
	if err := h.Intents.Save(c, it); err != nil {
		writeError(ctx, err)
		return
	}

	result, err := h.ExecUC.Execute(c, it)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, result)
}

func (h Handler) getIntent(c context.Context, ctx *app.RequestContext) {
	it, err := h.Intents.GetByID(c, string(ctx.Param("id")))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, it)
}

type agentStateResponse struct {
	Agent  econ.Agent      `json:"agent"`
	State  econ.AgentState `json:"state"`
	Wallet econ.Wallet     `json:"wallet"`
}

func (h Handler) agentState(c context.Context, ctx *app.RequestContext) {
	agentID := string(ctx.Param("id"))
	agent, err := h.Agents.GetByID(c, agentID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	state, err := h.States.GetByAgentID(c, agentID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	wallet, err := h.Wallets.GetByAgentID(c, agentID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, agentStateResponse{Agent: agent, State: state, Wallet: wallet})
}

func (h Handler) agentEvents(c context.Context, ctx *app.RequestContext) {
	agentID := string(ctx.Param("id"))
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	events, err := h.Events.ListByActorID(c, agentID, limit)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, events)
}

type reviveRequest struct {
	Deposit float64 `json:"deposit"`
	Tick    *int64  `json:"tick,omitempty"`
}

func (h Handler) reviveAgent(c context.Context, ctx *app.RequestContext) {
	var body reviveRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	agentID := string(ctx.Param("id"))
	if err := h.Revival.Revive(c, agentID, body.Deposit, h.tickFor(body.Tick)); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"agent_id": agentID, "revived": true})
}

type tickRequest struct {
	Tick *int64 `json:"tick,omitempty"`
}

func (h Handler) runTick(c context.Context, ctx *app.RequestContext) {
	var body tickRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	report, err := h.TickUC.RunTick(c, h.tickFor(body.Tick))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, report)
}

func (h Handler) runFreezeSweep(c context.Context, ctx *app.RequestContext) {
	var body tickRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	report, err := h.Sweep.Run(c, h.tickFor(body.Tick))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, report)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func (h Handler) tickFor(requested *int64) int64 {
	if requested != nil {
		return *requested
	}
	if h.CurrentTick != nil {
		return h.CurrentTick()
	}
	return 0
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, intent.ErrInvalidIntent):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_intent", err.Error())
	case errors.Is(err, intent.ErrUnknownIntentKind):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_intent_kind", err.Error())
	case errors.Is(err, econ.ErrAbsurdAmount), errors.Is(err, econ.ErrNegativeDelta):
		writeErrorBody(ctx, consts.StatusBadRequest, "policy_violation", err.Error())
	case errors.Is(err, lifecycle.ErrNotFrozen):
		writeErrorBody(ctx, consts.StatusConflict, "not_frozen", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "version_conflict", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", err.Error())
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error":   code,
		"message": message,
	})
}
