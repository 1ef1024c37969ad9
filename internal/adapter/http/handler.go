package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"worldforge/internal/app/advance"
	"worldforge/internal/app/auth"
	"worldforge/internal/app/characters"
	"worldforge/internal/app/generate"
	"worldforge/internal/app/inspect"
	"worldforge/internal/app/ports"
	"worldforge/internal/app/replay"
	"worldforge/internal/domain/forge"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const ownerIDHeader = "X-Owner-ID"
const ownerKeyHeader = "X-Owner-Key"

type Handler struct {
	RegisterUC   auth.RegisterUseCase
	AuthUC       auth.VerifyUseCase
	GenerateUC   generate.UseCase
	InspectUC    inspect.UseCase
	AdvanceUC    advance.UseCase
	CharactersUC characters.UseCase
	ReplayUC     replay.UseCase
	KPI          kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	s.POST("/api/owner/register", h.register)

	campaigns := s.Group("/api/campaigns")
	campaigns.POST("", h.createCampaign)
	campaigns.GET("/:id", h.getCampaign)
	campaigns.POST("/:id/actions", h.applyAction)
	campaigns.POST("/:id/characters", h.forgeCharacter)
	campaigns.GET("/:id/replay", h.replay)

	s.GET("/ops/kpi", h.kpi)
}

type actionRequest struct {
	IdempotencyKey string                  `json:"idempotency_key"`
	Action         forge.PlayerWorldAction `json:"action"`
}

type campaignResponse struct {
	CampaignID   string                `json:"campaign_id"`
	Version      int64                 `json:"version"`
	Context      forge.CampaignContext `json:"context"`
	RuntimeState forge.RuntimeState    `json:"runtime_state"`
}

func (h Handler) register(c context.Context, ctx *app.RequestContext) {
	resp, err := h.RegisterUC.Execute(c, auth.RegisterRequest{})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) createCampaign(c context.Context, ctx *app.RequestContext) {
	ownerID, err := h.requireAuthenticatedOwner(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	body := ctx.Request.Body()
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if err := compiledForgeInputSchema.Validate(raw); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_input", err.Error())
		return
	}
	var input forge.ForgeInput
	if err := json.Unmarshal(body, &input); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.GenerateUC.Execute(c, generate.Request{OwnerID: ownerID, Input: input})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, map[string]any{
		"campaign_id": resp.CampaignID,
		"context":     resp.Context,
	})
}

func (h Handler) getCampaign(c context.Context, ctx *app.RequestContext) {
	record, err := h.ownedCampaign(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, campaignResponse{
		CampaignID:   record.CampaignID,
		Version:      record.Version,
		Context:      record.Context,
		RuntimeState: record.RuntimeState,
	})
}

func (h Handler) applyAction(c context.Context, ctx *app.RequestContext) {
	record, err := h.ownedCampaign(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	var body actionRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.AdvanceUC.Execute(c, advance.Request{
		CampaignID:     record.CampaignID,
		IdempotencyKey: body.IdempotencyKey,
		Action:         body.Action,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{
		"state":    resp.UpdatedState,
		"events":   resp.Events,
		"replayed": resp.Replayed,
	})
}

func (h Handler) forgeCharacter(c context.Context, ctx *app.RequestContext) {
	record, err := h.ownedCampaign(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	var input forge.CharacterForgeInput
	if err := decodeJSON(ctx, &input); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.CharactersUC.Execute(c, characters.Request{
		CampaignID: record.CampaignID,
		Input:      input,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, map[string]any{
		"binding":       resp.Binding,
		"runtime_state": resp.RuntimeState,
	})
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	record, err := h.ownedCampaign(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	tickFrom, _ := strconv.ParseInt(string(ctx.Query("tick_from")), 10, 64)
	tickTo, _ := strconv.ParseInt(string(ctx.Query("tick_to")), 10, 64)

	resp, err := h.ReplayUC.Execute(c, replay.Request{
		CampaignID: record.CampaignID,
		Limit:      limit,
		TickFrom:   tickFrom,
		TickTo:     tickTo,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
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

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

var ErrMissingOwnerIDHeader = errors.New("missing x-owner-id header")
var ErrMissingOwnerKeyHeader = errors.New("missing x-owner-key header")
var ErrMissingOwnerCredentials = errors.New("missing owner credentials")

func (h Handler) requireAuthenticatedOwner(c context.Context, ctx *app.RequestContext) (string, error) {
	ownerID := strings.TrimSpace(string(ctx.GetHeader(ownerIDHeader)))
	ownerKey := strings.TrimSpace(string(ctx.GetHeader(ownerKeyHeader)))
	if ownerID == "" && ownerKey == "" {
		return "", ErrMissingOwnerCredentials
	}
	if ownerID == "" {
		return "", ErrMissingOwnerIDHeader
	}
	if ownerKey == "" {
		return "", ErrMissingOwnerKeyHeader
	}
	if err := h.AuthUC.Execute(c, auth.VerifyRequest{
		OwnerID:  ownerID,
		OwnerKey: ownerKey,
	}); err != nil {
		return "", err
	}
	return ownerID, nil
}

// ownedCampaign authenticates the caller and loads the campaign from
// the path, hiding campaigns the caller does not own behind not-found.
func (h Handler) ownedCampaign(c context.Context, ctx *app.RequestContext) (ports.CampaignRecord, error) {
	ownerID, err := h.requireAuthenticatedOwner(c, ctx)
	if err != nil {
		return ports.CampaignRecord{}, err
	}
	campaignID := strings.TrimSpace(string(ctx.Param("id")))
	if campaignID == "" {
		return ports.CampaignRecord{}, inspect.ErrInvalidRequest
	}
	resp, err := h.InspectUC.Execute(c, inspect.Request{CampaignID: campaignID})
	if err != nil {
		return ports.CampaignRecord{}, err
	}
	if resp.Record.OwnerID != ownerID {
		return ports.CampaignRecord{}, ports.ErrNotFound
	}
	return resp.Record, nil
}

func writeError(ctx *app.RequestContext, err error) {
	var ve *forge.ValidationError
	switch {
	case errors.Is(err, ErrMissingOwnerCredentials):
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_owner_credentials", err.Error())
	case errors.Is(err, ErrMissingOwnerIDHeader):
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_owner_id", err.Error())
	case errors.Is(err, ErrMissingOwnerKeyHeader):
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_owner_key", err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeErrorBody(ctx, consts.StatusUnauthorized, "invalid_owner_credentials", err.Error())
	case errors.As(err, &ve):
		writeValidationError(ctx, ve)
	case errors.Is(err, forge.ErrValidation):
		writeErrorBody(ctx, consts.StatusBadRequest, "validation_failed", err.Error())
	case errors.Is(err, auth.ErrInvalidRequest),
		errors.Is(err, generate.ErrInvalidRequest),
		errors.Is(err, advance.ErrInvalidRequest),
		errors.Is(err, characters.ErrInvalidRequest),
		errors.Is(err, inspect.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeValidationError(ctx *app.RequestContext, ve *forge.ValidationError) {
	ctx.JSON(consts.StatusBadRequest, map[string]any{
		"error": map[string]any{
			"code":    "validation_failed",
			"message": ve.Error(),
			"field":   ve.Field,
		},
	})
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
