// Package v1alpha1 handles the expedition planning grpc service interface
package v1alpha1

import (
	"context"

	expeditionv1alpha1 "github.com/KirkDiggler/raid-gold-api/internal/api/expedition/v1alpha1"
	"github.com/KirkDiggler/raid-gold-api/internal/errors"
	"github.com/KirkDiggler/raid-gold-api/internal/orchestrators/expedition"
)

// HandlerConfig holds dependencies for the expedition handler
type HandlerConfig struct {
	ExpeditionService expedition.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.ExpeditionService == nil {
		return errors.InvalidArgument("expedition service is required")
	}
	return nil
}

// Handler implements the expedition gRPC service
type Handler struct {
	expeditionv1alpha1.UnimplementedExpeditionServiceServer
	expeditionService expedition.Service
}

// NewHandler creates a new expedition handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		expeditionService: cfg.ExpeditionService,
	}, nil
}

// GetRoster returns the top characters of the identity's account
func (h *Handler) GetRoster(
	ctx context.Context,
	req *expeditionv1alpha1.GetRosterRequest,
) (*expeditionv1alpha1.GetRosterResponse, error) {
	if req.Identity == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("identity is required"))
	}

	out, err := h.expeditionService.GetRoster(ctx, &expedition.GetRosterInput{Identity: req.Identity})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &expeditionv1alpha1.GetRosterResponse{
		Characters: convertCharacters(out.Characters),
	}, nil
}

// ListRaids returns the raid catalog
func (h *Handler) ListRaids(
	ctx context.Context,
	_ *expeditionv1alpha1.ListRaidsRequest,
) (*expeditionv1alpha1.ListRaidsResponse, error) {
	out, err := h.expeditionService.ListRaids(ctx, &expedition.ListRaidsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &expeditionv1alpha1.ListRaidsResponse{
		Raids: convertRaids(out.Raids),
	}, nil
}

// LoadSelections discards unsaved changes and returns the saved selections
func (h *Handler) LoadSelections(
	ctx context.Context,
	req *expeditionv1alpha1.LoadSelectionsRequest,
) (*expeditionv1alpha1.LoadSelectionsResponse, error) {
	if req.Identity == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("identity is required"))
	}

	out, err := h.expeditionService.LoadSelections(ctx, &expedition.LoadSelectionsInput{Identity: req.Identity})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &expeditionv1alpha1.LoadSelectionsResponse{
		Selections: convertSelections(out.Selections),
	}, nil
}

// GetSelections returns the working selections
func (h *Handler) GetSelections(
	ctx context.Context,
	req *expeditionv1alpha1.GetSelectionsRequest,
) (*expeditionv1alpha1.GetSelectionsResponse, error) {
	if req.Identity == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("identity is required"))
	}

	out, err := h.expeditionService.GetSelections(ctx, &expedition.GetSelectionsInput{Identity: req.Identity})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &expeditionv1alpha1.GetSelectionsResponse{
		Selections: convertSelections(out.Selections),
	}, nil
}

// ToggleRaid selects or deselects a raid for a character
func (h *Handler) ToggleRaid(
	ctx context.Context,
	req *expeditionv1alpha1.ToggleRaidRequest,
) (*expeditionv1alpha1.ToggleRaidResponse, error) {
	if req.Identity == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("identity is required"))
	}
	if req.Character == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character is required"))
	}

	out, err := h.expeditionService.ToggleRaid(ctx, &expedition.ToggleRaidInput{
		Identity:  req.Identity,
		Character: req.Character,
		RaidID:    req.RaidID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &expeditionv1alpha1.ToggleRaidResponse{
		Selected:   out.Selected,
		Tier:       out.Tier.String(),
		Selections: convertSelections(out.Selections),
	}, nil
}

// SetDifficulty chooses the tier for a character's raid
func (h *Handler) SetDifficulty(
	ctx context.Context,
	req *expeditionv1alpha1.SetDifficultyRequest,
) (*expeditionv1alpha1.SetDifficultyResponse, error) {
	if req.Identity == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("identity is required"))
	}
	if req.Character == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character is required"))
	}
	if req.Tier == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("tier is required"))
	}

	out, err := h.expeditionService.SetDifficulty(ctx, &expedition.SetDifficultyInput{
		Identity:  req.Identity,
		Character: req.Character,
		RaidID:    req.RaidID,
		Tier:      convertTier(req.Tier),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &expeditionv1alpha1.SetDifficultyResponse{
		Selections: convertSelections(out.Selections),
	}, nil
}

// SetExtraIncome records extra income for a character
func (h *Handler) SetExtraIncome(
	ctx context.Context,
	req *expeditionv1alpha1.SetExtraIncomeRequest,
) (*expeditionv1alpha1.SetExtraIncomeResponse, error) {
	if req.Identity == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("identity is required"))
	}
	if req.Character == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character is required"))
	}

	out, err := h.expeditionService.SetExtraIncome(ctx, &expedition.SetExtraIncomeInput{
		Identity:  req.Identity,
		Character: req.Character,
		Amount:    req.Amount,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &expeditionv1alpha1.SetExtraIncomeResponse{
		Selections: convertSelections(out.Selections),
	}, nil
}

// SaveSelections persists the working state or the state in the request
func (h *Handler) SaveSelections(
	ctx context.Context,
	req *expeditionv1alpha1.SaveSelectionsRequest,
) (*expeditionv1alpha1.SaveSelectionsResponse, error) {
	if req.Identity == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("identity is required"))
	}

	out, err := h.expeditionService.SaveSelections(ctx, &expedition.SaveSelectionsInput{
		Identity: req.Identity,
		State:    convertStateFromProto(req.State),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &expeditionv1alpha1.SaveSelectionsResponse{
		Selections: convertSelections(out.Selections),
		SavedAt:    out.SavedAt.Unix(),
	}, nil
}

// ResetSelections clears and saves an empty plan
func (h *Handler) ResetSelections(
	ctx context.Context,
	req *expeditionv1alpha1.ResetSelectionsRequest,
) (*expeditionv1alpha1.ResetSelectionsResponse, error) {
	if req.Identity == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("identity is required"))
	}

	out, err := h.expeditionService.ResetSelections(ctx, &expedition.ResetSelectionsInput{Identity: req.Identity})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &expeditionv1alpha1.ResetSelectionsResponse{
		Selections: convertSelections(out.Selections),
		SavedAt:    out.SavedAt.Unix(),
	}, nil
}
