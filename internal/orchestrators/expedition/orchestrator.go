// Package expedition implements the raid planning orchestrator: roster lookup,
// selection editing against a per-player workspace, gold totals and saving
package expedition

//go:generate mockgen -destination=mock/mock_service.go -package=expeditionmock github.com/KirkDiggler/raid-gold-api/internal/orchestrators/expedition Service

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/KirkDiggler/raid-gold-api/internal/clients/lostark"
	"github.com/KirkDiggler/raid-gold-api/internal/entities"
	"github.com/KirkDiggler/raid-gold-api/internal/errors"
	"github.com/KirkDiggler/raid-gold-api/internal/gold"
	"github.com/KirkDiggler/raid-gold-api/internal/repositories/raids"
	"github.com/KirkDiggler/raid-gold-api/internal/repositories/selections"
	"github.com/KirkDiggler/raid-gold-api/internal/repositories/workspace"
	"github.com/KirkDiggler/raid-gold-api/internal/selection"
)

// MaxRosterSize is how many characters a roster lookup returns
const MaxRosterSize = 6

const msgRosterUnavailable = "roster unavailable"

// Service defines the interface for expedition planning operations
type Service interface {
	// Lookups
	GetRoster(ctx context.Context, input *GetRosterInput) (*GetRosterOutput, error)
	ListRaids(ctx context.Context, input *ListRaidsInput) (*ListRaidsOutput, error)

	// Working state
	LoadSelections(ctx context.Context, input *LoadSelectionsInput) (*LoadSelectionsOutput, error)
	GetSelections(ctx context.Context, input *GetSelectionsInput) (*GetSelectionsOutput, error)
	ToggleRaid(ctx context.Context, input *ToggleRaidInput) (*ToggleRaidOutput, error)
	SetDifficulty(ctx context.Context, input *SetDifficultyInput) (*SetDifficultyOutput, error)
	SetExtraIncome(ctx context.Context, input *SetExtraIncomeInput) (*SetExtraIncomeOutput, error)

	// Persistence
	SaveSelections(ctx context.Context, input *SaveSelectionsInput) (*SaveSelectionsOutput, error)
	ResetSelections(ctx context.Context, input *ResetSelectionsInput) (*ResetSelectionsOutput, error)
}

// Config holds the dependencies for the expedition orchestrator
type Config struct {
	RosterClient  lostark.Client
	RaidRepo      raids.Repository
	SelectionRepo selections.Repository
	WorkspaceRepo workspace.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.RosterClient == nil {
		vb.RequiredField("RosterClient")
	}
	if c.RaidRepo == nil {
		vb.RequiredField("RaidRepo")
	}
	if c.SelectionRepo == nil {
		vb.RequiredField("SelectionRepo")
	}
	if c.WorkspaceRepo == nil {
		vb.RequiredField("WorkspaceRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	rosterClient  lostark.Client
	raidRepo      raids.Repository
	selectionRepo selections.Repository
	workspaceRepo workspace.Repository

	// One in-flight mutation per identity
	locksMu sync.Mutex
	locks   map[string]*identityLock
}

// identityLock is dropped from the map once nobody holds or waits on it
type identityLock struct {
	mu   sync.Mutex
	refs int
}

// NewOrchestrator creates a new expedition orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		rosterClient:  cfg.RosterClient,
		raidRepo:      cfg.RaidRepo,
		selectionRepo: cfg.SelectionRepo,
		workspaceRepo: cfg.WorkspaceRepo,
		locks:         make(map[string]*identityLock),
	}, nil
}

// GetRoster looks up the characters on the identity's account
func (o *orchestrator) GetRoster(ctx context.Context, input *GetRosterInput) (*GetRosterOutput, error) {
	identity, err := requireIdentity(input.Identity)
	if err != nil {
		return nil, err
	}

	characters, err := o.rosterClient.GetSiblings(ctx, identity)
	if err != nil {
		if errors.IsInvalidArgument(err) {
			return nil, err
		}
		slog.Error("Roster lookup failed",
			"identity", identity,
			"error", err,
		)
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, msgRosterUnavailable)
	}
	if len(characters) == 0 {
		return nil, errors.Unavailable(msgRosterUnavailable).WithMeta("identity", identity)
	}

	sorted := make([]*entities.CharacterSummary, 0, len(characters))
	for _, character := range characters {
		if character != nil {
			sorted = append(sorted, character)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ItemLevel > sorted[j].ItemLevel
	})
	if len(sorted) > MaxRosterSize {
		sorted = sorted[:MaxRosterSize]
	}

	return &GetRosterOutput{Characters: sorted}, nil
}

// ListRaids returns the raid catalog
func (o *orchestrator) ListRaids(ctx context.Context, _ *ListRaidsInput) (*ListRaidsOutput, error) {
	out, err := o.raidRepo.List(ctx, raids.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list raids")
	}

	return &ListRaidsOutput{Raids: out.Raids}, nil
}

// LoadSelections replaces the working state with the saved one, or an empty state if nothing was saved
func (o *orchestrator) LoadSelections(ctx context.Context, input *LoadSelectionsInput) (*LoadSelectionsOutput, error) {
	identity, err := requireIdentity(input.Identity)
	if err != nil {
		return nil, err
	}

	unlock := o.lock(identity)
	defer unlock()

	ws, err := o.hydrate(ctx, identity)
	if err != nil {
		return nil, err
	}

	result, err := o.view(ctx, ws)
	if err != nil {
		return nil, err
	}

	return &LoadSelectionsOutput{Selections: result}, nil
}

// GetSelections returns the working state, loading it first if there is none
func (o *orchestrator) GetSelections(ctx context.Context, input *GetSelectionsInput) (*GetSelectionsOutput, error) {
	identity, err := requireIdentity(input.Identity)
	if err != nil {
		return nil, err
	}

	unlock := o.lock(identity)
	defer unlock()

	ws, err := o.workingState(ctx, identity)
	if err != nil {
		return nil, err
	}

	result, err := o.view(ctx, ws)
	if err != nil {
		return nil, err
	}

	return &GetSelectionsOutput{Selections: result}, nil
}

// ToggleRaid selects an unselected raid or deselects a selected one
func (o *orchestrator) ToggleRaid(ctx context.Context, input *ToggleRaidInput) (*ToggleRaidOutput, error) {
	identity, err := requireIdentity(input.Identity)
	if err != nil {
		return nil, err
	}

	unlock := o.lock(identity)
	defer unlock()

	ws, err := o.workingState(ctx, identity)
	if err != nil {
		return nil, err
	}

	catalog, err := o.catalog(ctx)
	if err != nil {
		return nil, err
	}

	// Mutate a copy so a rejected toggle leaves the workspace untouched
	state := ws.State.Clone()
	toggled, err := selection.ToggleRaid(state, catalog, input.Character, input.RaidID)
	if err != nil {
		return nil, err
	}

	ws.State = state
	if ws, err = o.storeWorkspace(ctx, ws); err != nil {
		return nil, err
	}

	slog.Info("Raid toggled",
		"identity", identity,
		"character", input.Character,
		"raid_id", input.RaidID,
		"selected", toggled.Selected,
		"tier", toggled.Tier,
	)

	return &ToggleRaidOutput{
		Selected:   toggled.Selected,
		Tier:       toggled.Tier,
		Selections: o.viewWithCatalog(ws, catalog),
	}, nil
}

// SetDifficulty records the tier for a character's raid
func (o *orchestrator) SetDifficulty(ctx context.Context, input *SetDifficultyInput) (*SetDifficultyOutput, error) {
	identity, err := requireIdentity(input.Identity)
	if err != nil {
		return nil, err
	}

	unlock := o.lock(identity)
	defer unlock()

	ws, err := o.workingState(ctx, identity)
	if err != nil {
		return nil, err
	}

	catalog, err := o.catalog(ctx)
	if err != nil {
		return nil, err
	}

	state := ws.State.Clone()
	if err := selection.SetDifficulty(state, catalog, input.Character, input.RaidID, input.Tier); err != nil {
		return nil, err
	}

	ws.State = state
	if ws, err = o.storeWorkspace(ctx, ws); err != nil {
		return nil, err
	}

	slog.Info("Difficulty set",
		"identity", identity,
		"character", input.Character,
		"raid_id", input.RaidID,
		"tier", input.Tier,
	)

	return &SetDifficultyOutput{Selections: o.viewWithCatalog(ws, catalog)}, nil
}

// SetExtraIncome records the raw extra income for a character
func (o *orchestrator) SetExtraIncome(ctx context.Context, input *SetExtraIncomeInput) (*SetExtraIncomeOutput, error) {
	identity, err := requireIdentity(input.Identity)
	if err != nil {
		return nil, err
	}

	unlock := o.lock(identity)
	defer unlock()

	ws, err := o.workingState(ctx, identity)
	if err != nil {
		return nil, err
	}

	state := ws.State.Clone()
	if err := selection.SetExtraIncome(state, input.Character, input.Amount); err != nil {
		return nil, err
	}

	ws.State = state
	if ws, err = o.storeWorkspace(ctx, ws); err != nil {
		return nil, err
	}

	slog.Debug("Extra income set",
		"identity", identity,
		"character", input.Character,
	)

	result, err := o.view(ctx, ws)
	if err != nil {
		return nil, err
	}

	return &SetExtraIncomeOutput{Selections: result}, nil
}

// SaveSelections persists the working state, or a complete state supplied by the caller
func (o *orchestrator) SaveSelections(ctx context.Context, input *SaveSelectionsInput) (*SaveSelectionsOutput, error) {
	identity, err := requireIdentity(input.Identity)
	if err != nil {
		return nil, err
	}

	catalog, err := o.catalog(ctx)
	if err != nil {
		return nil, err
	}

	unlock := o.lock(identity)
	defer unlock()

	var state *entities.SelectionState
	if input.State != nil {
		if err := requireComplete(input.State); err != nil {
			return nil, err
		}
		if err := selection.Validate(input.State, catalog); err != nil {
			return nil, err
		}
		state = input.State.Clone()
	} else {
		ws, err := o.workingState(ctx, identity)
		if err != nil {
			return nil, err
		}
		state = ws.State
	}

	saved, err := o.selectionRepo.Save(ctx, selections.SaveInput{Identity: identity, State: state})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save selections")
	}

	ws, err := o.storeWorkspace(ctx, &workspace.Workspace{
		Identity: identity,
		State:    saved.Record.State,
		Loaded:   true,
		Revision: saved.Record.Revision,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Selections saved",
		"identity", identity,
		"revision", saved.Record.Revision,
		"characters", len(saved.Record.State.ChosenRaids),
	)

	return &SaveSelectionsOutput{
		Selections: o.viewWithCatalog(ws, catalog),
		SavedAt:    saved.Record.UpdatedAt,
	}, nil
}

// ResetSelections clears every selection, difficulty and income and saves the empty state
func (o *orchestrator) ResetSelections(ctx context.Context, input *ResetSelectionsInput) (*ResetSelectionsOutput, error) {
	identity, err := requireIdentity(input.Identity)
	if err != nil {
		return nil, err
	}

	unlock := o.lock(identity)
	defer unlock()

	saved, err := o.selectionRepo.Save(ctx, selections.SaveInput{Identity: identity, State: entities.NewSelectionState()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save reset selections")
	}

	ws, err := o.storeWorkspace(ctx, &workspace.Workspace{
		Identity: identity,
		State:    saved.Record.State,
		Loaded:   true,
		Revision: saved.Record.Revision,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Selections reset",
		"identity", identity,
		"revision", saved.Record.Revision,
	)

	result, err := o.view(ctx, ws)
	if err != nil {
		return nil, err
	}

	return &ResetSelectionsOutput{
		Selections: result,
		SavedAt:    saved.Record.UpdatedAt,
	}, nil
}

// workingState returns the live workspace or hydrates one from the saved record
func (o *orchestrator) workingState(ctx context.Context, identity string) (*workspace.Workspace, error) {
	out, err := o.workspaceRepo.Get(ctx, workspace.GetInput{Identity: identity})
	if err == nil {
		return out.Workspace, nil
	}
	if !errors.IsNotFound(err) {
		return nil, errors.Wrap(err, "failed to get workspace")
	}

	return o.hydrate(ctx, identity)
}

// hydrate starts a fresh workspace from the saved record; nothing saved means an empty state
func (o *orchestrator) hydrate(ctx context.Context, identity string) (*workspace.Workspace, error) {
	ws := &workspace.Workspace{Identity: identity}

	out, err := o.selectionRepo.Get(ctx, selections.GetInput{Identity: identity})
	switch {
	case err == nil:
		ws.State = out.Record.State
		ws.Loaded = true
		ws.Revision = out.Record.Revision
	case errors.IsNotFound(err):
		ws.State = entities.NewSelectionState()
	default:
		return nil, errors.Wrap(err, "failed to load saved selections")
	}

	slog.Debug("Workspace hydrated",
		"identity", identity,
		"saved", ws.Loaded,
	)

	return o.storeWorkspace(ctx, ws)
}

func (o *orchestrator) storeWorkspace(ctx context.Context, ws *workspace.Workspace) (*workspace.Workspace, error) {
	out, err := o.workspaceRepo.Save(ctx, workspace.SaveInput{Workspace: ws})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store workspace")
	}
	return out.Workspace, nil
}

func (o *orchestrator) catalog(ctx context.Context) (entities.RaidCatalog, error) {
	out, err := o.raidRepo.List(ctx, raids.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load raid catalog")
	}
	return entities.NewRaidCatalog(out.Raids), nil
}

func (o *orchestrator) view(ctx context.Context, ws *workspace.Workspace) (*Selections, error) {
	catalog, err := o.catalog(ctx)
	if err != nil {
		return nil, err
	}
	return o.viewWithCatalog(ws, catalog), nil
}

func (o *orchestrator) viewWithCatalog(ws *workspace.Workspace, catalog entities.RaidCatalog) *Selections {
	return &Selections{
		Identity: ws.Identity,
		State:    ws.State,
		Totals:   gold.ComputeTotals(ws.State, catalog),
		Saved:    ws.Loaded,
		Revision: ws.Revision,
	}
}

func (o *orchestrator) lock(identity string) func() {
	o.locksMu.Lock()
	l, ok := o.locks[identity]
	if !ok {
		l = &identityLock{}
		o.locks[identity] = l
	}
	l.refs++
	o.locksMu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		o.locksMu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(o.locks, identity)
		}
		o.locksMu.Unlock()
	}
}

func requireIdentity(identity string) (string, error) {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return "", errors.InvalidArgument("identity is required")
	}
	return identity, nil
}

// requireComplete rejects a supplied state that leaves out any of its three parts
func requireComplete(state *entities.SelectionState) error {
	vb := errors.NewValidationBuilder()
	if state.ChosenRaids == nil {
		vb.RequiredField("chosen_raids")
	}
	if state.Difficulties == nil {
		vb.RequiredField("difficulties")
	}
	if state.ExtraIncome == nil {
		vb.RequiredField("extra_income")
	}
	return vb.Build()
}
