package expedition_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	lostarkmock "github.com/KirkDiggler/raid-gold-api/internal/clients/lostark/mock"
	"github.com/KirkDiggler/raid-gold-api/internal/entities"
	"github.com/KirkDiggler/raid-gold-api/internal/errors"
	"github.com/KirkDiggler/raid-gold-api/internal/orchestrators/expedition"
	"github.com/KirkDiggler/raid-gold-api/internal/pkg/clock"
	"github.com/KirkDiggler/raid-gold-api/internal/pkg/idgen"
	"github.com/KirkDiggler/raid-gold-api/internal/repositories/raids"
	raidsmock "github.com/KirkDiggler/raid-gold-api/internal/repositories/raids/mock"
	"github.com/KirkDiggler/raid-gold-api/internal/repositories/selections"
	selectionsmock "github.com/KirkDiggler/raid-gold-api/internal/repositories/selections/mock"
	"github.com/KirkDiggler/raid-gold-api/internal/repositories/workspace"
	workspacemock "github.com/KirkDiggler/raid-gold-api/internal/repositories/workspace/mock"
	"github.com/KirkDiggler/raid-gold-api/internal/testutils"
	"github.com/KirkDiggler/raid-gold-api/internal/testutils/mocks"
)

var testNow = time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRoster    *lostarkmock.MockClient
	selectionRepo *selections.InMemoryRepository
	workspaceRepo *workspace.InMemoryRepository
	clock         *clock.Fixed
	orchestrator  expedition.Service
	ctx           context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRoster = lostarkmock.NewMockClient(s.ctrl)
	s.clock = &clock.Fixed{At: testNow}
	s.selectionRepo = selections.NewInMemory(s.clock, idgen.NewSequential("rev"))
	s.workspaceRepo = workspace.NewInMemory(s.clock, time.Hour)
	s.ctx = context.Background()

	orch, err := expedition.NewOrchestrator(&expedition.Config{
		RosterClient:  s.mockRoster,
		RaidRepo:      raids.NewInMemory(testutils.CreateTestCatalog()),
		SelectionRepo: s.selectionRepo,
		WorkspaceRepo: s.workspaceRepo,
	})
	s.Require().NoError(err)
	s.orchestrator = orch
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) saveState(state *entities.SelectionState) {
	_, err := s.selectionRepo.Save(s.ctx, selections.SaveInput{Identity: testutils.TestIdentity, State: state})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) toggle(character string, raidID int32) *expedition.ToggleRaidOutput {
	out, err := s.orchestrator.ToggleRaid(s.ctx, &expedition.ToggleRaidInput{
		Identity:  testutils.TestIdentity,
		Character: character,
		RaidID:    raidID,
	})
	s.Require().NoError(err)
	return out
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidatesConfig() {
	_, err := expedition.NewOrchestrator(&expedition.Config{})

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	for _, field := range []string{"RosterClient", "RaidRepo", "SelectionRepo", "WorkspaceRepo"} {
		s.Contains(err.Error(), field)
	}
}

func (s *OrchestratorTestSuite) TestGetRosterSortsAndTruncates() {
	characters := make([]*entities.CharacterSummary, 0, 8)
	for i := 0; i < 8; i++ {
		characters = append(characters, &entities.CharacterSummary{
			Name:      fmt.Sprintf("char%d", i),
			ClassName: "Bard",
			ItemLevel: 1500 + float64(i*10),
		})
	}
	mocks.ExpectRosterLookup(s.ctx, s.mockRoster, testutils.TestIdentity, characters, nil)

	out, err := s.orchestrator.GetRoster(s.ctx, &expedition.GetRosterInput{Identity: testutils.TestIdentity})

	s.Require().NoError(err)
	s.Require().Len(out.Characters, expedition.MaxRosterSize)
	s.Equal("char7", out.Characters[0].Name)
	s.Equal("char2", out.Characters[5].Name)
	for i := 1; i < len(out.Characters); i++ {
		s.GreaterOrEqual(out.Characters[i-1].ItemLevel, out.Characters[i].ItemLevel)
	}
}

func (s *OrchestratorTestSuite) TestGetRosterShortRosterIsValid() {
	characters := []*entities.CharacterSummary{
		{Name: "Alice", ItemLevel: 1500},
		{Name: "Bob", ItemLevel: 1620.5},
	}
	mocks.ExpectRosterLookup(s.ctx, s.mockRoster, testutils.TestIdentity, characters, nil)

	out, err := s.orchestrator.GetRoster(s.ctx, &expedition.GetRosterInput{Identity: testutils.TestIdentity})

	s.Require().NoError(err)
	s.Require().Len(out.Characters, 2)
	s.Equal("Bob", out.Characters[0].Name)
}

func (s *OrchestratorTestSuite) TestGetRosterUnavailable() {
	s.Run("empty roster", func() {
		mocks.ExpectRosterLookup(s.ctx, s.mockRoster, "Nobody", []*entities.CharacterSummary{}, nil)

		out, err := s.orchestrator.GetRoster(s.ctx, &expedition.GetRosterInput{Identity: "Nobody"})

		s.Nil(out)
		s.Require().Error(err)
		s.True(errors.IsUnavailable(err))
		s.Contains(err.Error(), "roster unavailable")
	})

	s.Run("upstream failure", func() {
		mocks.ExpectRosterLookup(s.ctx, s.mockRoster, "Bob", nil, errors.ResourceExhausted("rate limit exceeded"))

		out, err := s.orchestrator.GetRoster(s.ctx, &expedition.GetRosterInput{Identity: "Bob"})

		s.Nil(out)
		s.Require().Error(err)
		s.True(errors.IsUnavailable(err))
	})
}

func (s *OrchestratorTestSuite) TestGetRosterRequiresIdentity() {
	_, err := s.orchestrator.GetRoster(s.ctx, &expedition.GetRosterInput{Identity: " "})

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestListRaids() {
	out, err := s.orchestrator.ListRaids(s.ctx, &expedition.ListRaidsInput{})

	s.Require().NoError(err)
	s.Len(out.Raids, len(testutils.CreateTestCatalog()))
	s.Equal(testutils.RaidValtan, out.Raids[0].ID)
}

func (s *OrchestratorTestSuite) TestLoadSelectionsWithoutSavedStateIsEmpty() {
	out, err := s.orchestrator.LoadSelections(s.ctx, &expedition.LoadSelectionsInput{Identity: testutils.TestIdentity})

	s.Require().NoError(err)
	s.True(out.Selections.State.Empty())
	s.False(out.Selections.Saved)
	s.Equal(int64(0), out.Selections.Totals.Grand)
}

func (s *OrchestratorTestSuite) TestLoadSelectionsComputesTotals() {
	s.saveState(testutils.CreateTestSelectionState())

	out, err := s.orchestrator.LoadSelections(s.ctx, &expedition.LoadSelectionsInput{Identity: testutils.TestIdentity})

	s.Require().NoError(err)
	s.True(out.Selections.Saved)
	s.Equal("rev_1", out.Selections.Revision)
	s.Equal(int64(4100), out.Selections.Totals.PerCharacter["Bob"])
	s.Equal(int64(7350), out.Selections.Totals.Grand)
}

func (s *OrchestratorTestSuite) TestLoadSelectionsDiscardsUnsavedChanges() {
	s.toggle("Bob", testutils.RaidValtan)

	out, err := s.orchestrator.LoadSelections(s.ctx, &expedition.LoadSelectionsInput{Identity: testutils.TestIdentity})

	s.Require().NoError(err)
	s.True(out.Selections.State.Empty())
}

func (s *OrchestratorTestSuite) TestToggleRaidUpdatesWorkspaceAndTotals() {
	out := s.toggle("Bob", testutils.RaidValtan)
	s.True(out.Selected)
	s.Equal(entities.TierNormal, out.Tier)
	s.Equal(int64(1200), out.Selections.Totals.Grand)

	got, err := s.orchestrator.GetSelections(s.ctx, &expedition.GetSelectionsInput{Identity: testutils.TestIdentity})
	s.Require().NoError(err)
	s.Equal([]int32{testutils.RaidValtan}, got.Selections.State.ChosenRaids["Bob"])

	// unsaved until SaveSelections
	_, err = s.selectionRepo.Get(s.ctx, selections.GetInput{Identity: testutils.TestIdentity})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestToggleRaidStartsFromSavedState() {
	s.saveState(testutils.CreateTestSelectionState())

	out := s.toggle("Bob", testutils.RaidBrelshaza)

	s.True(out.Selected)
	s.Equal([]int32{testutils.RaidValtan, testutils.RaidVykas, testutils.RaidBrelshaza}, out.Selections.State.ChosenRaids["Bob"])
	s.Equal(int64(4100+4500), out.Selections.Totals.PerCharacter["Bob"])
}

func (s *OrchestratorTestSuite) TestToggleRaidCapacityLeavesWorkspaceUnchanged() {
	for _, id := range []int32{testutils.RaidValtan, testutils.RaidVykas, testutils.RaidKakul} {
		s.toggle("Bob", id)
	}

	_, err := s.orchestrator.ToggleRaid(s.ctx, &expedition.ToggleRaidInput{
		Identity:  testutils.TestIdentity,
		Character: "Bob",
		RaidID:    testutils.RaidBrelshaza,
	})
	s.Require().Error(err)
	s.True(errors.IsResourceExhausted(err))

	got, err := s.orchestrator.GetSelections(s.ctx, &expedition.GetSelectionsInput{Identity: testutils.TestIdentity})
	s.Require().NoError(err)
	s.Len(got.Selections.State.ChosenRaids["Bob"], entities.MaxRaidsPerCharacter)
	s.NotContains(got.Selections.State.ChosenRaids["Bob"], testutils.RaidBrelshaza)
}

func (s *OrchestratorTestSuite) TestSetDifficulty() {
	s.toggle("Bob", testutils.RaidValtan)

	out, err := s.orchestrator.SetDifficulty(s.ctx, &expedition.SetDifficultyInput{
		Identity:  testutils.TestIdentity,
		Character: "Bob",
		RaidID:    testutils.RaidValtan,
		Tier:      entities.TierHard,
	})

	s.Require().NoError(err)
	s.Equal(int64(1800), out.Selections.Totals.Grand)
}

func (s *OrchestratorTestSuite) TestSetDifficultyUnavailableTier() {
	s.toggle("Bob", testutils.RaidKakul)

	_, err := s.orchestrator.SetDifficulty(s.ctx, &expedition.SetDifficultyInput{
		Identity:  testutils.TestIdentity,
		Character: "Bob",
		RaidID:    testutils.RaidKakul,
		Tier:      entities.TierHard,
	})

	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestSetExtraIncome() {
	s.toggle("Bob", testutils.RaidValtan)

	out, err := s.orchestrator.SetExtraIncome(s.ctx, &expedition.SetExtraIncomeInput{
		Identity:  testutils.TestIdentity,
		Character: "Bob",
		Amount:    "500",
	})
	s.Require().NoError(err)
	s.Equal(int64(1700), out.Selections.Totals.Grand)

	out, err = s.orchestrator.SetExtraIncome(s.ctx, &expedition.SetExtraIncomeInput{
		Identity:  testutils.TestIdentity,
		Character: "Bob",
		Amount:    "abc",
	})
	s.Require().NoError(err)
	s.Equal("abc", out.Selections.State.ExtraIncome["Bob"])
	s.Equal(int64(1200), out.Selections.Totals.Grand)
}

func (s *OrchestratorTestSuite) TestSaveSelectionsPersistsWorkspace() {
	s.toggle("Bob", testutils.RaidVykas)

	out, err := s.orchestrator.SaveSelections(s.ctx, &expedition.SaveSelectionsInput{Identity: testutils.TestIdentity})

	s.Require().NoError(err)
	s.True(out.Selections.Saved)
	s.Equal("rev_1", out.Selections.Revision)
	s.True(out.SavedAt.Equal(testNow))

	saved, err := s.selectionRepo.Get(s.ctx, selections.GetInput{Identity: testutils.TestIdentity})
	s.Require().NoError(err)
	s.Equal([]int32{testutils.RaidVykas}, saved.Record.State.ChosenRaids["Bob"])
}

func (s *OrchestratorTestSuite) TestSaveSelectionsWithSuppliedState() {
	state := testutils.CreateTestSelectionState()

	out, err := s.orchestrator.SaveSelections(s.ctx, &expedition.SaveSelectionsInput{
		Identity: testutils.TestIdentity,
		State:    state,
	})
	s.Require().NoError(err)
	s.Equal(int64(7350), out.Selections.Totals.Grand)

	// the supplied state becomes the working state too
	got, err := s.orchestrator.GetSelections(s.ctx, &expedition.GetSelectionsInput{Identity: testutils.TestIdentity})
	s.Require().NoError(err)
	s.Equal(state, got.Selections.State)
}

func (s *OrchestratorTestSuite) TestSaveSelectionsRejectsInvalidState() {
	testCases := []struct {
		name  string
		state *entities.SelectionState
	}{
		{
			name:  "missing difficulties",
			state: &entities.SelectionState{ChosenRaids: map[string][]int32{}, ExtraIncome: map[string]string{}},
		},
		{
			name: "hard only raid without a tier",
			state: func() *entities.SelectionState {
				state := entities.NewSelectionState()
				state.ChosenRaids["Bob"] = []int32{testutils.RaidHardOnly}
				return state
			}(),
		},
		{
			name: "four raids",
			state: func() *entities.SelectionState {
				state := entities.NewSelectionState()
				state.ChosenRaids["Bob"] = []int32{1, 2, 3, 4}
				return state
			}(),
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.SaveSelections(s.ctx, &expedition.SaveSelectionsInput{
				Identity: testutils.TestIdentity,
				State:    tc.state,
			})
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))

			_, err = s.selectionRepo.Get(s.ctx, selections.GetInput{Identity: testutils.TestIdentity})
			s.True(errors.IsNotFound(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestSaveSelectionsRequiresIdentity() {
	_, err := s.orchestrator.SaveSelections(s.ctx, &expedition.SaveSelectionsInput{})

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestResetSelections() {
	s.saveState(testutils.CreateTestSelectionState())
	s.toggle("Alice", testutils.RaidValtan)

	out, err := s.orchestrator.ResetSelections(s.ctx, &expedition.ResetSelectionsInput{Identity: testutils.TestIdentity})

	s.Require().NoError(err)
	s.True(out.Selections.State.Empty())
	s.Equal(int64(0), out.Selections.Totals.Grand)

	saved, err := s.selectionRepo.Get(s.ctx, selections.GetInput{Identity: testutils.TestIdentity})
	s.Require().NoError(err)
	s.True(saved.Record.State.Empty())
}

func (s *OrchestratorTestSuite) TestResetSelectionsRequiresIdentity() {
	_, err := s.orchestrator.ResetSelections(s.ctx, &expedition.ResetSelectionsInput{})

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestExpiredWorkspaceRehydrates() {
	s.saveState(testutils.CreateTestSelectionState())
	s.toggle("Dave", testutils.RaidValtan)

	s.clock.At = testNow.Add(2 * time.Hour)

	got, err := s.orchestrator.GetSelections(s.ctx, &expedition.GetSelectionsInput{Identity: testutils.TestIdentity})
	s.Require().NoError(err)
	s.NotContains(got.Selections.State.ChosenRaids, "Dave")
	s.Equal(testutils.CreateTestSelectionState(), got.Selections.State)
}

type OrchestratorFailureTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockSelection *selectionsmock.MockRepository
	mockWorkspace *workspacemock.MockRepository
	orchestrator  expedition.Service
	ctx           context.Context
}

func TestOrchestratorFailureSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorFailureTestSuite))
}

func (s *OrchestratorFailureTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSelection = selectionsmock.NewMockRepository(s.ctrl)
	s.mockWorkspace = workspacemock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	orch, err := expedition.NewOrchestrator(&expedition.Config{
		RosterClient:  lostarkmock.NewMockClient(s.ctrl),
		RaidRepo:      raids.NewInMemory(testutils.CreateTestCatalog()),
		SelectionRepo: s.mockSelection,
		WorkspaceRepo: s.mockWorkspace,
	})
	s.Require().NoError(err)
	s.orchestrator = orch
}

func (s *OrchestratorFailureTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorFailureTestSuite) TestStoreFailureOnLoad() {
	s.mockSelection.EXPECT().
		Get(s.ctx, selections.GetInput{Identity: testutils.TestIdentity}).
		Return(nil, errors.Unavailable("redis down"))

	_, err := s.orchestrator.LoadSelections(s.ctx, &expedition.LoadSelectionsInput{Identity: testutils.TestIdentity})

	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}

func (s *OrchestratorFailureTestSuite) TestSaveFailureSurfacesStoreError() {
	mocks.ExpectWorkspaceGet(s.ctx, s.mockWorkspace, testutils.TestIdentity, testutils.CreateTestSelectionState())
	s.mockSelection.EXPECT().
		Save(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("disk full"))

	_, err := s.orchestrator.SaveSelections(s.ctx, &expedition.SaveSelectionsInput{Identity: testutils.TestIdentity})

	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func (s *OrchestratorFailureTestSuite) TestWorkspaceReadFailure() {
	s.mockWorkspace.EXPECT().
		Get(s.ctx, workspace.GetInput{Identity: testutils.TestIdentity}).
		Return(nil, errors.Unavailable("redis down"))

	_, err := s.orchestrator.ToggleRaid(s.ctx, &expedition.ToggleRaidInput{
		Identity:  testutils.TestIdentity,
		Character: "Bob",
		RaidID:    testutils.RaidValtan,
	})

	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}

func (s *OrchestratorFailureTestSuite) TestLoadHydratesFromStoredRecord() {
	mocks.ExpectSelectionGet(s.ctx, s.mockSelection, testutils.TestIdentity, &entities.SelectionRecord{
		Identity: testutils.TestIdentity,
		State:    testutils.CreateTestSelectionState(),
		Revision: "rev_9",
	}, nil)
	mocks.ExpectWorkspaceSave(s.ctx, s.mockWorkspace)

	out, err := s.orchestrator.LoadSelections(s.ctx, &expedition.LoadSelectionsInput{Identity: testutils.TestIdentity})

	s.Require().NoError(err)
	s.True(out.Selections.Saved)
	s.Equal("rev_9", out.Selections.Revision)
	s.Equal(int64(7350), out.Selections.Totals.Grand)
}

func (s *OrchestratorFailureTestSuite) TestWorkspaceWriteFailureAfterSave() {
	mocks.ExpectSelectionSave(s.ctx, s.mockSelection, "rev_2")
	s.mockWorkspace.EXPECT().
		Save(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	_, err := s.orchestrator.ResetSelections(s.ctx, &expedition.ResetSelectionsInput{Identity: testutils.TestIdentity})

	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}

func (s *OrchestratorFailureTestSuite) TestCatalogFailureLeavesWorkspaceUntouched() {
	mockRaids := raidsmock.NewMockRepository(s.ctrl)
	orch, err := expedition.NewOrchestrator(&expedition.Config{
		RosterClient:  lostarkmock.NewMockClient(s.ctrl),
		RaidRepo:      mockRaids,
		SelectionRepo: s.mockSelection,
		WorkspaceRepo: s.mockWorkspace,
	})
	s.Require().NoError(err)

	s.mockWorkspace.EXPECT().
		Get(s.ctx, workspace.GetInput{Identity: testutils.TestIdentity}).
		Return(&workspace.GetOutput{Workspace: &workspace.Workspace{
			Identity: testutils.TestIdentity,
			State:    testutils.CreateTestSelectionState(),
		}}, nil)
	mockRaids.EXPECT().
		List(s.ctx, raids.ListInput{}).
		Return(nil, errors.Unavailable("catalog unreadable"))

	_, err = orch.ToggleRaid(s.ctx, &expedition.ToggleRaidInput{
		Identity:  testutils.TestIdentity,
		Character: "Bob",
		RaidID:    testutils.RaidValtan,
	})

	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
	s.Contains(err.Error(), "failed to load raid catalog")
}
