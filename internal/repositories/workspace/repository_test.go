package workspace_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/raid-gold-api/internal/errors"
	"github.com/KirkDiggler/raid-gold-api/internal/pkg/clock"
	"github.com/KirkDiggler/raid-gold-api/internal/repositories/workspace"
	"github.com/KirkDiggler/raid-gold-api/internal/testutils"
)

var testNow = time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	cleanup func()
	repo    workspace.Repository
	ctx     context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mr, cleanup := testutils.CreateTestRedis(s.T())
	s.mr = mr
	s.cleanup = cleanup

	repo, err := workspace.NewRedisRepository(&workspace.RedisConfig{
		Client: client,
		Clock:  &clock.Fixed{At: testNow},
		TTL:    time.Hour,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestNewRedisRepositoryValidatesConfig() {
	_, err := workspace.NewRedisRepository(&workspace.RedisConfig{})

	s.Require().Error(err)
	s.Contains(err.Error(), "Client")
	s.Contains(err.Error(), "Clock")
}

func (s *RedisRepositoryTestSuite) TestSaveThenGet() {
	state := testutils.CreateTestSelectionState()

	saved, err := s.repo.Save(s.ctx, workspace.SaveInput{
		Workspace: &workspace.Workspace{Identity: testutils.TestIdentity, State: state, Loaded: true},
	})
	s.Require().NoError(err)
	s.True(saved.Workspace.UpdatedAt.Equal(testNow))
	s.True(saved.Workspace.ExpiresAt.Equal(testNow.Add(time.Hour)))
	s.True(s.mr.Exists("workspace:Bob"))
	s.Equal(time.Hour, s.mr.TTL("workspace:Bob"))

	got, err := s.repo.Get(s.ctx, workspace.GetInput{Identity: testutils.TestIdentity})
	s.Require().NoError(err)
	s.Equal(state, got.Workspace.State)
	s.True(got.Workspace.Loaded)
}

func (s *RedisRepositoryTestSuite) TestSaveUsesInputTTL() {
	_, err := s.repo.Save(s.ctx, workspace.SaveInput{
		Workspace: &workspace.Workspace{Identity: testutils.TestIdentity, State: testutils.CreateTestSelectionState()},
		TTL:       5 * time.Minute,
	})
	s.Require().NoError(err)

	s.Equal(5*time.Minute, s.mr.TTL("workspace:Bob"))
}

func (s *RedisRepositoryTestSuite) TestGetExpired() {
	_, err := s.repo.Save(s.ctx, workspace.SaveInput{
		Workspace: &workspace.Workspace{Identity: testutils.TestIdentity, State: testutils.CreateTestSelectionState()},
	})
	s.Require().NoError(err)

	s.mr.FastForward(2 * time.Hour)

	_, err = s.repo.Get(s.ctx, workspace.GetInput{Identity: testutils.TestIdentity})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, workspace.GetInput{Identity: "nobody"})

	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGetCorruptData() {
	s.Require().NoError(s.mr.Set("workspace:Bob", "{not json"))

	_, err := s.repo.Get(s.ctx, workspace.GetInput{Identity: testutils.TestIdentity})

	s.Require().Error(err)
	s.False(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestSaveValidation() {
	testCases := []struct {
		name  string
		input workspace.SaveInput
	}{
		{name: "nil workspace", input: workspace.SaveInput{}},
		{name: "missing identity", input: workspace.SaveInput{Workspace: &workspace.Workspace{State: testutils.CreateTestSelectionState()}}},
		{name: "missing state", input: workspace.SaveInput{Workspace: &workspace.Workspace{Identity: "Bob"}}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Save(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Save(s.ctx, workspace.SaveInput{
		Workspace: &workspace.Workspace{Identity: testutils.TestIdentity, State: testutils.CreateTestSelectionState()},
	})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, workspace.DeleteInput{Identity: testutils.TestIdentity})
	s.Require().NoError(err)
	s.True(out.Deleted)
	s.False(s.mr.Exists("workspace:Bob"))

	out, err = s.repo.Delete(s.ctx, workspace.DeleteInput{Identity: testutils.TestIdentity})
	s.Require().NoError(err)
	s.False(out.Deleted)
}

type InMemoryRepositoryTestSuite struct {
	suite.Suite
	clock *clock.Fixed
	repo  *workspace.InMemoryRepository
	ctx   context.Context
}

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepositoryTestSuite))
}

func (s *InMemoryRepositoryTestSuite) SetupTest() {
	s.clock = &clock.Fixed{At: testNow}
	s.repo = workspace.NewInMemory(s.clock, time.Hour)
	s.ctx = context.Background()
}

func (s *InMemoryRepositoryTestSuite) TestReturnsCopies() {
	state := testutils.CreateTestSelectionState()
	_, err := s.repo.Save(s.ctx, workspace.SaveInput{
		Workspace: &workspace.Workspace{Identity: testutils.TestIdentity, State: state},
	})
	s.Require().NoError(err)

	state.ChosenRaids["Bob"] = nil

	got, err := s.repo.Get(s.ctx, workspace.GetInput{Identity: testutils.TestIdentity})
	s.Require().NoError(err)
	s.Equal([]int32{testutils.RaidValtan, testutils.RaidVykas}, got.Workspace.State.ChosenRaids["Bob"])

	got.Workspace.State.ExtraIncome["Bob"] = "0"

	again, err := s.repo.Get(s.ctx, workspace.GetInput{Identity: testutils.TestIdentity})
	s.Require().NoError(err)
	s.Equal("500", again.Workspace.State.ExtraIncome["Bob"])
}

func (s *InMemoryRepositoryTestSuite) TestExpiry() {
	_, err := s.repo.Save(s.ctx, workspace.SaveInput{
		Workspace: &workspace.Workspace{Identity: testutils.TestIdentity, State: testutils.CreateTestSelectionState()},
	})
	s.Require().NoError(err)

	s.clock.At = testNow.Add(59 * time.Minute)
	_, err = s.repo.Get(s.ctx, workspace.GetInput{Identity: testutils.TestIdentity})
	s.Require().NoError(err)

	s.clock.At = testNow.Add(time.Hour)
	_, err = s.repo.Get(s.ctx, workspace.GetInput{Identity: testutils.TestIdentity})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestDelete() {
	out, err := s.repo.Delete(s.ctx, workspace.DeleteInput{Identity: "nobody"})
	s.Require().NoError(err)
	s.False(out.Deleted)

	_, err = s.repo.Delete(s.ctx, workspace.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}
