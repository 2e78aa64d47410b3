// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"time"

	"go.uber.org/mock/gomock"

	lostarkmock "github.com/KirkDiggler/raid-gold-api/internal/clients/lostark/mock"
	"github.com/KirkDiggler/raid-gold-api/internal/entities"
	"github.com/KirkDiggler/raid-gold-api/internal/repositories/selections"
	selectionsmock "github.com/KirkDiggler/raid-gold-api/internal/repositories/selections/mock"
	"github.com/KirkDiggler/raid-gold-api/internal/repositories/workspace"
	workspacemock "github.com/KirkDiggler/raid-gold-api/internal/repositories/workspace/mock"
)

// ExpectRosterLookup sets up a single roster lookup for a character name
func ExpectRosterLookup(
	ctx context.Context, mockClient *lostarkmock.MockClient,
	characterName string, characters []*entities.CharacterSummary, err error,
) *gomock.Call {
	return mockClient.EXPECT().
		GetSiblings(ctx, characterName).
		Return(characters, err)
}

// ExpectWorkspaceGet sets up a live workspace for the identity and lets any save through
func ExpectWorkspaceGet(
	ctx context.Context, mockRepo *workspacemock.MockRepository,
	identity string, state *entities.SelectionState,
) {
	mockRepo.EXPECT().
		Get(ctx, workspace.GetInput{Identity: identity}).
		Return(&workspace.GetOutput{Workspace: &workspace.Workspace{
			Identity:  identity,
			State:     state,
			UpdatedAt: clock.Now(),
			ExpiresAt: clock.Now().Add(workspace.DefaultTTL),
		}}, nil).
		AnyTimes()
	ExpectWorkspaceSave(ctx, mockRepo).AnyTimes()
}

// ExpectWorkspaceSave sets up a mock expectation for storing a workspace
func ExpectWorkspaceSave(ctx context.Context, mockRepo *workspacemock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input workspace.SaveInput) (*workspace.SaveOutput, error) {
			// Simulate repository behavior - it would stamp the expiry
			ttl := input.TTL
			if ttl <= 0 {
				ttl = workspace.DefaultTTL
			}
			input.Workspace.UpdatedAt = clock.Now()
			input.Workspace.ExpiresAt = clock.Now().Add(ttl)
			return &workspace.SaveOutput{Workspace: input.Workspace}, nil
		})
}

// ExpectSelectionGet sets up a mock expectation for reading saved selections
func ExpectSelectionGet(
	ctx context.Context, mockRepo *selectionsmock.MockRepository,
	identity string, record *entities.SelectionRecord, err error,
) {
	mockRepo.EXPECT().
		Get(ctx, selections.GetInput{Identity: identity}).
		Return(&selections.GetOutput{Record: record}, err)
}

// ExpectSelectionSave sets up a mock expectation for saving selections
func ExpectSelectionSave(ctx context.Context, mockRepo *selectionsmock.MockRepository, revision string) *gomock.Call {
	return mockRepo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input selections.SaveInput) (*selections.SaveOutput, error) {
			return &selections.SaveOutput{Record: &entities.SelectionRecord{
				Identity:  input.Identity,
				State:     input.State.Clone(),
				Revision:  revision,
				UpdatedAt: clock.Now(),
			}}, nil
		})
}

var clock = &testClock{}

type testClock struct{}

func (c *testClock) Now() time.Time {
	return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}
