package activity

import (
	"SevChefs-API/domain"
	"SevChefs-API/entities"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRenderSummary(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	carol := uuid.New()

	entry := func(kind string, actor uuid.UUID, actorName string, target *uuid.UUID, targetName string) SummaryEntry {
		return SummaryEntry{
			Kind:           kind,
			ActorID:        actor,
			ActorUsername:  actorName,
			TargetUserID:   target,
			TargetUsername: targetName,
		}
	}

	tests := []struct {
		name     string
		entry    SummaryEntry
		viewerID uuid.UUID
		expected string
	}{
		{
			name:     "own upload",
			entry:    entry(entities.ActivityUploaded, alice, "alice", nil, ""),
			viewerID: alice,
			expected: "You uploaded a new recipe",
		},
		{
			name:     "someone else's upload",
			entry:    entry(entities.ActivityUploaded, alice, "alice", nil, ""),
			viewerID: bob,
			expected: "Alice uploaded a new recipe",
		},
		{
			name:     "favourite of the viewer's recipe",
			entry:    entry(entities.ActivityFavourited, alice, "alice", &bob, "bob"),
			viewerID: bob,
			expected: "Alice favourited your recipe",
		},
		{
			name:     "viewer favourited someone's recipe",
			entry:    entry(entities.ActivityFavourited, alice, "alice", &bob, "bob"),
			viewerID: alice,
			expected: "You favourited bob's recipe",
		},
		{
			name:     "favourite seen by a bystander",
			entry:    entry(entities.ActivityFavourited, alice, "alice", &bob, "bob"),
			viewerID: carol,
			expected: "Alice favourited bob's recipe",
		},
		{
			name:     "viewer commented on own recipe",
			entry:    entry(entities.ActivityCommented, alice, "alice", &alice, "alice"),
			viewerID: alice,
			expected: "You commented on your recipe",
		},
		{
			name:     "comment seen by a bystander",
			entry:    entry(entities.ActivityCommented, alice, "alice", &bob, "bob"),
			viewerID: carol,
			expected: "Alice commented on bob's recipe",
		},
		{
			name:     "viewer followed someone",
			entry:    entry(entities.ActivityFollowed, alice, "alice", &bob, "bob"),
			viewerID: alice,
			expected: "You followed bob",
		},
		{
			name:     "viewer got followed",
			entry:    entry(entities.ActivityFollowed, alice, "alice", &bob, "bob"),
			viewerID: bob,
			expected: "Alice followed you",
		},
		{
			name:     "self follow seen by the actor",
			entry:    entry(entities.ActivityFollowed, alice, "alice", &alice, "alice"),
			viewerID: alice,
			expected: "You followed yourself",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderSummary(tt.entry, tt.viewerID)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRenderSummaryErrors(t *testing.T) {
	alice := uuid.New()

	_, err := RenderSummary(SummaryEntry{Kind: "shouted", ActorID: alice}, alice)
	assert.ErrorIs(t, err, domain.ErrUnknownActivityKind)

	_, err = RenderSummary(SummaryEntry{Kind: entities.ActivityFollowed, ActorID: alice}, alice)
	assert.ErrorIs(t, err, domain.ErrUnknownActivityKind)
}
