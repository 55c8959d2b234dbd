package repository

import (
	"context"
	"testing"

	"apt/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postPrivate(t *testing.T, repo MessageRepository, sender, receiver, text string) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &models.Message{
		Sender: sender, Receiver: &receiver, Text: text,
	}))
}

func TestMessageRepository_ListPublic(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Message{Sender: "alice", Text: "hi room"}))
	require.NoError(t, repo.Create(ctx, &models.Message{Sender: "bob", Text: "hey"}))
	postPrivate(t, repo, "alice", "bob", "psst")

	got, err := repo.ListPublic(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "hi room", got[0].Text)
	assert.Equal(t, "hey", got[1].Text)
	for _, m := range got {
		assert.True(t, m.Public())
	}
}

func TestMessageRepository_ListBetween_Symmetric(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	postPrivate(t, repo, "alice", "bob", "hey bob")
	postPrivate(t, repo, "bob", "alice", "hey alice")
	postPrivate(t, repo, "alice", "carol", "different thread")
	require.NoError(t, repo.Create(ctx, &models.Message{Sender: "alice", Text: "public noise"}))

	fromAlice, err := repo.ListBetween(ctx, "alice", "bob")
	require.NoError(t, err)
	fromBob, err := repo.ListBetween(ctx, "bob", "alice")
	require.NoError(t, err)

	// Both participants see the identical thread.
	require.Len(t, fromAlice, 2)
	require.Equal(t, len(fromAlice), len(fromBob))
	for i := range fromAlice {
		assert.Equal(t, fromAlice[i].ID, fromBob[i].ID)
	}
	assert.Equal(t, "hey bob", fromAlice[0].Text)
	assert.Equal(t, "hey alice", fromAlice[1].Text)
}

func TestMessageRepository_ListBetween_ExcludesOthers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	postPrivate(t, repo, "alice", "bob", "for bob")
	postPrivate(t, repo, "carol", "bob", "for bob from carol")

	got, err := repo.ListBetween(ctx, "alice", "bob")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "for bob", got[0].Text)
}

func TestMessageRepository_SelfThread(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	postPrivate(t, repo, "alice", "alice", "note to self")

	got, err := repo.ListBetween(ctx, "alice", "alice")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "note to self", got[0].Text)
}
