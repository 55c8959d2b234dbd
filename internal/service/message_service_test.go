package service

import (
	"context"
	"testing"

	"apt/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageService_PostPublic(t *testing.T) {
	t.Parallel()

	principal := models.Principal{Username: "alice"}

	t.Run("stores trimmed room message", func(t *testing.T) {
		t.Parallel()
		repo := &messageRepoStub{
			createFn: func(_ context.Context, m *models.Message) error {
				m.ID = 1
				return nil
			},
		}
		svc := NewMessageService(repo)
		msg, err := svc.PostPublic(context.Background(), principal, "  hello room  ")
		require.NoError(t, err)
		require.NotNil(t, msg)
		assert.Equal(t, "hello room", msg.Text)
		assert.True(t, msg.Public())
	})

	t.Run("blank text is a silent no-op", func(t *testing.T) {
		t.Parallel()
		repo := &messageRepoStub{
			createFn: func(_ context.Context, _ *models.Message) error {
				t.Fatal("blank message must not be stored")
				return nil
			},
		}
		svc := NewMessageService(repo)
		msg, err := svc.PostPublic(context.Background(), principal, " \n\t ")
		require.NoError(t, err)
		assert.Nil(t, msg)
	})
}

func TestMessageService_PostPrivate(t *testing.T) {
	t.Parallel()

	principal := models.Principal{Username: "alice"}

	t.Run("addresses the peer", func(t *testing.T) {
		t.Parallel()
		repo := &messageRepoStub{
			createFn: func(_ context.Context, m *models.Message) error { return nil },
		}
		svc := NewMessageService(repo)
		msg, err := svc.PostPrivate(context.Background(), principal, "bob", "psst")
		require.NoError(t, err)
		require.NotNil(t, msg)
		assert.False(t, msg.Public())
		require.NotNil(t, msg.Receiver)
		assert.Equal(t, "bob", *msg.Receiver)
		assert.Equal(t, "alice", msg.Sender)
	})

	t.Run("blank text is a silent no-op", func(t *testing.T) {
		t.Parallel()
		svc := NewMessageService(&messageRepoStub{})
		msg, err := svc.PostPrivate(context.Background(), principal, "bob", "   ")
		require.NoError(t, err)
		assert.Nil(t, msg)
	})
}

func TestMessageService_ListPrivateThread(t *testing.T) {
	t.Parallel()

	repo := &messageRepoStub{
		listBetweenFn: func(_ context.Context, a, b string) ([]*models.Message, error) {
			assert.Equal(t, "alice", a)
			assert.Equal(t, "bob", b)
			return []*models.Message{{ID: 1, Sender: "alice", Text: "hey"}}, nil
		},
	}
	svc := NewMessageService(repo)
	msgs, err := svc.ListPrivateThread(context.Background(), models.Principal{Username: "alice"}, "bob")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
}
