package redis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-hotseat/testing/suite"
)

func TestClient_Publish(t *testing.T) {
	t.Run("Subscriber receives the state as JSON", func(t *testing.T) {
		ctx, st := suite.New(t)

		publisher := New(st.Storage, "tictactoe")

		// Given: a subscriber on the game's channel
		subscriber := st.Storage.Subscribe(ctx, publisher.Channel("game-1"))
		t.Cleanup(func() { _ = subscriber.Close() })

		_, err := subscriber.Receive(ctx)
		require.NoError(t, err)

		state := &entity.GameState{
			ID:     "game-1",
			Board:  [entity.BoardSize]entity.Mark{0: entity.MarkX},
			Status: entity.StatusInProgress,
			Turn:   entity.MarkO,
			Players: [2]entity.PlayerState{
				{Name: "Alice", Mark: entity.MarkX},
				{Name: "Bob", Mark: entity.MarkO},
			},
		}

		// When: the state is published
		err = publisher.Publish(ctx, state)
		require.NoError(t, err)

		// Then: the subscriber gets the same state back
		msg, err := subscriber.ReceiveMessage(ctx)
		require.NoError(t, err)
		assert.Equal(t, "tictactoe:game-1", msg.Channel)

		var received entity.GameState
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &received))
		assert.Equal(t, *state, received)
	})

	t.Run("Session publishes every move", func(t *testing.T) {
		ctx, st := suite.New(t)

		publisher := New(st.Storage, "tictactoe")
		session := usecase.NewSession(st.Logger, "game-2", "Alice", "Bob", publisher)

		// Given: a subscriber on the session's channel
		subscriber := st.Storage.Subscribe(ctx, publisher.Channel(session.ID()))
		t.Cleanup(func() { _ = subscriber.Close() })

		_, err := subscriber.Receive(ctx)
		require.NoError(t, err)

		// When: X takes the top row
		for _, cell := range []int{0, 3, 1, 4, 2} {
			require.True(t, session.Play(ctx, cell))
		}

		// Then: five states arrive and the last one is won by X
		var last entity.GameState
		for i := 0; i < 5; i++ {
			msg, err := subscriber.ReceiveMessage(ctx)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal([]byte(msg.Payload), &last))
		}

		assert.Equal(t, entity.StatusWon, last.Status)
		assert.Equal(t, entity.MarkX, last.Winner)
		assert.Empty(t, last.Turn)
	})
}
