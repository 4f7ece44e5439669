package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_IsFinished(t *testing.T) {
	t.Run("Returns true when the game is won", func(t *testing.T) {
		// Given: a state with StatusWon
		state := &GameState{Status: StatusWon}

		// When: checking if the game is finished
		isFinished := state.IsFinished()

		// Then: it should return true
		assert.True(t, isFinished)
	})

	t.Run("Returns true when the game is a draw", func(t *testing.T) {
		// Given: a state with StatusDraw
		state := &GameState{Status: StatusDraw}

		// When: checking if the game is finished
		isFinished := state.IsFinished()

		// Then: it should return true
		assert.True(t, isFinished)
	})

	t.Run("Returns false when the game is in progress", func(t *testing.T) {
		// Given: a state with StatusInProgress
		state := &GameState{Status: StatusInProgress}

		// When: checking if the game is finished
		isFinished := state.IsFinished()

		// Then: it should return false
		assert.False(t, isFinished)
	})
}

func TestPlayer(t *testing.T) {
	t.Run("Name can be changed, mark cannot", func(t *testing.T) {
		// Given: a player named Player 1 with mark X
		player := NewPlayer("Player 1", MarkX)

		// When: the name is changed
		player.SetName("Alice")

		// Then: the new name is returned and the mark is unchanged
		assert.Equal(t, "Alice", player.Name())
		assert.Equal(t, MarkX, player.Mark())
	})
}
