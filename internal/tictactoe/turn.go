package tictactoe

import "github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"

// TurnController keeps track of the active player and whether the game has ended.
type TurnController struct {
	players [2]*entity.Player
	current int
	over    bool
	board   *entity.Board
}

func NewTurnController(first, second *entity.Player, board *entity.Board) *TurnController {
	return &TurnController{
		players: [2]*entity.Player{first, second},
		board:   board,
	}
}

func (that *TurnController) Current() *entity.Player {
	return that.players[that.current]
}

// Advance - makes the other player active. It does not look at the game-over flag.
func (that *TurnController) Advance() {
	that.current = 1 - that.current
}

func (that *TurnController) MarkOver() {
	that.over = true
}

func (that *TurnController) IsOver() bool {
	return that.over
}

// ResetGame - hands the turn back to the first player, clears the game-over flag and empties the board.
func (that *TurnController) ResetGame() {
	that.current = 0
	that.over = false
	that.board.Reset()
}
