package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

const (
	DefaultFirstName  = "Player 1"
	DefaultSecondName = "Player 2"
)

type publisherDep interface {
	Publish(ctx context.Context, state *entity.GameState) error
}

// Session is one pair of players playing successive games on one board.
type Session struct {
	logger *slog.Logger
	id     string

	board     *entity.Board
	players   [2]*entity.Player
	turns     *tictactoe.TurnController
	status    entity.Status
	publisher publisherDep
}

// NewSession - creates a session where the first player plays X and starts. Publisher may be nil.
func NewSession(logger *slog.Logger, id, firstName, secondName string, publisher publisherDep) *Session {
	board := entity.NewBoard()
	first := entity.NewPlayer(nameOrDefault(firstName, DefaultFirstName), entity.MarkX)
	second := entity.NewPlayer(nameOrDefault(secondName, DefaultSecondName), entity.MarkO)

	return &Session{
		logger: logger.With("component", "session", "session_id", id),
		id:     id,

		board:     board,
		players:   [2]*entity.Player{first, second},
		turns:     tictactoe.NewTurnController(first, second, board),
		status:    entity.StatusInProgress,
		publisher: publisher,
	}
}

// Play - places the current player's mark on the cell.
// It returns false when the game is over, the index is off the board or the cell is taken.
func (that *Session) Play(ctx context.Context, cell int) bool {
	log := that.logger.With("method", "Play")

	if that.turns.IsOver() {
		log.Debug("move ignored, game is over", "cell", cell)
		return false
	}

	player := that.turns.Current()
	if !that.board.ApplyMove(cell, player.Mark()) {
		log.Debug("move rejected", "cell", cell, "mark", player.Mark())
		return false
	}

	// winner is checked before draw, a full board with a line is a win
	cells := that.board.Snapshot()
	switch {
	case tictactoe.HasWinner(cells):
		that.turns.MarkOver()
		that.status = entity.StatusWon
		log.Info("game won", "winner", player.Name(), "mark", player.Mark())
	case tictactoe.IsDraw(cells):
		that.turns.MarkOver()
		that.status = entity.StatusDraw
		log.Info("game ended in a draw")
	default:
		that.turns.Advance()
	}

	that.publish(ctx)

	return true
}

// Restart - clears the board and hands the first turn back to the first player. Names are kept.
func (that *Session) Restart(ctx context.Context) {
	that.turns.ResetGame()
	that.status = entity.StatusInProgress

	that.logger.Info("game restarted")
	that.publish(ctx)
}

// RenamePlayer - sets the name of player 1 or 2. An empty name restores the default one.
func (that *Session) RenamePlayer(ctx context.Context, slot int, name string) error {
	if slot != 1 && slot != 2 {
		return fmt.Errorf("failed to rename player %d: %w", slot, apperror.ErrUnknownPlayer)
	}

	defaults := [2]string{DefaultFirstName, DefaultSecondName}
	that.players[slot-1].SetName(nameOrDefault(name, defaults[slot-1]))

	that.publish(ctx)

	return nil
}

func (that *Session) ID() string {
	return that.id
}

func (that *Session) Snapshot() [entity.BoardSize]entity.Mark {
	return that.board.Snapshot()
}

func (that *Session) Status() entity.Status {
	return that.status
}

func (that *Session) IsOver() bool {
	return that.turns.IsOver()
}

func (that *Session) Current() *entity.Player {
	return that.turns.Current()
}

func (that *Session) Players() [2]*entity.Player {
	return that.players
}

// Winner - returns the player who completed a line, or nil.
func (that *Session) Winner() *entity.Player {
	if that.status != entity.StatusWon {
		return nil
	}

	// the turn is not advanced on the winning move
	return that.turns.Current()
}

// TurnMessage - e.g. "Alice's turn (X)".
func (that *Session) TurnMessage() string {
	player := that.turns.Current()

	return fmt.Sprintf("%s's turn (%s)", player.Name(), player.Mark())
}

// ResultMessage - the end-of-game line, or an empty string while the game is in progress.
func (that *Session) ResultMessage() string {
	switch that.status {
	case entity.StatusWon:
		return fmt.Sprintf("%s wins!", that.Winner().Name())
	case entity.StatusDraw:
		return "It's a draw!"
	default:
		return ""
	}
}

// State - the public view of the session.
func (that *Session) State() *entity.GameState {
	state := &entity.GameState{
		ID:     that.id,
		Board:  that.board.Snapshot(),
		Status: that.status,
	}

	for i, player := range that.players {
		state.Players[i] = entity.PlayerState{Name: player.Name(), Mark: player.Mark()}
	}

	switch that.status {
	case entity.StatusWon:
		state.Winner = that.Winner().Mark()
	case entity.StatusInProgress:
		state.Turn = that.turns.Current().Mark()
	}

	return state
}

func (that *Session) publish(ctx context.Context) {
	if that.publisher == nil {
		return
	}

	if err := that.publisher.Publish(ctx, that.State()); err != nil {
		that.logger.Error("failed to publish game state", "error", err)
	}
}

func nameOrDefault(name, fallback string) string {
	if name == "" {
		return fallback
	}

	return name
}
