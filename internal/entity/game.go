package entity

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDraw       Status = "draw"
)

// PlayerState is the public view of a player.
type PlayerState struct {
	Name string `json:"name"`
	Mark Mark   `json:"mark"`
}

// GameState is the view of a session that is handed to renderers.
type GameState struct {
	ID      string          `json:"id"`
	Board   [BoardSize]Mark `json:"board"`
	Status  Status          `json:"status"`
	Turn    Mark            `json:"player_turn,omitempty"`
	Winner  Mark            `json:"winner,omitempty"`
	Players [2]PlayerState  `json:"players"`
}

func (that *GameState) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}
