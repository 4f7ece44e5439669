package entity

// BoardSize is the number of cells on a 3x3 board.
const BoardSize = 9

// Mark is the symbol a player places on a cell.
type Mark string

const (
	MarkX Mark = "X"
	MarkO Mark = "O"

	EmptyCell Mark = ""
)

// Board holds the nine cells of a game. A cell, once set, only becomes empty again through Reset.
type Board struct {
	cells [BoardSize]Mark
}

func NewBoard() *Board {
	return &Board{}
}

// ApplyMove - writes the mark to the cell if the index is on the board and the cell is empty.
// It reports whether the move was accepted; a rejected move leaves the board untouched.
func (that *Board) ApplyMove(index int, mark Mark) bool {
	if index < 0 || index >= BoardSize {
		return false
	}

	if that.cells[index] != EmptyCell {
		return false
	}

	that.cells[index] = mark

	return true
}

// Snapshot - returns a copy of the cells.
func (that *Board) Snapshot() [BoardSize]Mark {
	return that.cells
}

// Reset - empties every cell.
func (that *Board) Reset() {
	that.cells = [BoardSize]Mark{}
}
