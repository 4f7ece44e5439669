package tictactoe

import "github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"

// WinPatterns - rows, columns and diagonals, checked in this order.
var WinPatterns = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// HasWinner - reports whether any pattern holds the same non-empty mark in all three cells.
func HasWinner(cells [entity.BoardSize]entity.Mark) bool {
	return Winner(cells) != entity.EmptyCell
}

// Winner - returns the mark on the first completed pattern, or EmptyCell.
func Winner(cells [entity.BoardSize]entity.Mark) entity.Mark {
	for _, pattern := range WinPatterns {
		a, b, c := cells[pattern[0]], cells[pattern[1]], cells[pattern[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return a
		}
	}

	return entity.EmptyCell
}

// IsDraw - reports whether every cell is filled. It does not look for a winner,
// so call it only after HasWinner returned false.
func IsDraw(cells [entity.BoardSize]entity.Mark) bool {
	for _, cell := range cells {
		if cell == entity.EmptyCell {
			return false
		}
	}

	return true
}

// Evaluate - returns the status of the board. A full board with a completed line is won.
func Evaluate(cells [entity.BoardSize]entity.Mark) entity.Status {
	if HasWinner(cells) {
		return entity.StatusWon
	}

	if IsDraw(cells) {
		return entity.StatusDraw
	}

	return entity.StatusInProgress
}
