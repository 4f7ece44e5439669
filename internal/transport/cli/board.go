package cli

import (
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const rowSeparator = "---+---+---"

var markColors = map[entity.Mark]string{
	entity.MarkX: "4", // blue
	entity.MarkO: "1", // red
}

// FormatBoard - draws the cells as three rows. Empty cells show their index.
func FormatBoard(out *termenv.Output, cells [entity.BoardSize]entity.Mark) string {
	rows := make([]string, 0, 3)

	for row := 0; row < 3; row++ {
		parts := make([]string, 0, 3)
		for col := 0; col < 3; col++ {
			index := row*3 + col
			parts = append(parts, " "+formatCell(out, index, cells[index])+" ")
		}

		rows = append(rows, strings.Join(parts, "|"))
	}

	return strings.Join(rows, "\n"+rowSeparator+"\n")
}

func formatCell(out *termenv.Output, index int, mark entity.Mark) string {
	if mark == entity.EmptyCell {
		return out.String(strconv.Itoa(index)).Faint().String()
	}

	return out.String(string(mark)).Foreground(out.Color(markColors[mark])).Bold().String()
}
