package sudoku

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const (
	size    = 9
	boxSize = 3
)

// Board is the canonical representation of a sudoku game board: a 9x9 grid
// of cell values where 0 marks an unknown cell.
type Board [size][size]int

func (board Board) String() string {
	var builder strings.Builder
	for r, row := range board {
		cells := lo.Map(row[:], func(cell int, _ int) string {
			if cell == 0 {
				return "_"
			}
			return strconv.Itoa(cell)
		})
		builder.WriteString(strings.Join(cells, " "))
		if r < size-1 {
			builder.WriteByte('\n')
		}
	}
	return builder.String()
}
