package sudoku

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
)

type puzzleInput struct {
	Board [][]int
}

// InputFromJson reads a puzzle from a JSON file of the shape
// {"board": [[...], ...]} with nine rows of nine cells in 0..9.
func InputFromJson(file string) (Board, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Board{}, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Board{}, err
	}

	var input puzzleInput
	if err := mapstructure.Decode(inputJson, &input); err != nil {
		return Board{}, err
	}

	return boardFromRows(input.Board)
}

// ParseRows builds a board from nine strings of nine digits each, where '0'
// marks an unknown cell.
func ParseRows(rows []string) (Board, error) {
	var board Board
	if len(rows) != size {
		return board, fmt.Errorf("expected %v rows, got %v", size, len(rows))
	}

	for r, row := range rows {
		row = strings.TrimSpace(row)
		if len(row) != size {
			return board, fmt.Errorf("row %v: expected %v digits, got %v", r+1, size, len(row))
		}
		for c := range size {
			digit := row[c]
			if digit < '0' || digit > '9' {
				return board, fmt.Errorf("row %v, column %v: %q is not a digit", r+1, c+1, digit)
			}
			board[r][c] = int(digit - '0')
		}
	}

	return board, nil
}

func boardFromRows(rows [][]int) (Board, error) {
	var board Board
	if len(rows) != size {
		return board, fmt.Errorf("expected %v rows, got %v", size, len(rows))
	}

	for r, row := range rows {
		if len(row) != size {
			return board, fmt.Errorf("row %v: expected %v cells, got %v", r+1, size, len(row))
		}
		for c, cell := range row {
			if cell < 0 || cell > size {
				return board, fmt.Errorf("row %v, column %v: cell value %v is out of range", r+1, c+1, cell)
			}
			board[r][c] = cell
		}
	}

	return board, nil
}
