package sudoku

import (
	"slices"

	"github.com/laoeked1111/sudoku/internal/sat"

	"github.com/samber/lo"
)

type satSudoku struct {
	//** Dependencies
	indexer Indexer
	solver  sat.SATSolver
}

func newSatSudoku(solver sat.SATSolver) *satSudoku {
	return &satSudoku{
		indexer: NewIndexer(),
		solver:  solver,
	}
}

func (s *satSudoku) Solve(board Board) (*Board, error) {
	solution, err := s.solver.Solve(s.Encode(board))
	if err != nil {
		return nil, err
	} else if solution == nil { // Return nil if the puzzle is not satisfiable
		return nil, nil
	}

	solved := s.Decode(solution)
	return &solved, nil
}

func (s *satSudoku) Encode(board Board) sat.SAT {
	instance := sat.SAT{
		Variables: s.indexer.Index(size, size, size),
		Clauses:   s.buildRules(),
	}

	// Every given cell becomes a unit clause asserting its variable
	for _, literal := range s.boardLiterals(board) {
		instance.Clauses = append(instance.Clauses, []int64{literal})
	}

	return instance
}

func (s *satSudoku) Decode(solution sat.SATSolution) Board {
	board := Board{}

	positives := lo.Filter(solution, func(literal int64, _ int) bool { return literal > 0 })
	for _, literal := range positives {
		row, column, digit := s.indexer.Attributes(uint64(literal))
		// Skip variable indices that carry no cell: a relaxed external
		// solver may assign variables absent from the formula
		if row == 0 || column == 0 || digit == 0 {
			continue
		}
		board[row-1][column-1] = int(digit)
	}

	return board
}

func (s *satSudoku) Verify(board Board, puzzle Board) bool {
	var rows, columns, boxes [size][size + 1]bool

	for r := range size {
		for c := range size {
			cell := board[r][c]
			if cell < 1 || cell > size {
				return false
			}
			if puzzle[r][c] != 0 && puzzle[r][c] != cell {
				return false
			}

			box := (r/boxSize)*boxSize + c/boxSize
			if rows[r][cell] || columns[c][cell] || boxes[box][cell] {
				return false
			}
			rows[r][cell], columns[c][cell], boxes[box][cell] = true, true, true
		}
	}

	return true
}

// buildRules encodes the fixed sudoku rules: every digit appears exactly
// once per row, column and box, and every cell holds exactly one digit. The
// resulting formula is independent of the input board.
func (s *satSudoku) buildRules() [][]int64 {
	clauses := [][]int64{}
	for digit := uint64(1); digit <= size; digit++ {
		clauses = append(clauses, s.digitConstraints(digit)...)
	}
	clauses = append(clauses, s.cellConstraints()...)
	return clauses
}

func (s *satSudoku) digitConstraints(digit uint64) [][]int64 {
	clauses := [][]int64{}
	for row := uint64(1); row <= size; row++ {
		clauses = append(clauses, s.rowConstraint(digit, row)...)
	}
	for column := uint64(1); column <= size; column++ {
		clauses = append(clauses, s.columnConstraint(digit, column)...)
	}
	for box := uint64(0); box < size; box++ {
		clauses = append(clauses, s.boxConstraint(digit, box)...)
	}
	return clauses
}

func (s *satSudoku) rowConstraint(digit, row uint64) [][]int64 {
	variables := make([]int64, 0, size)
	for column := uint64(1); column <= size; column++ {
		variables = append(variables, int64(s.indexer.Index(row, column, digit)))
	}
	return exactlyOne(variables)
}

func (s *satSudoku) columnConstraint(digit, column uint64) [][]int64 {
	variables := make([]int64, 0, size)
	for row := uint64(1); row <= size; row++ {
		variables = append(variables, int64(s.indexer.Index(row, column, digit)))
	}
	return exactlyOne(variables)
}

// boxConstraint covers one of the nine 3x3 boxes, numbered 0..8
// left-to-right, top-to-bottom. The same nine variables are produced for a
// box regardless of iteration order.
func (s *satSudoku) boxConstraint(digit, box uint64) [][]int64 {
	baseRow, baseColumn := (box/boxSize)*boxSize, (box%boxSize)*boxSize

	variables := make([]int64, 0, size)
	for row := baseRow + 1; row <= baseRow+boxSize; row++ {
		for column := baseColumn + 1; column <= baseColumn+boxSize; column++ {
			variables = append(variables, int64(s.indexer.Index(row, column, digit)))
		}
	}
	return exactlyOne(variables)
}

func (s *satSudoku) cellConstraints() [][]int64 {
	clauses := [][]int64{}
	for row := uint64(1); row <= size; row++ {
		for column := uint64(1); column <= size; column++ {
			variables := make([]int64, 0, size)
			for digit := uint64(1); digit <= size; digit++ {
				variables = append(variables, int64(s.indexer.Index(row, column, digit)))
			}
			clauses = append(clauses, exactlyOne(variables)...)
		}
	}
	return clauses
}

func (s *satSudoku) boardLiterals(board Board) []int64 {
	literals := make([]int64, 0, size*size)
	for r, row := range board {
		for c, cell := range row {
			if cell != 0 {
				literals = append(literals, int64(s.indexer.Index(uint64(r+1), uint64(c+1), uint64(cell))))
			}
		}
	}
	return literals
}

// exactlyOne returns the clauses forcing exactly one of the variables to be
// true: a pairwise at-most-one clause per pair of variables plus a final
// at-least-one clause over all of them, n*(n-1)/2 + 1 clauses in total.
func exactlyOne(variables []int64) [][]int64 {
	clauses := make([][]int64, 0, len(variables)*(len(variables)-1)/2+1)
	for i := range len(variables) - 1 {
		for j := i + 1; j < len(variables); j++ {
			clauses = append(clauses, []int64{-variables[i], -variables[j]})
		}
	}
	clauses = append(clauses, slices.Clone(variables))
	return clauses
}
