package sudoku

import "github.com/laoeked1111/sudoku/internal/sat"

// Solver finds one solution to a sudoku puzzle by encoding it as a SAT
// instance.
type Solver interface {
	// Solve returns a completed board, or nil if the puzzle has no solution
	Solve(board Board) (*Board, error)

	// Encode translates the board plus the fixed sudoku rules into a CNF formula
	Encode(board Board) sat.SAT

	// Decode maps a satisfying assignment back onto a board
	Decode(solution sat.SATSolution) Board

	// Verify reports whether board is a complete valid grid consistent with puzzle's givens
	Verify(board Board, puzzle Board) bool
}

func NewSolver(solver sat.SATSolver) Solver {
	return newSatSudoku(solver)
}
