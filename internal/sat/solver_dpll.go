package sat

import (
	"maps"
	"slices"

	"github.com/samber/lo"
)

// dpllSolver is an in-process recursive DPLL solver: unit propagation to a
// fixpoint followed by depth-first branching with backtracking. It is
// exhaustive and sound but deliberately unoptimized (no heuristics, no
// clause learning).
type dpllSolver struct{}

func NewDPLLSolver() SATSolver {
	return &dpllSolver{}
}

func (solver *dpllSolver) Solve(instance SAT) (SATSolution, error) {
	assignment := search(instance.Clauses, map[int64]bool{})
	if assignment == nil { // Return nil if the SAT instance is not satisfiable
		return nil, nil
	}

	solution := make(SATSolution, 0, len(assignment))
	for variable, value := range assignment {
		if value {
			solution = append(solution, variable)
		} else {
			solution = append(solution, -variable)
		}
	}
	slices.SortFunc(solution, func(a, b int64) int {
		if abs(a) < abs(b) {
			return -1
		} else if abs(a) > abs(b) {
			return 1
		}
		return 0
	})

	return solution, nil
}

// search runs one level of the recursive procedure. Each branch operates on
// its own formula and assignment, so a failed branch never corrupts its
// sibling; backtracking is just returning nil.
func search(formula [][]int64, assignment map[int64]bool) map[int64]bool {
	// Unit propagation: resolve unit clauses until none remain
	for {
		units := lo.FilterMap(formula, func(clause []int64, _ int) (int64, bool) {
			if len(clause) == 1 {
				return clause[0], true
			}
			return 0, false
		})
		if len(units) == 0 {
			break
		}

		for _, unit := range units {
			variable, value := abs(unit), unit > 0
			if assigned, ok := assignment[variable]; ok && assigned != value {
				return nil // Variable is forced both ways
			}
			assignment[variable] = value

			var ok bool
			if formula, ok = substitute(formula, unit); !ok {
				return nil
			}
		}
	}

	// No clauses left: the assignment satisfies the formula
	if len(formula) == 0 {
		return assignment
	}

	// An empty clause cannot be satisfied
	if slices.ContainsFunc(formula, func(clause []int64) bool { return len(clause) == 0 }) {
		return nil
	}

	// Branch on the first literal of the first clause: its given polarity
	// first, then the negation
	literal := formula[0][0]
	for _, branch := range []int64{literal, -literal} {
		branchAssignment := maps.Clone(assignment)
		branchAssignment[abs(branch)] = branch > 0

		branchFormula, ok := substitute(formula, branch)
		if !ok {
			continue
		}

		if result := search(branchFormula, branchAssignment); result != nil {
			return result
		}
	}

	return nil
}

// substitute applies a literal to the formula producing a new one: clauses
// containing the literal are satisfied and dropped, occurrences of its
// negation are removed. Returns false when a clause runs out of literals,
// meaning the formula is unsatisfiable under the current assignment. The
// input formula and its clauses are never mutated.
func substitute(formula [][]int64, literal int64) ([][]int64, bool) {
	result := make([][]int64, 0, len(formula))
	for _, clause := range formula {
		if slices.Contains(clause, literal) {
			continue
		}

		reduced := lo.Filter(clause, func(l int64, _ int) bool { return l != -literal })
		if len(reduced) == 0 {
			return nil, false
		}
		result = append(result, reduced)
	}
	return result, true
}

func abs(literal int64) int64 {
	if literal < 0 {
		return -literal
	}
	return literal
}
