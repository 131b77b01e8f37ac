package sat

import (
	"fmt"
	"strings"
)

// SATSolution holds one signed literal per assigned variable: a positive
// value means the variable is true, a negative one that it is false. A nil
// solution means the instance is unsatisfiable.
type SATSolution []int64

// SAT is a CNF formula. Each clause is a disjunction of literals, where a
// literal is a variable index (starting at 1) negated by its sign.
type SAT struct {
	Variables uint64
	Clauses   [][]int64
}

func (s SAT) ToDIMACS() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", s.Variables, len(s.Clauses))
	for _, clause := range s.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}
