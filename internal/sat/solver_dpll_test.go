package sat

import (
	"math/rand/v2"
	"testing"

	. "github.com/onsi/gomega"
)

func TestDPLLUnitPropagation(t *testing.T) {
	g := NewWithT(t)
	solver := NewDPLLSolver()

	// A chain of unit clauses forcing 1, 2 and 3 to true
	instance := SAT{
		Variables: 3,
		Clauses: [][]int64{
			{1},
			{-1, 2},
			{-2, 3},
		},
	}

	solution, err := solver.Solve(instance)

	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(solution).To(Equal(SATSolution{1, 2, 3}))
}

func TestDPLLBacktracking(t *testing.T) {
	g := NewWithT(t)
	solver := NewDPLLSolver()

	// The first branch on literal 1 fails and the solver must back off to -1
	instance := SAT{
		Variables: 2,
		Clauses: [][]int64{
			{1, 2},
			{-1, 2},
			{-1, -2},
		},
	}

	solution, err := solver.Solve(instance)

	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(solution).ToNot(BeNil())
	g.Expect(AssertSATSolution(instance, solution)).To(BeTrue())
}

func TestDPLLUnsatisfiable(t *testing.T) {
	g := NewWithT(t)
	solver := NewDPLLSolver()

	instance := SAT{
		Variables: 1,
		Clauses: [][]int64{
			{1},
			{-1},
		},
	}

	solution, err := solver.Solve(instance)

	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(solution).To(BeNil())
}

func TestDPLLConflictingBranches(t *testing.T) {
	g := NewWithT(t)
	solver := NewDPLLSolver()

	// All four assignments of the two variables are forbidden
	instance := SAT{
		Variables: 2,
		Clauses: [][]int64{
			{1, 2},
			{1, -2},
			{-1, 2},
			{-1, -2},
		},
	}

	solution, err := solver.Solve(instance)

	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(solution).To(BeNil())
}

func TestDPLLEmptyClause(t *testing.T) {
	g := NewWithT(t)
	solver := NewDPLLSolver()

	instance := SAT{
		Variables: 2,
		Clauses: [][]int64{
			{1, 2},
			{},
		},
	}

	solution, err := solver.Solve(instance)

	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(solution).To(BeNil())
}

func TestDPLLEmptyFormula(t *testing.T) {
	g := NewWithT(t)
	solver := NewDPLLSolver()

	solution, err := solver.Solve(SAT{Variables: 0, Clauses: [][]int64{}})

	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(solution).ToNot(BeNil())
}

func TestDPLLRandomInstances(t *testing.T) {
	g := NewWithT(t)
	solver := NewDPLLSolver()
	unsatisfiableCount := 0

	for range 10 {
		variables := uint64(rand.IntN(30) + 1)
		clauses := rand.IntN(60) + 1
		instance := GenerateSATInstance(variables, clauses)

		solution, err := solver.Solve(instance)
		g.Expect(err).ToNot(HaveOccurred())

		if solution == nil {
			unsatisfiableCount++
			continue
		}

		g.Expect(AssertSATSolution(instance, solution)).To(BeTrue())
	}

	t.Logf("Unsatisfiable instances: %v", unsatisfiableCount)
}
