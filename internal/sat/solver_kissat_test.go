package sat

import (
	"log"
	"math/rand/v2"
	"os/exec"
	"testing"
)

func TestKissatSatisfiable(t *testing.T) {
	if _, err := exec.LookPath(kissatPath); err != nil {
		t.Skipf("%v binary not found in PATH", kissatPath)
	}

	solver := NewKissatSolver()
	unsatisfiableCount := 0

	for range 10 {
		variables := uint64(rand.IntN(100) + 1)
		clauses := rand.IntN(200) + 1
		instance := GenerateSATInstance(variables, clauses)

		solution, err := solver.Solve(instance)
		if err != nil {
			t.Errorf("an error occurred while solving a SAT instance: %v", err)
		}

		if len(solution) == 0 {
			unsatisfiableCount++
			continue
		}

		if !AssertSATSolution(instance, solution) {
			t.Error("Wrong answer")
		}
	}

	log.Printf("Unsatisfiable instances: %v", unsatisfiableCount)
}
