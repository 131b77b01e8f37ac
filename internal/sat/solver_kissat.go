package sat

import (
	"bytes"
	"fmt"
	"log"
	"os/exec"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const kissatPath = "kissat"

// kissatSolver delegates to an external kissat binary, feeding it the
// instance in DIMACS-CNF format over its standard input.
type kissatSolver struct{}

func NewKissatSolver() SATSolver {
	return &kissatSolver{}
}

func (solver *kissatSolver) Solve(instance SAT) (SATSolution, error) {
	dimacs := instance.ToDIMACS()

	cmd := exec.Command(kissatPath, "-q", "--relaxed")
	cmd.Stdin = strings.NewReader(dimacs)

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	err := cmd.Run()
	if err != nil && cmd.ProcessState.ExitCode() != 10 && cmd.ProcessState.ExitCode() != 20 { // Exit-code of 10 stands for satisfiable and exit-code 20 stands for unsatisfiable
		return nil, fmt.Errorf("an error occurred during kissat execution: %v : %v", err.Error(), stdErr.String())
	} else if cmd.ProcessState.ExitCode() == 20 {
		return nil, nil
	}

	return parseSolution(stdOut.String()), nil
}

// parseSolution extracts the signed literals from the "v" lines of a
// DIMACS-conforming solver output, dropping the terminating 0.
func parseSolution(solverOutput string) SATSolution {
	values := lo.FilterMap(
		lo.Reduce(
			lo.Filter(strings.Split(solverOutput, "\n"), func(line string, _ int) bool {
				return len(line) > 0 && line[0] == 'v'
			}),
			func(values []string, line string, _ int) []string {
				return append(values, strings.Fields(line[1:])...)
			},
			[]string{},
		),
		func(valueStr string, _ int) (int64, bool) {
			value, err := strconv.ParseInt(valueStr, 10, 64)
			if err != nil {
				log.Panicf("invalid literal in solver output: %v", err)
			}
			return value, value != 0
		},
	)
	return values
}
