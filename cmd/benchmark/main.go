package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"os/exec"
	"time"

	"github.com/laoeked1111/sudoku/internal/sat"
	"github.com/laoeked1111/sudoku/internal/sudoku"

	"github.com/samber/lo"
)

type SolverType int

const (
	dpll SolverType = iota
	kissat
)

type ResultType int

const (
	solved ResultType = iota
	unsatisfiable
)

var (
	solverTypes = map[SolverType]string{
		dpll:   "dpll",
		kissat: "kissat",
	}
	resultTypes = map[ResultType]string{
		solved:        "solved",
		unsatisfiable: "unsatisfiable",
	}
)

type TestMetadata struct {
	Name        string
	Satisfiable bool
	Givens      int
	Board       sudoku.Board
}

type BenchmarkResult struct {
	Solver   SolverType
	Test     TestMetadata
	Duration int64
	Result   ResultType
}

func main() {
	tests := getTests()
	solvers := getSolvers()
	results := make([]BenchmarkResult, 0, len(tests)*len(solvers))

	for _, test := range tests {
		for _, solverType := range solvers {
			fmt.Printf("Benchmarking puzzle \"%v\" (%v givens) with solver \"%v\"\n", test.Name, test.Givens, solverTypes[solverType])

			duration, result := measure(solverType, test)

			results = append(results, BenchmarkResult{
				Solver:   solverType,
				Test:     test,
				Duration: duration,
				Result:   result,
			})
		}
	}

	toCsv(results)
}

func getTests() []TestMetadata {
	puzzles := map[string]struct {
		satisfiable bool
		board       sudoku.Board
	}{
		"easy": {true, sudoku.Board{
			{5, 0, 9, 0, 0, 0, 4, 0, 0},
			{7, 0, 8, 3, 0, 4, 9, 0, 0},
			{6, 0, 1, 0, 0, 0, 7, 3, 0},
			{4, 6, 2, 5, 0, 0, 0, 0, 0},
			{3, 8, 5, 7, 2, 0, 6, 4, 9},
			{1, 0, 7, 4, 0, 8, 2, 0, 0},
			{2, 0, 0, 1, 0, 0, 0, 0, 4},
			{0, 0, 3, 0, 4, 0, 0, 8, 7},
			{0, 7, 0, 0, 5, 3, 0, 0, 6},
		}},
		"classic": {true, sudoku.Board{
			{5, 3, 0, 0, 7, 0, 0, 0, 0},
			{6, 0, 0, 1, 9, 5, 0, 0, 0},
			{0, 9, 8, 0, 0, 0, 0, 6, 0},
			{8, 0, 0, 0, 6, 0, 0, 0, 3},
			{4, 0, 0, 8, 0, 3, 0, 0, 1},
			{7, 0, 0, 0, 2, 0, 0, 0, 6},
			{0, 6, 0, 0, 0, 0, 2, 8, 0},
			{0, 0, 0, 4, 1, 9, 0, 0, 5},
			{0, 0, 0, 0, 8, 0, 0, 7, 9},
		}},
		"empty": {true, sudoku.Board{}},
		"contradictory": {false, sudoku.Board{
			{5, 5, 0, 0, 0, 0, 0, 0, 0},
		}},
	}

	tests := make([]TestMetadata, 0, len(puzzles))
	for name, puzzle := range puzzles {
		givens := lo.Sum(lo.Map(puzzle.board[:], func(row [9]int, _ int) int {
			return lo.CountBy(row[:], func(cell int) bool { return cell != 0 })
		}))

		tests = append(tests, TestMetadata{
			Name:        name,
			Satisfiable: puzzle.satisfiable,
			Givens:      givens,
			Board:       puzzle.board,
		})
	}

	return tests
}

func getSolvers() []SolverType {
	solvers := []SolverType{dpll}

	// Benchmark the external backend only when its binary is around
	if _, err := exec.LookPath("kissat"); err == nil {
		solvers = append(solvers, kissat)
	}

	return solvers
}

func measure(solverType SolverType, test TestMetadata) (duration int64, result ResultType) {
	var satSolver sat.SATSolver
	if solverType == kissat {
		satSolver = sat.NewKissatSolver()
	} else {
		satSolver = sat.NewDPLLSolver()
	}
	solver := sudoku.NewSolver(satSolver)

	start := time.Now()
	board, err := solver.Solve(test.Board)
	duration = time.Since(start).Milliseconds()

	if err != nil {
		log.Fatalf("an error occurred while solving puzzle \"%v\" with solver \"%v\": %v", test.Name, solverTypes[solverType], err)
	} else if board == nil {
		result = unsatisfiable
	} else {
		result = solved
		if !solver.Verify(*board, test.Board) {
			log.Fatalf("solver \"%v\" produced an invalid solution for puzzle \"%v\"", solverTypes[solverType], test.Name)
		}
	}

	if (result == unsatisfiable) == test.Satisfiable {
		log.Fatalf("puzzle \"%v\" was expected to be satisfiable=%v", test.Name, test.Satisfiable)
	}

	return duration, result
}

func toCsv(results []BenchmarkResult) {
	file, err := os.Create("benchmark_results.csv")
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Solver", "Puzzle", "Givens", "Duration(ms)", "Result"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		record := []string{
			solverTypes[result.Solver],
			result.Test.Name,
			fmt.Sprintf("%d", result.Test.Givens),
			fmt.Sprintf("%d", result.Duration),
			resultTypes[result.Result],
		}
		if err := writer.Write(record); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}
