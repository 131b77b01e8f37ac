package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/laoeked1111/sudoku/internal/sat"
	"github.com/laoeked1111/sudoku/internal/sudoku"
)

var (
	validSolvers = []string{"dpll", "kissat"}
	solvers      = map[string]func() sat.SATSolver{
		"dpll":   sat.NewDPLLSolver,
		"kissat": sat.NewKissatSolver,
	}
)

func main() {
	// Define arguments
	solverPtr := flag.String("solver", "dpll", "SAT-Solver to use. Allowed values are: \"dpll\" (built-in, the default) and \"kissat\" (requires the kissat binary in PATH)")
	filePathPtr := flag.String("file", "", "Path to the input JSON file; if empty, the puzzle is read row by row from the Standard Input")
	outFilePathPtr := flag.String("out", "", "Path to the file where the solution will be written as JSON; if empty, it'll only be printed to the Standard Output")
	dimacsPtr := flag.Bool("dimacs", false, "Print the puzzle's DIMACS-CNF encoding and exit without solving")
	flag.Parse()
	solverStr := strings.ToLower(*solverPtr)
	filePath := *filePathPtr
	outFile := *outFilePathPtr

	// Validate arguments
	if !slices.Contains(validSolvers, solverStr) {
		log.Fatalf("%v is not a valid solver", solverStr)
	}

	// Extract input
	board, err := readBoard(filePath)
	if err != nil {
		log.Fatalf("cannot parse input puzzle: %v", err)
	}

	// Initialize engines
	solver := sudoku.NewSolver(solvers[solverStr]())

	if *dimacsPtr {
		fmt.Print(solver.Encode(board).ToDIMACS())
		return
	}

	fmt.Println("Game board:")
	fmt.Println(board)

	// Solve puzzle
	solved, err := solver.Solve(board)
	if err != nil {
		log.Fatalf("an error occurred while solving the puzzle: %v", err)
	} else if solved == nil {
		fmt.Println("No solution exists")
		os.Exit(20)
	}

	// Verify solution correctness
	if !solver.Verify(*solved, board) {
		log.Fatalf("solver produced an invalid solution:\n%v", solved)
	}

	fmt.Println("Solved board:")
	fmt.Println(solved)

	if outFile != "" {
		solvedJson, err := json.Marshal(map[string]sudoku.Board{"board": *solved})
		if err != nil {
			log.Fatalf("an error occurred while building output json: %v", err)
		}
		if err := os.WriteFile(outFile, solvedJson, 0666); err != nil {
			log.Fatalf("an error occurred while writing to the output file: %v", err)
		}
	}

	os.Exit(10)
}

func readBoard(filePath string) (sudoku.Board, error) {
	if filePath != "" {
		return sudoku.InputFromJson(filePath)
	}

	fmt.Println("Enter your puzzle as nine rows of nine digits, where '0' marks an empty cell.")

	rows := make([]string, 0, 9)
	scanner := bufio.NewScanner(os.Stdin)
	for i := 1; i <= 9; i++ {
		fmt.Printf("Enter row %v: ", i)
		if !scanner.Scan() {
			return sudoku.Board{}, fmt.Errorf("unexpected end of input at row %v", i)
		}
		rows = append(rows, scanner.Text())
	}

	return sudoku.ParseRows(rows)
}
