package sudoku

// Indexer interface is designed to give a unique SAT variable to a combination of cell attributes and vice versa
type Indexer interface {
	// Returns a unique SAT variable for a (row, column, digit) combination, each attribute in 1..9
	Index(row, column, digit uint64) uint64
	// Returns the (row, column, digit) combination encoded by a SAT variable
	Attributes(index uint64) (row uint64, column uint64, digit uint64)
}

func NewIndexer() Indexer {
	return &positionalIndexer{}
}
