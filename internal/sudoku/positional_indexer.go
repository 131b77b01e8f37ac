package sudoku

// positionalIndexer packs (row, column, digit) into the decimal number
// row*100 + column*10 + digit. Since every attribute lies in 1..9 no digit
// position ever carries, so the mapping is a bijection on 1..9 x 1..9 x 1..9.
type positionalIndexer struct{}

func (i *positionalIndexer) Index(row, column, digit uint64) uint64 {
	return row*100 + column*10 + digit
}

func (i *positionalIndexer) Attributes(index uint64) (row uint64, column uint64, digit uint64) {
	digit = index % 10
	index = index / 10

	column = index % 10
	index = index / 10

	row = index % 10

	return row, column, digit
}
