package domain

// Board holds cell occupancy. Row 0 is the top row, row Height()-1 the bottom.
// It knows nothing about turns or wins.
type Board struct {
	width  int
	height int
	cells  [][]PlayerID
}

func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	cells := make([][]PlayerID, height)
	for i := range cells {
		cells[i] = make([]PlayerID, width)
	}
	return &Board{width: width, height: height, cells: cells}, nil
}

func (b *Board) Width() int { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) inBounds(row, column int) bool {
	return row >= 0 && row < b.height && column >= 0 && column < b.width
}

// DropPiece places player's disk in the lowest empty row of column and
// returns that row.
func (b *Board) DropPiece(column int, player PlayerID) (int, error) {
	if column < 0 || column >= b.width {
		return -1, ErrOutOfRange
	}
	if !player.IsPlayer() {
		return -1, ErrInvalidPlayer
	}

	// shifting the disk from top to bottom till it
	// reaches the end or another disk
	for row := b.height - 1; row >= 0; row-- {
		if b.cells[row][column] == Empty {
			b.cells[row][column] = player
			return row, nil
		}
	}

	return -1, ErrColumnFull
}

// IsFull reports whether every cell is occupied. Pieces never float, so a
// full top row means a full board.
func (b *Board) IsFull() bool {
	for c := 0; c < b.width; c++ {
		if b.cells[0][c] == Empty {
			return false
		}
	}
	return true
}

func (b *Board) Occupant(row, column int) (PlayerID, error) {
	if !b.inBounds(row, column) {
		return Empty, ErrOutOfRange
	}
	return b.cells[row][column], nil
}

// at is the unchecked variant of Occupant; out of range reads as Empty.
func (b *Board) at(row, column int) PlayerID {
	if !b.inBounds(row, column) {
		return Empty
	}
	return b.cells[row][column]
}

// ValidColumns lists the columns that can still take a piece.
func (b *Board) ValidColumns() []int {
	columns := []int{}
	for c := 0; c < b.width; c++ {
		if b.cells[0][c] == Empty {
			columns = append(columns, c)
		}
	}
	return columns
}

// Cells returns a deep copy of the grid, indexed [row][column].
func (b *Board) Cells() [][]PlayerID {
	grid := make([][]PlayerID, len(b.cells))
	for i := range b.cells {
		grid[i] = make([]PlayerID, len(b.cells[i]))
		copy(grid[i], b.cells[i])
	}
	return grid
}

func (b *Board) Copy() *Board {
	return &Board{width: b.width, height: b.height, cells: b.Cells()}
}
