package domain

type direction struct {
	deltaRow int
	deltaCol int
}

// horizontal, vertical, descending-right and descending-left
var directions = [...]direction{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// CountDiskInDirection counts the consecutive disks owned by player starting
// one step away from (row, column) and walking along (deltaRow, deltaCol).
func CountDiskInDirection(board *Board, row, column, deltaRow, deltaCol int, player PlayerID) int {
	count := 0
	r, c := row+deltaRow, column+deltaCol
	for board.inBounds(r, c) && board.cells[r][c] == player {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}

// WinningRunAt returns the full run of same-owner cells passing through
// (row, column) if it is at least ToWin long, or nil.
// Only lines through the anchor are inspected, so the cost does not grow
// with the board.
func WinningRunAt(board *Board, row, column int) []Cell {
	player := board.at(row, column)
	if player == Empty {
		return nil
	}

	for _, d := range directions {
		back := CountDiskInDirection(board, row, column, -d.deltaRow, -d.deltaCol, player)
		forward := CountDiskInDirection(board, row, column, d.deltaRow, d.deltaCol, player)
		if back+1+forward < ToWin {
			continue
		}

		run := make([]Cell, 0, back+1+forward)
		for i := -back; i <= forward; i++ {
			run = append(run, Cell{Row: row + i*d.deltaRow, Column: column + i*d.deltaCol})
		}
		return run
	}

	return nil
}

// HasWinAt is the anchored win check.
func HasWinAt(board *Board, row, column int) bool {
	return WinningRunAt(board, row, column) != nil
}

// HasWin scans every cell and direction for a window of ToWin same-owner
// cells. It returns the owner of the first window found.
func HasWin(board *Board) (PlayerID, bool) {
	for y := 0; y < board.height; y++ {
		for x := 0; x < board.width; x++ {
			owner := board.cells[y][x]
			if owner == Empty {
				continue
			}
			for _, d := range directions {
				if windowOwnedBy(board, y, x, d, owner) {
					return owner, true
				}
			}
		}
	}
	return Empty, false
}

func windowOwnedBy(board *Board, y, x int, d direction, owner PlayerID) bool {
	for k := 1; k < ToWin; k++ {
		r, c := y+k*d.deltaRow, x+k*d.deltaCol
		if !board.inBounds(r, c) || board.cells[r][c] != owner {
			return false
		}
	}
	return true
}
