package domain

// Game is the rules engine for a single match. It is not safe for concurrent
// use; hosts must serialize calls to PlayMove.
type Game struct {
	board         *Board
	currentPlayer PlayerID
	status        GameStatus
	winner        PlayerID
	winningCells  []Cell
	moves         []int
}

func NewGame(width, height int) (*Game, error) {
	if width < MinDimension || height < MinDimension {
		return nil, ErrInvalidDimensions
	}

	board, err := NewBoard(width, height)
	if err != nil {
		return nil, err
	}

	return &Game{
		board:         board,
		currentPlayer: Player1,
		status:        StatusActive,
		winner:        Empty,
	}, nil
}

// NewStandardGame creates a game on the classic 7x6 board.
func NewStandardGame() *Game {
	g, _ := NewGame(DefaultColumns, DefaultRows)
	return g
}

// PlayMove drops the current player's disk into column and evaluates the
// outcome. A rejected move leaves the game untouched.
func (g *Game) PlayMove(column int) (MoveResult, error) {
	if g.status != StatusActive {
		return MoveResult{}, ErrGameOver
	}

	player := g.currentPlayer
	row, err := g.board.DropPiece(column, player)
	if err != nil {
		return MoveResult{}, err
	}
	g.moves = append(g.moves, column)

	result := MoveResult{
		Row:    row,
		Column: column,
		Player: player,
	}

	// win is checked before draw: the last cell can complete a run
	if run := WinningRunAt(g.board, row, column); run != nil {
		g.status = StatusWon
		g.winner = player
		g.winningCells = run
	} else if g.board.IsFull() {
		g.status = StatusDraw
	} else {
		g.currentPlayer = player.Opponent()
	}

	result.Status = g.status
	result.Winner = g.winner
	result.WinningCells = g.WinningCells()
	return result, nil
}

func (g *Game) IsFinished() bool {
	return g.status.IsTerminal()
}

func (g *Game) Status() GameStatus { return g.status }
func (g *Game) Winner() PlayerID { return g.winner }
func (g *Game) CurrentPlayer() PlayerID { return g.currentPlayer }
func (g *Game) MoveCount() int { return len(g.moves) }
func (g *Game) Width() int { return g.board.Width() }
func (g *Game) Height() int { return g.board.Height() }
func (g *Game) Board() [][]PlayerID { return g.board.Cells() }
func (g *Game) ValidColumns() []int { return g.board.ValidColumns() }

func (g *Game) Occupant(row, column int) (PlayerID, error) {
	return g.board.Occupant(row, column)
}

// Moves returns the columns played so far, in order.
func (g *Game) Moves() []int {
	moves := make([]int, len(g.moves))
	copy(moves, g.moves)
	return moves
}

func (g *Game) WinningCells() []Cell {
	if g.winningCells == nil {
		return nil
	}
	cells := make([]Cell, len(g.winningCells))
	copy(cells, g.winningCells)
	return cells
}
