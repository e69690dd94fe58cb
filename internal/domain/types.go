package domain

type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// Opponent returns the other player. Empty has no opponent.
func (p PlayerID) Opponent() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return Empty
}

func (p PlayerID) IsPlayer() bool {
	return p == Player1 || p == Player2
}

const (
	DefaultRows    = 6
	DefaultColumns = 7
	MinDimension   = 4
	ToWin          = 4
)

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

func (s GameStatus) IsTerminal() bool {
	return s == StatusWon || s == StatusDraw
}

// Cell is a (row, column) coordinate, row 0 being the top of the board.
type Cell struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// MoveResult describes a successfully applied move.
type MoveResult struct {
	Row          int        `json:"row"`
	Column       int        `json:"column"`
	Player       PlayerID   `json:"player"`
	Status       GameStatus `json:"status"`
	Winner       PlayerID   `json:"winner"`
	WinningCells []Cell     `json:"winning_cells,omitempty"`
}

// basic errors that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrOutOfRange        Error = "coordinate out of range"
	ErrColumnFull        Error = "column is full"
	ErrGameOver          Error = "game is already over"
	ErrInvalidDimensions Error = "board must be at least 4x4"
	ErrInvalidPlayer     Error = "invalid player"
)
