package game

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/pkg/uid"
)

var ErrSessionNotFound = errors.New("session not found")

// GameSession wraps one engine and serializes every call into it.
type GameSession struct {
	GameID     string
	CreatedAt  time.Time
	FinishedAt time.Time
	game       *domain.Game
	mu         sync.Mutex
}

// Snapshot is a consistent, caller-owned view of a session.
type Snapshot struct {
	GameID        string              `json:"game_id"`
	Board         [][]domain.PlayerID `json:"board"`
	Status        domain.GameStatus   `json:"status"`
	Winner        domain.PlayerID     `json:"winner"`
	CurrentPlayer domain.PlayerID     `json:"current_player"`
	MoveCount     int                 `json:"move_count"`
	WinningCells  []domain.Cell       `json:"winning_cells,omitempty"`
}

// SessionManager manages active game sessions
type SessionManager struct {
	sessions map[string]*GameSession // gameID → GameSession
	width    int
	height   int
	mu       sync.RWMutex
}

func NewSessionManager(width, height int) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*GameSession),
		width:    width,
		height:   height,
	}
}

func (sm *SessionManager) CreateSession() (*GameSession, error) {
	g, err := domain.NewGame(sm.width, sm.height)
	if err != nil {
		return nil, fmt.Errorf("create game %dx%d: %w", sm.width, sm.height, err)
	}

	gameID, err := uid.GenerateGameID()
	if err != nil {
		return nil, err
	}

	session := &GameSession{
		GameID:    gameID,
		CreatedAt: time.Now(),
		game:      g,
	}

	sm.mu.Lock()
	sm.sessions[gameID] = session
	sm.mu.Unlock()

	log.Printf("[SESSION] Created session %s (%dx%d)", gameID, sm.width, sm.height)
	return session, nil
}

func (sm *SessionManager) GetSession(gameID string) (*GameSession, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.sessions[gameID]
	return session, exists
}

// PlayMove looks up the session and applies the move to it.
func (sm *SessionManager) PlayMove(gameID string, column int) (domain.MoveResult, error) {
	session, exists := sm.GetSession(gameID)
	if !exists {
		return domain.MoveResult{}, fmt.Errorf("game %s: %w", gameID, ErrSessionNotFound)
	}
	return session.PlayMove(column)
}

func (sm *SessionManager) RemoveSession(gameID string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.sessions[gameID]; !exists {
		return fmt.Errorf("game %s: %w", gameID, ErrSessionNotFound)
	}

	log.Printf("[SESSION] Removing session %s", gameID)
	delete(sm.sessions, gameID)
	return nil
}

// ActiveSessions returns the IDs of sessions whose game is still running,
// sorted.
func (sm *SessionManager) ActiveSessions() []string {
	sm.mu.RLock()
	sessions := make([]*GameSession, 0, len(sm.sessions))
	for _, session := range sm.sessions {
		sessions = append(sessions, session)
	}
	sm.mu.RUnlock()

	ids := []string{}
	for _, session := range sessions {
		if !session.IsFinished() {
			ids = append(ids, session.GameID)
		}
	}
	sort.Strings(ids)
	return ids
}

func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

// CleanupOldSessions drops sessions finished more than finishedTTL before now
// and running sessions created more than idleTTL before now.
func (sm *SessionManager) CleanupOldSessions(finishedTTL, idleTTL time.Duration, now time.Time) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	count := 0
	for gameID, session := range sm.sessions {
		session.mu.Lock()
		finished := session.game.IsFinished()
		finishedAt := session.FinishedAt
		session.mu.Unlock()

		if finished && now.Sub(finishedAt) > finishedTTL {
			delete(sm.sessions, gameID)
			count++
		} else if !finished && now.Sub(session.CreatedAt) > idleTTL {
			delete(sm.sessions, gameID)
			count++
		}
	}

	if count > 0 {
		log.Printf("[SESSION] Memory cleanup: Removed %d stale game sessions", count)
	}
	return count
}

func (gs *GameSession) PlayMove(column int) (domain.MoveResult, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	result, err := gs.game.PlayMove(column)
	if err != nil {
		return result, err
	}

	switch result.Status {
	case domain.StatusWon:
		gs.FinishedAt = time.Now()
		log.Printf("[GAME] Game %s won by player %d after %d moves", gs.GameID, result.Winner, gs.game.MoveCount())
	case domain.StatusDraw:
		gs.FinishedAt = time.Now()
		log.Printf("[GAME] Game %s ended in a draw", gs.GameID)
	}
	return result, nil
}

func (gs *GameSession) IsFinished() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.game.IsFinished()
}

func (gs *GameSession) Snapshot() Snapshot {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	return Snapshot{
		GameID:        gs.GameID,
		Board:         gs.game.Board(),
		Status:        gs.game.Status(),
		Winner:        gs.game.Winner(),
		CurrentPlayer: gs.game.CurrentPlayer(),
		MoveCount:     gs.game.MoveCount(),
		WinningCells:  gs.game.WinningCells(),
	}
}
