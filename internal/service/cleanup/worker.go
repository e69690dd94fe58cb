package cleanup

import (
	"context"
	"log"
	"time"

	"github.com/iamasit07/connect4-engine/internal/service/game"
)

type Worker struct {
	SessionManager *game.SessionManager
	Interval       time.Duration
	FinishedTTL    time.Duration
	IdleTTL        time.Duration
}

func NewWorker(sm *game.SessionManager, interval, finishedTTL, idleTTL time.Duration) *Worker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Worker{
		SessionManager: sm,
		Interval:       interval,
		FinishedTTL:    finishedTTL,
		IdleTTL:        idleTTL,
	}
}

// Start sweeps once immediately and then on every tick until ctx is done.
// It blocks; run it in its own goroutine.
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	log.Println("[CLEANUP] Background worker started")
	w.runCleanup(time.Now())

	for {
		select {
		case <-ctx.Done():
			log.Println("[CLEANUP] Background worker stopped")
			return
		case now := <-ticker.C:
			w.runCleanup(now)
		}
	}
}

func (w *Worker) runCleanup(now time.Time) int {
	removed := w.SessionManager.CleanupOldSessions(w.FinishedTTL, w.IdleTTL, now)
	if removed > 0 {
		log.Printf("[CLEANUP] Removed %d stale sessions", removed)
	}
	return removed
}
