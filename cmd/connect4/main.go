package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/iamasit07/connect4-engine/internal/config"
	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/service/cleanup"
	"github.com/iamasit07/connect4-engine/internal/service/game"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(config.GetEnv("ENV_FILE", ".env")); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.LoadConfig()
	sessionManager := game.NewSessionManager(cfg.BoardColumns, cfg.BoardRows)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cleanupWorker := cleanup.NewWorker(sessionManager, cfg.CleanupInterval, cfg.FinishedSessionTTL, cfg.IdleSessionTTL)
	go cleanupWorker.Start(ctx)

	session, err := sessionManager.CreateSession()
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}

	if err := run(session, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("Input error: %v", err)
	}
}

// run reads one 1-based column per line until the game ends or input runs out.
func run(session *game.GameSession, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	snap := session.Snapshot()
	render(out, snap)

	for !snap.Status.IsTerminal() {
		fmt.Fprintf(out, "Player %d, column (1-%d, q to quit): ", snap.CurrentPlayer, len(snap.Board[0]))
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "q" {
			return nil
		}
		column, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(out, "Please enter a column number.")
			continue
		}

		result, err := session.PlayMove(column - 1)
		switch {
		case errors.Is(err, domain.ErrOutOfRange):
			fmt.Fprintln(out, "No such column.")
			continue
		case errors.Is(err, domain.ErrColumnFull):
			fmt.Fprintln(out, "That column is full.")
			continue
		case err != nil:
			return err
		}

		snap = session.Snapshot()
		render(out, snap)

		switch result.Status {
		case domain.StatusWon:
			fmt.Fprintf(out, "Player %d won!\n", result.Winner)
		case domain.StatusDraw:
			fmt.Fprintln(out, "Tie game!")
		}
	}
	return nil
}

func render(out io.Writer, snap game.Snapshot) {
	var sb strings.Builder
	for _, row := range snap.Board {
		for _, cell := range row {
			switch cell {
			case domain.Player1:
				sb.WriteString(" X")
			case domain.Player2:
				sb.WriteString(" O")
			default:
				sb.WriteString(" .")
			}
		}
		sb.WriteByte('\n')
	}
	for c := range snap.Board[0] {
		fmt.Fprintf(&sb, "%2d", (c+1)%10)
	}
	sb.WriteByte('\n')
	fmt.Fprint(out, sb.String())
}
