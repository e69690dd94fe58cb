package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/service/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T) *game.GameSession {
	t.Helper()
	session, err := game.NewSessionManager(7, 6).CreateSession()
	require.NoError(t, err)
	return session
}

func TestRun_PlaysToWin(t *testing.T) {
	session := newSession(t)
	in := strings.NewReader("1\n2\n1\n2\nabc\n9\n1\n2\n1\n")
	var out bytes.Buffer

	require.NoError(t, run(session, in, &out))

	assert.Contains(t, out.String(), "Player 1 won!")
	assert.Contains(t, out.String(), "Please enter a column number.")
	assert.Contains(t, out.String(), "No such column.")
	assert.Equal(t, domain.StatusWon, session.Snapshot().Status)
}

func TestRun_ColumnFullAndQuit(t *testing.T) {
	session := newSession(t)
	in := strings.NewReader(strings.Repeat("3\n", 7) + "q\n")
	var out bytes.Buffer

	require.NoError(t, run(session, in, &out))

	assert.Contains(t, out.String(), "That column is full.")
	snap := session.Snapshot()
	assert.Equal(t, domain.StatusActive, snap.Status)
	assert.Equal(t, 6, snap.MoveCount)
}

func TestRender(t *testing.T) {
	session := newSession(t)
	_, err := session.PlayMove(0)
	require.NoError(t, err)
	_, err = session.PlayMove(6)
	require.NoError(t, err)

	var out bytes.Buffer
	render(&out, session.Snapshot())

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, " . . . . . . .", lines[0])
	assert.Equal(t, " X . . . . . O", lines[5])
	assert.Equal(t, " 1 2 3 4 5 6 7", lines[6])
}
