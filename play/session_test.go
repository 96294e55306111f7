package play

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/notnil/chess"

	"chessbot/bots"
	"chessbot/rules"
)

const backRankFEN = "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"

func newSession(t *testing.T, fen string, human chess.Color, input string) (*Session, *bytes.Buffer) {
	t.Helper()
	g, err := rules.NewGame(fen)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}

	out := &bytes.Buffer{}
	return &Session{
		Game:  g,
		Bot:   bots.NewMinimaxBot(1),
		Human: human,
		In:    strings.NewReader(input),
		Out:   out,
	}, out
}

func TestHumanDeliversMate(t *testing.T) {
	s, out := newSession(t, backRankFEN, chess.White, "xyz\ne2e4\na1a8\n")

	if err := s.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	for _, want := range []string{
		"Invalid input. Please try again.",
		"Invalid move. Please try again.",
		"You played: a1a8",
		"Checkmate! You win!",
	} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if s.Game.Outcome() != chess.WhiteWon {
		t.Fatalf("outcome = %s", s.Game.Outcome())
	}
}

func TestComputerDeliversMate(t *testing.T) {
	s, out := newSession(t, backRankFEN, chess.Black, "")

	if err := s.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Computer played: a1a8") || !strings.Contains(out.String(), "Checkmate! Computer wins!") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestStalemateIsDraw(t *testing.T) {
	s, out := newSession(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", chess.Black, "")

	if err := s.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Draw!") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestInputClosed(t *testing.T) {
	s, _ := newSession(t, "", chess.White, "")

	if err := s.Run(); !errors.Is(err, ErrInputClosed) {
		t.Fatalf("got %v", err)
	}
}

func TestSave(t *testing.T) {
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	xdg.Reload()

	g := chess.NewGame()
	if err := g.MoveStr("e4"); err != nil {
		t.Fatalf("move: %v", err)
	}

	path, err := Save(g, time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if filepath.Base(path) != "20240501-123000.pgn" {
		t.Fatalf("path = %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "e4") {
		t.Fatalf("pgn missing the move:\n%s", data)
	}
}
