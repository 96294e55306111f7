package bots

import (
	"errors"
	"testing"

	"github.com/notnil/chess"

	"chessbot/search"
)

const (
	startFEN    = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	backRankFEN = "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"
	kingsFEN    = "8/8/8/4k3/8/8/8/4K3 w - - 0 1"
	stalemate   = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
)

func isLegal(game *chess.Game, move *chess.Move) bool {
	for _, m := range game.ValidMoves() {
		if m.String() == move.String() {
			return true
		}
	}
	return false
}

func TestMinimaxOpeningDepthOne(t *testing.T) {
	g := chess.NewGame()

	result, err := NewMinimaxBot(1).Search(g)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !result.HasMove || !isLegal(g, result.Move) {
		t.Fatalf("expected one of the 20 opening moves, got %+v", result)
	}
	if result.Score != 0 {
		t.Fatalf("no capture is possible on move one, got score %d", result.Score)
	}
	// Every opening move scores 0, so the first one enumerated wins the tie.
	if result.Move.String() != g.ValidMoves()[0].String() {
		t.Fatalf("expected first enumerated move %s, got %s", g.ValidMoves()[0], result.Move)
	}
}

func TestMinimaxFindsMateInOne(t *testing.T) {
	for depth := 1; depth <= 3; depth++ {
		move, err := NewMinimaxBot(depth).BestMove(gameFromFEN(t, backRankFEN))
		if err != nil {
			t.Fatalf("depth %d: %v", depth, err)
		}
		if move == nil || move.String() != "a1a8" {
			t.Fatalf("depth %d: expected a1a8, got %v", depth, move)
		}
	}
}

func TestMinimaxMinimizingSide(t *testing.T) {
	g := gameFromFEN(t, mirrorFEN(backRankFEN))

	result, err := NewMinimaxBot(2).Search(g)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if result.Score != -WinScore || result.Move.String() != "a8a1" {
		t.Fatalf("expected a8a1 mating for black, got %+v", result)
	}
}

func TestMinimaxMatchesFullSearch(t *testing.T) {
	fens := []string{startFEN, backRankFEN, kingsFEN, mirrorFEN(backRankFEN)}

	for _, fen := range fens {
		for depth := 0; depth <= 3; depth++ {
			bot := NewMinimaxBot(depth)
			g := gameFromFEN(t, fen)

			pruned, err := bot.Search(g)
			if err != nil {
				t.Fatalf("%s depth %d: search: %v", fen, depth, err)
			}
			full, err := bot.FullSearch(g)
			if err != nil {
				t.Fatalf("%s depth %d: full search: %v", fen, depth, err)
			}
			if pruned.Score != full.Score {
				t.Fatalf("%s depth %d: pruned score %d, full score %d", fen, depth, pruned.Score, full.Score)
			}
			if pruned.HasMove != full.HasMove || (pruned.HasMove && pruned.Move.String() != full.Move.String()) {
				t.Fatalf("%s depth %d: pruned move %v, full move %v", fen, depth, pruned.Move, full.Move)
			}
		}
	}
}

func TestMinimaxDrawnEndgame(t *testing.T) {
	result, err := NewMinimaxBot(3).Search(gameFromFEN(t, kingsFEN))
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if result.Score != 0 {
		t.Fatalf("king versus king scored %d", result.Score)
	}
}

func TestMinimaxStalemateHasNoMove(t *testing.T) {
	for depth := 1; depth <= 3; depth++ {
		bot := NewMinimaxBot(depth)
		g := gameFromFEN(t, stalemate)

		result, err := bot.Search(g)
		if err != nil {
			t.Fatalf("depth %d: %v", depth, err)
		}
		if result.Score != 0 || result.HasMove {
			t.Fatalf("depth %d: expected (0, none), got %+v", depth, result)
		}

		move, err := bot.BestMove(g)
		if move != nil || err != nil {
			t.Fatalf("depth %d: BestMove = %v, %v", depth, move, err)
		}
	}
}

func TestMinimaxLeavesGameUntouched(t *testing.T) {
	games := map[string]*chess.Game{
		"start":     chess.NewGame(),
		"open game": gameFromSAN(t, "e4", "e5", "Nf3", "Nc6"),
		"back rank": gameFromFEN(t, backRankFEN),
	}

	for name, g := range games {
		fen, pgn, plies := g.FEN(), g.String(), len(g.Moves())
		for depth := 0; depth <= 3; depth++ {
			if _, err := NewMinimaxBot(depth).BestMove(g); err != nil {
				t.Fatalf("%s depth %d: %v", name, depth, err)
			}
			if g.FEN() != fen || g.String() != pgn || len(g.Moves()) != plies || g.Outcome() != chess.NoOutcome {
				t.Fatalf("%s depth %d: game changed to %s", name, depth, g.FEN())
			}
		}
	}
}

func TestMinimaxRejectsNegativeDepth(t *testing.T) {
	if _, err := NewMinimaxBot(-1).BestMove(chess.NewGame()); !errors.Is(err, search.ErrNegativeDepth) {
		t.Fatalf("got %v", err)
	}
}

func TestMinimaxNilGame(t *testing.T) {
	move, err := NewMinimaxBot(3).BestMove(nil)
	if move != nil || err != nil {
		t.Fatalf("got %v, %v", move, err)
	}
}
