package rules

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

// NewGame starts a game from fen, or from the standard position when fen is
// empty.
func NewGame(fen string) (*chess.Game, error) {
	fen = strings.TrimSpace(fen)
	if fen == "" {
		return chess.NewGame(), nil
	}

	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("rules: parse fen %q: %w", fen, err)
	}
	return chess.NewGame(opt), nil
}

// ParseMove decodes a move in UCI notation (e2e4, e7e8q) and checks that it
// is legal in the game's current position.
func ParseMove(game *chess.Game, text string) (*chess.Move, error) {
	text = strings.ToLower(strings.TrimSpace(text))

	decoded, err := chess.UCINotation{}.Decode(game.Position(), text)
	if err != nil {
		return nil, fmt.Errorf("rules: parse move %q: %w", text, err)
	}

	for _, m := range game.ValidMoves() {
		if m.S1() == decoded.S1() && m.S2() == decoded.S2() && m.Promo() == decoded.Promo() {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrIllegalMove, text)
}

// MoveBetween finds the legal move from one square to another. Promotions
// default to a queen.
func MoveBetween(game *chess.Game, from, to chess.Square) *chess.Move {
	var found *chess.Move
	for _, m := range game.ValidMoves() {
		if m.S1() != from || m.S2() != to {
			continue
		}
		if m.Promo() == chess.NoPieceType || m.Promo() == chess.Queen {
			return m
		}
		if found == nil {
			found = m
		}
	}
	return found
}
