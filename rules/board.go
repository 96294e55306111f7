// Package rules adapts github.com/notnil/chess to the apply/undo discipline
// the search expects.
package rules

import (
	"errors"
	"fmt"

	"github.com/notnil/chess"
)

var ErrIllegalMove = errors.New("rules: illegal move")

// Board is a stack of game snapshots. The bottom snapshot is the game the
// board was created from and is never mutated; Apply pushes a successor and
// Undo pops it.
type Board struct {
	games []*chess.Game
}

func NewBoard(game *chess.Game) *Board {
	return &Board{games: []*chess.Game{game}}
}

// Game returns the current snapshot. Callers must not mutate it.
func (b *Board) Game() *chess.Game {
	return b.games[len(b.games)-1]
}

// Ply is the number of moves applied on top of the original game.
func (b *Board) Ply() int {
	return len(b.games) - 1
}

func (b *Board) LegalMoves() []*chess.Move {
	return b.Game().ValidMoves()
}

func (b *Board) Apply(move *chess.Move) error {
	next := b.Game().Clone()
	if err := next.Move(move); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrIllegalMove, move, err)
	}
	b.games = append(b.games, next)
	return nil
}

func (b *Board) Undo() {
	if len(b.games) == 1 {
		panic("rules: undo without a matching apply")
	}
	b.games[len(b.games)-1] = nil
	b.games = b.games[:len(b.games)-1]
}

func (b *Board) IsGameOver() bool {
	g := b.Game()
	return g.Outcome() != chess.NoOutcome || g.Position().Status() != chess.NoMethod
}

func (b *Board) IsCheckmate() bool {
	g := b.Game()
	return g.Method() == chess.Checkmate || g.Position().Status() == chess.Checkmate
}

func (b *Board) IsStalemate() bool {
	g := b.Game()
	return g.Method() == chess.Stalemate || g.Position().Status() == chess.Stalemate
}

// IsDraw reports stalemate and every automatic draw notnil/chess detects
// (insufficient material, fivefold repetition, seventy-five-move rule).
func (b *Board) IsDraw() bool {
	return b.IsStalemate() || b.Game().Outcome() == chess.Draw
}

func (b *Board) PieceAt(sq chess.Square) chess.Piece {
	return b.Game().Position().Board().Piece(sq)
}

func (b *Board) Turn() chess.Color {
	return b.Game().Position().Turn()
}

func (b *Board) FEN() string {
	return b.Game().FEN()
}
