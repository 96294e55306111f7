package bots

import (
	"github.com/notnil/chess"

	"chessbot/rules"
)

// WinScore is the score of a forced win for the maximizing side. Mates at
// different distances score the same.
const WinScore = 1000

// PositionEvaluator scores a board from MaximizingSide's point of view,
// whichever side is to move.
type PositionEvaluator interface {
	Evaluate(board *rules.Board) int
	MaximizingSide() chess.Color
}

// MaterialEvaluator scores terminal positions as wins, losses or draws and
// everything else by counting material.
type MaterialEvaluator struct {
	// Maximizer is the side positive scores favour. White when unset.
	Maximizer chess.Color
}

func (e MaterialEvaluator) MaximizingSide() chess.Color {
	if e.Maximizer == chess.NoColor {
		return chess.White
	}
	return e.Maximizer
}

func (e MaterialEvaluator) Evaluate(board *rules.Board) int {
	side := e.MaximizingSide()

	if board.IsCheckmate() {
		if board.Turn() == side {
			return -WinScore
		}
		return WinScore
	}
	if board.IsDraw() {
		return 0
	}

	score := 0
	for sq := chess.A1; sq <= chess.H8; sq++ {
		piece := board.PieceAt(sq)
		if piece == chess.NoPiece {
			continue
		}
		if piece.Color() == side {
			score += e.pieceValue(piece.Type())
		} else {
			score -= e.pieceValue(piece.Type())
		}
	}
	return score
}

// EvaluateGame scores the current position of game.
func (e MaterialEvaluator) EvaluateGame(game *chess.Game) int {
	return e.Evaluate(rules.NewBoard(game))
}

func (e MaterialEvaluator) pieceValue(piece chess.PieceType) int {
	switch piece {
	case chess.Pawn:
		return 1
	case chess.Knight:
		return 3
	case chess.Bishop:
		return 3
	case chess.Rook:
		return 5
	case chess.Queen:
		return 9
	default:
		return 0
	}
}
