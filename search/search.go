// Package search implements fixed-depth minimax with alpha-beta pruning over
// any position that can enumerate, apply and undo its own moves.
package search

import (
	"errors"
	"fmt"
)

// Infinity bounds the search window. It is strictly larger than any score an
// Evaluator may return.
const Infinity = 1 << 30

var (
	ErrNegativeDepth = errors.New("search: negative depth")
	ErrInvalidWindow = errors.New("search: alpha is greater than beta")
	ErrNoLegalMoves  = errors.New("search: position is not over but has no legal moves")
)

// Position is the view of the rules engine the search needs. Apply mutates
// the position in place and Undo reverts the most recent successful Apply.
type Position[M any] interface {
	LegalMoves() []M
	Apply(M) error
	Undo()
	IsGameOver() bool
}

// Evaluator scores a position from the maximizing side's fixed perspective.
type Evaluator[P any] interface {
	Evaluate(P) int
}

// Result is the outcome of a search. HasMove is false at leaves, where Move
// holds the zero value.
type Result[M any] struct {
	Score   int
	Move    M
	HasMove bool
}

// Stats counts the work done by the last top-level call.
type Stats struct {
	Nodes   int
	Leaves  int
	Cutoffs int
}

type Engine[M any, P Position[M]] struct {
	evaluator Evaluator[P]
	stats     Stats
}

func New[M any, P Position[M]](evaluator Evaluator[P]) *Engine[M, P] {
	return &Engine[M, P]{evaluator: evaluator}
}

// Stats returns the counters of the most recent Search or Minimax call.
func (e *Engine[M, P]) Stats() Stats {
	return e.stats
}

// Search returns the best score and move for the side given by maximizing,
// exploring depth plies inside the (alpha, beta) window. pos is left exactly
// as it was received.
func (e *Engine[M, P]) Search(pos P, depth, alpha, beta int, maximizing bool) (Result[M], error) {
	if depth < 0 {
		return Result[M]{}, fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}
	if alpha > beta {
		return Result[M]{}, fmt.Errorf("%w: (%d, %d)", ErrInvalidWindow, alpha, beta)
	}

	e.stats = Stats{}
	return e.alphaBeta(pos, depth, alpha, beta, maximizing)
}

func (e *Engine[M, P]) alphaBeta(pos P, depth, alpha, beta int, maximizing bool) (Result[M], error) {
	e.stats.Nodes++
	if depth == 0 || pos.IsGameOver() {
		e.stats.Leaves++
		return Result[M]{Score: e.evaluator.Evaluate(pos)}, nil
	}

	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return Result[M]{}, ErrNoLegalMoves
	}

	var best Result[M]
	if maximizing {
		best.Score = -Infinity
		for _, move := range moves {
			current, err := e.child(pos, move, depth, alpha, beta, false)
			if err != nil {
				return Result[M]{}, err
			}
			if current.Score > best.Score {
				best = Result[M]{Score: current.Score, Move: move, HasMove: true}
			}
			alpha = max(alpha, current.Score)
			if beta <= alpha {
				e.stats.Cutoffs++
				break
			}
		}
	} else {
		best.Score = Infinity
		for _, move := range moves {
			current, err := e.child(pos, move, depth, alpha, beta, true)
			if err != nil {
				return Result[M]{}, err
			}
			if current.Score < best.Score {
				best = Result[M]{Score: current.Score, Move: move, HasMove: true}
			}
			beta = min(beta, current.Score)
			if beta <= alpha {
				e.stats.Cutoffs++
				break
			}
		}
	}

	return best, nil
}

// child explores move one ply deeper and undoes it before returning.
func (e *Engine[M, P]) child(pos P, move M, depth, alpha, beta int, maximizing bool) (Result[M], error) {
	if err := pos.Apply(move); err != nil {
		return Result[M]{}, fmt.Errorf("search: apply move: %w", err)
	}
	defer pos.Undo()

	return e.alphaBeta(pos, depth-1, alpha, beta, maximizing)
}
