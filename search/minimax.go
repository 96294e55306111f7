package search

import "fmt"

// Minimax is the unpruned full-width search. It visits every node Search
// could visit and returns the same score, so it serves as a reference when
// checking the pruned search.
func (e *Engine[M, P]) Minimax(pos P, depth int, maximizing bool) (Result[M], error) {
	if depth < 0 {
		return Result[M]{}, fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}

	e.stats = Stats{}
	return e.minimax(pos, depth, maximizing)
}

func (e *Engine[M, P]) minimax(pos P, depth int, maximizing bool) (Result[M], error) {
	e.stats.Nodes++
	if depth == 0 || pos.IsGameOver() {
		e.stats.Leaves++
		return Result[M]{Score: e.evaluator.Evaluate(pos)}, nil
	}

	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return Result[M]{}, ErrNoLegalMoves
	}

	best := Result[M]{Score: Infinity}
	if maximizing {
		best.Score = -Infinity
	}

	for _, move := range moves {
		if err := pos.Apply(move); err != nil {
			return Result[M]{}, fmt.Errorf("search: apply move: %w", err)
		}
		current, err := e.minimax(pos, depth-1, !maximizing)
		pos.Undo()
		if err != nil {
			return Result[M]{}, err
		}

		// Strictly better only, to match the tie-break of Search.
		if (maximizing && current.Score > best.Score) || (!maximizing && current.Score < best.Score) {
			best = Result[M]{Score: current.Score, Move: move, HasMove: true}
		}
	}

	return best, nil
}
