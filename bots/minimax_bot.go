package bots

import (
	"fmt"
	"time"

	"github.com/notnil/chess"
	"github.com/sirupsen/logrus"

	"chessbot/rules"
	"chessbot/search"
)

type MinimaxBot struct {
	Depth     int
	Evaluator PositionEvaluator
}

func NewMinimaxBot(depth int) *MinimaxBot {
	return &MinimaxBot{
		Depth:     depth,
		Evaluator: MaterialEvaluator{},
	}
}

func (b *MinimaxBot) Name() string {
	return fmt.Sprintf("Minimax Bot (depth %d)", b.Depth)
}

func (b *MinimaxBot) BestMove(game *chess.Game) (*chess.Move, error) {
	if game == nil {
		return nil, nil
	}

	result, err := b.Search(game)
	if err != nil {
		return nil, err
	}
	return result.Move, nil
}

// Search runs alpha-beta with a full window for the side to move. The game
// is only read.
func (b *MinimaxBot) Search(game *chess.Game) (search.Result[*chess.Move], error) {
	evaluator := b.evaluator()
	board := rules.NewBoard(game)
	maximizing := board.Turn() == evaluator.MaximizingSide()
	engine := search.New[*chess.Move, *rules.Board](evaluator)

	start := time.Now()
	result, err := engine.Search(board, b.Depth, -search.Infinity, search.Infinity, maximizing)
	if err != nil {
		return result, fmt.Errorf("bots: %s: %w", b.Name(), err)
	}

	stats := engine.Stats()
	logrus.WithFields(logrus.Fields{
		"depth":   b.Depth,
		"score":   result.Score,
		"move":    moveString(result),
		"nodes":   stats.Nodes,
		"leaves":  stats.Leaves,
		"cutoffs": stats.Cutoffs,
		"elapsed": time.Since(start),
	}).Debug("minimax search finished")

	return result, nil
}

// FullSearch is Search without pruning. It returns the same score and is
// only useful for checking the pruned search.
func (b *MinimaxBot) FullSearch(game *chess.Game) (search.Result[*chess.Move], error) {
	evaluator := b.evaluator()
	board := rules.NewBoard(game)
	maximizing := board.Turn() == evaluator.MaximizingSide()
	engine := search.New[*chess.Move, *rules.Board](evaluator)

	result, err := engine.Minimax(board, b.Depth, maximizing)
	if err != nil {
		return result, fmt.Errorf("bots: %s: %w", b.Name(), err)
	}

	logrus.WithFields(logrus.Fields{
		"depth": b.Depth,
		"score": result.Score,
		"nodes": engine.Stats().Nodes,
	}).Debug("full-width search finished")

	return result, nil
}

func (b *MinimaxBot) evaluator() PositionEvaluator {
	if b.Evaluator == nil {
		return MaterialEvaluator{}
	}
	return b.Evaluator
}

func moveString(result search.Result[*chess.Move]) string {
	if !result.HasMove {
		return "none"
	}
	return result.Move.String()
}
