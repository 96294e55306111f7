package bots

import (
	"math/rand"
	"time"

	"github.com/notnil/chess"
)

type RandomBot struct {
	rnd *rand.Rand
}

// NewRandomBot seeds the bot with seed, or with the clock when seed is zero.
func NewRandomBot(seed int64) *RandomBot {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomBot{rnd: rand.New(rand.NewSource(seed))}
}

func (b *RandomBot) BestMove(game *chess.Game) (*chess.Move, error) {
	moves := game.ValidMoves()
	if len(moves) > 0 {
		return moves[b.rnd.Intn(len(moves))], nil
	}
	return nil, nil
}

func (b *RandomBot) Name() string {
	return "Random Bot"
}
