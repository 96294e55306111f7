// bot.go
package bots

import (
	"fmt"
	"sort"
	"strings"

	"github.com/notnil/chess"
)

// ChessBot is implemented by every automated opponent. BestMove returns nil
// without an error when the side to move has no legal move.
type ChessBot interface {
	BestMove(game *chess.Game) (*chess.Move, error)
	Name() string
}

// DefaultDepth is the search depth used when none is configured.
const DefaultDepth = 3

var registry = map[string]func(depth int) ChessBot{
	"newborn": func(int) ChessBot { return NewNewbornBot() },
	"random":  func(int) ChessBot { return NewRandomBot(0) },
	"minimax": func(depth int) ChessBot { return NewMinimaxBot(depth) },
}

// New builds the bot registered under name. depth only applies to searching
// bots.
func New(name string, depth int) (ChessBot, error) {
	build, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("bots: unknown bot %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return build(depth), nil
}

// Names lists the registered bot names in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
