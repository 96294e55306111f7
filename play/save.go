package play

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/notnil/chess"
)

// Save writes the game as PGN under the user's data directory and returns
// the file path.
func Save(game *chess.Game, now time.Time) (string, error) {
	name := now.Format("20060102-150405") + ".pgn"

	path, err := xdg.DataFile(filepath.Join("chessgo", "games", name))
	if err != nil {
		return "", fmt.Errorf("play: locate save file: %w", err)
	}

	if err := os.WriteFile(path, []byte(game.String()), 0o644); err != nil {
		return "", fmt.Errorf("play: save game: %w", err)
	}
	return path, nil
}
