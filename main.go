package main

import (
	"github.com/sirupsen/logrus"

	"chessbot/bots"
	"chessbot/config"
	"chessbot/game"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}
	logrus.SetLevel(cfg.Logs.Level)

	players, err := createBots(cfg)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := game.Run(players); err != nil {
		logrus.Fatal(err)
	}
}

// createBots puts the configured bot first, followed by the others.
func createBots(cfg *config.Config) ([]bots.ChessBot, error) {
	first, err := bots.New(cfg.Engine.Bot, cfg.Engine.Depth)
	if err != nil {
		return nil, err
	}

	players := []bots.ChessBot{first}
	for _, name := range bots.Names() {
		if name == cfg.Engine.Bot {
			continue
		}
		bot, err := bots.New(name, cfg.Engine.Depth)
		if err != nil {
			return nil, err
		}
		players = append(players, bot)
	}
	return players, nil
}
