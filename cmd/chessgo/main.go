package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"chessbot/internal/cli"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := chessgo(); err != nil {
		logrus.Fatal(err)
	}
}

func chessgo() error {
	root := cli.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
