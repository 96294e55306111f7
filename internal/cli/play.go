package cli

import (
	"fmt"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"chessbot/bots"
	"chessbot/config"
	"chessbot/play"
	"chessbot/rules"
)

// chessgo play
func Play(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game against a bot in the terminal",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`play starts a game between you and a bot. Enter your
			moves in UCI notation, for example e2e4 or e7e8q for a
			promotion. Illegal or malformed moves are rejected and you
			are asked again.

			The bot, its search depth and your colour default to the
			CHESSGO_BOT, CHESSGO_DEPTH and CHESSGO_COLOR environment
			variables, which may also be set in a .env file.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			depth, err := s.depth(cmd)
			if err != nil {
				return err
			}

			name := s.cfg.Engine.Bot
			if cmd.Flags().Changed("bot") {
				name, _ = cmd.Flags().GetString("bot")
			}
			bot, err := bots.New(name, depth)
			if err != nil {
				return err
			}

			human := s.cfg.Human
			if cmd.Flags().Changed("color") {
				colorName, _ := cmd.Flags().GetString("color")
				if human, err = config.ParseColor(colorName); err != nil {
					return err
				}
			}

			fen, _ := cmd.Flags().GetString("fen")
			game, err := rules.NewGame(fen)
			if err != nil {
				return err
			}

			noSpinner, _ := cmd.Flags().GetBool("no-spinner")
			session := &play.Session{
				Game:    game,
				Bot:     bot,
				Human:   human,
				In:      cmd.InOrStdin(),
				Out:     cmd.OutOrStdout(),
				Spinner: !noSpinner,
			}

			logrus.WithFields(logrus.Fields{
				"bot":   bot.Name(),
				"human": human,
			}).Debug("starting game")

			if err := session.Run(); err != nil {
				return err
			}

			if save, _ := cmd.Flags().GetBool("save"); save {
				path, err := play.Save(game, time.Now())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Game saved to", path)
			}
			return nil
		},
	}

	cmd.Flags().StringP("color", "c", "white", "Colour you play (white or black)")
	cmd.Flags().IntP("depth", "d", bots.DefaultDepth, "Search depth of the bot in plies")
	cmd.Flags().StringP("bot", "b", "minimax", fmt.Sprintf("Bot to play against %v", bots.Names()))
	cmd.Flags().String("fen", "", "Start from this position instead of the initial one")
	cmd.Flags().Bool("save", false, "Save the finished game as PGN in the data directory")
	cmd.Flags().Bool("no-spinner", false, "Do not animate while the bot is thinking")

	return cmd
}
