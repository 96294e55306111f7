package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/notnil/chess"
	"github.com/spf13/cobra"

	"chessbot/bots"
	"chessbot/rules"
	"chessbot/search"
)

// chessgo bestmove
func BestMove(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bestmove",
		Short: "Print the minimax move and score for a position",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`bestmove searches the given position to a fixed depth
			with alpha-beta pruning and prints the score and the chosen
			move in UCI notation.

			Scores are from white's point of view: 1000 is a forced win
			for white, -1000 a forced win for black, and anything in
			between is the material balance.

			With --full the search visits every node without pruning.
			It returns the same score and is only useful for checking.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			fen, _ := cmd.Flags().GetString("fen")
			full, _ := cmd.Flags().GetBool("full")
			depth, err := s.depth(cmd)
			if err != nil {
				return err
			}

			game, err := rules.NewGame(fen)
			if err != nil {
				return err
			}

			bot := bots.NewMinimaxBot(depth)
			var result search.Result[*chess.Move]
			if full {
				result, err = bot.FullSearch(game)
			} else {
				result, err = bot.Search(game)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "score %d\n", result.Score)
			if result.HasMove {
				fmt.Fprintf(out, "bestmove %s\n", result.Move)
			} else {
				fmt.Fprintln(out, "bestmove (none)")
			}
			return nil
		},
	}

	cmd.Flags().String("fen", "", "Position to search (default: starting position)")
	cmd.Flags().IntP("depth", "d", bots.DefaultDepth, "Search depth in plies")
	cmd.Flags().Bool("full", false, "Search without alpha-beta pruning")

	return cmd
}

// chessgo eval
func Eval(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Print the static evaluation of a position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fen, _ := cmd.Flags().GetString("fen")
			game, err := rules.NewGame(fen)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), bots.MaterialEvaluator{}.EvaluateGame(game))
			return nil
		},
	}

	cmd.Flags().String("fen", "", "Position to evaluate (default: starting position)")

	return cmd
}
