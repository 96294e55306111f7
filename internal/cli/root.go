package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"chessbot/config"
)

// settings is filled in before any subcommand runs.
type settings struct {
	cfg *config.Config
}

func Root() *cobra.Command {
	s := &settings{cfg: config.Default()}

	root := &cobra.Command{
		Use:   "chessgo",
		Short: "Play chess against a fixed-depth minimax bot",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			s.cfg = cfg

			logrus.SetLevel(cfg.Logs.Level)
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
			return nil
		},
	}

	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")

	root.AddCommand(Play(s))
	root.AddCommand(BestMove(s))
	root.AddCommand(Eval(s))

	return root
}

// depth returns the --depth flag when given, the configured depth otherwise.
func (s *settings) depth(cmd *cobra.Command) (int, error) {
	if !cmd.Flags().Changed("depth") {
		return s.cfg.Engine.Depth, nil
	}
	return cmd.Flags().GetInt("depth")
}
