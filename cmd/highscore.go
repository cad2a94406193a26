package cmd

import (
	"errors"
	"fmt"

	"github.com/golangdaddy/cardodge/config"
	"github.com/golangdaddy/cardodge/models"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newHighScoreCmd(v *viper.Viper, cfgFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "highscore",
		Short: "Show the high score and the last run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, *cfgFile)
			if err != nil {
				return err
			}
			store := scoreStore(cfg)
			out := cmd.OutOrStdout()

			high, err := store.LoadHighScore()
			switch {
			case errors.Is(err, models.ErrNoRecord):
				fmt.Fprintln(out, "High score: 0")
			case err != nil:
				return err
			default:
				fmt.Fprintf(out, "High score: %d\n", high)
			}

			run, err := store.LoadLastRun()
			switch {
			case errors.Is(err, models.ErrNoRecord):
				fmt.Fprintln(out, "No runs recorded yet")
			case err != nil:
				return err
			default:
				fmt.Fprintf(out, "Last run: score %d, distance %dm, %d cars dodged, %d lanes (%s)\n",
					run.Score, run.Distance, run.CarsDodged, run.Lanes, run.FinishedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Reset the high score to 0",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, *cfgFile)
			if err != nil {
				return err
			}
			store := scoreStore(cfg)
			if err := store.SaveHighScore(0); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "High score reset (%s)\n", store.Path())
			return nil
		},
	})
	return cmd
}
