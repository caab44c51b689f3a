package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/session"
	"github.com/katalvlaran/gridpath/tui"
)

func newTUICmd(a *app) *cobra.Command {
	var (
		algorithm string
		delay     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Edit the grid and watch searches in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if algorithm == "" {
				algorithm = a.cfg.Run.Algorithm
			}
			algo, err := search.Parse(algorithm)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("delay") {
				delay = a.cfg.Run.Delay
			}

			g, err := a.buildGrid()
			if err != nil {
				return err
			}
			sess := session.New(g, session.WithLogger(a.logger))
			return tui.Run(sess, tui.Options{
				Algorithm: algo,
				Delay:     delay,
				Color:     true,
				Seed:      a.cfg.Grid.Seed,
			})
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "initially selected algorithm")
	cmd.Flags().DurationVar(&delay, "delay", 0, "initial step delay")
	return cmd
}
