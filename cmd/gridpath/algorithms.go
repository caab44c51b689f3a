package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/search"
)

func newAlgorithmsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the supported algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			def := search.Resolve(a.cfg.Run.Algorithm)
			for _, algo := range search.Algorithms() {
				marker := " "
				if algo == def {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %-9s %s\n", marker, algo, search.Describe(algo))
			}
			return nil
		},
	}
}
