package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/session"
)

type runFlags struct {
	algorithm string
	delay     time.Duration
	density   float64
	seed      int64
	noColor   bool
	trace     bool
}

func newRunCmd(a *app) *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one search headless and print the explored grid",
		Example: `  gridpath run --algorithm dijkstra
  gridpath run --map maze.txt --algorithm bfs --no-color
  gridpath run --density 0.26 --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runOnce(cmd, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.algorithm, "algorithm", "a", "", "astar, dijkstra, bfs, or dfs (default from config)")
	fl.DurationVar(&f.delay, "delay", 0, "pause at each step boundary")
	fl.Float64Var(&f.density, "density", -1, "randomize walls with this probability before running")
	fl.Int64Var(&f.seed, "seed", 0, "seed for --density (default from config)")
	fl.BoolVar(&f.noColor, "no-color", false, "plain ASCII output")
	fl.BoolVar(&f.trace, "trace", false, "print every run event")
	return cmd
}

func (a *app) runOnce(cmd *cobra.Command, f *runFlags) error {
	algo := a.cfg.Run.Algorithm
	if f.algorithm != "" {
		algo = f.algorithm
	}
	parsed, err := search.Parse(algo)
	if err != nil {
		return err
	}

	g, err := a.buildGrid()
	if err != nil {
		return err
	}
	if f.density >= 0 {
		seed := a.cfg.Grid.Seed
		if cmd.Flags().Changed("seed") {
			seed = f.seed
		}
		g.Randomize(rand.New(rand.NewSource(seed)), f.density)
	}

	out := cmd.OutOrStdout()
	var listener session.Listener
	if f.trace {
		listener = func(ev session.Event) {
			if ev.Kind != session.EventDone {
				fmt.Fprintf(out, "%4d %-8s (%d,%d)\n", ev.Seq, ev.Kind, ev.Pos.Row, ev.Pos.Col)
			}
		}
	}

	sess := session.New(g, session.WithLogger(a.logger))
	rep, err := sess.Run(cmd.Context(), session.Request{Algorithm: parsed.String(), Delay: f.delay}, listener)
	if err != nil {
		return err
	}

	theme := render.NewTheme(a.colorOut && !f.noColor)
	fmt.Fprint(out, render.Grid(g.Snapshot(), theme, nil))
	fmt.Fprintln(out, render.Summary(rep))
	return nil
}
