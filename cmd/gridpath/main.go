// Command gridpath runs grid pathfinding searches headless, in an
// interactive terminal UI, or behind an HTTP/websocket server.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/grid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// app holds what every subcommand shares once flags are parsed.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	mapPath    string

	cfg      *config.Config
	level    slog.LevelVar
	logger   *slog.Logger
	logSink  io.Writer
	colorOut bool
}

func newRootCmd() *cobra.Command {
	a := &app{logSink: os.Stderr}

	root := &cobra.Command{
		Use:   "gridpath",
		Short: "Visualize A*, Dijkstra, BFS, and DFS on a grid",
		Long: `gridpath explores a grid of open cells and walls from a start cell to a
goal cell and shows how each search algorithm expands the frontier.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (default $"+config.EnvConfig+")")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: auto, text, json")
	pf.StringVar(&a.mapPath, "map", "", "text map file using . # S G (overrides grid config)")

	root.AddCommand(
		newRunCmd(a),
		newTUICmd(a),
		newServeCmd(a),
		newAlgorithmsCmd(a),
	)
	return root
}

// setup loads configuration and installs the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnv(); err != nil {
		return err
	}
	cfg, err := config.Load(config.Path(a.configPath))
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if err := a.level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	a.logger = newLogger(a.logSink, &a.level, cfg.Log.Format)
	slog.SetDefault(a.logger)

	a.colorOut = isTerminal(cmd.OutOrStdout())
	return nil
}

// newLogger builds a slog logger; "auto" picks text on a terminal and JSON
// otherwise.
func newLogger(w io.Writer, level slog.Leveler, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "auto" {
		format = "json"
		if isTerminal(w) {
			format = "text"
		}
	}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// buildGrid returns the grid from --map if given, otherwise from config.
func (a *app) buildGrid() (*grid.Grid, error) {
	if a.mapPath == "" {
		return a.cfg.NewGrid()
	}
	data, err := os.ReadFile(a.mapPath)
	if err != nil {
		return nil, err
	}
	g, err := grid.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.mapPath, err)
	}
	return g, nil
}
