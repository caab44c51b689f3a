package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/server"
	"github.com/katalvlaran/gridpath/session"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API, metrics, and websocket event stream",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			g, err := a.buildGrid()
			if err != nil {
				return err
			}

			eg, ctx := errgroup.WithContext(cmd.Context())
			sess := session.New(g, session.WithLogger(a.logger))
			srv := server.New(ctx, sess,
				server.WithLogger(a.logger),
				server.WithDefaults(search.Resolve(a.cfg.Run.Algorithm), a.cfg.Run.Delay),
			)

			eg.Go(func() error { return srv.ListenAndServe(ctx, addr) })
			if path := config.Path(a.configPath); path != "" {
				eg.Go(func() error { return config.Watch(ctx, path, 0, a.reload) })
			}
			return eg.Wait()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, $"+config.EnvAddr+")")
	return cmd
}

// reload applies the settings that can change without a restart.
// Grid size and the listen address only take effect on the next start.
func (a *app) reload(cfg *config.Config, err error) {
	if err != nil {
		a.logger.Warn("config reload failed, keeping previous settings", "error", err)
		return
	}
	if err := a.level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		a.logger.Warn("config reload: bad log level", "level", cfg.Log.Level, "error", err)
		return
	}
	a.logger.Info("config reloaded", "log_level", cfg.Log.Level)
}
