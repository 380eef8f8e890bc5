package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathdiv/internal/config"
	"github.com/katalvlaran/pathdiv/internal/server"
)

func newServeCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the route API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			srv := server.New(server.Deps{
				Log:         env.log,
				Graph:       env.graph,
				DefaultK:    env.cfg.K,
				CORSOrigins: env.cfg.CORSOrigins,
				SessionTTL:  env.cfg.SessionTTL,
				Version:     version,
			})

			return srv.Run(cmd.Context(), env.cfg.Listen)
		},
	}
	f := cmd.Flags()
	f.IntP("k", "k", config.DefaultK, "default number of routes per request")
	f.String("listen", config.DefaultListen, "HTTP listen address")
	f.String("cors-origins", "", "comma separated browser origins allowed to call the API")
	f.Duration("session-ttl", config.DefaultSessionTTL, "idle time after which a session is dropped")

	return cmd
}
