package main

import (
	"github.com/spf13/cobra"

	"github.com/numerals/romankit/pkg/httpserver"
	"github.com/numerals/romankit/svc/convert"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the conversion API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg.HTTP
			if addr != "" {
				cfg.Addr = addr
			}
			srv := httpserver.New(cfg, httpserver.WithLogger(a.log))
			return srv.Run(cmd.Context(), convert.NewService(a.codec, a.log).Handle())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides HTTP_ADDR")
	return cmd
}
