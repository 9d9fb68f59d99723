package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/osdetect/internal/api"
	"github.com/dmitrymomot/osdetect/pkg/httpserver"
	"github.com/dmitrymomot/osdetect/pkg/logger"
	"github.com/dmitrymomot/osdetect/pkg/platform"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the classifier over HTTP",
		Long: `Serve the classification API until interrupted. The listen address and
timeouts come from HTTP_* variables; --addr overrides HTTP_ADDR.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := opts.cfg
			if addr != "" {
				cfg.HTTP.Addr = addr
			}
			log := cfg.Logger(cmd.ErrOrStderr(), logger.WithContextExtractors(api.RequestIDExtractor()))

			detector := platform.NewDetector(
				platform.NewSourceFromConfig(cfg.Platform),
				platform.WithTTL(cfg.Platform.TTL),
				platform.WithLogger(log.With(logger.Component("platform"))),
			)
			router := api.NewRouter(api.Options{
				Detector:  detector,
				CacheSize: cfg.CacheSize,
				Logger:    log,
			})

			srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log.With(logger.Component("http"))))
			return srv.Run(cmd.Context(), router)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address, e.g. :8080")
	return cmd
}
