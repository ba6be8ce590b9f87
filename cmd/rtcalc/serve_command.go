package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"rtcalc/internal/metrics"
	"rtcalc/internal/pipeline"
	"rtcalc/internal/server"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bind string
	var numbering string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator over HTTP until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			serverCfg := *cfg
			if strings.TrimSpace(bind) != "" {
				serverCfg.Server.Bind = strings.TrimSpace(bind)
			}

			var collector *metrics.Collector
			var observer pipeline.Observer
			if serverCfg.Server.MetricsEnabled {
				collector = metrics.NewCollector()
				observer = collector
			}

			runner, logger, err := ctx.newRunner(numbering, observer)
			if err != nil {
				return err
			}

			sigCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(&serverCfg, runner, collector, logger)
			if err := srv.Start(sigCtx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Listening on http://%s\n", srv.Addr())

			<-sigCtx.Done()
			srv.Stop()
			return nil
		},
	}

	cmd.Flags().StringVar(&bind, "bind", "", "Listen address (overrides server.bind)")
	cmd.Flags().StringVar(&numbering, "numbering", "", "Line numbering in messages: compact, source")
	return cmd
}
