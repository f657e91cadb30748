package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pkritika/cortex/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd, false)
		if err != nil {
			return err
		}
		defer a.Close()

		quiet, _ := cmd.Flags().GetBool("quiet")
		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = a.Config.Addr
		}

		srv := api.New(api.Deps{
			Catalog:    a.Catalog,
			Practice:   a.Practice,
			Flashcards: a.Flashcards,
			Store:      a.Store,
			Auth:       a.Auth,
			Logger:     a.Logger,
		}, api.Options{
			RateLimit: a.Config.RateLimit,
			AccessLog: !quiet,
		})

		go func() {
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
			<-sigChan

			a.Logger.Info("shutting down server")
			if err := srv.Shutdown(a.Config.ShutdownTimeout); err != nil {
				a.Logger.Error("server forced to shutdown", "error", err)
			}
		}()

		a.Logger.Info("starting server", "address", addr, "store", a.Config.Store.Driver, "oracle", a.Oracle.SolverName())
		if err := srv.Listen(addr); err != nil {
			a.Logger.Error("server failed", "error", err)
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides CORTEX_ADDR / PORT)")
	serveCmd.Flags().Bool("quiet", false, "Disable the HTTP access log")
}
