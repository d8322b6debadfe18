package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/unitkit/unitkit/internal/server"
)

// serveCommand creates the serve command exposing the engine over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the conversion API over HTTP",
		Long: `Serve the conversion engine as a JSON API.

Endpoints:
  POST /api/convert      convert a quantity
  GET  /api/units        list registered units
  POST /api/units        register a custom unit
  GET  /api/prefixes     list metric prefixes
  POST /api/conversions  register a conversion factor
  GET  /healthz          liveness probe`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.Engine()
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              addr,
				Handler:           server.New(e, c.Logger),
				ReadHeaderTimeout: 5 * time.Second,
			}

			// shut down cleanly on ctrl-c
			ctx := cmd.Context()
			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
			}()

			c.Logger.Info("serving conversion API", "addr", addr)
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			c.Logger.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
