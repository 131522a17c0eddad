package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/internal/api"
	"github.com/matzehuels/floorplan/pkg/pipeline"
)

// shutdownTimeout bounds graceful shutdown of the HTTP server.
const shutdownTimeout = 10 * time.Second

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		redisAddr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout and render pipeline over HTTP",
		Long: `Serve the layout and render pipeline over HTTP.

Routes:
  GET  /healthz     liveness probe
  POST /v1/layout   building spec JSON -> layout result JSON
  POST /v1/render   building spec JSON -> artifact (?format=svg|png|pdf|json)

Layouts and artifacts are cached in Redis when --redis-addr (or
` + envRedisAddr + `) is set, and in the local cache directory otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if redisAddr == "" {
				redisAddr = os.Getenv(envRedisAddr)
			}
			return c.runServe(cmd.Context(), addr, redisAddr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisAddr, "redis-addr", "", "Redis address for the shared cache (default $"+envRedisAddr+")")

	return cmd
}

// runServe serves until ctx is cancelled, then shuts down gracefully.
func (c *CLI) runServe(ctx context.Context, addr, redisAddr string) error {
	cache, keyer, err := c.newServerCache(ctx, redisAddr)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	runner := pipeline.NewRunner(cache, keyer, c.Logger)
	defer runner.Close()

	srv := &http.Server{
		Addr:              addr,
		Handler:           api.New(runner, c.Logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	printKeyValue("Listening", StyleLink.Render("http://"+displayAddr(addr)))
	c.Logger.Info("server started", "addr", addr)

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// displayAddr turns ":8080" into "localhost:8080".
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
