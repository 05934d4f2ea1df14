package cli

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"lab_hours_bot/internal/config"
	"lab_hours_bot/internal/handlers"
	"lab_hours_bot/internal/httpmux"
	"lab_hours_bot/internal/logger"
	"lab_hours_bot/internal/server"
	"lab_hours_bot/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func (a *app) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the bot over HTTP",
		Long: `Serve the bot over HTTP. Chat channels post Bot Framework activities to
/api/messages; /api/v1/messages takes {"text": "..."} and /ws chats over a WebSocket
(gin engine only).`,
		Args: cobra.NoArgs,
		RunE: a.runServe,
	}
	cmd.Flags().String("port", "", "port to listen on")
	cmd.Flags().String("engine", "", "HTTP engine: gin or mux")
	bindFlag(a.v, "port", cmd.Flags().Lookup("port"))
	bindFlag(a.v, "engine", cmd.Flags().Lookup("engine"))
	return cmd
}

func (a *app) runServe(cmd *cobra.Command, args []string) error {
	cfg, log, services, err := a.build()
	if err != nil {
		return err
	}

	handler, err := buildHTTPHandler(cfg, services, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Addr(cfg.Host, cfg.Port), handler)
	errc := make(chan error, 1)
	go func() {
		log.Infow("server_starting", "addr", srv.Addr(), "engine", cfg.Engine, "ledger", cfg.Ledger.Path)
		errc <- srv.Run()
	}()

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("run server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	return waitForShutdown(srv, log)
}

// buildHTTPHandler mounts the message router on the configured engine.
func buildHTTPHandler(cfg config.Config, services *service.Service, log *logger.Logger) (http.Handler, error) {
	switch cfg.Engine {
	case config.EngineGin:
		if cfg.Log.Level != logger.DebugLevel {
			gin.SetMode(gin.ReleaseMode)
		}
		return handlers.NewHandler(services, log).InitRoutes(), nil
	case config.EngineMux:
		return httpmux.NewHandler(services.Router, log).Routes(), nil
	}
	return nil, fmt.Errorf("unknown engine %q", cfg.Engine)
}

// waitForShutdown drains in-flight requests after a termination signal.
func waitForShutdown(srv *server.Server, log *logger.Logger) error {
	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
		return err
	}
	return nil
}
