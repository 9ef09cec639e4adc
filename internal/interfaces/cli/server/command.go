package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"dialpool/internal/infrastructure/database"
	"dialpool/internal/infrastructure/migration"
	"dialpool/internal/interfaces/cli/clienv"
	httpRouter "dialpool/internal/interfaces/http"
	sharedConfig "dialpool/internal/shared/config"
	"dialpool/internal/shared/goroutine"
	"dialpool/internal/shared/logger"
	"dialpool/internal/shared/version"
)

const shutdownTimeout = 30 * time.Second

var (
	flags       clienv.Flags
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the dialpool HTTP API with the admin and agent endpoints.`,
		RunE:  run,
	}

	flags.Register(cmd)
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations on startup (not recommended for production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	env, err := clienv.Load(flags)
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg := env.Config
	log := env.Log

	log.Infow("starting server",
		"environment", flags.Env,
		"version", version.String(),
		"auto_migrate", autoMigrate)

	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	gdb, err := env.OpenDatabase()
	if err != nil {
		return err
	}
	defer database.Close()

	if autoMigrate || cfg.Database.Driver == sharedConfig.DriverSQLite {
		if err := migration.NewManager(cfg.Database.Driver).Migrate(gdb); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
	}

	router, err := httpRouter.NewRouter(cfg, gdb, log)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}
	defer router.Shutdown()
	router.SetupRoutes(cfg)

	// No write timeout: import and backfill requests run at the registry pace.
	srv := &http.Server{
		Addr:              cfg.Server.GetAddr(),
		Handler:           router.GetEngine(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	goroutine.SafeGo(log, "http-server", func() {
		log.Infow("server listening", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-serverErr:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-quit:
		log.Infow("shutting down server", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}
