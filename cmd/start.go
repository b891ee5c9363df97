package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"devsecops-app/core/config"
	"devsecops-app/core/loader"
	"devsecops-app/core/logger"
	"devsecops-app/core/server"
	"devsecops-app/feature/greeting"
	"devsecops-app/feature/health"
	"devsecops-app/feature/vuln"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "devsecops-app/docs/swagger"
)

// @title DevSecOps Demo API
// @version 1.0
// @description Demo service used as the target of the SAST and DAST pipeline stages.
// @host localhost:3000
// @BasePath /

const shutdownTimeout = 10 * time.Second

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Long:  `Starts the HTTP server on PORT (default 3000) and serves until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		mgr := loader.NewManager(logg)
		mgr.Register(greeting.NewFeature())
		mgr.Register(health.NewFeature())
		mgr.Register(vuln.NewFeature(cfg.Vuln, logg))

		srv, err := server.New(cfg.Server, logg, mgr)
		if err != nil {
			return fmt.Errorf("failed to load features: %w", err)
		}

		ln, err := srv.Listen()
		if err != nil {
			return err
		}

		serveErr := make(chan error, 1)
		go func() {
			serveErr <- srv.Serve(ln)
		}()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		select {
		case err := <-serveErr:
			if err != nil {
				return fmt.Errorf("server stopped: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
