package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/imnaval/webnotes/internal/markdown"
	"github.com/imnaval/webnotes/internal/server"
	"github.com/imnaval/webnotes/internal/site"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the notes site over HTTP",
	Long:  `Starts the HTTP server that renders the home page, note views and the topic sidebar.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}

		logger := newLogger()
		ctrl, err := newController(cfg, logger)
		if err != nil {
			return err
		}

		notes, err := site.New(ctrl, markdown.NewRenderer(), site.Options{
			HomeFile:  cfg.HomeFile,
			SiteTitle: cfg.SiteTitle,
			Logger:    logger,
		})
		if err != nil {
			return fmt.Errorf("creating site: %w", err)
		}

		srv := server.New(server.Config{
			Port:     cfg.Port,
			AllowAll: cfg.AllowAllOrigins,
		}, logger)
		notes.RegisterRoutes(srv.Router())

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("shutdown", "error", err)
			}
		}()

		source := cfg.ContentDir
		if cfg.BaseURL != "" {
			source = cfg.BaseURL
		}
		fmt.Fprintf(os.Stderr, "webnotes %s serving %s at http://localhost:%d\n", Version, source, cfg.Port)
		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
