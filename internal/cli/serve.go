package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rugbyops/zoneclips/internal/factory"
	"github.com/rugbyops/zoneclips/internal/web"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web application",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := factory.New(cfg, logger)
			if err != nil {
				return err
			}

			router := web.NewRouter(web.RouterConfig{
				Logger:         logger,
				SessionStore:   app.Sessions,
				AccountService: app.AccountService,
				CatalogService: app.CatalogService,
				SessionTTL:     cfg.Sessions.TTL,
				StaticDir:      cfg.HTTPServer.StaticDir,
			})

			server := web.NewServer(router, web.ServerConfig{
				Addr:            cfg.HTTPServer.Address,
				ReadTimeout:     cfg.HTTPServer.ReadTimeout,
				WriteTimeout:    cfg.HTTPServer.WriteTimeout,
				ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
			}, logger)

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			go func() {
				sigCh := make(chan os.Signal, 1)
				signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
				<-sigCh
				logger.Info("shutdown signal received")
				cancel()
			}()

			errCh := make(chan error, 1)
			go func() {
				errCh <- server.Start()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				return server.Shutdown(context.Background())
			}
		},
	}
}
