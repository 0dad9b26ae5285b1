package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nzsnyn/bejalen/app"
	webapp "github.com/nzsnyn/bejalen/web/run"
)

func main() {
	var configPath, listenAddr string
	var seed bool

	rootCmd := &cobra.Command{
		Use:          "webserver",
		Short:        "Serve the Bejalen site API and public assets",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if seed {
				if err := app.Run(configPath, false); err != nil {
					return err
				}
			}
			return serve(configPath, listenAddr)
		},
	}
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to configuration file")
	rootCmd.Flags().StringVar(&listenAddr, "listen", "", "Address to listen on (overrides config)")
	rootCmd.Flags().BoolVar(&seed, "seed", false, "Seed the database on first start")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serve(configPath, listenAddr string) error {
	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	services, err := app.NewServices(ctx, cfg)
	if err != nil {
		return err
	}
	defer services.Close()

	srv := webapp.NewWebApp(cfg, services).NewServer(listenAddr)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
