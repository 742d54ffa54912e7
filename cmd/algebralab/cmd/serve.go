package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/algebralab/algebralab/internal/algebra/translate"
	"github.com/algebralab/algebralab/internal/lab/server"
	"github.com/algebralab/algebralab/internal/lab/service"
	"github.com/algebralab/algebralab/pkg/core/logging"
	"github.com/algebralab/algebralab/pkg/core/version"
)

var (
	serveHost     string
	serveGRPCPort int
	serveHTTPPort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gRPC and WebSocket server",
	Long: `Start the algebralab server.

  gRPC       algebralab.v1.Lab on server.grpc_port (default 9310),
             plus grpc.health.v1 and reflection
  WebSocket  /ws on server.http_port (default 9311)
  Health     /healthz on server.http_port

Stop with Ctrl+C.

Examples:
  algebralab serve
  algebralab serve --grpc-port 9400 --http-port 9401`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveHost, "host", "", "listen host (default from config)")
	serveCmd.Flags().IntVar(&serveGRPCPort, "grpc-port", 0, "gRPC port (default from config)")
	serveCmd.Flags().IntVar(&serveHTTPPort, "http-port", 0, "HTTP/WebSocket port (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := logging.New("serve")

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc, err := newService()
	if err != nil {
		return err
	}

	cfg := server.DefaultConfig()
	cfg.Host = appConfig.Server.Host
	cfg.GRPCPort = appConfig.Server.GRPCPort
	cfg.HTTPPort = appConfig.Server.HTTPPort
	cfg.EnableReflection = appConfig.Server.EnableReflection
	cfg.ReadTimeout = appConfig.Server.ReadTimeout.Duration
	cfg.WriteTimeout = appConfig.Server.WriteTimeout.Duration
	cfg.AllowedOrigins = appConfig.Server.AllowedOrigins
	if serveHost != "" {
		cfg.Host = serveHost
	}
	if serveGRPCPort != 0 {
		cfg.GRPCPort = serveGRPCPort
	}
	if serveHTTPPort != 0 {
		cfg.HTTPPort = serveHTTPPort
	}

	if appConfig.Translate.Watch {
		if err := watchPatterns(ctx, svc, logger); err != nil {
			svc.Close()
			return err
		}
	}

	srv := server.New(cfg, svc)

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", version.Info())
	fmt.Fprintf(cmd.OutOrStdout(), "  gRPC      %s:%d\n", cfg.Host, cfg.GRPCPort)
	fmt.Fprintf(cmd.OutOrStdout(), "  WebSocket ws://%s:%d/ws\n", cfg.Host, cfg.HTTPPort)
	fmt.Fprintf(cmd.OutOrStdout(), "  Health    http://%s:%d/healthz\n", cfg.Host, cfg.HTTPPort)

	// Run closes the service on shutdown
	if err := srv.Run(ctx); err != nil {
		return err
	}
	logger.Info("Server stopped")
	return nil
}

// watchPatterns reloads the configured pattern file until ctx is done
func watchPatterns(ctx context.Context, svc *service.Service, logger *logging.Logger) error {
	path := appConfig.Translate.PatternsFile
	w := translate.NewWatcher(svc.Translator(), path)
	w.SetOnReload(func(stats translate.Stats, err error) {
		if err != nil {
			logger.Warn("Pattern reload failed", "path", path, "error", err)
			return
		}
		logger.Info("Patterns reloaded", "path", path, "patterns", stats.Patterns)
	})
	return w.Start(ctx)
}
