// ============================================================================
// algebralab - Algebra teaching toolkit
// ============================================================================
//
// Package:     server
// Description: gRPC and WebSocket server for the lab service
// Author:      algebralab team
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	mdwerror "github.com/algebralab/algebralab/foundation/core/error"
	"github.com/algebralab/algebralab/internal/lab/service"
	coreGrpc "github.com/algebralab/algebralab/pkg/core/grpc"
	"github.com/algebralab/algebralab/pkg/core/health"
	"github.com/algebralab/algebralab/pkg/core/logging"
	"github.com/algebralab/algebralab/pkg/core/version"
	"google.golang.org/grpc"
)

// Server is the algebralab server: gRPC plus an HTTP listener for the
// WebSocket endpoint and the health report.
type Server struct {
	service   *service.Service
	grpc      *coreGrpc.Server
	http      *http.Server
	health    *health.Registry
	logger    *logging.Logger
	config    Config
	startTime time.Time
}

// Config holds server configuration
type Config struct {
	Host             string
	GRPCPort         int
	HTTPPort         int
	EnableReflection bool
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	AllowedOrigins   []string
}

// DefaultConfig returns default server configuration
func DefaultConfig() Config {
	return Config{
		Host:             "0.0.0.0",
		GRPCPort:         9310,
		HTTPPort:         9311,
		EnableReflection: true,
		ReadTimeout:      15 * time.Second,
		WriteTimeout:     15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	}
}

// New creates a new server around svc
func New(cfg Config, svc *service.Service) *Server {
	logger := logging.New("lab-server")

	grpcCfg := coreGrpc.DefaultServerConfig()
	grpcCfg.Host = cfg.Host
	grpcCfg.Port = cfg.GRPCPort
	grpcCfg.EnableReflection = cfg.EnableReflection
	grpcServer := coreGrpc.NewServer(grpcCfg)
	grpcServer.GRPCServer().RegisterService(&ServiceDesc, &grpcHandler{service: svc})
	grpcServer.SetServingStatus(ServiceName, true)

	healthRegistry := health.NewRegistry("algebralab", version.Server)
	healthRegistry.RegisterFunc("service", func(ctx context.Context) health.CheckResult {
		return health.CheckResult{
			Name:    "service",
			Status:  health.StatusHealthy,
			Message: "algebra engines are operational",
		}
	})
	healthRegistry.RegisterFunc("translator", func(ctx context.Context) health.CheckResult {
		stats := svc.Translator().Stats()
		result := health.CheckResult{
			Name:    "translator",
			Status:  health.StatusHealthy,
			Message: fmt.Sprintf("%d patterns", stats.Patterns),
			Details: map[string]interface{}{"source": stats.Source},
		}
		if stats.Patterns == 0 {
			result.Status = health.StatusDegraded
		}
		return result
	})
	if pinger, ok := svc.HistoryStore().(health.Pinger); ok {
		healthRegistry.Register(health.PingCheck("history", pinger, 2*time.Second))
	} else {
		healthRegistry.Register(health.OptionalCheck(health.AlwaysHealthy("history"), false))
	}

	s := &Server{
		service:   svc,
		grpc:      grpcServer,
		health:    healthRegistry,
		logger:    logger,
		config:    cfg,
		startTime: time.Now(),
	}
	s.http = &http.Server{
		Addr:        fmt.Sprintf("%s:%d", cfg.Host, cfg.HTTPPort),
		Handler:     s.Handler(),
		ReadTimeout: cfg.ReadTimeout,
	}
	return s
}

// Handler returns the HTTP routes: /ws and /healthz.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ws", NewWebSocketHandler(s.service, s.config.AllowedOrigins))
	mux.Handle("/healthz", http.TimeoutHandler(http.HandlerFunc(s.handleHealth), s.writeTimeout(), "health check timed out"))
	return mux
}

func (s *Server) writeTimeout() time.Duration {
	if s.config.WriteTimeout > 0 {
		return s.config.WriteTimeout
	}
	return 15 * time.Second
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	w.Header().Set("Content-Type", "application/json")
	if !report.Healthy() {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	if err := json.NewEncoder(w).Encode(report); err != nil {
		s.logger.Error("failed to write health report", "error", err)
	}
}

// StartAsync starts the gRPC and HTTP listeners in the background
func (s *Server) StartAsync() error {
	s.logger.Info("Starting algebralab server",
		"host", s.config.Host, "grpc_port", s.config.GRPCPort, "http_port", s.config.HTTPPort)

	if err := s.grpc.StartAsync(); err != nil {
		return mdwerror.Wrap(err, "failed to start gRPC server").
			WithCode(mdwerror.CodeServiceInitialization).
			WithOperation("server.StartAsync")
	}

	listener, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		s.grpc.Stop()
		return mdwerror.Wrap(err, "failed to start HTTP server").
			WithCode(mdwerror.CodeServiceInitialization).
			WithOperation("server.StartAsync")
	}
	go func() {
		if err := s.http.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server error", "error", err)
		}
	}()
	return nil
}

// Run starts the server and blocks until ctx is done, then shuts down.
func (s *Server) Run(ctx context.Context) error {
	if err := s.StartAsync(); err != nil {
		return err
	}
	<-ctx.Done()

	timeout := s.config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	stopCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.Stop(stopCtx)
}

// Stop stops both listeners and closes the service
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping algebralab server", "uptime", time.Since(s.startTime).Round(time.Second))
	s.grpc.StopWithTimeout(ctx)
	if err := s.http.Shutdown(ctx); err != nil {
		s.logger.Warn("HTTP shutdown incomplete", "error", err)
	}
	return s.service.Close()
}

// GRPCServer returns the underlying gRPC server
func (s *Server) GRPCServer() *grpc.Server {
	return s.grpc.GRPCServer()
}

// ServeGRPC serves gRPC on an existing listener
func (s *Server) ServeGRPC(listener net.Listener) error {
	return s.grpc.Serve(listener)
}

// HealthRegistry returns the health check registry
func (s *Server) HealthRegistry() *health.Registry {
	return s.health
}

// Service returns the underlying service
func (s *Server) Service() *service.Service {
	return s.service
}
