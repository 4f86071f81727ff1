// Package server is the HTTP transport: it mounts the MCP server at /mcp
// plus a health endpoint, with a separate listener for prometheus metrics.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/johnkeller101/intervals-icu-mcp/internal/config"
	"github.com/johnkeller101/intervals-icu-mcp/internal/middleware"
	"github.com/johnkeller101/intervals-icu-mcp/internal/telemetry/metrics"
	"github.com/johnkeller101/intervals-icu-mcp/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/gorilla/mux"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

type Server struct {
	config         *config.Config
	mcpServer      *mcp.Server
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry

	httpServer        *http.Server
	metricsHttpServer *http.Server
}

type NewServerParams struct {
	Config         *config.Config
	MCPServer      *mcp.Server
	MetricsManager *metrics.Manager
	PromRegistry   *prometheus.Registry
}

func NewServer(params NewServerParams) *Server {
	return &Server{
		config:         params.Config,
		mcpServer:      params.MCPServer,
		metricsManager: params.MetricsManager,
		promRegistry:   params.PromRegistry,
	}
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("intervals-icu-mcp"))

	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)
	r.PathPrefix("/mcp").Handler(mcpHandler)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteJSONResponse(w, map[string]string{"status": "ok"}, http.StatusOK)
	}).Methods("GET", "OPTIONS")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.Cors())

	return r
}

func (s *Server) Serve() {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(s.config.HTTPHost, strconv.Itoa(s.config.HTTPPort))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}
