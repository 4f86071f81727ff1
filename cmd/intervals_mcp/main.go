// Package main runs the Intervals.icu MCP server. Default transport is stdio
// (for Claude Desktop, Cursor and similar); with -transport=http the same MCP
// server is mounted at /mcp with a prometheus metrics listener alongside.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/johnkeller101/intervals-icu-mcp/internal/config"
	"github.com/johnkeller101/intervals-icu-mcp/internal/icumcp"
	"github.com/johnkeller101/intervals-icu-mcp/internal/intervals"
	"github.com/johnkeller101/intervals-icu-mcp/internal/logging"
	"github.com/johnkeller101/intervals-icu-mcp/internal/server"
	"github.com/johnkeller101/intervals-icu-mcp/internal/telemetry/metrics"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	transport := flag.String("transport", "stdio", "transport [stdio | http]")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// stdout carries the MCP protocol in stdio mode, logs must stay off it
	logToStdout := cfg.LogToStdout && *transport != "stdio"
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      logToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    *env == "production" || *env == "prod",
		Environment:      *env,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "intervals-icu-mcp",
	})

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("intervals_mcp", "server", promRegistry)

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	handler := icumcp.NewHandler(icumcp.NewHandlerParams{
		Creds: config.CredentialsFromEnv,
		NewClient: func(creds config.Credentials) icumcp.Client {
			return intervals.NewClient(intervals.NewClientParams{
				BaseURL:    cfg.APIBaseURL,
				APIKey:     creds.APIKey,
				AthleteID:  creds.AthleteID,
				Timeout:    cfg.RequestTimeout(),
				HTTPClient: tracedHttpClient,
				Metrics:    metricsManager,
			})
		},
		Metrics: metricsManager,
	})

	mcpServer := icumcp.NewServer(handler)

	switch *transport {
	case "stdio":
		if err := mcpServer.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
			log.Fatalf("mcp server: %v", err)
		}
	case "http":
		srv := server.NewServer(server.NewServerParams{
			Config:         cfg,
			MCPServer:      mcpServer,
			MetricsManager: metricsManager,
			PromRegistry:   promRegistry,
		})
		srv.Serve()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		receivedSig := <-quit
		log.Warnf("signal [%s] received, shutting down", receivedSig)
		srv.GracefulShutdown()
	default:
		log.Fatalf("unknown transport: %s", *transport)
	}
}
