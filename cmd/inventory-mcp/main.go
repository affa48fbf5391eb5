// Package main implements an MCP server exposing CRUD tools over a product
// inventory to AI assistants.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/sync/errgroup"

	"inventory-mcp/internal/app"
	"inventory-mcp/internal/config"
	"inventory-mcp/internal/store"
	"inventory-mcp/pkg/bootstrap"
	pkgconfig "inventory-mcp/pkg/config"
	"inventory-mcp/pkg/config/configloader"
)

const (
	appName = "inventory"
	version = "0.1.0"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("application run failed: %v", err)
		os.Exit(1)
	}
	log.Println("application stopped gracefully")
}

// run initializes the application, sets up the product store, seeds the sample
// inventory and serves the MCP tools over the configured transport.
func run(ctx context.Context) error {
	cfg, cfgErr := configloader.Load[*config.Config](appName, config.Defaults())
	if cfgErr != nil {
		return fmt.Errorf("failed to load configuration: %w", cfgErr)
	}

	logger := bootstrap.NewLogger(cfg.Log.Level)
	slog.SetDefault(logger)
	logger.Info("Configuration loaded", slog.String("config", cfg.String()))

	productStore, err := setupStore(cfg)
	if err != nil {
		return err
	}

	// Seeding runs once before any tool call is possible.
	if cfg.Store.Seed {
		if err := store.Seed(ctx, productStore); err != nil {
			return fmt.Errorf("failed to seed sample inventory: %w", err)
		}
		logger.Info("Sample inventory ready")
	}

	deps := app.SetupDependencies(productStore, logger)
	mcpServer := app.SetupMCPServer(deps, version)

	switch cfg.MCP.Transport {
	case pkgconfig.TransportHTTP:
		return serveHTTP(ctx, deps, cfg, mcpServer)
	default:
		return serveStdio(ctx, mcpServer, logger)
	}
}

// setupStore selects the store backend from configuration.
func setupStore(cfg *config.Config) (store.ProductStore, error) {
	switch cfg.Store.Driver {
	case pkgconfig.StoreDriverSQLite:
		db, err := bootstrap.NewSqliteDB(cfg.Store.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open store database: %w", err)
		}
		return store.NewGormStore(db)
	default:
		return store.NewMemoryStore(), nil
	}
}

// serveStdio runs the MCP server over standard input/output until the client
// disconnects or the process receives a shutdown signal. Stdout belongs to the
// protocol; all diagnostics go to stderr.
func serveStdio(ctx context.Context, mcpServer *mcp.Server, logger *slog.Logger) error {
	logger.Info("MCP server listening on stdio")
	if err := mcpServer.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("stdio server failed: %w", err)
	}
	return nil
}

// serveHTTP exposes the MCP server over streamable HTTP with graceful shutdown.
func serveHTTP(ctx context.Context, deps *app.Dependencies, cfg *config.Config, mcpServer *mcp.Server) error {
	httpServer := app.SetupHTTPServer(deps, cfg, mcpServer)

	g, gCtx := errgroup.WithContext(ctx)

	// Start the HTTP server
	g.Go(func() error {
		deps.Logger.Info("HTTP server listening", slog.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})
	// gracefully shutdown HTTP server on context cancellation
	g.Go(func() error {
		<-gCtx.Done()
		deps.Logger.Info("Shutting down HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Shutdown.Timeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("errgroup encountered an error: %w", err)
	}
	return nil
}
