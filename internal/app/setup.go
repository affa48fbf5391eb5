// Package app contains the explicit construction of the inventory MCP server:
// store, tool façade and transports are wired here, no runtime container.
package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"inventory-mcp/internal/config"
	"inventory-mcp/internal/service"
	"inventory-mcp/internal/store"
	"inventory-mcp/internal/transport/mcpserver"
	"inventory-mcp/pkg/server"
	"inventory-mcp/pkg/web"
)

type Dependencies struct {
	Inventory service.InventoryService
	Logger    *slog.Logger
}

// SetupDependencies builds the tool façade over the given product store.
func SetupDependencies(s store.ProductStore, logger *slog.Logger) *Dependencies {
	return &Dependencies{
		Inventory: service.NewService(s, logger),
		Logger:    logger,
	}
}

// SetupMCPServer creates the MCP server with all inventory tools registered.
func SetupMCPServer(deps *Dependencies, version string) *mcp.Server {
	return mcpserver.NewServer(deps.Inventory, deps.Logger, version)
}

// SetupHTTPHandler mounts the MCP streamable HTTP endpoint and a health check
// on a chi router. Used directly by tests that exercise the HTTP mode.
func SetupHTTPHandler(deps *Dependencies, mcpServer *mcp.Server) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps, mcpServer)
	return mux
}

// wireRoutes sets up the HTTP routes for the inventory MCP server.
func wireRoutes(mux *chi.Mux, deps *Dependencies, mcpServer *mcp.Server) {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return mcpServer
	}, nil)
	mux.Mount("/mcp", handler)

	// The health check doubles as a readiness probe: it fails when the
	// backing store is unreachable.
	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if _, err := deps.Inventory.GetAllProducts(r.Context()); err != nil {
			deps.Logger.ErrorContext(r.Context(), "Health check failed", "error", err)
			web.RespondError(w, deps.Logger, http.StatusServiceUnavailable, "store unavailable")
			return
		}
		web.RespondJSON(w, deps.Logger, http.StatusOK, map[string]string{"status": "ok"})
	})
}

// SetupHTTPServer creates and configures the HTTP server for the HTTP
// transport mode.
func SetupHTTPServer(deps *Dependencies, cfg *config.Config, mcpServer *mcp.Server) *http.Server {
	mux := SetupHTTPHandler(deps, mcpServer)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}
