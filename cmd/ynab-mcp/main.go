// In file: cmd/ynab-mcp/main.go
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

	"github.com/gin-gonic/gin"

	"github.com/brynsp/mcp-ynab/internal/config"
	"github.com/brynsp/mcp-ynab/internal/mcpserver"
	"github.com/brynsp/mcp-ynab/internal/tools"
	"github.com/brynsp/mcp-ynab/internal/ynab"
)

// main is the entry point for the application.
// Its primary role is the "Composition Root": it loads configuration,
// initializes all services, injects dependencies, and starts the server.
//
// All logging goes to stderr, which keeps stdout clean for the stdio MCP
// transport.
func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	buildInfo := GetBuildInfo()
	log.Printf("🚀 Starting YNAB MCP Server | Version: %s | Commit: %s", buildInfo.Version, buildInfo.GitCommit)

	// 1. LOAD CONFIGURATION
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ FATAL: Configuration Error: %v", err)
	}
	log.Println("✅ Configuration loaded.")

	// 2. INITIALIZE SERVICES
	// The client factory hands the registry a fresh YNAB session per
	// dispatch; the registry guarantees its release.
	registry, err := tools.NewRegistry(func() (*ynab.Client, error) {
		return ynab.NewClient(cfg)
	})
	if err != nil {
		log.Fatalf("❌ FATAL: %v", err)
	}
	log.Printf("✅ Tool registry initialized with %d tools.", len(registry.Tools()))

	// 3. SERVE ON THE SELECTED TRANSPORT
	switch cfg.Transport {
	case config.TransportHTTP:
		runHTTPServer(cfg, registry)
	default:
		runStdioServer(registry, buildInfo.Version)
	}
}

// runStdioServer speaks MCP over stdin/stdout until the client disconnects.
func runStdioServer(registry *tools.Registry, version string) {
	s, err := mcpserver.New(registry, version)
	if err != nil {
		log.Fatalf("❌ FATAL: %v", err)
	}

	log.Println("👂 Serving MCP on stdio...")
	if err := mcpserver.ServeStdio(s); err != nil {
		log.Fatalf("❌ MCP server error: %v", err)
	}
	log.Println("👋 Server exited gracefully.")
}

// runHTTPServer exposes the same enumeration/dispatch contract over HTTP.
func runHTTPServer(cfg *config.Config, registry *tools.Registry) {
	gin.SetMode(os.Getenv("GIN_MODE"))
	engine := gin.Default()

	handler := NewToolHandler(registry)
	engine.GET("/healthz", handler.HandleHealth)
	v1 := engine.Group("/api/v1")
	{
		v1.GET("/tools", handler.HandleListTools)
		v1.POST("/tools/:name", handler.HandleCallTool)
	}

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: engine}
	runServerWithGracefulShutdown(srv)
}

// runServerWithGracefulShutdown handles the server lifecycle.
func runServerWithGracefulShutdown(srv *http.Server) {
	go func() {
		log.Printf("👂 Serving tools on http://localhost%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Listen error: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ Server shutdown failed:", err)
	}

	log.Println("👋 Server exited gracefully.")
}
