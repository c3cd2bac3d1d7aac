// nevent-mcp exposes the Nevent marketing/CRM API as MCP tools over stdio
// or streamable HTTP.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/iamsamuelfraga/mcp-nevent/internal/client"
	"github.com/iamsamuelfraga/mcp-nevent/internal/common"
	"github.com/iamsamuelfraga/mcp-nevent/internal/config"
	"github.com/iamsamuelfraga/mcp-nevent/internal/tools"
)

func main() {
	stdio := flag.Bool("stdio", false, "Use stdio transport (for Claude Desktop)")
	configFile := flag.String("config", "nevent-mcp.toml", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		// Startup-configuration errors are fatal before any request is served.
		log.Fatalf("Configuration error: %v", err)
	}

	logger := common.NewLoggerFromConfig(cfg.Logging)

	apiClient := client.New(cfg.API.URL, cfg.API.Key, cfg.API.TenantID, logger)

	mcpServer := server.NewMCPServer(
		cfg.Server.Name,
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	tools.Register(mcpServer, apiClient)

	logger.Info().
		Str("api_url", cfg.API.URL).
		Str("tenant", cfg.API.TenantID).
		Msg("nevent-mcp initialized")

	if *stdio {
		// Stdio transport — reads stdin, writes stdout
		if err := server.ServeStdio(mcpServer); err != nil {
			fmt.Fprintf(os.Stderr, "stdio server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Streamable HTTP transport — listens on configured port
	httpServer := server.NewStreamableHTTPServer(mcpServer,
		server.WithStateLess(true),
	)

	logger.Info().Str("port", cfg.Server.Port).Msg("starting MCP streamable HTTP")
	fmt.Fprintf(os.Stderr, "Starting MCP Streamable HTTP on :%s\n", cfg.Server.Port)

	if err := httpServer.Start(":" + cfg.Server.Port); err != nil {
		fmt.Fprintf(os.Stderr, "http server error: %v\n", err)
		os.Exit(1)
	}
}
