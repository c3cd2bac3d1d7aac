package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/iamsamuelfraga/mcp-nevent/internal/client"
	"github.com/iamsamuelfraga/mcp-nevent/internal/common"
)

// Register registers the full tool catalog on the MCP server, wiring each
// tool to a handler that calls the Nevent REST API via the client. The
// server's registry doubles as the dispatch table: list-tools iterates it,
// call-tool indexes it and rejects unknown names with a method-not-found
// error carrying the offending name.
func Register(s *server.MCPServer, c *client.Client) {
	s.AddTool(createGetVersionTool(), handleGetVersion(c))
	registerUserTools(s, c)
	registerCampaignTools(s, c)
	registerLineupTools(s, c)
}

func createGetVersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get the Nevent MCP adapter version and the configured API endpoint. Use this to verify connectivity."),
	)
}

func handleGetVersion(c *client.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := fmt.Sprintf("Nevent MCP Adapter\nVersion: %s\nAPI: %s\nStatus: OK",
			common.GetFullVersion(), c.BaseURL())
		return textResult(result), nil
	}
}
