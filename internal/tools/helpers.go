// Package tools defines the MCP tool catalog for the Nevent API.
// Every tool is a thin pass-through: shape arguments, issue one request
// through the client, return the JSON body as text. The catalog is split
// into three registration groups (user, campaign, lineup).
package tools

import (
	"bytes"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

// jsonResult formats a raw response body as indented JSON text. Bodies that
// are not JSON (CSV exports, empty 204 responses) pass through unchanged.
func jsonResult(body []byte) *mcp.CallToolResult {
	var out bytes.Buffer
	if err := json.Indent(&out, body, "", "  "); err != nil {
		return textResult(string(body))
	}
	return textResult(out.String())
}

// restArgs returns a copy of the request arguments with the named keys
// removed. Path identifiers are pulled out of the argument bag this way so
// they are never duplicated into request bodies.
func restArgs(r mcp.CallToolRequest, exclude ...string) map[string]any {
	args := r.GetArguments()
	rest := make(map[string]any, len(args))
	for k, v := range args {
		rest[k] = v
	}
	for _, key := range exclude {
		delete(rest, key)
	}
	return rest
}

// bodyOrNil returns nil for an empty body map so no JSON payload is sent
// when the caller supplied nothing beyond path identifiers.
func bodyOrNil(body map[string]any) any {
	if len(body) == 0 {
		return nil
	}
	return body
}
