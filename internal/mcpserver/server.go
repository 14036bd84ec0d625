// In file: internal/mcpserver/server.go

// Package mcpserver binds the tool registry to a Model Context Protocol
// server. It is the boundary where errors stop: every failure, whatever its
// kind, is converted into a text payload here so nothing ever propagates
// uncaught into the protocol transport.
package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/brynsp/mcp-ynab/internal/config"
	"github.com/brynsp/mcp-ynab/internal/tools"
)

// ServerName identifies this server to MCP clients.
const ServerName = "ynab-mcp-server"

// New builds an MCP server exposing every tool in the registry's catalog.
// Descriptors are marshalled to their raw JSON schema so the registry stays
// the single source of truth for each tool's input contract.
func New(registry *tools.Registry, version string) (*server.MCPServer, error) {
	s := server.NewMCPServer(ServerName, version, server.WithToolCapabilities(false))

	for _, tool := range registry.Tools() {
		schema, err := json.Marshal(tool.InputSchema)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal schema for tool %s: %w", tool.Name, err)
		}
		s.AddTool(
			mcp.NewToolWithRawSchema(tool.Name, tool.Description, schema),
			makeHandler(registry, tool.Name),
		)
	}

	return s, nil
}

// ServeStdio runs the server over stdin/stdout until the client disconnects.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

// makeHandler adapts one registry tool to the MCP call contract. Results and
// errors alike come back as text content; the returned error is always nil so
// the transport never sees a raised error cross the boundary.
func makeHandler(registry *tools.Registry, name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := registry.Dispatch(ctx, name, stringArguments(request))
		if err != nil {
			return mcp.NewToolResultText(renderError(err)), nil
		}
		return mcp.NewToolResultText(formatResponse(result)), nil
	}
}

// stringArguments flattens the MCP argument object into the string mapping
// the dispatcher expects. Only string values participate; anything else is
// ignored, which leaves the argument absent and lets required-argument
// validation produce the diagnostic.
func stringArguments(request mcp.CallToolRequest) map[string]string {
	raw := request.GetArguments()
	args := make(map[string]string, len(raw))
	for key, value := range raw {
		if s, ok := value.(string); ok {
			args[key] = s
		}
	}
	return args
}

// renderError converts any dispatch failure into the textual error contract:
// a missing credential is a configuration problem the user must fix in their
// environment, everything else reads as a plain error.
func renderError(err error) string {
	if errors.Is(err, config.ErrMissingToken) {
		return fmt.Sprintf("Configuration Error: %v", err)
	}
	return fmt.Sprintf("Error: %v", err)
}

// formatResponse pretty-prints the upstream JSON for the calling agent. The
// payload itself is the upstream body verbatim; only whitespace is added. A
// body that is not valid JSON is returned as-is.
func formatResponse(raw json.RawMessage) string {
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return string(raw)
	}
	return out.String()
}
