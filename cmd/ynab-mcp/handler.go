// In file: cmd/ynab-mcp/handler.go
package main

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brynsp/mcp-ynab/internal/config"
	"github.com/brynsp/mcp-ynab/internal/tools"
	"github.com/brynsp/mcp-ynab/internal/ynab"
)

// ToolHandler exposes the registry's enumeration and dispatch operations over
// HTTP. It carries the same error classification as the MCP boundary, mapped
// onto status codes instead of text prefixes.
type ToolHandler struct {
	registry *tools.Registry
}

func NewToolHandler(registry *tools.Registry) *ToolHandler {
	return &ToolHandler{registry: registry}
}

// CallToolRequest is the JSON body of a tool invocation. An empty body is
// equivalent to an empty argument mapping.
type CallToolRequest struct {
	Arguments map[string]string `json:"arguments"`
}

// HandleHealth reports liveness and build information.
func (h *ToolHandler) HandleHealth(c *gin.Context) {
	info := GetBuildInfo()
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": info.Version,
		"commit":  info.GitCommit,
		"tools":   len(h.registry.Tools()),
	})
}

// HandleListTools returns the complete tool catalog.
func (h *ToolHandler) HandleListTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": h.registry.Tools()})
}

// HandleCallTool dispatches one tool invocation and relays the upstream JSON
// payload untouched.
func (h *ToolHandler) HandleCallTool(c *gin.Context) {
	name := c.Param("name")

	var req CallToolRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.registry.Dispatch(c.Request.Context(), name, req.Arguments)
	if err != nil {
		status := classifyError(err)
		log.Printf("Tool %s failed (%d): %v", name, status, err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "application/json", result)
}

// classifyError maps the module's error kinds onto HTTP status codes:
// unknown tool 404, missing argument 400, missing credential 500, upstream
// failure 502.
func classifyError(err error) int {
	var missing *tools.MissingArgumentError
	var clientErr *ynab.ClientError
	switch {
	case errors.Is(err, tools.ErrUnknownTool):
		return http.StatusNotFound
	case errors.As(err, &missing):
		return http.StatusBadRequest
	case errors.Is(err, config.ErrMissingToken):
		return http.StatusInternalServerError
	case errors.As(err, &clientErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
