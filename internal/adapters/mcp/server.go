// Package mcp exposes the generation engine as a Model Context Protocol
// server, so agent frontends can call prompt generation as a tool.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/posykit/posy"
	"github.com/posykit/posy/pkg/domain"
	"github.com/posykit/posy/pkg/ports"
)

// GenerateResult is the structured output of the generate_prompt tool.
type GenerateResult struct {
	Prompts []string `json:"prompts" jsonschema_description:"The assembled prompt strings"`
}

// Server wraps the posy engine and a preset store as an MCP server.
type Server struct {
	engine    *posy.Engine
	store     ports.PresetStore
	mcpServer *server.MCPServer
}

// NewServer creates an MCP server instance.
func NewServer(engine *posy.Engine, store ports.PresetStore) *Server {
	s := &Server{
		engine:    engine,
		store:     store,
		mcpServer: server.NewMCPServer("posy-mcp", strings.TrimSpace(posy.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	generateTool := mcp.NewTool("generate_prompt",
		mcp.WithDescription("Generate image-generation prompts from a stored preset. Each call with the same seed reproduces the same prompts."),
		mcp.WithString("preset_id", mcp.Required(), mcp.Description("ID of the stored preset to generate from")),
		mcp.WithNumber("seed", mcp.Description("Seed for reproducible output (optional)")),
		mcp.WithNumber("samples", mcp.Description("Number of prompts to generate from one session (optional, default 1)")),
		mcp.WithOutputSchema[GenerateResult](),
	)
	s.mcpServer.AddTool(generateTool, mcp.NewStructuredToolHandler(s.handleGenerate))

	s.mcpServer.AddTool(mcp.NewTool("list_presets",
		mcp.WithDescription("List the IDs of all stored presets."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ids, err := s.store.List(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("list failed: %v", err)), nil
		}
		jsonBytes, _ := json.Marshal(ids)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	s.mcpServer.AddTool(mcp.NewTool("get_preset",
		mcp.WithDescription("Get the full node tree of a stored preset."),
		mcp.WithString("preset_id", mcp.Required(), mcp.Description("ID of the preset")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := request.GetString("preset_id", "")
		preset, err := s.store.Get(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("get failed: %v", err)), nil
		}
		jsonBytes, _ := json.Marshal(preset)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

func (s *Server) handleGenerate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (GenerateResult, error) {
	id, _ := args["preset_id"].(string)
	if id == "" {
		return GenerateResult{}, fmt.Errorf("preset_id is required")
	}

	preset, err := s.store.Get(ctx, id)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("failed to load preset %q: %w", id, err)
	}

	var opts []domain.SessionOption
	if seed, ok := args["seed"].(float64); ok {
		opts = append(opts, domain.WithSeed(int64(seed)))
	}
	session := domain.NewSession(opts...)

	samples := 1
	if n, ok := args["samples"].(float64); ok && int(n) > 0 {
		samples = int(n)
	}
	if samples > 100 {
		samples = 100
	}

	prompts := make([]string, samples)
	for i := range prompts {
		prompts[i] = s.engine.Generate(preset, session)
	}
	return GenerateResult{Prompts: prompts}, nil
}
