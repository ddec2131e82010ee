package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"grove/internal/adapters/filesystem"
	mcpadapter "grove/internal/adapters/mcp"
	"grove/internal/config"
)

func main() {
	rootFlag := flag.String("root", config.Root(), "directory to serve")
	flag.Parse()

	root, err := filesystem.ExpandPath(*rootFlag)
	if err != nil {
		log.Fatalf("grove-mcp: %v", err)
	}
	repo := filesystem.NewRepository()

	mcpServer := server.NewMCPServer(
		"grove-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, repo, root)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("grove-mcp: %v", err)
	}
}
