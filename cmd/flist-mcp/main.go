package main

import (
	"context"
	"flag"
	"log"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "flist/internal/adapters/mcp"
)

func main() {
	dirFlag := flag.String("dir", ".", "directory of the list")
	flag.Parse()

	root, err := filepath.Abs(*dirFlag)
	if err != nil {
		log.Fatalf("flist-mcp: %v", err)
	}

	mcpServer := server.NewMCPServer(
		"flist-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Check that the flist server is responsive"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterTools(mcpServer, root)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("flist-mcp: %v", err)
	}
}
