package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "sportlog/internal/adapters/mcp"
	"sportlog/internal/adapters/storage"
	"sportlog/internal/application/commands"
	"sportlog/internal/config"
	"sportlog/internal/logging"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("sportlog-mcp: %v", err)
	}

	dataFlag := flag.String("data", settings.Data.Path, "path to the logbook")
	flag.Parse()
	if *dataFlag != settings.Data.Path {
		settings.Data.Path = *dataFlag
		settings.Data.Format = config.FormatFromPath(*dataFlag)
	}

	level, err := logging.ParseLevel(settings.Log.Level)
	if err != nil {
		log.Fatalf("sportlog-mcp: %v", err)
	}
	// stdout carries the protocol
	logger := logging.New(os.Stderr, level)

	store, err := storage.Open(settings.Data, logger)
	if err != nil {
		log.Fatalf("sportlog-mcp: %v", err)
	}
	defer store.Close()

	book, err := commands.NewLoadCommand(store, logger).Execute(context.Background())
	if err != nil {
		log.Fatalf("sportlog-mcp: %v", err)
	}

	mcpServer := server.NewMCPServer(
		"sportlog-mcp",
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

	mcpadapter.RegisterReadTools(mcpServer, mcpadapter.NewSession(book, logger))

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("sportlog-mcp: %v", err)
	}
}
