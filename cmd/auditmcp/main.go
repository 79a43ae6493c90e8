// CLAUDE:SUMMARY MCP stdio server exposing the extraction tools.
// Command auditmcp serves the extraction tools over MCP stdio, for use as a
// tool server by MCP-speaking clients.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mwangaza-lab/auditpipe/pdfscan"
)

func main() {
	outDir := flag.String("out", "output/stage1", "default artifact directory for tool calls")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	var level slog.Level
	switch *logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	// Stdout carries the MCP wire protocol; logs go to stderr only.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ex := pdfscan.New(pdfscan.Config{Logger: logger})

	srv := mcp.NewServer(&mcp.Implementation{
		Name:    "auditpipe",
		Version: "1.0.0",
	}, nil)
	ex.RegisterMCP(srv, *outDir)

	logger.Info("auditmcp: serving on stdio", "out", *outDir)
	if err := srv.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		logger.Error("auditmcp: fatal", "error", err)
		os.Exit(1)
	}
}
