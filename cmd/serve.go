package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing nirictl tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes navigation,
wallpaper and translation commands as tools, so agents can call them
directly without shell overhead.

Supported transports:
  stdio   Standard I/O (default, for MCP clients)
  http    Streamable HTTP (for remote agents)

Examples:
  nirictl serve
  nirictl serve --transport http --port 8080
  nirictl serve --cache-ttl 0`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, http")
	serveCmd.Flags().Int("port", 8080, "Port for the http transport")
	serveCmd.Flags().Int("cache-ttl", 30000, "Wallpaper listing cache TTL in milliseconds (0 to disable)")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	cacheTTLMs, _ := cmd.Flags().GetInt("cache-ttl")

	cfg := MCPConfig{
		Transport: transport,
		Port:      port,
		CacheTTL:  time.Duration(cacheTTLMs) * time.Millisecond,
	}

	srv, err := newMCPServer(cfg)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	return srv.Serve(cfg.Transport, cfg.Port)
}
