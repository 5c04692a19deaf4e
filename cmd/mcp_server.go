package cmd

import (
	"time"

	"github.com/niriutils/nirictl/internal/config"
	"github.com/niriutils/nirictl/internal/server"
)

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// newMCPServer loads the application config and assembles the server
// around it.
func newMCPServer(cfg MCPConfig) (*server.Server, error) {
	appCfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return nil, err
	}
	return server.New(appCfg, cfg.CacheTTL, logger), nil
}
