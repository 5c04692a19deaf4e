// Package server exposes the navigation engine, wallpaper manager and
// translator as MCP tools for agents.
package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/niriutils/nirictl/internal/config"
	"github.com/niriutils/nirictl/internal/nav"
	"github.com/niriutils/nirictl/internal/niri"
	"github.com/niriutils/nirictl/internal/translate"
	"github.com/niriutils/nirictl/internal/util"
	"github.com/niriutils/nirictl/internal/version"
	"github.com/niriutils/nirictl/internal/wallpaper"
)

// Server wraps the MCP server around the engine and the managers.
type Server struct {
	engine     *nav.Engine
	wallpapers *wallpaper.Manager
	translator *translate.Pipeline
	cache      *ListCache
	// engineMu serializes navigate runs. The engine itself is
	// single-pass; concurrent tool calls would interleave its before
	// and after reads.
	engineMu sync.Mutex
	log      *util.Logger
	mcp      *mcpserver.MCPServer
}

// New assembles a server from application config.
func New(cfg *config.Config, cacheTTL time.Duration, log *util.Logger) *Server {
	s := &Server{
		engine:     nav.New(niri.NewClient(), log),
		wallpapers: wallpaper.NewManager(cfg.Wallpaper, log),
		translator: translate.New(cfg.Translate, log),
		cache:      NewListCache(cacheTTL, log),
		log:        log,
	}

	if err := s.cache.Watch(s.wallpapers.Dir); err != nil {
		log.Warnf("cannot watch wallpaper dir, relying on cache TTL: %v", err)
	}

	s.mcp = mcpserver.NewMCPServer("nirictl", version.Version)
	s.registerTools()
	return s
}

// Serve blocks running the configured transport.
func (s *Server) Serve(transport string, port int) error {
	defer s.cache.Close()

	switch transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or http)", transport)
	}
}

func (s *Server) registerTools() {
	// navigate
	s.mcp.AddTool(
		mcp.NewTool("navigate",
			mcp.WithDescription("Run one contextual navigation decision: try the primary niri action, observe whether focus or layout changed, and run the fallback action if nothing did. Returns the decision trace."),
			mcp.WithString("direction", mcp.Description("Direction the keypress means: up, down, left, right"), mcp.Required()),
			mcp.WithString("primary-action", mcp.Description("niri action to try first (e.g. 'focus-window-down')"), mcp.Required()),
			mcp.WithString("fallback-action", mcp.Description("niri action to run when the primary changed nothing (e.g. 'focus-workspace-down')"), mcp.Required()),
			mcp.WithString("overview-action", mcp.Description("Action to run instead when the overview is open (default: the fallback action)")),
		),
		s.handleNavigate,
	)

	// wallpaper_list
	s.mcp.AddTool(
		mcp.NewTool("wallpaper_list",
			mcp.WithDescription("List wallpapers in the wallpaper directory with pixel dimensions and the current selection marked"),
		),
		s.handleWallpaperList,
	)

	// wallpaper_set
	s.mcp.AddTool(
		mcp.NewTool("wallpaper_set",
			mcp.WithDescription("Set the desktop wallpaper and remember the selection"),
			mcp.WithString("path", mcp.Description("Path to the image file"), mcp.Required()),
		),
		s.handleWallpaperSet,
	)

	// wallpaper_restore
	s.mcp.AddTool(
		mcp.NewTool("wallpaper_restore",
			mcp.WithDescription("Restore the remembered wallpaper, falling back to the first image in the wallpaper directory"),
		),
		s.handleWallpaperRestore,
	)

	// wallpaper_current
	s.mcp.AddTool(
		mcp.NewTool("wallpaper_current",
			mcp.WithDescription("Report the remembered and the currently running wallpaper"),
		),
		s.handleWallpaperCurrent,
	)

	// translate
	s.mcp.AddTool(
		mcp.NewTool("translate",
			mcp.WithDescription("Translate text with the configured translator and return the translation"),
			mcp.WithString("text", mcp.Description("Text to translate"), mcp.Required()),
		),
		s.handleTranslate,
	)
}
