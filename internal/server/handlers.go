package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/niriutils/nirictl/internal/nav"
)

// resultToText serializes a tool result to YAML for the MCP response.
func resultToText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(b)
}

// stringParam extracts a string argument, stringifying values a client
// sent as numbers.
func stringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

func (s *Server) handleNavigate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	req := nav.Request{
		Direction: stringParam(params, "direction", ""),
		Primary:   stringParam(params, "primary-action", ""),
		Fallback:  stringParam(params, "fallback-action", ""),
		Overview:  stringParam(params, "overview-action", ""),
	}
	if req.Direction == "" || req.Primary == "" || req.Fallback == "" {
		return mcp.NewToolResultError("direction, primary-action and fallback-action are required"), nil
	}

	s.engineMu.Lock()
	defer s.engineMu.Unlock()

	res, err := s.engine.Run(ctx, req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("%s\n%s", err, resultToText(res))), nil
	}
	return mcp.NewToolResultText(resultToText(res)), nil
}

func (s *Server) handleWallpaperList(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entries, err := s.cache.Entries(s.wallpapers)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(entries) == 0 {
		return mcp.NewToolResultError(fmt.Sprintf("no wallpapers found in %s", s.wallpapers.Dir)), nil
	}
	return mcp.NewToolResultText(resultToText(entries)), nil
}

func (s *Server) handleWallpaperSet(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	path := stringParam(params, "path", "")
	if path == "" {
		return mcp.NewToolResultError("path is required"), nil
	}

	if err := s.wallpapers.Set(path, true); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.cache.Invalidate()

	return mcp.NewToolResultText(resultToText(s.wallpapers.Status())), nil
}

func (s *Server) handleWallpaperRestore(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := s.wallpapers.Restore()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.cache.Invalidate()

	type restored struct {
		Restored string `yaml:"restored" json:"restored"`
	}
	return mcp.NewToolResultText(resultToText(restored{Restored: path})), nil
}

func (s *Server) handleWallpaperCurrent(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	st := s.wallpapers.Status()
	if st.Configured == "" && st.Running == "" {
		return mcp.NewToolResultError("no wallpaper is set or remembered"), nil
	}
	return mcp.NewToolResultText(resultToText(st)), nil
}

// handleTranslate runs the translator only. The popup leg of the
// pipeline stays out of the serve surface; an agent wants the text, not
// a dialog on the user's screen.
func (s *Server) handleTranslate(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	text := stringParam(params, "text", "")
	if text == "" {
		return mcp.NewToolResultError("text is required"), nil
	}

	translation, err := s.translator.Translate(text)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(translation), nil
}
