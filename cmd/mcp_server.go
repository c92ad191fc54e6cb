package cmd

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/window-walker/internal/model"
	"github.com/mj1618/window-walker/internal/output"
	"github.com/mj1618/window-walker/internal/platform"
	"github.com/mj1618/window-walker/internal/version"
	"github.com/mj1618/window-walker/internal/walker"
)

// mcpServer wraps the MCP server with the platform provider and cache.
type mcpServer struct {
	provider   *platform.Provider
	cache      *mcpWindowCache
	providerMu sync.Mutex
	mcp        *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// newMCPServer creates and configures an MCP server with all window-walker tools.
func newMCPServer(cfg MCPConfig) (*mcpServer, error) {
	provider, err := newProvider()
	if err != nil {
		return nil, err
	}
	return newMCPServerWithProvider(provider, cfg), nil
}

func newMCPServerWithProvider(provider *platform.Provider, cfg MCPConfig) *mcpServer {
	s := &mcpServer{
		provider: provider,
		cache:    newMCPWindowCache(cfg.CacheTTL),
	}
	s.mcp = mcpserver.NewMCPServer(
		"window-walker",
		version.Version,
	)
	s.registerTools()
	return s
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("list_windows",
			mcp.WithDescription("List application windows in front-to-back z-order with their title and virtual desktop"),
			mcp.WithBoolean("current_desktop", mcp.Description("Only windows on the active virtual desktop")),
			mcp.WithString("title", mcp.Description("Only windows with exactly this title")),
		),
		s.handleListWindows,
	)

	s.mcp.AddTool(
		mcp.NewTool("list_desktops",
			mcp.WithDescription("List virtual desktops; the active one is marked current"),
		),
		s.handleListDesktops,
	)

	s.mcp.AddTool(
		mcp.NewTool("walk",
			mcp.WithDescription("Switch to every application window in z-order and restore focus afterwards. Requires dry_run, execute, or title. A title restricts the walk to exact title matches, forces a live run, and skips the restore."),
			mcp.WithBoolean("dry_run", mcp.Description("Preview the walk without switching anything")),
			mcp.WithBoolean("execute", mcp.Description("Actually switch desktops and focus")),
			mcp.WithString("title", mcp.Description("Only visit windows with exactly this title")),
			mcp.WithBoolean("current_desktop", mcp.Description("Only visit windows on the active virtual desktop")),
		),
		s.handleWalk,
	)

	s.mcp.AddTool(
		mcp.NewTool("send",
			mcp.WithDescription("Type content and press Enter in every window of the configured messaging app, then restore focus. Requires execute."),
			mcp.WithString("content", mcp.Description("Content to send (default from config)")),
			mcp.WithBoolean("execute", mcp.Description("Must be true to send")),
		),
		s.handleSend,
	)
}

func textResult(v interface{}) (*mcp.CallToolResult, error) {
	text, err := output.ToYAML(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (s *mcpServer) handleListWindows(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	opts := platform.ListOptions{
		CurrentDesktop: boolParam(params, "current_desktop", false),
		Title:          stringParam(params, "title", ""),
	}
	if s.provider.Reader == nil {
		return mcp.NewToolResultError("window enumeration not available on this platform"), nil
	}

	windows, err := s.cache.listWindows(s.provider.Reader, opts)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if windows == nil {
		windows = []model.Window{}
	}
	return textResult(windows)
}

func (s *mcpServer) handleListDesktops(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.provider.Reader == nil {
		return mcp.NewToolResultError("desktop enumeration not available on this platform"), nil
	}
	desktops, err := s.provider.Reader.ListDesktops()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if desktops == nil {
		desktops = []model.Desktop{}
	}
	return textResult(desktops)
}

func (s *mcpServer) handleWalk(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	title := stringParam(params, "title", "")
	dryRun, err := walker.AuthorizeSwitch(
		boolParam(params, "dry_run", false),
		boolParam(params, "execute", false),
		title,
	)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	opts := switchOptions(currentConfig(), dryRun, title, boolParam(params, "current_desktop", false))
	return s.walk(ctx, opts)
}

func (s *mcpServer) handleSend(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	if _, err := walker.AuthorizeSend(false, boolParam(params, "execute", false)); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	cfg := currentConfig()
	content := stringParam(params, "content", "")
	if content == "" {
		content = cfg.Send.Content
	}
	return s.walk(ctx, sendOptions(cfg, content))
}

// walk runs one walk under the provider lock and invalidates the window
// cache after live runs.
func (s *mcpServer) walk(ctx context.Context, opts walker.Options) (*mcp.CallToolResult, error) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	report, err := runWalker(ctx, s.provider, opts, nil)
	if !opts.DryRun {
		s.cache.invalidateAll()
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return textResult(report)
}
