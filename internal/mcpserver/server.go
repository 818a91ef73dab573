// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes discoverytools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/erraggy/discoverytools"
	"github.com/erraggy/discoverytools/directory"
	"github.com/erraggy/discoverytools/loader"
	"github.com/erraggy/discoverytools/validator"
)

const serverInstructions = `discoverytools MCP server: lists and validates against the schemas of Google APIs described by the Google API Discovery Service.

APIs are identified by name and version (e.g. sheets/v4). Schema and property names are snake_case: "GridData" is exposed as "grid_data" and "rowData" as "row_data". Objects are validated strictly; undeclared properties are rejected.

Configuration: All defaults are configurable via DISCOVERYTOOLS_* environment variables set in your MCP client config.

Key settings:
- DISCOVERYTOOLS_HOST (default: googleapis.com) - domain discovery documents are fetched from
- DISCOVERYTOOLS_HTTP_TIMEOUT (default: 30s) - timeout for a single discovery request
- DISCOVERYTOOLS_LIST_LIMIT (default: 100) - default result limit for list tools
- DISCOVERYTOOLS_DIRECTORY_ENABLED (default: true) - register the list_apis tool
- DISCOVERYTOOLS_LOG_LEVEL (default: warn) - stderr log level
- DISCOVERYTOOLS_METRICS_ADDR - serve Prometheus metrics on this address

Caching: Discovery documents are fetched once per API version and kept for the life of the server.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	// stdout carries the MCP transport; logs go to stderr.
	logger := loader.NewSlogAdapter(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	reg := prometheus.NewRegistry()
	ts, err := newToolset(ctx, cfg, logger, newHTTPClient(cfg), loader.NewMetrics(reg))
	if err != nil {
		return err
	}
	if cfg.MetricsAddr != "" {
		stop := serveMetrics(cfg.MetricsAddr, reg, logger)
		defer stop()
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "discoverytools", Version: discoverytools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server, ts)
	return server.Run(ctx, &mcp.StdioTransport{})
}

// toolset holds the state shared by all tool handlers of one server.
type toolset struct {
	cfg       *serverConfig
	loader    *loader.Loader
	directory *directory.Client
	logger    loader.Logger

	// validators holds one *validator.Validator per loader.Identity so
	// compiled schemas are reused across calls.
	validators sync.Map
}

// validatorFor returns the shared validator for id.
func (ts *toolset) validatorFor(id loader.Identity) *validator.Validator {
	if v, ok := ts.validators.Load(id); ok {
		return v.(*validator.Validator)
	}
	v, _ := ts.validators.LoadOrStore(id, validator.New(ts.loader, id, validator.WithLogger(ts.logger)))
	return v.(*validator.Validator)
}

func newToolset(ctx context.Context, c *serverConfig, logger loader.Logger, client *http.Client, metrics *loader.Metrics) (*toolset, error) {
	ts := &toolset{
		cfg:    c,
		logger: logger,
		loader: loader.New(
			loader.WithHTTPClient(client),
			loader.WithHost(c.Host),
			loader.WithMaxBodySize(int64(c.MaxBodySize)),
			loader.WithLogger(logger),
			loader.WithMetrics(metrics),
		),
	}
	if c.DirectoryEnabled {
		opts := []directory.Option{
			directory.WithHTTPClient(client),
			directory.WithLogger(logger),
		}
		if c.DirectoryEndpoint != "" {
			opts = append(opts, directory.WithEndpoint(c.DirectoryEndpoint))
		}
		dir, err := directory.New(ctx, opts...)
		if err != nil {
			return nil, err
		}
		ts.directory = dir
	}
	return ts, nil
}

func registerAllTools(server *mcp.Server, ts *toolset) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_schemas",
		Description: "List the normalized (snake_case) schema names of a Google API version, sorted. Use filter with a glob (e.g. *_request) to narrow large APIs. Use offset/limit to paginate. Default limit is configurable via DISCOVERYTOOLS_LIST_LIMIT.",
	}, ts.handleListSchemas)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_schema",
		Description: "Return the normalized definition of one schema of a Google API version. Property names and $ref targets are snake_case, and unevaluatedProperties is false on every named schema.",
	}, ts.handleGetSchema)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate_object",
		Description: "Validate a JSON object against a named schema of a Google API version. Property names must be snake_case. Pass the object inline as object, or as a JSON string in object_json. Returns valid=false with the first problem found when the object does not conform.",
	}, ts.handleValidateObject)

	if ts.directory != nil {
		mcp.AddTool(server, &mcp.Tool{
			Name:        "list_apis",
			Description: "List the APIs published in the Google API Discovery directory. Filter by name, or set preferred=true to only list the preferred version of each API. Use offset/limit to paginate.",
		}, ts.handleListAPIs)
	}
}

// serveMetrics serves reg on addr until the returned function is called.
func serveMetrics(addr string, reg *prometheus.Registry, logger loader.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "addr", addr, "error", err)
		}
	}()
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ListLimit.
func paginate[T any](c *serverConfig, items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = c.ListLimit
	}
	if limit > c.MaxLimit {
		limit = c.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// pathPattern matches absolute filesystem paths.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

// sanitizeError strips absolute filesystem paths from error messages so
// MCP clients never see the server's directory layout.
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// validateGlobPattern checks whether a glob pattern is syntactically valid.
func validateGlobPattern(pattern string) error {
	if pattern == "" || !strings.ContainsAny(pattern, "*?[") {
		return nil
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	return nil
}

// matchGlob reports whether name matches pattern. An empty pattern matches
// everything; a pattern without glob characters must match exactly.
func matchGlob(pattern, name string) bool {
	if pattern == "" {
		return true
	}
	ok, _ := filepath.Match(pattern, name)
	return ok
}
