package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/discoverytools/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: discoverytools mcp\n\n")
		Writef(fs.Output(), "Run an MCP (Model Context Protocol) server over stdio.\n\n")
		Writef(fs.Output(), "Tools: list_schemas, get_schema, validate_object, list_apis\n\n")
		Writef(fs.Output(), "Configuration is read from DISCOVERYTOOLS_* environment variables:\n")
		Writef(fs.Output(), "  DISCOVERYTOOLS_HOST, DISCOVERYTOOLS_HTTP_TIMEOUT, DISCOVERYTOOLS_LOG_LEVEL,\n")
		Writef(fs.Output(), "  DISCOVERYTOOLS_LIST_LIMIT, DISCOVERYTOOLS_DIRECTORY_ENABLED, DISCOVERYTOOLS_METRICS_ADDR\n")
	}

	return fs
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}
