package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/discoverytools/directory"
)

type listAPIsInput struct {
	Name      string `json:"name,omitempty"      jsonschema:"Only list versions of this API"`
	Preferred bool   `json:"preferred,omitempty" jsonschema:"Only list the preferred version of each API"`
	Offset    int    `json:"offset,omitempty"    jsonschema:"Skip the first N entries (for pagination)"`
	Limit     int    `json:"limit,omitempty"     jsonschema:"Maximum number of entries to return (default 100)"`
}

type listAPIsOutput struct {
	Total    int               `json:"total"`
	Returned int               `json:"returned"`
	APIs     []directory.Entry `json:"apis,omitempty"`
}

func (ts *toolset) handleListAPIs(ctx context.Context, _ *mcp.CallToolRequest, input listAPIsInput) (*mcp.CallToolResult, listAPIsOutput, error) {
	var opts []directory.ListOption
	if input.Name != "" {
		opts = append(opts, directory.WithName(input.Name))
	}
	if input.Preferred {
		opts = append(opts, directory.PreferredOnly())
	}

	entries, err := ts.directory.List(ctx, opts...)
	if err != nil {
		return errResult(err), listAPIsOutput{}, nil
	}

	page := paginate(ts.cfg, entries, input.Offset, input.Limit)
	return nil, listAPIsOutput{
		Total:    len(entries),
		Returned: len(page),
		APIs:     page,
	}, nil
}
