package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/discoverytools/discoveryerrors"
)

type listSchemasInput struct {
	API     string `json:"api"              jsonschema:"API name as listed in the discovery directory, e.g. sheets"`
	Version string `json:"version"          jsonschema:"API version, e.g. v4"`
	Filter  string `json:"filter,omitempty" jsonschema:"Glob matched against schema names, e.g. *_request"`
	Offset  int    `json:"offset,omitempty" jsonschema:"Skip the first N schema names (for pagination)"`
	Limit   int    `json:"limit,omitempty"  jsonschema:"Maximum number of schema names to return (default 100)"`
}

type listSchemasOutput struct {
	API      string   `json:"api"`
	Version  string   `json:"version"`
	Total    int      `json:"total"`
	Matched  int      `json:"matched"`
	Returned int      `json:"returned"`
	Schemas  []string `json:"schemas,omitempty"`
}

func (ts *toolset) handleListSchemas(ctx context.Context, _ *mcp.CallToolRequest, input listSchemasInput) (*mcp.CallToolResult, listSchemasOutput, error) {
	id, err := apiIdentity(input.API, input.Version)
	if err != nil {
		return errResult(err), listSchemasOutput{}, nil
	}
	if err := validateGlobPattern(input.Filter); err != nil {
		return errResult(err), listSchemasOutput{}, nil
	}

	names, err := ts.loader.SchemaNames(ctx, id)
	if err != nil {
		return errResult(err), listSchemasOutput{}, nil
	}

	var matched []string
	for _, name := range names {
		if matchGlob(input.Filter, name) {
			matched = append(matched, name)
		}
	}

	page := paginate(ts.cfg, matched, input.Offset, input.Limit)
	return nil, listSchemasOutput{
		API:      id.Name,
		Version:  id.Version,
		Total:    len(names),
		Matched:  len(matched),
		Returned: len(page),
		Schemas:  page,
	}, nil
}

type getSchemaInput struct {
	API     string `json:"api"     jsonschema:"API name as listed in the discovery directory, e.g. sheets"`
	Version string `json:"version" jsonschema:"API version, e.g. v4"`
	Schema  string `json:"schema"  jsonschema:"Normalized (snake_case) schema name, e.g. grid_data"`
}

type getSchemaOutput struct {
	Schema     string         `json:"schema,omitempty"`
	Definition map[string]any `json:"definition,omitempty"`
}

func (ts *toolset) handleGetSchema(ctx context.Context, _ *mcp.CallToolRequest, input getSchemaInput) (*mcp.CallToolResult, getSchemaOutput, error) {
	id, err := apiIdentity(input.API, input.Version)
	if err != nil {
		return errResult(err), getSchemaOutput{}, nil
	}

	schema, ok, err := ts.loader.Lookup(ctx, id, input.Schema)
	if err != nil {
		return errResult(err), getSchemaOutput{}, nil
	}
	if !ok {
		return errResult(&discoveryerrors.SchemaNotFoundError{Name: input.Schema}), getSchemaOutput{}, nil
	}
	return nil, getSchemaOutput{Schema: input.Schema, Definition: schema}, nil
}
