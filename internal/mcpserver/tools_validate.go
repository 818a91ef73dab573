package mcpserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/discoverytools/discoveryerrors"
)

type validateObjectInput struct {
	API        string `json:"api"                   jsonschema:"API name as listed in the discovery directory, e.g. sheets"`
	Version    string `json:"version"               jsonschema:"API version, e.g. v4"`
	Schema     string `json:"schema"                jsonschema:"Normalized (snake_case) schema name to validate against, e.g. grid_data"`
	Object     any    `json:"object,omitempty"      jsonschema:"The object to validate"`
	ObjectJSON string `json:"object_json,omitempty" jsonschema:"The object to validate, as JSON text"`
}

type validateObjectOutput struct {
	Valid   bool   `json:"valid"`
	Schema  string `json:"schema"`
	Message string `json:"message,omitempty"`
}

func (ts *toolset) handleValidateObject(ctx context.Context, _ *mcp.CallToolRequest, input validateObjectInput) (*mcp.CallToolResult, validateObjectOutput, error) {
	id, err := apiIdentity(input.API, input.Version)
	if err != nil {
		return errResult(err), validateObjectOutput{}, nil
	}
	object, err := decodeObject(input.Object, input.ObjectJSON)
	if err != nil {
		return errResult(err), validateObjectOutput{}, nil
	}

	err = ts.validatorFor(id).Validate(ctx, input.Schema, object)

	var verr *discoveryerrors.ValidationError
	switch {
	case err == nil:
		return nil, validateObjectOutput{Valid: true, Schema: input.Schema}, nil
	case errors.As(err, &verr):
		// A non-conforming object is a result, not a tool failure.
		return nil, validateObjectOutput{Schema: input.Schema, Message: verr.Error()}, nil
	default:
		return errResult(err), validateObjectOutput{}, nil
	}
}
