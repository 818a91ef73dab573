package mcpserver

import (
	"fmt"
	"regexp"

	"github.com/goccy/go-json"

	"github.com/erraggy/discoverytools/loader"
)

// API names become a label of the discovery host name, so they are limited
// to what a DNS label allows.
var (
	apiNamePattern    = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?$`)
	apiVersionPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)
)

// apiIdentity validates a tool's api and version arguments.
func apiIdentity(api, version string) (loader.Identity, error) {
	if !apiNamePattern.MatchString(api) {
		return loader.Identity{}, fmt.Errorf("invalid api name %q: must be lowercase letters, digits and hyphens", api)
	}
	if !apiVersionPattern.MatchString(version) {
		return loader.Identity{}, fmt.Errorf("invalid api version %q", version)
	}
	return loader.NewIdentity(api, version), nil
}

// decodeObject returns the object to validate: inline when set, otherwise
// decoded from its JSON text. Exactly one must be provided.
func decodeObject(inline any, text string) (any, error) {
	switch {
	case inline != nil && text != "":
		return nil, fmt.Errorf("must specify exactly one of object or object_json")
	case inline != nil:
		return inline, nil
	case text == "":
		return nil, fmt.Errorf("must specify an object (use object or object_json)")
	}
	var obj any
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return nil, fmt.Errorf("invalid object_json: %w", err)
	}
	return obj, nil
}
