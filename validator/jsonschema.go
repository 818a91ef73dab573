package validator

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// Scheme is the URI scheme of schema references handed to the resolver.
	Scheme = "discovery"

	// RootURL is the location of the root schema. Relative references such as
	// "person" resolve against it to "discovery://schema/person".
	RootURL = Scheme + "://schema/$root"
)

// JSONSchemaEngine is the default Engine. It evaluates schemas as JSON Schema
// draft 2020-12 using github.com/santhosh-tekuri/jsonschema/v6.
type JSONSchemaEngine struct {
	printer *message.Printer
}

// NewJSONSchemaEngine creates a JSONSchemaEngine that renders messages in English.
func NewJSONSchemaEngine() *JSONSchemaEngine {
	return &JSONSchemaEngine{printer: message.NewPrinter(language.English)}
}

// Ensure JSONSchemaEngine implements Engine and Compiler at compile time.
var (
	_ Engine   = (*JSONSchemaEngine)(nil)
	_ Compiler = (*JSONSchemaEngine)(nil)
)

// urlLoader adapts a ResolveFunc to jsonschema.URLLoader. It keeps the first
// resolve failure so callers get it back unchanged.
type urlLoader struct {
	resolve ResolveFunc
	err     error
}

func (u *urlLoader) Load(url string) (any, error) {
	schema, err := u.resolve(url)
	if err != nil {
		if u.err == nil {
			u.err = err
		}
		return nil, err
	}
	return compatible(schema), nil
}

// Validate implements Engine.
func (e *JSONSchemaEngine) Validate(root map[string]any, resolve ResolveFunc, object any) ([]Issue, error) {
	compiled, err := e.Compile(root, resolve)
	if err != nil {
		return nil, err
	}
	return compiled.Validate(object)
}

// Compile implements Compiler. Every schema reachable from root is resolved
// and compiled before it returns.
func (e *JSONSchemaEngine) Compile(root map[string]any, resolve ResolveFunc) (CompiledSchema, error) {
	loader := &urlLoader{resolve: resolve}

	c := jsonschema.NewCompiler()
	c.DefaultDraft(jsonschema.Draft2020)
	c.UseLoader(jsonschema.SchemeURLLoader{Scheme: loader})
	if err := c.AddResource(RootURL, compatible(root)); err != nil {
		return nil, fmt.Errorf("validator: invalid root schema: %w", err)
	}

	schema, err := c.Compile(RootURL)
	if err != nil {
		if loader.err != nil {
			return nil, loader.err
		}
		return nil, fmt.Errorf("validator: failed to compile schema: %w", err)
	}
	return &compiledSchema{engine: e, schema: schema}, nil
}

type compiledSchema struct {
	engine *JSONSchemaEngine
	schema *jsonschema.Schema
}

// Validate returns the leaf issues of object, sorted by location.
func (c *compiledSchema) Validate(object any) ([]Issue, error) {
	err := c.schema.Validate(object)
	if err == nil {
		return nil, nil
	}
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return nil, fmt.Errorf("validator: %w", err)
	}
	issues := c.engine.flatten(verr, nil)
	sortIssues(issues)
	return issues, nil
}

// flatten appends the leaf errors of verr in depth-first order.
func (e *JSONSchemaEngine) flatten(verr *jsonschema.ValidationError, issues []Issue) []Issue {
	if len(verr.Causes) == 0 {
		return append(issues, e.issue(verr))
	}
	for _, cause := range verr.Causes {
		issues = e.flatten(cause, issues)
	}
	return issues
}

func (e *JSONSchemaEngine) issue(verr *jsonschema.ValidationError) Issue {
	printer := e.printer
	if printer == nil {
		printer = message.NewPrinter(language.English)
	}
	keyword := verr.SchemaURL
	if path := verr.ErrorKind.KeywordPath(); len(path) > 0 {
		if !strings.Contains(keyword, "#") {
			keyword += "#"
		}
		keyword += jsonPointer(path)
	}
	msg, ok := falseSchemaMessage(verr)
	if !ok {
		msg = localized(verr.ErrorKind, printer)
	}
	return Issue{
		InstanceLocation: jsonPointer(verr.InstanceLocation),
		KeywordLocation:  keyword,
		Message:          msg,
	}
}

// localized renders k. Property lists collected from map iteration are
// sorted first.
func localized(k jsonschema.ErrorKind, printer *message.Printer) string {
	if ap, ok := k.(*kind.AdditionalProperties); ok {
		k = &kind.AdditionalProperties{Properties: slices.Sorted(slices.Values(ap.Properties))}
	}
	return k.LocalizedString(printer)
}

// falseSchemaMessage describes a value rejected by a false subschema in terms
// of the keyword holding that subschema, e.g. "unevaluated property 'zip'
// not allowed" rather than "false schema".
func falseSchemaMessage(verr *jsonschema.ValidationError) (string, bool) {
	if _, ok := verr.ErrorKind.(*kind.FalseSchema); !ok || len(verr.InstanceLocation) == 0 {
		return "", false
	}
	_, fragment, _ := strings.Cut(verr.SchemaURL, "#")
	keyword := fragment[strings.LastIndexByte(fragment, '/')+1:]
	token := verr.InstanceLocation[len(verr.InstanceLocation)-1]

	switch keyword {
	case "unevaluatedProperties":
		return fmt.Sprintf("unevaluated property '%s' not allowed", token), true
	case "additionalProperties":
		return fmt.Sprintf("additional property '%s' not allowed", token), true
	case "unevaluatedItems":
		return fmt.Sprintf("unevaluated item %s not allowed", token), true
	}
	return "", false
}
