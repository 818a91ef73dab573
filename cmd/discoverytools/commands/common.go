// Package commands provides CLI command handlers for discoverytools.
package commands

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/discoverytools/loader"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// MaxObjectSize limits the size of an object file read by the validate command.
const MaxObjectSize = 16 * 1024 * 1024

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var out []byte
	var err error

	switch format {
	case FormatJSON:
		out, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		out, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	Writef(os.Stdout, "%s\n", bytes.TrimRight(out, "\n"))
	return nil
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil { //nolint:gosec // G705 - CLI tool, not a web server
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// FormatInputPath returns a display-friendly path for an input file.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatInputPath(path string) string {
	if path == StdinFilePath {
		return "<stdin>"
	}
	return path
}

// CommonFlags are the flags shared by commands that load discovery documents.
type CommonFlags struct {
	Host    string
	Timeout time.Duration
	Verbose bool
}

// addCommonFlags binds the shared flags to fs.
func addCommonFlags(fs *flag.FlagSet, flags *CommonFlags) {
	fs.StringVar(&flags.Host, "host", loader.DefaultHost, "domain discovery documents are fetched from")
	fs.DurationVar(&flags.Timeout, "timeout", loader.DefaultTimeout, "timeout for a single discovery document request")
	fs.BoolVar(&flags.Verbose, "v", false, "verbose: log schema lookups and fetches to stderr")
	fs.BoolVar(&flags.Verbose, "verbose", false, "verbose: log schema lookups and fetches to stderr")
}

// httpClient returns the client used for discovery requests. Tests replace it.
var httpClient = func(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// NewLogger returns a console logger writing to stderr. Only warnings and
// errors are written unless verbose is set.
func NewLogger(verbose bool) loader.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return loader.NewZerologAdapter(zerolog.New(out).Level(level).With().Timestamp().Logger())
}

// newLoader creates a Loader configured from the common flags.
func newLoader(flags *CommonFlags, logger loader.Logger) *loader.Loader {
	return loader.New(
		loader.WithHTTPClient(httpClient(flags.Timeout)),
		loader.WithHost(flags.Host),
		loader.WithLogger(logger),
	)
}

// ReadObject reads a JSON or YAML document from path, or from stdin when
// path is StdinFilePath, and returns it in its JSON form: objects are
// map[string]any, arrays []any and numbers float64.
func ReadObject(path string) (any, error) {
	var r io.Reader
	if path == StdinFilePath {
		r = os.Stdin
	} else {
		f, err := os.Open(path) //nolint:gosec // G304 - path is a user-supplied CLI argument
		if err != nil {
			return nil, fmt.Errorf("opening object file: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxObjectSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", FormatInputPath(path), err)
	}
	if len(data) > MaxObjectSize {
		return nil, fmt.Errorf("%s exceeds maximum size limit (%d bytes)", FormatInputPath(path), MaxObjectSize)
	}
	return decodeObject(data)
}

// decodeObject decodes JSON or YAML (a superset of JSON) and converts the
// result to its JSON form.
func decodeObject(data []byte) (any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding object: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("decoding object: document is empty or null")
	}

	// A JSON round trip turns YAML integers into float64.
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding object: %w", err)
	}
	var obj any
	if err := json.Unmarshal(encoded, &obj); err != nil {
		return nil, fmt.Errorf("decoding object: %w", err)
	}
	return obj, nil
}
