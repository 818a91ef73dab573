package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/discoverytools/discoveryerrors"
	"github.com/erraggy/discoverytools/loader"
	"github.com/erraggy/discoverytools/validator"
)

// ValidateFlags contains flags for the validate command
type ValidateFlags struct {
	CommonFlags
	Quiet  bool
	Format string
}

// SetupValidateFlags creates and configures a FlagSet for the validate command.
// Returns the FlagSet and a ValidateFlags struct with bound flag variables.
func SetupValidateFlags() (*flag.FlagSet, *ValidateFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags := &ValidateFlags{}

	addCommonFlags(fs, &flags.CommonFlags)
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only set the exit code, no output")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only set the exit code, no output")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: discoverytools validate [flags] <api> <version> <schema> <file|->\n\n")
		Writef(fs.Output(), "Validate a JSON or YAML object against a schema of an API version.\n")
		Writef(fs.Output(), "Schema and property names are snake_case; undeclared properties are rejected.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  discoverytools validate sheets v4 grid_data grid.json\n")
		Writef(fs.Output(), "  cat file.yaml | discoverytools validate -q drive v3 file -\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    Object conforms to the schema\n")
		Writef(fs.Output(), "  1    Object does not conform, or the schema could not be loaded\n")
	}

	return fs, flags
}

// ValidateResult is the structured output of the validate command.
type ValidateResult struct {
	API     string `json:"api" yaml:"api"`
	Version string `json:"version" yaml:"version"`
	Schema  string `json:"schema" yaml:"schema"`
	Input   string `json:"input" yaml:"input"`
	Valid   bool   `json:"valid" yaml:"valid"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// HandleValidate executes the validate command. A non-conforming object is
// reported and returned as a *discoveryerrors.ValidationError.
func HandleValidate(args []string) error {
	fs, flags := SetupValidateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 4 {
		fs.Usage()
		return fmt.Errorf("validate command requires an API name, version, schema name and a file path or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	id := loader.NewIdentity(fs.Arg(0), fs.Arg(1))
	schema := fs.Arg(2)
	inputPath := fs.Arg(3)

	object, err := ReadObject(inputPath)
	if err != nil {
		return err
	}

	logger := NewLogger(flags.Verbose)
	var opts []validator.Option
	if flags.Verbose {
		opts = append(opts, validator.WithLogger(logger))
	}
	verr := validator.ValidateObject(context.Background(), newLoader(&flags.CommonFlags, logger), id, schema, object, opts...)

	var notConforming *discoveryerrors.ValidationError
	if verr != nil && !errors.As(verr, &notConforming) {
		return verr
	}

	result := ValidateResult{
		API:     id.Name,
		Version: id.Version,
		Schema:  schema,
		Input:   FormatInputPath(inputPath),
		Valid:   verr == nil,
	}
	if notConforming != nil {
		result.Message = notConforming.Message
	}

	switch {
	case flags.Quiet:
	case flags.Format != FormatText:
		if err := OutputStructured(result, flags.Format); err != nil {
			return err
		}
	case result.Valid:
		Writef(os.Stdout, "%s: conforms to %s (%s)\n", result.Input, schema, id)
	default:
		Writef(os.Stdout, "%s: %s\n", result.Input, verr)
	}
	return verr
}
