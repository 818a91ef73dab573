package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/discoverytools/loader"
)

// SchemasFlags contains flags for the schemas command
type SchemasFlags struct {
	CommonFlags
	Format string
}

// SetupSchemasFlags creates and configures a FlagSet for the schemas command.
// Returns the FlagSet and a SchemasFlags struct with bound flag variables.
func SetupSchemasFlags() (*flag.FlagSet, *SchemasFlags) {
	fs := flag.NewFlagSet("schemas", flag.ContinueOnError)
	flags := &SchemasFlags{}

	addCommonFlags(fs, &flags.CommonFlags)
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: discoverytools schemas [flags] <api> <version>\n\n")
		Writef(fs.Output(), "List the normalized (snake_case) schema names of an API version.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  discoverytools schemas sheets v4\n")
		Writef(fs.Output(), "  discoverytools schemas --format json drive v3 | jq '.schemas[]'\n")
	}

	return fs, flags
}

// schemasResult is the structured output of the schemas command.
type schemasResult struct {
	API     string   `json:"api" yaml:"api"`
	Version string   `json:"version" yaml:"version"`
	Schemas []string `json:"schemas" yaml:"schemas"`
}

// HandleSchemas executes the schemas command
func HandleSchemas(args []string) error {
	fs, flags := SetupSchemasFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("schemas command requires an API name and version")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	id := loader.NewIdentity(fs.Arg(0), fs.Arg(1))
	l := newLoader(&flags.CommonFlags, NewLogger(flags.Verbose))

	names, err := l.SchemaNames(context.Background(), id)
	if err != nil {
		return err
	}

	if flags.Format != FormatText {
		return OutputStructured(schemasResult{API: id.Name, Version: id.Version, Schemas: names}, flags.Format)
	}
	for _, name := range names {
		Writef(os.Stdout, "%s\n", name)
	}
	return nil
}
