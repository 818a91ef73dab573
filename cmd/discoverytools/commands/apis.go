package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/erraggy/discoverytools/directory"
	"github.com/erraggy/discoverytools/loader"
)

// APIsFlags contains flags for the apis command
type APIsFlags struct {
	Name      string
	Preferred bool
	Endpoint  string
	Format    string
	Verbose   bool
}

// SetupAPIsFlags creates and configures a FlagSet for the apis command.
// Returns the FlagSet and an APIsFlags struct with bound flag variables.
func SetupAPIsFlags() (*flag.FlagSet, *APIsFlags) {
	fs := flag.NewFlagSet("apis", flag.ContinueOnError)
	flags := &APIsFlags{}

	fs.StringVar(&flags.Name, "name", "", "only list versions of this API")
	fs.BoolVar(&flags.Preferred, "preferred", false, "only list the preferred version of each API")
	fs.StringVar(&flags.Endpoint, "endpoint", "", "Discovery Service base URL (default https://www.googleapis.com/discovery/v1/)")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Verbose, "v", false, "verbose: log directory requests to stderr")
	fs.BoolVar(&flags.Verbose, "verbose", false, "verbose: log directory requests to stderr")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: discoverytools apis [flags]\n\n")
		Writef(fs.Output(), "List the APIs published in the Google API Discovery directory.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  discoverytools apis --preferred\n")
		Writef(fs.Output(), "  discoverytools apis --name drive --format json\n")
	}

	return fs, flags
}

// HandleAPIs executes the apis command
func HandleAPIs(args []string) error {
	fs, flags := SetupAPIsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("apis command takes no arguments")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	ctx := context.Background()
	opts := []directory.Option{
		directory.WithHTTPClient(httpClient(loader.DefaultTimeout)),
		directory.WithLogger(NewLogger(flags.Verbose)),
	}
	if flags.Endpoint != "" {
		opts = append(opts, directory.WithEndpoint(flags.Endpoint))
	}
	client, err := directory.New(ctx, opts...)
	if err != nil {
		return err
	}

	var listOpts []directory.ListOption
	if flags.Name != "" {
		listOpts = append(listOpts, directory.WithName(flags.Name))
	}
	if flags.Preferred {
		listOpts = append(listOpts, directory.PreferredOnly())
	}
	entries, err := client.List(ctx, listOpts...)
	if err != nil {
		return err
	}

	if flags.Format != FormatText {
		return OutputStructured(entries, flags.Format)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	Writef(tw, "NAME\tVERSION\tPREFERRED\tTITLE\n")
	for _, e := range entries {
		Writef(tw, "%s\t%s\t%t\t%s\n", e.Name, e.Version, e.Preferred, e.Title)
	}
	return tw.Flush()
}
