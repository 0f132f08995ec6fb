package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all parsed command-line flags.
type cliFlags struct {
	to       string // conversion direction: "auto", "md", "html"
	output   string // output file path (overrides the second positional)
	config   string // config file path or name
	truncate int    // Markdown output character cap, 0 = unlimited
	quiet    bool
	verbose  bool
	version  bool
	help     bool
}

// parseFlags parses args (including the program name at args[0]) and returns
// the flags and remaining positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("entrymd", flag.ContinueOnError)
	fs.SetOutput(discard{})

	f := &cliFlags{}
	fs.StringVar(&f.to, "to", "", "conversion direction: md, html, or auto")
	fs.StringVarP(&f.output, "output", "o", "", "output file path")
	fs.StringVarP(&f.config, "config", "c", "", "config file path or name")
	fs.IntVar(&f.truncate, "truncate", 0, "cap Markdown output at N characters")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress non-error output")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose diagnostics on stderr")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "print usage and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	return f, fs.Args(), nil
}

// discard swallows pflag's own error printing; errors surface through the
// returned error instead.
type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
