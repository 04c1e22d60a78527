// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/retrotarget/internal/options"
)

// ParseFlags parses command line flags and returns program and writer options
func ParseFlags() (options.Program, options.Writer, error) {
	return parse(os.Args[0], os.Args[1:])
}

func parse(name string, arguments []string) (options.Program, options.Writer, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)
	writerOptions := options.NewWriter()
	noComments := readWriterOptionFlags(flags, &writerOptions)

	err := flags.Parse(arguments)
	if err != nil {
		return opts, writerOptions, &UsageError{flags: flags, msg: err.Error()}
	}
	args := flags.Args()

	if err := validateArgs(flags, args, opts); err != nil {
		return opts, writerOptions, err
	}

	if len(args) == 1 {
		opts.Target = args[0]
	}
	normalizeOptions(&opts)
	writerOptions.TextComments = !*noComments

	return opts, writerOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage and all flag defaults.
func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrotarget [options] [target]\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks that at most one positional target is passed and that
// it does not conflict with the target flag.
func validateArgs(flags *flag.FlagSet, args []string, opts options.Program) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				flags: flags,
				msg:   fmt.Sprintf("Potential argument %s found after target name, please pass the target name as last argument", arg),
			}
		}
	}
	if len(args) > 1 {
		return &UsageError{flags: flags, msg: "only one target name can be given"}
	}
	if len(args) == 1 && opts.Target != "" {
		return &UsageError{flags: flags, msg: "target given as flag and as argument"}
	}
	return nil
}

// normalizeOptions lower cases the target name, the registry matches names
// case sensitive.
func normalizeOptions(opts *options.Program) {
	opts.Target = strings.ToLower(strings.TrimSpace(opts.Target))
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Target, "t", "", "name of the target system, for example c64")
	flags.StringVar(&opts.Output, "o", "", "name of the output .inc file, printed on console if no name given")
	flags.StringVar(&opts.Config, "c", "", "name of the project config file, searched as retrotarget.toml if not given")
	flags.StringVar(&opts.Encode, "encode", "", "string literal to translate to the target character set")
	flags.BoolVar(&opts.List, "list", false, "list all known target names")
	flags.BoolVar(&opts.Charmap, "charmap", false, "output .charmap directives for the target character set")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}

func readWriterOptionFlags(flags *flag.FlagSet, opts *options.Writer) *bool {
	flags.StringVar(&opts.Label, "label", opts.Label, "label to put in front of the encoded string literal")
	return flags.Bool("notextcomments", false, "do not output the source text of string literals as comments")
}
