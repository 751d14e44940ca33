package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

const usage = `usage: colser [-config file] <command> [-kind set|list] [-type name] args...

commands:
  encode v1 v2 ...   encode values and print the frame as hex
  decode HEX         decode a hex frame and print its elements
  inspect HEX        print the frame count and segment sizes

types: %s
`

// Options holds CLI options.
type Options struct {
	ConfigPath string
	Command    string
	Kind       string
	Type       string
	Args       []string
}

var errUsage = errors.New("invalid usage")

// parseGlobal parses flags that precede the command.
func parseGlobal(args []string, stderr io.Writer) (Options, error) {
	fs := flag.NewFlagSet("colser", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var opts Options
	fs.StringVar(&opts.ConfigPath, "config", "", "Path to YAML config file")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return opts, errUsage
	}
	opts.Command = rest[0]
	opts.Args = rest[1:]
	return opts, nil
}

// parseCommand parses the command flags; kind and typ are the configured
// defaults.
func parseCommand(opts *Options, kind, typ string, stderr io.Writer) error {
	fs := flag.NewFlagSet("colser "+opts.Command, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.Kind, "kind", kind, "collection kind: set|list")
	fs.StringVar(&opts.Type, "type", typ, "element type")
	if err := fs.Parse(opts.Args); err != nil {
		return err
	}
	opts.Args = fs.Args()

	opts.Kind = strings.ToLower(strings.TrimSpace(opts.Kind))
	switch opts.Kind {
	case "set", "list":
	default:
		return fmt.Errorf("%w: unknown kind %q (want set or list)", errUsage, opts.Kind)
	}
	return nil
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, usage, typeNames())
}
