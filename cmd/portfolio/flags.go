package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage marks bad flags or arguments.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config   string
	content  string
	logLevel string
	quiet    bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.content, "content", "", "posts directory")
	fs.StringVar(&f.logLevel, "log-level", "", "debug, info, warn, or error")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
}

// newFlagSet creates a FlagSet whose usage goes to w.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseFlags parses args and wraps failures in ErrUsage.
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return nil
}

// exactArgs checks the positional argument count.
func exactArgs(fs *flag.FlagSet, n int) error {
	if fs.NArg() != n {
		return fmt.Errorf("%w: %s expects %d argument(s), got %d", ErrUsage, fs.Name(), n, fs.NArg())
	}
	return nil
}
