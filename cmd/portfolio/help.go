package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: portfolio <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  serve      Serve the JSON API and RSS feed")
	fmt.Fprintln(w, "  list       List posts, newest first")
	fmt.Fprintln(w, "  show       Render one post")
	fmt.Fprintln(w, "  ids        Print every post id")
	fmt.Fprintln(w, "  export     Write posts and feed to a directory")
	fmt.Fprintln(w, "  check      Validate every post")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'portfolio help <command>' for details on a specific command.")
}

// printCommonFlags prints the flags every content command accepts.
func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --content <dir>       Posts directory")
	fmt.Fprintln(w, "      --log-level <s>       debug, info, warn, error")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  PORTFOLIO_CONFIG, PORTFOLIO_CONTENT_DIR, PORTFOLIO_ADDR,")
	fmt.Fprintln(w, "  PORTFOLIO_LOG_LEVEL, PORTFOLIO_SITE_URL (also read from .env)")
}

var commandUsage = map[string]func(io.Writer){
	"serve":  printServeUsage,
	"list":   printListUsage,
	"show":   printShowUsage,
	"ids":    printIDsUsage,
	"export": printExportUsage,
	"check":  printCheckUsage,
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	if usage, ok := commandUsage[args[0]]; ok {
		usage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: portfolio version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: portfolio help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
