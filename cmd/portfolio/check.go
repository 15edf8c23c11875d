package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/theamazingmrb/portfolio-sub000"
	"github.com/theamazingmrb/portfolio-sub000/internal/hints"
)

// ErrInvalidPosts reports that check found at least one broken post.
var ErrInvalidPosts = errors.New("invalid posts found")

func printCheckUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: portfolio check [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render every post and report the ones that fail. Exits 2 if any do.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	printCommonFlags(w)
}

func runCheck(args []string, env *Environment) error {
	f := &commonFlags{}
	fs := newFlagSet("check", env.Stderr, printCheckUsage)
	addCommonFlags(fs, f)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := exactArgs(fs, 0); err != nil {
		return err
	}

	a, err := newApp(f, env)
	if err != nil {
		return err
	}

	ids, err := a.repo.ListPostIDs()
	if err != nil {
		return err
	}

	failed, missingField := 0, false
	for _, id := range ids {
		if _, err := a.repo.GetPost(id); err != nil {
			failed++
			missingField = missingField || errors.Is(err, portfolio.ErrMissingRequiredField)
			fmt.Fprintf(env.Stdout, "FAIL  %s: %v\n", id, err)
			continue
		}
		if !f.quiet {
			fmt.Fprintf(env.Stdout, "ok    %s\n", id)
		}
	}

	if failed > 0 {
		hint := ""
		if missingField {
			hint = hints.ForMissingField()
		}
		return fmt.Errorf("%w: %d of %d%s", ErrInvalidPosts, failed, len(ids), hint)
	}
	if !f.quiet {
		fmt.Fprintf(env.Stdout, "%d posts ok\n", len(ids))
	}
	return nil
}
