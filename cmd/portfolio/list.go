package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/theamazingmrb/portfolio-sub000"
	"github.com/theamazingmrb/portfolio-sub000/internal/dateutil"
	"github.com/theamazingmrb/portfolio-sub000/internal/hints"
)

type listFlags struct {
	common commonFlags
	tag    string
	json   bool
}

func printListUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: portfolio list [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List valid posts, newest first. Invalid files are skipped with a warning.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --tag <s>             Only posts carrying this tag (case-insensitive)")
	fmt.Fprintln(w, "      --json                Print the listing as JSON")
	printCommonFlags(w)
}

func runList(args []string, env *Environment) error {
	f := &listFlags{}
	fs := newFlagSet("list", env.Stderr, printListUsage)
	fs.StringVar(&f.tag, "tag", "", "filter by tag")
	fs.BoolVar(&f.json, "json", false, "print JSON")
	addCommonFlags(fs, &f.common)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := exactArgs(fs, 0); err != nil {
		return err
	}

	a, err := newApp(&f.common, env)
	if err != nil {
		return err
	}

	posts := filterByTag(a.repo.ListPosts(), f.tag)
	if f.json {
		return writeJSON(env.Stdout, posts)
	}

	tw := tabwriter.NewWriter(env.Stdout, 0, 4, 2, ' ', 0)
	for _, p := range posts {
		date, err := dateutil.FormatPostDate(p.Date, a.cfg.Feed.DateFormat)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d min\n", date, p.ID, p.Title, p.ReadingTime)
	}
	return tw.Flush()
}

func filterByTag(posts []portfolio.Post, tag string) []portfolio.Post {
	if tag == "" {
		return posts
	}
	out := make([]portfolio.Post, 0, len(posts))
	for _, p := range posts {
		if p.HasTag(tag) {
			out = append(out, p)
		}
	}
	return out
}

type showFlags struct {
	common commonFlags
	html   bool
	json   bool
}

func printShowUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: portfolio show <id> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render one post. Prints a summary unless --html or --json is given.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --html                Print the rendered HTML body")
	fmt.Fprintln(w, "      --json                Print the full post as JSON")
	printCommonFlags(w)
}

func runShow(args []string, env *Environment) error {
	f := &showFlags{}
	fs := newFlagSet("show", env.Stderr, printShowUsage)
	fs.BoolVar(&f.html, "html", false, "print HTML")
	fs.BoolVar(&f.json, "json", false, "print JSON")
	addCommonFlags(fs, &f.common)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := exactArgs(fs, 1); err != nil {
		return err
	}
	if f.html && f.json {
		return fmt.Errorf("%w: --html and --json are mutually exclusive", ErrUsage)
	}

	a, err := newApp(&f.common, env)
	if err != nil {
		return err
	}

	id := fs.Arg(0)
	post, err := a.repo.GetPost(id)
	if err != nil {
		return withPostHint(err, id, a.repo)
	}

	switch {
	case f.html:
		_, err = fmt.Fprintln(env.Stdout, post.ContentHTML)
		return err
	case f.json:
		return writeJSON(env.Stdout, post)
	}

	tw := tabwriter.NewWriter(env.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Title:\t%s\n", post.Title)
	fmt.Fprintf(tw, "Date:\t%s\n", post.Date)
	if post.LastUpdated != post.Date {
		fmt.Fprintf(tw, "Updated:\t%s\n", post.LastUpdated)
	}
	fmt.Fprintf(tw, "Author:\t%s\n", post.Author)
	fmt.Fprintf(tw, "Category:\t%s\n", post.Category)
	if len(post.Tags) > 0 {
		fmt.Fprintf(tw, "Tags:\t%v\n", post.Tags)
	}
	fmt.Fprintf(tw, "Reading time:\t%d min\n", post.ReadingTime)
	fmt.Fprintf(tw, "Excerpt:\t%s\n", post.Excerpt)
	return tw.Flush()
}

// withPostHint decorates GetPost errors with a suggestion.
func withPostHint(err error, id string, repo *portfolio.Repository) error {
	switch {
	case errors.Is(err, portfolio.ErrNotFound):
		ids, _ := repo.ListPostIDs()
		return fmt.Errorf("%w%s", err, hints.ForPostNotFound(id, ids))
	case errors.Is(err, portfolio.ErrMissingRequiredField):
		return fmt.Errorf("%w%s", err, hints.ForMissingField())
	}
	return err
}

func printIDsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: portfolio ids [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print every post id, one per line. Files are not validated.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	printCommonFlags(w)
}

func runIDs(args []string, env *Environment) error {
	f := &commonFlags{}
	fs := newFlagSet("ids", env.Stderr, printIDsUsage)
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
	for _, id := range ids {
		fmt.Fprintln(env.Stdout, id)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
