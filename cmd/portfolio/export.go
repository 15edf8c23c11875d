package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/theamazingmrb/portfolio-sub000"
	"github.com/theamazingmrb/portfolio-sub000/internal/feed"
	"github.com/theamazingmrb/portfolio-sub000/internal/fileutil"
	"github.com/theamazingmrb/portfolio-sub000/internal/hints"
)

// ErrWriteExport marks failures writing the export tree.
var ErrWriteExport = errors.New("failed to write export")

type exportFlags struct {
	common commonFlags
	output string
}

func printExportUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: portfolio export -o <dir> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write a static snapshot of the blog:")
	fmt.Fprintln(w, "  <dir>/posts.json          Listing, newest first, without HTML")
	fmt.Fprintln(w, "  <dir>/posts/<id>.json     One fully rendered post per file")
	fmt.Fprintln(w, "  <dir>/rss.xml             RSS 2.0 feed")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (required)")
	printCommonFlags(w)
}

func runExport(args []string, env *Environment) error {
	f := &exportFlags{}
	fs := newFlagSet("export", env.Stderr, printExportUsage)
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	addCommonFlags(fs, &f.common)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := exactArgs(fs, 0); err != nil {
		return err
	}
	if f.output == "" {
		return fmt.Errorf("%w: export requires --output", ErrUsage)
	}

	a, err := newApp(&f.common, env)
	if err != nil {
		return err
	}

	listing := a.repo.ListPosts()

	full := make([]portfolio.Post, 0, len(listing))
	for _, p := range listing {
		post, err := a.repo.GetPost(p.ID)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", p.ID, err)
		}
		full = append(full, post)
	}

	postsDir := filepath.Join(f.output, "posts")
	if err := os.MkdirAll(postsDir, 0o750); err != nil {
		return fmt.Errorf("%w: %v%s", ErrWriteExport, err, hints.ForOutputDirectory())
	}

	if err := writeJSONFile(filepath.Join(f.output, "posts.json"), listing); err != nil {
		return err
	}
	for _, p := range full {
		if err := writeJSONFile(filepath.Join(postsDir, p.ID+".json"), p); err != nil {
			return err
		}
	}

	rss, err := feed.NewGenerator(Version).Run(channelFor(a), full)
	if err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(filepath.Join(f.output, "rss.xml"), []byte(rss), 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteExport, err)
	}

	if !f.common.quiet {
		fmt.Fprintf(env.Stdout, "Exported %d posts to %s\n", len(full), f.output)
	}
	return nil
}

func writeJSONFile(path string, v any) error {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v); err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteExport, err)
	}
	return nil
}
