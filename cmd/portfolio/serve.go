package main

import (
	"errors"
	"fmt"
	"io"
	"syscall"

	"github.com/theamazingmrb/portfolio-sub000/internal/feed"
	"github.com/theamazingmrb/portfolio-sub000/internal/hints"
	"github.com/theamazingmrb/portfolio-sub000/internal/server"
)

type serveFlags struct {
	common commonFlags
	addr   string
}

func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: portfolio serve [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Serve the blog JSON API and RSS feed until interrupted.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Routes:")
	fmt.Fprintln(w, "  GET /api/posts?tag=&limit=&page=")
	fmt.Fprintln(w, "  GET /api/posts/:id")
	fmt.Fprintln(w, "  GET /api/post-ids")
	fmt.Fprintln(w, "  GET /rss.xml")
	fmt.Fprintln(w, "  GET /health")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --addr <host:port>    Listen address (default :8080)")
	printCommonFlags(w)
}

func runServe(args []string, env *Environment) error {
	f := &serveFlags{}
	fs := newFlagSet("serve", env.Stderr, printServeUsage)
	fs.StringVar(&f.addr, "addr", "", "listen address")
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
	if f.addr != "" {
		a.cfg.Server.Addr = f.addr
	}

	srv := server.New(a.repo, server.Options{
		Addr:           a.cfg.Server.Addr,
		AllowedOrigins: a.cfg.Server.AllowedOrigins,
		ReadTimeout:    a.cfg.Server.ReadTimeout,
		WriteTimeout:   a.cfg.Server.WriteTimeout,
		Channel:        channelFor(a),
		Version:        Version,
		Logger:         a.logger,
	})

	ctx, stop := env.NotifyContext(env.context())
	defer stop()

	if err := srv.ListenAndServe(ctx); err != nil {
		if errors.Is(err, syscall.EADDRINUSE) {
			return fmt.Errorf("%w%s", err, hints.ForAddrInUse())
		}
		return err
	}
	return nil
}

// channelFor describes the RSS channel from configuration.
func channelFor(a *app) feed.Channel {
	return feed.Channel{
		Title:       a.cfg.Feed.Title,
		Link:        a.cfg.Feed.Link,
		Description: a.cfg.Feed.Description,
		Language:    a.cfg.Feed.Language,
	}
}
