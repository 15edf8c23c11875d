package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theamazingmrb/portfolio-sub000"
	"github.com/theamazingmrb/portfolio-sub000/internal/config"
	"github.com/theamazingmrb/portfolio-sub000/internal/fileutil"
	"github.com/theamazingmrb/portfolio-sub000/internal/hints"
	"github.com/theamazingmrb/portfolio-sub000/internal/logging"
	"github.com/theamazingmrb/portfolio-sub000/internal/pipeline"
)

// app bundles what every command needs once flags are parsed.
type app struct {
	cfg    *config.Config
	logger logging.Logger
	repo   *portfolio.Repository
}

// loadConfig resolves configuration: flags > env > file > defaults.
// Without --config or PORTFOLIO_CONFIG, a missing portfolio.yaml is not an error.
func loadConfig(flags *commonFlags, env *Environment) (*config.Config, error) {
	ev := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	name := flags.config
	if name == "" {
		name = ev.ConfigPath
	}

	var cfg *config.Config
	var err error
	if name != "" {
		cfg, err = config.LoadConfig(name)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound([]string{name}))
		}
	} else {
		cfg, err = config.LoadConfig(config.DefaultName)
		if errors.Is(err, config.ErrConfigNotFound) {
			cfg, err = config.DefaultConfig(), nil
		}
	}
	if err != nil {
		return nil, withThemeHint(err)
	}

	applyEnvConfig(ev, cfg)
	flags.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, withThemeHint(err)
	}
	return cfg, nil
}

// withThemeHint lists the available styles when err is about code.theme.
func withThemeHint(err error) error {
	if errors.Is(err, config.ErrInvalidValue) && strings.Contains(err.Error(), "code.theme") {
		return fmt.Errorf("%w%s", err, hints.ForCodeTheme(pipeline.CodeThemes()))
	}
	return err
}

// apply overlays explicitly set flags on cfg.
func (f *commonFlags) apply(cfg *config.Config) {
	if f.content != "" {
		cfg.Content.Dir = f.content
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.quiet {
		cfg.Log.Level = "error"
	}
}

// newApp loads configuration and opens the content directory.
func newApp(flags *commonFlags, env *Environment) (*app, error) {
	cfg, err := loadConfig(flags, env)
	if err != nil {
		return nil, err
	}

	if !fileutil.DirExists(cfg.Content.Dir) {
		return nil, fmt.Errorf("%w: %s is not a directory%s",
			portfolio.ErrContentUnreadable, cfg.Content.Dir, hints.ForContentDir())
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, env.Stderr)
	repo := portfolio.Open(cfg.Content.Dir, repositoryOptions(cfg, logger)...)
	return &app{cfg: cfg, logger: logger, repo: repo}, nil
}

// repositoryOptions maps configuration onto repository options.
func repositoryOptions(cfg *config.Config, logger logging.Logger) []portfolio.Option {
	rt := cfg.ReadingTime
	return []portfolio.Option{
		portfolio.WithLogger(logger),
		portfolio.WithExcerptLength(cfg.Excerpt.MaxLength),
		portfolio.WithReadingOptions(portfolio.ReadingOptions{
			WordsPerMinute:   rt.WordsPerMinute,
			CodeBlockSeconds: rt.CodeBlockSeconds,
			ImageSeconds:     rt.ImageSeconds,
			MinMinutes:       rt.MinMinutes,
		}),
		portfolio.WithDefaults(portfolio.Defaults{
			Category:    cfg.Defaults.Category,
			CoverImage:  cfg.Defaults.CoverImage,
			Author:      cfg.Defaults.Author,
			AuthorImage: cfg.Defaults.AuthorImage,
		}),
		portfolio.WithTOCOptions(portfolio.TOCOptions{
			MinDepth: cfg.TOC.MinDepth,
			MaxDepth: cfg.TOC.MaxDepth,
			Numbered: cfg.TOC.Numbered,
			Title:    cfg.TOC.Title,
		}),
		portfolio.WithCodeTheme(cfg.Code.Theme),
		portfolio.WithAssetBaseURL(cfg.Content.AssetBaseURL),
	}
}
