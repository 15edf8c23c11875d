package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/theamazingmrb/portfolio-sub000/internal/dateutil"
	"github.com/theamazingmrb/portfolio-sub000/internal/fileutil"
	"github.com/theamazingmrb/portfolio-sub000/internal/logging"
	"github.com/theamazingmrb/portfolio-sub000/internal/pipeline"
	"github.com/theamazingmrb/portfolio-sub000/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrOutOfRange      = errors.New("value out of range")
	ErrInvalidValue    = errors.New("invalid config value")
)

// DefaultName is the config name looked up when none is given.
const DefaultName = "portfolio"

// Field length limits.
const (
	MaxPathLength     = 4096
	MaxURLLength      = 2048 // Browser limit
	MaxNameLength     = 100
	MaxTextLength     = 500
	MaxThemeLength    = 50
	MaxLanguageLength = 35 // BCP 47 tags stay well under this
	MaxAddrLength     = 255
	MaxOrigins        = 50
)

// Numeric limits.
const (
	MaxExcerptLength   = 10000
	MaxWordsPerMinute  = 2000
	MaxBonusSeconds    = 600
	MaxMinMinutes      = 60
	MaxServerTimeout   = 10 * time.Minute
	DefaultContentDir  = "content/blog"
	DefaultServerAddr  = ":8080"
	DefaultReadTimeout = 10 * time.Second
)

// Config holds everything the CLI and HTTP server need.
type Config struct {
	Content     ContentConfig     `yaml:"content"`
	Excerpt     ExcerptConfig     `yaml:"excerpt"`
	ReadingTime ReadingTimeConfig `yaml:"readingTime"`
	Defaults    DefaultsConfig    `yaml:"defaults"`
	TOC         TOCConfig         `yaml:"toc"`
	Code        CodeConfig        `yaml:"code"`
	Server      ServerConfig      `yaml:"server"`
	Feed        FeedConfig        `yaml:"feed"`
	Log         LogConfig         `yaml:"log"`
}

// ContentConfig locates the posts.
type ContentConfig struct {
	Dir          string `yaml:"dir"`
	AssetBaseURL string `yaml:"assetBaseURL"` // Empty = leave relative paths alone
}

// ExcerptConfig caps derived excerpts.
type ExcerptConfig struct {
	MaxLength int `yaml:"maxLength"` // Characters, 0 = 240
}

// ReadingTimeConfig tunes the reading-time estimate. Zero values use defaults.
type ReadingTimeConfig struct {
	WordsPerMinute   int `yaml:"wordsPerMinute"`
	CodeBlockSeconds int `yaml:"codeBlockSeconds"`
	ImageSeconds     int `yaml:"imageSeconds"`
	MinMinutes       int `yaml:"minMinutes"`
}

// DefaultsConfig fills optional front-matter keys.
type DefaultsConfig struct {
	Category    string `yaml:"category"`
	CoverImage  string `yaml:"coverImage"`
	Author      string `yaml:"author"`
	AuthorImage string `yaml:"authorImage"`
}

// TOCConfig selects the headings listed in the table of contents.
type TOCConfig struct {
	MinDepth int    `yaml:"minDepth"` // 1-6, default 2
	MaxDepth int    `yaml:"maxDepth"` // 1-6, default 3
	Numbered bool   `yaml:"numbered"`
	Title    string `yaml:"title"` // Empty = no title above the list
}

// CodeConfig styles code blocks.
type CodeConfig struct {
	Theme string `yaml:"theme"` // chroma style name, default "monokai"
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr           string        `yaml:"addr"`
	AllowedOrigins []string      `yaml:"allowedOrigins"` // Empty = allow all
	ReadTimeout    time.Duration `yaml:"readTimeout"`
	WriteTimeout   time.Duration `yaml:"writeTimeout"`
}

// FeedConfig describes the RSS channel.
type FeedConfig struct {
	Title       string `yaml:"title"`
	Link        string `yaml:"link"` // Site URL; item links are <link>/blog/<id>
	Description string `yaml:"description"`
	Language    string `yaml:"language"`
	DateFormat  string `yaml:"dateFormat"` // Used by "portfolio list"
}

// LogConfig configures the diagnostic logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// Validate checks lengths and ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("content.dir", c.Content.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateURL("content.assetBaseURL", c.Content.AssetBaseURL); err != nil {
		return err
	}

	if err := validateRange("excerpt.maxLength", c.Excerpt.MaxLength, 0, MaxExcerptLength); err != nil {
		return err
	}

	rt := c.ReadingTime
	if err := validateRange("readingTime.wordsPerMinute", rt.WordsPerMinute, 0, MaxWordsPerMinute); err != nil {
		return err
	}
	if err := validateRange("readingTime.codeBlockSeconds", rt.CodeBlockSeconds, 0, MaxBonusSeconds); err != nil {
		return err
	}
	if err := validateRange("readingTime.imageSeconds", rt.ImageSeconds, 0, MaxBonusSeconds); err != nil {
		return err
	}
	if err := validateRange("readingTime.minMinutes", rt.MinMinutes, 0, MaxMinMinutes); err != nil {
		return err
	}

	// Validate defaults
	if err := validateFieldLength("defaults.category", c.Defaults.Category, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("defaults.coverImage", c.Defaults.CoverImage, MaxURLLength); err != nil {
		return err
	}
	if err := validateFieldLength("defaults.author", c.Defaults.Author, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("defaults.authorImage", c.Defaults.AuthorImage, MaxURLLength); err != nil {
		return err
	}

	// Validate TOC fields
	if err := validateFieldLength("toc.title", c.TOC.Title, MaxNameLength); err != nil {
		return err
	}
	if c.TOC.MinDepth != 0 {
		if err := validateRange("toc.minDepth", c.TOC.MinDepth, 1, 6); err != nil {
			return err
		}
	}
	if c.TOC.MaxDepth != 0 {
		if err := validateRange("toc.maxDepth", c.TOC.MaxDepth, 1, 6); err != nil {
			return err
		}
	}
	if c.TOC.MinDepth != 0 && c.TOC.MaxDepth != 0 && c.TOC.MinDepth > c.TOC.MaxDepth {
		return fmt.Errorf("%w: toc.minDepth (%d) exceeds toc.maxDepth (%d)", ErrOutOfRange, c.TOC.MinDepth, c.TOC.MaxDepth)
	}

	if err := validateFieldLength("code.theme", c.Code.Theme, MaxThemeLength); err != nil {
		return err
	}
	if c.Code.Theme != "" && !pipeline.KnownCodeTheme(c.Code.Theme) {
		return fmt.Errorf("%w: code.theme: unknown chroma style %q", ErrInvalidValue, c.Code.Theme)
	}

	if err := c.Server.validate(); err != nil {
		return err
	}
	if err := c.Feed.validate(); err != nil {
		return err
	}

	if c.Log.Level != "" && !logging.ValidLevel(c.Log.Level) {
		return fmt.Errorf("%w: log.level %q (must be debug, info, warn, or error)", ErrInvalidValue, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", logging.FormatText, logging.FormatJSON:
		// valid
	default:
		return fmt.Errorf("%w: log.format %q (must be text or json)", ErrInvalidValue, c.Log.Format)
	}

	return nil
}

func (s ServerConfig) validate() error {
	if err := validateFieldLength("server.addr", s.Addr, MaxAddrLength); err != nil {
		return err
	}
	if len(s.AllowedOrigins) > MaxOrigins {
		return fmt.Errorf("%w: server.allowedOrigins (%d entries, max %d)", ErrOutOfRange, len(s.AllowedOrigins), MaxOrigins)
	}
	for i, origin := range s.AllowedOrigins {
		if origin == "*" {
			continue
		}
		if err := validateURL(fmt.Sprintf("server.allowedOrigins[%d]", i), origin); err != nil {
			return err
		}
	}
	if s.ReadTimeout < 0 || s.ReadTimeout > MaxServerTimeout {
		return fmt.Errorf("%w: server.readTimeout must be between 0 and %s, got %s", ErrOutOfRange, MaxServerTimeout, s.ReadTimeout)
	}
	if s.WriteTimeout < 0 || s.WriteTimeout > MaxServerTimeout {
		return fmt.Errorf("%w: server.writeTimeout must be between 0 and %s, got %s", ErrOutOfRange, MaxServerTimeout, s.WriteTimeout)
	}
	return nil
}

func (f FeedConfig) validate() error {
	if err := validateFieldLength("feed.title", f.Title, MaxNameLength); err != nil {
		return err
	}
	if err := validateURL("feed.link", f.Link); err != nil {
		return err
	}
	if err := validateFieldLength("feed.description", f.Description, MaxTextLength); err != nil {
		return err
	}
	if err := validateFieldLength("feed.language", f.Language, MaxLanguageLength); err != nil {
		return err
	}
	if f.DateFormat != "" {
		if _, err := dateutil.ParseDateFormat(f.DateFormat); err != nil {
			return fmt.Errorf("%w: feed.dateFormat: %v", ErrInvalidValue, err)
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

func validateRange(fieldName string, value, lo, hi int) error {
	if value < lo || value > hi {
		return fmt.Errorf("%w: %s must be between %d and %d, got %d", ErrOutOfRange, fieldName, lo, hi, value)
	}
	return nil
}

// validateURL accepts an empty value or an absolute http(s) URL.
func validateURL(fieldName, value string) error {
	if value == "" {
		return nil
	}
	if err := validateFieldLength(fieldName, value, MaxURLLength); err != nil {
		return err
	}
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %s: %q is not an absolute http(s) URL", ErrInvalidValue, fieldName, value)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	return &Config{
		Content: ContentConfig{Dir: DefaultContentDir},
		TOC: TOCConfig{
			MinDepth: pipeline.DefaultTOCMinDepth,
			MaxDepth: pipeline.DefaultTOCMaxDepth,
		},
		Code: CodeConfig{Theme: pipeline.DefaultCodeTheme},
		Server: ServerConfig{
			Addr:         DefaultServerAddr,
			ReadTimeout:  DefaultReadTimeout,
			WriteTimeout: DefaultReadTimeout,
		},
		Feed: FeedConfig{
			Title:      "Blog",
			Language:   "en-us",
			DateFormat: dateutil.DefaultDateFormat,
		},
		Log: LogConfig{Level: logging.DefaultLevel, Format: logging.FormatText},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys absent from the file keep their DefaultConfig value.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/portfolio/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "portfolio", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
