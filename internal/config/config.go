// Package config loads command line defaults from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/MorphisHe/textractdoc/export"
	"github.com/MorphisHe/textractdoc/text"
)

// Config holds the command line defaults read from the environment
type Config struct {
	// Reconstruction
	MinConfidence  float64
	MergeTolerance float64
	ParagraphGap   float64
	Normalize      string

	// Output
	Format string

	// Batch mode
	Workers int

	// Logging
	LogLevel  string
	LogFormat string
}

// LoadEnv reads variables from the given .env files, or ./.env when none
// are given, without overriding variables already set. A missing file is
// not an error.
func LoadEnv(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Load returns the configuration from the environment with defaults
// matching the library's.
func Load() Config {
	cfg := Config{
		MinConfidence:  envFloat("TEXTRACTDOC_MIN_CONFIDENCE", 95),
		MergeTolerance: envFloat("TEXTRACTDOC_MERGE_TOLERANCE", 0.01),
		ParagraphGap:   envFloat("TEXTRACTDOC_PARAGRAPH_GAP", 0.01),
		Normalize:      envOr("TEXTRACTDOC_NORMALIZE", "none"),

		Format: envOr("TEXTRACTDOC_FORMAT", "text"),

		Workers: envInt("TEXTRACTDOC_WORKERS", 4),

		LogLevel:  envOr("LOG_LEVEL", "info"),
		LogFormat: envOr("LOG_FORMAT", "text"),
	}

	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}

	return cfg
}

// Validate reports the first out-of-range number or unknown name
func (c Config) Validate() error {
	if c.MinConfidence < 0 || c.MinConfidence > 100 {
		return fmt.Errorf("min confidence %v outside 0-100", c.MinConfidence)
	}
	if c.MergeTolerance < 0 {
		return fmt.Errorf("merge tolerance %v is negative", c.MergeTolerance)
	}
	if c.ParagraphGap < 0 {
		return fmt.Errorf("paragraph gap %v is negative", c.ParagraphGap)
	}
	if _, err := c.Normalization(); err != nil {
		return err
	}
	if _, err := c.ExportFormat(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}

// Normalization parses Normalize
func (c Config) Normalization() (text.Form, error) {
	form, ok := text.ParseForm(c.Normalize)
	if !ok {
		return text.None, fmt.Errorf("unknown normalization %q", c.Normalize)
	}
	return form, nil
}

// ExportFormat parses Format
func (c Config) ExportFormat() (export.Format, error) {
	f, ok := export.ParseFormat(c.Format)
	if !ok {
		return export.FormatText, fmt.Errorf("unknown output format %q", c.Format)
	}
	return f, nil
}

// Level parses LogLevel
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return level, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
