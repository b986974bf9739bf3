// Command textractdoc rebuilds documents from saved analysis responses.
//
// Usage:
//
//	textractdoc [flags] [file|dir|-]...
//
// Without -batch every input is one response of a single document, in the
// order given, and the result goes to stdout or -o. With -batch each input
// file is its own document, written to the -o directory with the output
// format's extension.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/MorphisHe/textractdoc"
	"github.com/MorphisHe/textractdoc/block"
	"github.com/MorphisHe/textractdoc/export"
	"github.com/MorphisHe/textractdoc/format"
	"github.com/MorphisHe/textractdoc/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// options are the parsed flags layered over the environment configuration
type options struct {
	cfg    config.Config
	name   string
	pages  []int
	output string
	batch  bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(stderr, "textractdoc: load .env: %v\n", err)
		return 2
	}

	opts, inputs, err := parseFlags(args, config.Load(), stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "textractdoc: %v\n", err)
		return 2
	}

	log := newLogger(stderr, opts.cfg)
	inputs, err = expandInputs(inputs)
	if err != nil {
		log.Error("invalid input", "error", err)
		return 2
	}

	if opts.batch {
		err = runBatch(context.Background(), opts, inputs, log)
	} else {
		err = runSingle(opts, inputs, stdin, stdout, log)
	}
	if err != nil {
		log.Error("build failed", "error", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, cfg config.Config, stderr io.Writer) (options, []string, error) {
	opts := options{cfg: cfg}
	var pages string

	fs := flag.NewFlagSet("textractdoc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.cfg.Format, "format", cfg.Format, "output format: text, markdown, html or json")
	fs.StringVar(&opts.name, "name", "", "document name (defaults to the first input's base name)")
	fs.StringVar(&pages, "pages", "", `pages to build, e.g. "1,3-5" (default all)`)
	fs.StringVar(&opts.output, "o", "", "output file, or output directory with -batch")
	fs.BoolVar(&opts.batch, "batch", false, "treat each input file as a separate document")
	fs.IntVar(&opts.cfg.Workers, "workers", cfg.Workers, "documents built concurrently with -batch")
	fs.Float64Var(&opts.cfg.MinConfidence, "min-confidence", cfg.MinConfidence, "minimum word confidence (0-100)")
	fs.Float64Var(&opts.cfg.MergeTolerance, "merge-tolerance", cfg.MergeTolerance, "largest gap between fragments of one line")
	fs.Float64Var(&opts.cfg.ParagraphGap, "paragraph-gap", cfg.ParagraphGap, "vertical gap that starts a paragraph")
	fs.StringVar(&opts.cfg.Normalize, "normalize", cfg.Normalize, "unicode normalization: none, nfc or nfkc")
	fs.StringVar(&opts.cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&opts.cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json")

	if err := fs.Parse(args); err != nil {
		return opts, nil, err
	}
	if err := opts.cfg.Validate(); err != nil {
		return opts, nil, err
	}
	if opts.cfg.Workers <= 0 {
		return opts, nil, fmt.Errorf("workers must be positive, got %d", opts.cfg.Workers)
	}
	if opts.batch && opts.output == "" {
		return opts, nil, errors.New("-batch needs an output directory (-o)")
	}

	var err error
	if opts.pages, err = parsePages(pages); err != nil {
		return opts, nil, err
	}
	return opts, fs.Args(), nil
}

// parsePages parses a comma separated list of page numbers and inclusive
// ranges
func parsePages(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var pages []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		lo, hi, isRange := strings.Cut(part, "-")
		start, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, fmt.Errorf("invalid page %q", part)
		}
		end := start
		if isRange {
			if end, err = strconv.Atoi(strings.TrimSpace(hi)); err != nil || end < start {
				return nil, fmt.Errorf("invalid page range %q", part)
			}
		}
		for p := start; p <= end; p++ {
			pages = append(pages, p)
		}
	}
	return pages, nil
}

// expandInputs replaces each directory by the response files it holds,
// sorted by name
func expandInputs(inputs []string) ([]string, error) {
	var out []string
	for _, in := range inputs {
		if in == "-" {
			out = append(out, in)
			continue
		}
		info, err := os.Stat(in)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			out = append(out, in)
			continue
		}
		entries, err := os.ReadDir(in)
		if err != nil {
			return nil, err
		}
		var files []string
		for _, e := range entries {
			if !e.IsDir() && format.DetectFilename(e.Name()) != format.Unknown {
				files = append(files, filepath.Join(in, e.Name()))
			}
		}
		sort.Strings(files)
		out = append(out, files...)
	}
	return out, nil
}

func newLogger(w io.Writer, cfg config.Config) *slog.Logger {
	level, _ := cfg.Level()
	handlerOpts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

// configure applies the reconstruction settings to ext
func configure(ext *textractdoc.Extractor, opts options, log *slog.Logger) *textractdoc.Extractor {
	form, _ := opts.cfg.Normalization()
	ext = ext.
		MinWordConfidence(opts.cfg.MinConfidence).
		MergeTolerance(opts.cfg.MergeTolerance).
		ParagraphGap(opts.cfg.ParagraphGap).
		Normalize(form).
		Logger(log)
	if len(opts.pages) > 0 {
		ext = ext.Pages(opts.pages...)
	}
	return ext
}

func runSingle(opts options, inputs []string, stdin io.Reader, stdout io.Writer, log *slog.Logger) error {
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	var responses []block.Response
	for _, in := range inputs {
		got, err := readResponses(in, stdin)
		if err != nil {
			return err
		}
		responses = append(responses, got...)
	}

	name := opts.name
	if name == "" && inputs[0] != "-" {
		name = baseName(inputs[0])
	}
	f, _ := opts.cfg.ExportFormat()
	ext := configure(textractdoc.FromResponses(responses...).Name(name), opts, log)

	w := stdout
	if opts.output != "" {
		file, err := os.Create(opts.output)
		if err != nil {
			return err
		}
		defer file.Close()
		w = file
	}

	_, err := ext.Export(w, f)
	return err
}

func runBatch(ctx context.Context, opts options, inputs []string, log *slog.Logger) error {
	if len(inputs) == 0 {
		return errors.New("no input files")
	}
	for _, in := range inputs {
		if in == "-" {
			return errors.New("stdin cannot be used with -batch")
		}
	}
	if err := os.MkdirAll(opts.output, 0o755); err != nil {
		return err
	}
	f, _ := opts.cfg.ExportFormat()

	targets := make([]string, len(inputs))
	sources := make(map[string]string, len(inputs))
	for i, in := range inputs {
		targets[i] = filepath.Join(opts.output, baseName(in)+f.FileExtension())
		if prev, ok := sources[targets[i]]; ok {
			return fmt.Errorf("%s and %s would both be written to %s", prev, in, targets[i])
		}
		sources[targets[i]] = in
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.cfg.Workers)
	for i, in := range inputs {
		in, target := in, targets[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ext := configure(textractdoc.Open(in), opts, log.With("file", in))
			if err := writeDocument(ext, target, f); err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}
			log.Info("document written", "file", in, "output", target)
			return nil
		})
	}
	return g.Wait()
}

func writeDocument(ext *textractdoc.Extractor, target string, f export.Format) error {
	file, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := ext.Export(file, f); err != nil {
		file.Close()
		os.Remove(target)
		return err
	}
	return file.Close()
}

func readResponses(in string, stdin io.Reader) ([]block.Response, error) {
	if in == "-" {
		return block.Decode(stdin)
	}
	file, err := os.Open(in)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	responses, err := block.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", in, err)
	}
	return responses, nil
}

func baseName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
