package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/siteindex"
	"github.com/fwojciec/siteindex/fs"
	"github.com/fwojciec/siteindex/goquery"
	sislog "github.com/fwojciec/siteindex/slog"
)

// advisoryBytes is the artifact size above which the tool recommends a
// lower content cap. Beyond this the search page loads noticeably slowly.
const advisoryBytes = 5 * 1024 * 1024

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong. Every default
// matches the conventions of the sites this tool indexes, so a bare
// invocation from the site root needs no flags at all.
type CLI struct {
	MaxContent int    `short:"m" default:"3000" help:"Maximum characters of body text kept per page"`
	NavFile    string `default:"___left.htm" help:"Navigation document used to derive breadcrumbs"`
	Output     string `short:"o" default:"search.json" help:"Output filename, written under the site root"`
	Verbose    bool   `short:"v" help:"Enable per-file debug logging"`
	Path       string `arg:"" optional:"" default:"." help:"Site root directory (default: current directory)"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Kong's help flag prints usage and calls Exit; recording the call
	// instead of exiting lets help work for any argument shape.
	helpRequested := false

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("siteindex"),
		kong.Description("Build a client-side search index for a static HTML site"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { helpRequested = true }),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	_, perr := parser.Parse(args)
	if helpRequested {
		return nil
	}
	if perr != nil {
		return perr
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire dependencies
	extractor := goquery.NewExtractor(goquery.WithMaxContentLength(cli.MaxContent))
	var builder siteindex.IndexBuilder = &fs.Indexer{
		Extractor:      extractor,
		Logger:         logger,
		NavFilename:    cli.NavFile,
		OutputFilename: cli.Output,
	}
	builder = sislog.NewLoggingIndexBuilder(builder, logger)

	fmt.Fprintf(stdout, "Building search index in %s...\n\n", cli.Path)

	summary, err := builder.Build(ctx, cli.Path)
	if err != nil {
		return err
	}

	printSummary(stdout, cli, summary)
	return nil
}

// printSummary writes the human-readable run report.
func printSummary(w io.Writer, cli *CLI, s *siteindex.RunSummary) {
	rule := strings.Repeat("=", 50)

	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "  Pages indexed:        %d\n", s.Indexed)
	fmt.Fprintf(w, "  Files skipped:        %d\n", s.Skipped)
	fmt.Fprintf(w, "  Read failures:        %d\n", s.Errors)
	fmt.Fprintf(w, "  Breadcrumbs attached: %d\n", s.Breadcrumbs)
	if s.Duplicates > 0 {
		fmt.Fprintf(w, "  Duplicate pages:      %d\n", s.Duplicates)
	}
	fmt.Fprintf(w, "  %s: %s\n", cli.Output, siteindex.FormatBytes(s.OutputBytes))
	fmt.Fprintln(w, rule)

	if s.OutputBytes > advisoryBytes {
		fmt.Fprintf(w, "\nWarning: %s exceeds 5 MB and may load slowly in the browser.\n", cli.Output)
		fmt.Fprintf(w, "Consider lowering --max-content (currently %d).\n", cli.MaxContent)
	}

	fmt.Fprintf(w, "\nDone. Upload %s together with the search page.\n", cli.Output)
}
