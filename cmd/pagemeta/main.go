// Command pagemeta extracts structured metadata from HTML documents and
// prints it as JSON or text. Markup comes from file arguments or stdin;
// fetching pages is out of scope.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/pagemeta/pagemeta"
	"github.com/pagemeta/pagemeta/pipeline"
	pmslog "github.com/pagemeta/pagemeta/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read when no file arguments are given.
	Stdin io.Reader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	BaseURL     string   `short:"u" help:"Base URL used to resolve relative image and URL candidates"`
	Techniques  []string `short:"t" default:"opengraph,twittercard,jsonld,metatags,semantic" help:"Ordered technique identifiers (priority order)"`
	Format      string   `short:"f" enum:"json,text" default:"json" help:"Output format"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent file limit"`
	Verbose     bool     `short:"v" help:"Log extraction details to stderr"`
	List        bool     `help:"List available techniques and exit"`
	Files       []string `arg:"" optional:"" help:"HTML files to process (stdin when omitted)"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagemeta"),
		kong.Description("Extract structured metadata (title, description, image, URL) from HTML documents"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.List {
		for _, name := range pipeline.DefaultRegistry().Names() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	extractor := newExtractor(cli, stderr)

	cmd := &ExtractCmd{
		BaseURL:     cli.BaseURL,
		Format:      cli.Format,
		Concurrency: cli.Concurrency,
		Files:       cli.Files,
	}

	return cmd.Run(&Dependencies{
		Ctx:       ctx,
		Extractor: extractor,
		Stdin:     m.Stdin,
		Stdout:    stdout,
		Stderr:    stderr,
	})
}

// newExtractor wires the pipeline, wrapping it with the logging decorator
// in verbose mode.
func newExtractor(cli *CLI, stderr io.Writer) pagemeta.Extractor {
	pipe := pipeline.New(pipeline.WithTechniques(cli.Techniques...))
	if !cli.Verbose {
		return pipe
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return pmslog.NewLoggingExtractor(pipe, logger)
}
