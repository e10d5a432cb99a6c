package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pagemeta/pagemeta"
	"golang.org/x/sync/errgroup"
)

// Dependencies holds the wired collaborators for a command run.
type Dependencies struct {
	Ctx       context.Context
	Extractor pagemeta.Extractor
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
}

// ExtractCmd extracts metadata from the given files, or from stdin when no
// files are given.
type ExtractCmd struct {
	BaseURL     string
	Format      string
	Concurrency int
	Files       []string
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	if len(c.Files) == 0 {
		return c.runStdin(deps)
	}
	return c.runFiles(deps)
}

func (c *ExtractCmd) runStdin(deps *Dependencies) error {
	markup, err := io.ReadAll(deps.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}

	result, err := deps.Extractor.Extract(string(markup), c.BaseURL)
	if err != nil {
		return err
	}

	return c.write(deps.Stdout, newReport("", result))
}

// runFiles extracts each file concurrently but prints reports in argument
// order so the output is deterministic.
func (c *ExtractCmd) runFiles(deps *Dependencies) error {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	reports := make([]report, len(c.Files))

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)
	for i, file := range c.Files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			markup, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", file, err)
			}

			result, err := deps.Extractor.Extract(string(markup), c.BaseURL)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}

			reports[i] = newReport(file, result)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, rep := range reports {
		if err := c.write(deps.Stdout, rep); err != nil {
			return err
		}
	}
	return nil
}

func (c *ExtractCmd) write(w io.Writer, rep report) error {
	if c.Format == "text" {
		return writeText(w, rep)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// report is the serializable shape of one extraction.
type report struct {
	File        string                         `json:"file,omitempty"`
	SourceURL   string                         `json:"source_url,omitempty"`
	Title       string                         `json:"title,omitempty"`
	Description string                         `json:"description,omitempty"`
	Image       string                         `json:"image,omitempty"`
	URL         string                         `json:"url,omitempty"`
	Categories  map[pagemeta.Category][]string `json:"categories"`
}

func newReport(file string, result *pagemeta.Result) report {
	rep := report{
		File:       file,
		SourceURL:  result.SourceURL(),
		Categories: result.Map(),
	}
	rep.Title, _ = result.Title()
	rep.Description, _ = result.Description()
	rep.Image, _ = result.Image()
	rep.URL, _ = result.URL()
	return rep
}

func writeText(w io.Writer, rep report) error {
	if rep.File != "" {
		fmt.Fprintf(w, "# %s\n", rep.File)
	}
	if rep.Title != "" {
		fmt.Fprintf(w, "title: %s\n", rep.Title)
	}
	if rep.Description != "" {
		fmt.Fprintf(w, "description: %s\n", rep.Description)
	}
	if rep.Image != "" {
		fmt.Fprintf(w, "image: %s\n", rep.Image)
	}
	if rep.URL != "" {
		fmt.Fprintf(w, "url: %s\n", rep.URL)
	}
	for _, category := range sortedCategories(rep.Categories) {
		fmt.Fprintf(w, "%s: %d candidate(s)\n", category, len(rep.Categories[category]))
	}
	_, err := fmt.Fprintln(w)
	return err
}

func sortedCategories(categories map[pagemeta.Category][]string) []pagemeta.Category {
	names := make([]pagemeta.Category, 0, len(categories))
	for category := range categories {
		names = append(names, category)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
