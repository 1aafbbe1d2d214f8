package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

const DefaultJobs = 1

// EntryResult is the outcome of one catalog entry.
type EntryResult struct {
	Spec SizeSpec
	WriteResult
	Err error
}

// Report collects one result per catalog entry, in catalog order.
type Report struct {
	Platform  Platform
	OutputDir string
	Entries   []EntryResult
}

func (r *Report) Succeeded() int {
	n := 0
	for _, e := range r.Entries {
		if e.Err == nil {
			n++
		}
	}
	return n
}

func (r *Report) Failed() int {
	return len(r.Entries) - r.Succeeded()
}

func (r *Report) OK() bool {
	return r.Failed() == 0
}

type TransformerOption func(*Transformer)

func WithLogger(logger *log.Logger) TransformerOption {
	return func(t *Transformer) {
		t.logger = logger
	}
}

// WithJobs bounds how many catalog entries are exported at once.
func WithJobs(n int) TransformerOption {
	return func(t *Transformer) {
		if n < 1 {
			n = 1
		}
		t.jobs = n
	}
}

// Transformer resizes and exports one input SVG for every size in a
// platform's catalog.
type Transformer struct {
	platform   Platform
	inputPath  string
	outputRoot string
	exporter   *Exporter
	logger     *log.Logger
	jobs       int
}

func NewTransformer(platform Platform, inputPath, outputRoot string, exporter *Exporter, opts ...TransformerOption) *Transformer {
	t := &Transformer{
		platform:   platform,
		inputPath:  inputPath,
		outputRoot: outputRoot,
		exporter:   exporter,
		logger:     log.New(io.Discard, "", 0),
		jobs:       DefaultJobs,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Transformer) Platform() Platform {
	return t.platform
}

// OutputDir is <outputRoot>/<platform label>.
func (t *Transformer) OutputDir() string {
	return filepath.Join(t.outputRoot, t.platform.Label())
}

// Transform runs every catalog entry. The returned error is fatal for the
// platform (output directory or input document unusable); per-size failures
// are only recorded in the report.
func (t *Transformer) Transform(ctx context.Context, alsoRasterize bool) (*Report, error) {
	outputDir := t.OutputDir()
	if err := t.ensureOutputDir(outputDir); err != nil {
		return nil, err
	}

	source, err := LoadDocument(t.inputPath)
	if err != nil {
		return nil, err
	}

	sizes := Catalog(t.platform)
	report := &Report{
		Platform:  t.platform,
		OutputDir: outputDir,
		Entries:   make([]EntryResult, len(sizes)),
	}
	baseName := filepath.Base(t.inputPath)

	var g errgroup.Group
	g.SetLimit(t.jobs)
	for i, size := range sizes {
		if err := ctx.Err(); err != nil {
			report.Entries[i] = EntryResult{Spec: size, Err: err}
			continue
		}
		g.Go(func() error {
			report.Entries[i] = t.transformOne(ctx, source, outputDir, baseName, size, alsoRasterize)
			return nil
		})
	}
	_ = g.Wait()

	return report, nil
}

func (t *Transformer) transformOne(ctx context.Context, source *Document, outputDir, baseName string, size SizeSpec, alsoRasterize bool) EntryResult {
	if err := ctx.Err(); err != nil {
		return EntryResult{Spec: size, Err: err}
	}

	outputPath := filepath.Join(outputDir, AmendFileName(baseName, size))
	resized := source.Resized(size.Width, size.Height)

	res, err := t.exporter.ExportTo(resized, outputPath, alsoRasterize)
	if err != nil {
		t.logger.Printf("ERROR: %s file %s could not be resized to %dx%d: %v",
			t.platform.Label(), filepath.Base(outputPath), size.Width, size.Height, err)
		return EntryResult{Spec: size, WriteResult: res, Err: err}
	}

	t.logger.Printf("%s file %s resized to %dx%d & created @ %s.",
		t.platform.Label(), filepath.Base(res.SVGPath), size.Width, size.Height, res.SVGPath)
	if res.PNGPath != "" {
		t.logger.Printf("Created a png alternative @ %s", res.PNGPath)
	}
	return EntryResult{Spec: size, WriteResult: res}
}

func (t *Transformer) ensureOutputDir(dir string) error {
	if info, err := os.Stat(dir); err == nil {
		if !info.IsDir() {
			return fmt.Errorf("output path %s is not a directory", dir)
		}
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat output directory %s: %w", dir, err)
	}

	if err := os.MkdirAll(dir, DefaultDirPermissions); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	t.logger.Printf("Created directory @ %s to house the images.", dir)
	return nil
}
