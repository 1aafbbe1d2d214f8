package main

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// WriteResult lists the files written for one size. PNGPath is empty when
// rasterization was not requested or failed.
type WriteResult struct {
	SVGPath string
	PNGPath string
}

type ExporterOption func(*Exporter)

// WithErrorMode sets how the rasterizer treats SVG elements it cannot draw.
func WithErrorMode(mode oksvg.ErrorMode) ExporterOption {
	return func(e *Exporter) {
		e.errorMode = mode
	}
}

// Exporter writes resized documents to disk and renders their PNG siblings.
type Exporter struct {
	errorMode oksvg.ErrorMode
}

func NewExporter(opts ...ExporterOption) *Exporter {
	e := &Exporter{errorMode: oksvg.IgnoreErrorMode}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExportTo writes doc to outputPath, replacing any file already there, and
// renders <stem>.png next to it when alsoRasterize is set.
func (e *Exporter) ExportTo(doc *ResizedDocument, outputPath string, alsoRasterize bool) (WriteResult, error) {
	if err := removeExisting(outputPath); err != nil {
		return WriteResult{}, err
	}

	dir := filepath.Dir(outputPath)
	if err := os.Mkdir(dir, DefaultDirPermissions); err != nil && !errors.Is(err, fs.ErrExist) {
		return WriteResult{}, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := doc.Bytes()
	if err != nil {
		return WriteResult{}, fmt.Errorf("failed to serialize SVG: %w", err)
	}
	if err := os.WriteFile(outputPath, data, DefaultFilePermissions); err != nil {
		return WriteResult{}, fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	result := WriteResult{SVGPath: outputPath}
	if !alsoRasterize {
		return result, nil
	}

	width, height, err := rasterSize(doc)
	if err != nil {
		return result, &RasterizationError{Path: outputPath, Err: err}
	}
	img, err := e.rasterize(data, width, height)
	if err != nil {
		return result, &RasterizationError{Path: outputPath, Err: err}
	}

	pngPath := PNGPathFor(outputPath)
	if err := removeExisting(pngPath); err != nil {
		return result, err
	}
	if err := writePNG(pngPath, img); err != nil {
		return result, err
	}
	result.PNGPath = pngPath
	return result, nil
}

func (e *Exporter) rasterize(data []byte, width, height int) (img *image.RGBA, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("rasterizer panicked: %v", r)
		}
	}()

	svgIcon, err := oksvg.ReadIconStream(bytes.NewReader(data), e.errorMode)
	if err != nil {
		return nil, err
	}

	// Without a viewBox the drawing keeps its own coordinates, only the
	// canvas changes size.
	if svgIcon.ViewBox.W <= 0 || svgIcon.ViewBox.H <= 0 {
		svgIcon.ViewBox.W = float64(width)
		svgIcon.ViewBox.H = float64(height)
	}
	svgIcon.SetTarget(0, 0, float64(width), float64(height))

	img = image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	scanner.SetClip(img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)

	svgIcon.Draw(raster, 1.0)
	return img, nil
}

// rasterSize is the declared size, or the drawing's own size for
// unscaled (0x0) entries.
func rasterSize(doc *ResizedDocument) (int, int, error) {
	if doc.width > 0 && doc.height > 0 {
		return doc.width, doc.height, nil
	}
	iw, ih := doc.Source().Size()
	w := int(math.Ceil(iw))
	h := int(math.Ceil(ih))
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("document is %dx%d and has no intrinsic size to render at", doc.width, doc.height)
	}
	return w, h, nil
}

func writePNG(pngPath string, img image.Image) error {
	out, err := os.Create(pngPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", pngPath, err)
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		os.Remove(pngPath)
		return fmt.Errorf("failed to encode %s: %w", pngPath, err)
	}
	return out.Close()
}

func removeExisting(path string) error {
	err := os.Remove(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return &DuplicateFileError{Path: path, Err: err}
}
