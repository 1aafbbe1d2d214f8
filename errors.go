package main

import "fmt"

// ValidationError reports bad command-line input. Nothing has been written
// when it is returned.
type ValidationError struct {
	Msg   string
	Usage bool // caused by a missing flag
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// DuplicateFileError means an existing output file could not be removed.
type DuplicateFileError struct {
	Path string
	Err  error
}

func (e *DuplicateFileError) Error() string {
	return fmt.Sprintf("a file exists at %s already and could not be deleted: %v", e.Path, e.Err)
}

func (e *DuplicateFileError) Unwrap() error { return e.Err }

// ParseError means the input SVG could not be read or is not an SVG document.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse SVG %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

type RasterizationError struct {
	Path string
	Err  error
}

func (e *RasterizationError) Error() string {
	return fmt.Sprintf("failed to rasterize %s: %v", e.Path, e.Err)
}

func (e *RasterizationError) Unwrap() error { return e.Err }
