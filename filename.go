package main

import (
	"path/filepath"
	"strings"
)

// AmendFileName decorates base with the size label. The result is relative
// to the platform's output directory.
func AmendFileName(base string, s SizeSpec) string {
	if s.Attach == Prepend {
		return s.AttachString() + base
	}

	stem, ext := splitExt(base)
	if ext == "" {
		return stem + s.AttachString()
	}
	return stem + s.AttachString() + "." + ext
}

// PNGPathFor returns the sibling .png path of an exported SVG.
func PNGPathFor(svgPath string) string {
	dir, name := filepath.Split(svgPath)
	stem, _ := splitExt(name)
	return dir + stem + ".png"
}

func splitExt(name string) (stem, ext string) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return name, ""
	}
	return name[:i], name[i+1:]
}
