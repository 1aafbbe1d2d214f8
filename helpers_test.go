package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/beevik/etree"
)

const testSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="24" height="24" viewBox="0 0 24 24">
  <title>logo</title>
  <rect x="2" y="2" width="20" height="20" fill="#ff0000"/>
  <path d="M4 12 L12 4 L20 12 Z" fill="#0000ff"/>
</svg>
`

// writeFile creates dir/name with content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

func rootAttrs(t *testing.T, path string) (width, height string) {
	t.Helper()
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		t.Fatalf("Failed to re-parse %s: %v", path, err)
	}
	root := doc.Root()
	if root == nil {
		t.Fatalf("%s has no root element", path)
	}
	return root.SelectAttrValue("width", ""), root.SelectAttrValue("height", "")
}

func pngSize(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", path, err)
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("Failed to decode %s: %v", path, err)
	}
	return cfg.Width, cfg.Height
}
