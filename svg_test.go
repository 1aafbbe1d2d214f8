package main

import (
	"errors"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestLoadDocument(t *testing.T) {
	path := writeFile(t, t.TempDir(), "logo.svg", testSVG)

	doc, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("Failed to load document: %v", err)
	}
	if w, h := doc.Size(); w != 24 || h != 24 {
		t.Errorf("Expected intrinsic size 24x24, got %vx%v", w, h)
	}
}

func TestLoadDocumentParseErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "missing.svg")},
		{"malformed xml", writeFile(t, dir, "broken.svg", `<svg xmlns="http://www.w3.org/2000/svg"><g></svg>`)},
		{"empty file", writeFile(t, dir, "empty.svg", "")},
		{"plain text", writeFile(t, dir, "text.svg", "not an svg at all")},
		{"wrong root", writeFile(t, dir, "html.svg", `<html><body/></html>`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadDocument(tt.path)
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Expected ParseError, got %v", err)
			}
			if perr.Path != tt.path {
				t.Errorf("Expected error path %s, got %s", tt.path, perr.Path)
			}
		})
	}
}

func TestResizeEveryCatalogEntry(t *testing.T) {
	path := writeFile(t, t.TempDir(), "logo.svg", testSVG)

	for _, p := range Platforms {
		for _, s := range Catalog(p) {
			resized, err := Resize(path, s.Width, s.Height)
			if err != nil {
				t.Fatalf("%s %s: resize failed: %v", p, s.Label, err)
			}
			if resized.Width() != s.Width || resized.Height() != s.Height {
				t.Errorf("%s %s: expected %dx%d, got %dx%d", p, s.Label, s.Width, s.Height, resized.Width(), resized.Height())
			}
			if got := resized.attr("width"); got != strconv.Itoa(s.Width) {
				t.Errorf("%s %s: expected width attribute %d, got %q", p, s.Label, s.Width, got)
			}
			if got := resized.attr("height"); got != strconv.Itoa(s.Height) {
				t.Errorf("%s %s: expected height attribute %d, got %q", p, s.Label, s.Height, got)
			}
		}
	}
}

func TestResizedLeavesOtherContentAlone(t *testing.T) {
	path := writeFile(t, t.TempDir(), "logo.svg", testSVG)
	doc, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("Failed to load document: %v", err)
	}

	resized := doc.Resized(300, 300)
	if got := resized.attr("viewBox"); got != "0 0 24 24" {
		t.Errorf("viewBox should be untouched, got %q", got)
	}

	data, err := resized.Bytes()
	if err != nil {
		t.Fatalf("Failed to serialize: %v", err)
	}
	out := string(data)
	for _, want := range []string{`<rect x="2" y="2" width="20" height="20" fill="#ff0000"/>`, `<title>logo</title>`, `xmlns:xlink=`} {
		if !strings.Contains(out, want) {
			t.Errorf("Serialized document lost %q:\n%s", want, out)
		}
	}

	// the source document is not modified by resizing
	again := doc.Resized(24, 24)
	if again.attr("width") != "24" {
		t.Errorf("Expected width 24 on a fresh copy, got %q", again.attr("width"))
	}
}

func TestResizedIsDeterministic(t *testing.T) {
	path := writeFile(t, t.TempDir(), "logo.svg", testSVG)

	a, err := Resize(path, 48, 48)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	b, err := Resize(path, 48, 48)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}

	da, _ := a.Bytes()
	db, _ := b.Bytes()
	if string(da) != string(db) {
		t.Error("Resizing the same input twice should produce the same document")
	}
}

func TestIntrinsicSizeFallbacks(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name  string
		svg   string
		wantW float64
		wantH float64
	}{
		{"viewBox with commas", `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0,0,32,16"/>`, 32, 16},
		{"px attributes", `<svg xmlns="http://www.w3.org/2000/svg" width="10px" height="20px"/>`, 10, 20},
		{"declared size wins over viewBox", `<svg xmlns="http://www.w3.org/2000/svg" width="48" height="48" viewBox="0 0 24 24"/>`, 48, 48},
		{"percent falls back to viewBox", `<svg xmlns="http://www.w3.org/2000/svg" width="100%" height="100%" viewBox="0 0 16 8"/>`, 16, 8},
		{"percent attributes", `<svg xmlns="http://www.w3.org/2000/svg" width="100%" height="100%"/>`, 0, 0},
		{"nothing", `<svg xmlns="http://www.w3.org/2000/svg"/>`, 0, 0},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, "in"+strconv.Itoa(i)+".svg", tt.svg)
			doc, err := LoadDocument(path)
			if err != nil {
				t.Fatalf("Failed to load document: %v", err)
			}
			if w, h := doc.Size(); w != tt.wantW || h != tt.wantH {
				t.Errorf("Expected %vx%v, got %vx%v", tt.wantW, tt.wantH, w, h)
			}
		})
	}
}
