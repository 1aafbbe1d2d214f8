package main

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

const svgRootTag = "svg"

// Document is a parsed source SVG. It is never mutated; Resized works on a
// deep copy.
type Document struct {
	tree   *etree.Document
	width  float64
	height float64
}

// ResizedDocument is an in-memory SVG whose root width and height have been
// overwritten. It lives until it is exported.
type ResizedDocument struct {
	tree   *etree.Document
	source *Document
	width  int
	height int
}

func LoadDocument(filePath string) (*Document, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, &ParseError{Path: filePath, Err: err}
	}

	tree := etree.NewDocument()
	if err := tree.ReadFromBytes(data); err != nil {
		return nil, &ParseError{Path: filePath, Err: err}
	}

	root := tree.Root()
	if root == nil {
		return nil, &ParseError{Path: filePath, Err: errors.New("no root element")}
	}
	if root.Tag != svgRootTag {
		return nil, &ParseError{Path: filePath, Err: errors.New("root element is <" + root.FullTag() + ">, not <svg>")}
	}

	w, h := intrinsicSize(root)
	return &Document{tree: tree, width: w, height: h}, nil
}

// Resize loads the SVG at filePath and returns a copy sized to width x height.
// Every call re-reads the file.
func Resize(filePath string, width, height int) (*ResizedDocument, error) {
	doc, err := LoadDocument(filePath)
	if err != nil {
		return nil, err
	}
	return doc.Resized(width, height), nil
}

// Size is the drawing's own size: the declared width and height, or the
// viewBox when those are missing or not in px. Zero when neither is usable.
func (d *Document) Size() (float64, float64) {
	return d.width, d.height
}

// Resized sets the root width and height attributes on a copy of d. The
// viewBox and all children are left alone.
func (d *Document) Resized(width, height int) *ResizedDocument {
	tree := d.tree.Copy()
	root := tree.Root()
	root.CreateAttr("width", strconv.Itoa(width))
	root.CreateAttr("height", strconv.Itoa(height))

	return &ResizedDocument{
		tree:   tree,
		source: d,
		width:  width,
		height: height,
	}
}

func (r *ResizedDocument) Width() int {
	return r.width
}

func (r *ResizedDocument) Height() int {
	return r.height
}

// Source is the document r was resized from.
func (r *ResizedDocument) Source() *Document {
	return r.source
}

func (r *ResizedDocument) attr(name string) string {
	return r.tree.Root().SelectAttrValue(name, "")
}

func (r *ResizedDocument) Bytes() ([]byte, error) {
	return r.tree.WriteToBytes()
}

func intrinsicSize(root *etree.Element) (float64, float64) {
	w := parseLength(root.SelectAttrValue("width", ""))
	h := parseLength(root.SelectAttrValue("height", ""))
	if w > 0 && h > 0 {
		return w, h
	}

	fields := strings.FieldsFunc(root.SelectAttrValue("viewBox", ""), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) == 4 {
		vw, errW := strconv.ParseFloat(fields[2], 64)
		vh, errH := strconv.ParseFloat(fields[3], 64)
		if errW == nil && errH == nil && vw > 0 && vh > 0 {
			return vw, vh
		}
	}
	return w, h
}

// parseLength accepts unitless and px lengths only.
func parseLength(s string) float64 {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
