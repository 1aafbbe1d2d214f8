package main

import "path/filepath"

type Platform int

const (
	IOS Platform = iota
	Android
)

var Platforms = []Platform{IOS, Android}

func (p Platform) String() string {
	switch p {
	case IOS:
		return "iOS"
	case Android:
		return "Android"
	}
	return "unknown"
}

// Label is the name of the platform's output directory.
func (p Platform) Label() string {
	switch p {
	case IOS:
		return "iOS Images"
	case Android:
		return "Android Images"
	}
	return ""
}

type AttachPosition int

const (
	Prepend AttachPosition = iota
	Append
)

const androidDrawablePrefix = "drawable-"

type SizeSpec struct {
	Label  string
	Width  int
	Height int
	Attach AttachPosition
}

// AttachString is the text that decorates the input file name. Prepended
// strings end in a separator so every density gets its own directory.
func (s SizeSpec) AttachString() string {
	if s.Attach == Prepend {
		return androidDrawablePrefix + s.Label + string(filepath.Separator)
	}
	return s.Label
}

var iosSizes = []SizeSpec{
	{"@1x", 100, 100, Append},
	{"@2x", 200, 200, Append},
	{"@3x", 300, 300, Append},
}

var androidSizes = []SizeSpec{
	{"ldpi", 36, 36, Prepend},      // ~120dpi
	{"mdpi", 48, 48, Prepend},      // ~160dpi, baseline
	{"hdpi", 72, 72, Prepend},      // ~240dpi
	{"xhdpi", 96, 96, Prepend},     // ~320dpi
	{"xxhdpi", 144, 144, Prepend},  // ~480dpi
	{"xxxhdpi", 192, 192, Prepend}, // ~640dpi
	{"nodpi", 0, 0, Prepend},       // density independent, never scaled
}

// Catalog returns the ordered size table for p. The slice is a copy.
func Catalog(p Platform) []SizeSpec {
	var src []SizeSpec
	switch p {
	case IOS:
		src = iosSizes
	case Android:
		src = androidSizes
	default:
		return nil
	}
	out := make([]SizeSpec, len(src))
	copy(out, src)
	return out
}
