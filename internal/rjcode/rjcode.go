// Package rjcode implements the RJ work-code naming contract: extracting
// codes from directory names, zero-padded formatting, and the on-disk
// cover image file names derived from a code.
package rjcode

import (
	"fmt"
	"regexp"
)

// Pattern matches the letters "RJ" followed by the numeric work code.
var pattern = regexp.MustCompile(`RJ(\d+)`)

// Variant names one of the stored cover image renditions.
type Variant string

const (
	// VariantMain is the full-size cover image.
	VariantMain Variant = "main"
	// VariantSam is the sample (watermarked) cover image.
	VariantSam Variant = "sam"
	// Variant240 is the 240x240 thumbnail.
	Variant240 Variant = "240x240"
	// Variant360 is the 360x360 thumbnail.
	Variant360 Variant = "360x360"
)

// Variants lists every stored cover rendition.
var Variants = []Variant{VariantMain, VariantSam, Variant240, Variant360}

// Match extracts the numeric work code from a directory name.
// It returns the digit sequence (without the "RJ" prefix) and true when the
// name contains a work code.
func Match(name string) (string, bool) {
	m := pattern.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Format zero-pads a numeric work ID to 6 digits, or 8 digits for IDs of
// 1,000,000 and above.
func Format(id int) string {
	if id >= 1000000 {
		return fmt.Sprintf("%08d", id)
	}
	return fmt.Sprintf("%06d", id)
}

// CoverName returns the on-disk file name for one cover rendition of a work.
func CoverName(id int, variant Variant) string {
	return fmt.Sprintf("%s_img_%s.jpg", Format(id), variant)
}
