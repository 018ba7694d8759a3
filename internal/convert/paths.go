// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsafePageID is returned for a page identifier that cannot be used as
// part of a file name inside the temp dir.
var ErrUnsafePageID = errors.New("page identifier is not a plain file name")

// Paths holds the files an export reads and writes.
type Paths struct {
	// TempSVG is rewritten for every page before rendering.
	TempSVG string

	// Output is the merged PDF.
	Output string

	tempDir string
	base    string
}

// NewPaths derives the export paths for input. The base name is the input
// file name without its extension. An empty output selects
// <inputDir>/<base>.pdf.
func NewPaths(input, tempDir, output string) Paths {
	name := filepath.Base(input)
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if output == "" {
		output = filepath.Join(filepath.Dir(input), base+".pdf")
	}
	return Paths{
		TempSVG: filepath.Join(tempDir, base+".tmp.svg"),
		Output:  output,
		tempDir: tempDir,
		base:    base,
	}
}

// PagePDF returns the per-page PDF path for the page identifier.
func (p Paths) PagePDF(pageID string) string {
	return filepath.Join(p.tempDir, p.base+"."+pageID+".pdf")
}

// CheckPageID reports whether the per-page PDF for pageID stays a plain file
// inside the temp dir.
func (p Paths) CheckPageID(pageID string) error {
	if strings.ContainsAny(pageID, `/\`) || !filepath.IsLocal(p.base+"."+pageID+".pdf") {
		return fmt.Errorf("%w: %q", ErrUnsafePageID, pageID)
	}
	return nil
}
