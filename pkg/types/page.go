// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the svgpages pipeline:
// the layers and pages found in a drawing, the export configuration, and
// the outcome of an export run.
package types

// Layer is a top-level Inkscape layer of a drawing.
type Layer struct {
	// ID is the layer's id attribute (may be empty).
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// Label is the inkscape:label attribute shown in the Inkscape UI.
	Label string `json:"label" yaml:"label"`
}

// Page is a group whose identifier starts with the page prefix. Each page
// becomes one page of the merged PDF.
type Page struct {
	// ID is the group identifier (e.g. "page_intro").
	ID string `json:"id" yaml:"id"`

	// Layer is the label of the layer the page was found under.
	Layer string `json:"layer" yaml:"layer"`
}

// PageIDs returns the identifiers of pages, preserving order.
func PageIDs(pages []Page) []string {
	ids := make([]string, len(pages))
	for i, p := range pages {
		ids[i] = p.ID
	}
	return ids
}

// ExportResult describes a completed export.
type ExportResult struct {
	// Input is the source SVG path.
	Input string `json:"input" yaml:"input"`

	// Output is the merged PDF path.
	Output string `json:"output" yaml:"output"`

	// Pages lists the exported pages in output order.
	Pages []Page `json:"pages" yaml:"pages"`

	// PagePDFs lists the per-page PDFs in merge order. They are removed after
	// the run unless temporary files are kept.
	PagePDFs []string `json:"page_pdfs" yaml:"page_pdfs"`

	// PageCount is the page count of the merged PDF when verification ran,
	// zero otherwise.
	PageCount int `json:"page_count,omitempty" yaml:"page_count,omitempty"`
}
