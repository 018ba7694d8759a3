// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
	"os"
)

// DefaultPrefix marks a group as a page when its id starts with it.
const DefaultPrefix = "page_"

// MergeBackend identifies the tool that concatenates per-page PDFs.
type MergeBackend string

const (
	MergePdfunite MergeBackend = "pdfunite"
	MergePdfcpu   MergeBackend = "pdfcpu"
)

// ExportConfig holds settings for an export run. It is built once by the CLI
// and passed explicitly to the pipeline.
type ExportConfig struct {
	// Prefix identifies page groups (default "page_").
	Prefix string `json:"prefix" yaml:"prefix"`

	// TempDir holds the temporary SVG and the per-page PDFs (default os.TempDir()).
	TempDir string `json:"tmp_dir" yaml:"tmp_dir"`

	// Output overrides the merged PDF path. Empty means <inputDir>/<base>.pdf.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// Inkscape is the rasterizer binary name or path.
	Inkscape string `json:"inkscape" yaml:"inkscape"`

	// Merger selects the merge backend: pdfunite or pdfcpu.
	Merger MergeBackend `json:"merger" yaml:"merger"`

	// Pdfunite is the pdfunite binary name or path.
	Pdfunite string `json:"pdfunite" yaml:"pdfunite"`

	// KeepTemp leaves the temporary SVG and per-page PDFs in place.
	KeepTemp bool `json:"keep_temp" yaml:"keep_temp"`

	// Verify counts the pages of the merged PDF and fails on a mismatch.
	Verify bool `json:"verify" yaml:"verify"`
}

// DefaultExportConfig returns the configuration used when nothing is set.
func DefaultExportConfig() ExportConfig {
	return ExportConfig{
		Prefix:   DefaultPrefix,
		TempDir:  os.TempDir(),
		Inkscape: "inkscape",
		Merger:   MergePdfunite,
		Pdfunite: "pdfunite",
	}
}

// Validate reports configuration errors that would make every run fail or
// match every group.
func (c ExportConfig) Validate() error {
	if c.Prefix == "" {
		return errors.New("prefix must not be empty")
	}
	switch c.Merger {
	case MergePdfunite, MergePdfcpu:
	default:
		return fmt.Errorf("unknown merger %q: use %s or %s", c.Merger, MergePdfunite, MergePdfcpu)
	}
	if c.TempDir == "" {
		return errors.New("tmp dir must not be empty")
	}
	return nil
}
