// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert exports the pages of a multi-page SVG drawing to one PDF.
// Each page is isolated into its own copy of the drawing, rendered by a
// Rasterizer, and the resulting single-page PDFs are joined by a Merger in
// page identifier order.
package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/svgpages/internal/ctxlog"
	"github.com/pdiddy/svgpages/internal/svgdoc"
	"github.com/pdiddy/svgpages/pkg/types"
)

// ErrNoPages is returned when the drawing holds no page groups.
var ErrNoPages = errors.New("no pages found")

// Rasterizer renders one SVG file to a single-page PDF. Inkscape implements
// it in production.
type Rasterizer interface {
	Rasterize(ctx context.Context, svgPath, pdfPath string) error
}

// Merger concatenates PDFs in the given order.
type Merger interface {
	// Name identifies the backend in progress output.
	Name() string
	Merge(ctx context.Context, inputs []string, outPath string) error
}

// Exporter runs the export pipeline. It processes pages one at a time.
type Exporter struct {
	cfg        types.ExportConfig
	rasterizer Rasterizer
	merger     Merger
	w          io.Writer

	// CountPages, when set, is used to check that the merged PDF has one
	// page per exported page.
	CountPages func(path string) (int, error)
}

// NewExporter validates cfg and returns an exporter that prints progress to w.
func NewExporter(cfg types.ExportConfig, r Rasterizer, m Merger, w io.Writer) (*Exporter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Exporter{cfg: cfg, rasterizer: r, merger: m, w: w}, nil
}

// Export renders every page of the drawing at input and merges them into
// one PDF. The temporary SVG and per-page PDFs are removed when Export
// returns unless the configuration keeps them.
func (e *Exporter) Export(ctx context.Context, input string) (*types.ExportResult, error) {
	doc, err := svgdoc.Load(input)
	if err != nil {
		return nil, err
	}

	for _, l := range doc.Layers() {
		fmt.Fprintf(e.w, "Found Layer: %s\n", l.Label)
	}

	pages, err := doc.Pages(e.cfg.Prefix)
	if err != nil {
		return nil, fmt.Errorf("discovering pages in %s: %w", input, err)
	}
	for _, p := range pages {
		fmt.Fprintf(e.w, "Found Page: %s\n", p.ID)
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("%w in %s (prefix %q)", ErrNoPages, input, e.cfg.Prefix)
	}

	paths := NewPaths(input, e.cfg.TempDir, e.cfg.Output)
	for _, p := range pages {
		if err := paths.CheckPageID(p.ID); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(e.cfg.TempDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}

	temps := []string{paths.TempSVG}
	if !e.cfg.KeepTemp {
		defer func() { removeAll(ctx, temps) }()
	}

	result := &types.ExportResult{Input: input, Output: paths.Output, Pages: pages}
	for _, p := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pdfPath := paths.PagePDF(p.ID)
		temps = append(temps, pdfPath)
		if err := e.renderPage(ctx, doc, p.ID, paths.TempSVG, pdfPath); err != nil {
			return nil, err
		}
		result.PagePDFs = append(result.PagePDFs, pdfPath)
	}

	if err := e.merger.Merge(ctx, result.PagePDFs, paths.Output); err != nil {
		return nil, fmt.Errorf("merging %d pages into %s: %w", len(result.PagePDFs), paths.Output, err)
	}
	fmt.Fprintf(e.w, "merged: %d pages -> %s (%s)\n", len(result.PagePDFs), paths.Output, e.merger.Name())

	if e.CountPages != nil {
		n, err := e.CountPages(paths.Output)
		if err != nil {
			return nil, err
		}
		if n != len(pages) {
			return nil, fmt.Errorf("%s has %d pages, want %d", paths.Output, n, len(pages))
		}
		result.PageCount = n
	}

	fmt.Fprintln(e.w, "export done!")
	return result, nil
}

// renderPage writes the isolated drawing for page to svgPath and renders it
// to pdfPath.
func (e *Exporter) renderPage(ctx context.Context, doc *svgdoc.Document, page, svgPath, pdfPath string) error {
	iso, err := doc.Isolate(e.cfg.Prefix, page)
	if err != nil {
		return err
	}
	if err := iso.WriteFile(svgPath); err != nil {
		return err
	}
	if err := e.rasterizer.Rasterize(ctx, svgPath, pdfPath); err != nil {
		return fmt.Errorf("rendering %s: %w", page, err)
	}

	info, err := os.Stat(pdfPath)
	if err != nil {
		return fmt.Errorf("rendering %s produced no output: %w", page, err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("rendering %s produced an empty file %s", page, pdfPath)
	}

	fmt.Fprintf(e.w, "rendered: %s -> %s\n", page, pdfPath)
	return nil
}

// removeAll deletes temporary files, ignoring ones that do not exist.
func removeAll(ctx context.Context, paths []string) {
	log := ctxlog.FromContext(ctx)
	for _, p := range paths {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Warn("could not remove temporary file", "path", p, "err", err)
		}
	}
}
