// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package toolchain

import (
	"context"
	"regexp"
	"strconv"

	"github.com/pdiddy/svgpages/internal/ctxlog"
)

var inkscapeVersionRe = regexp.MustCompile(`Inkscape\s+(\d+)\.(\d+)`)

// Inkscape renders SVG files to single-page PDFs. Inkscape 1.0 replaced the
// --export-pdf option with --export-type/--export-filename, so the argument
// form is chosen from the detected version.
type Inkscape struct {
	bin        string
	version    string
	exportArgs func(svgPath, pdfPath string) []string
	exec       executor
}

func modernExportArgs(svgPath, pdfPath string) []string {
	return []string{svgPath, "--export-type=pdf", "--export-filename=" + pdfPath}
}

func legacyExportArgs(svgPath, pdfPath string) []string {
	return []string{svgPath, "--export-pdf=" + pdfPath}
}

// Name returns the binary used to render.
func (i *Inkscape) Name() string { return i.bin }

// Version returns the detected version ("1.2"), or "" when unknown.
func (i *Inkscape) Version() string { return i.version }

// Rasterize renders the SVG at svgPath to a PDF at pdfPath.
func (i *Inkscape) Rasterize(ctx context.Context, svgPath, pdfPath string) error {
	_, err := run(ctx, i.exec, i.bin, i.exportArgs(svgPath, pdfPath)...)
	return err
}

// DetectInkscape locates bin on PATH and picks the export arguments matching
// its version. Unrecognised version output falls back to the 1.x form.
func DetectInkscape(ctx context.Context, bin string) (*Inkscape, error) {
	return detectInkscape(ctx, defaultExec, bin)
}

func detectInkscape(ctx context.Context, ex executor, bin string) (*Inkscape, error) {
	if _, err := lookPath(ex, bin); err != nil {
		return nil, err
	}

	out, err := run(ctx, ex, bin, "--version")
	if err != nil {
		return nil, err
	}

	ink := &Inkscape{bin: bin, exportArgs: modernExportArgs, exec: ex}

	m := inkscapeVersionRe.FindStringSubmatch(out)
	if m == nil {
		ctxlog.FromContext(ctx).Warn("unrecognised inkscape version output, assuming 1.x", "bin", bin, "output", tail(out))
		return ink, nil
	}
	ink.version = m[1] + "." + m[2]
	if major, _ := strconv.Atoi(m[1]); major < 1 {
		ink.exportArgs = legacyExportArgs
	}
	ctxlog.FromContext(ctx).Debug("detected inkscape", "bin", bin, "version", ink.version)
	return ink, nil
}
