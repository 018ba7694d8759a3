// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package toolchain

import (
	"context"
	"errors"
)

// Pdfunite merges PDFs with poppler's pdfunite.
type Pdfunite struct {
	bin  string
	exec executor
}

// NewPdfunite locates bin on PATH.
func NewPdfunite(bin string) (*Pdfunite, error) {
	return newPdfunite(defaultExec, bin)
}

func newPdfunite(ex executor, bin string) (*Pdfunite, error) {
	if _, err := lookPath(ex, bin); err != nil {
		return nil, err
	}
	return &Pdfunite{bin: bin, exec: ex}, nil
}

// Name returns the binary used to merge.
func (p *Pdfunite) Name() string { return p.bin }

// Merge writes the pages of inputs, in order, to outPath.
func (p *Pdfunite) Merge(ctx context.Context, inputs []string, outPath string) error {
	if len(inputs) == 0 {
		return errors.New("pdfunite: no input files")
	}
	args := make([]string, 0, len(inputs)+1)
	args = append(args, inputs...)
	args = append(args, outPath)
	_, err := run(ctx, p.exec, p.bin, args...)
	return err
}
