// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdf merges and inspects PDFs in-process with pdfcpu.
package pdf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

var disableConfigDir sync.Once

// configuration returns a pdfcpu configuration that never touches the
// user's config directory.
func configuration() *model.Configuration {
	disableConfigDir.Do(api.DisableConfigDir)
	return model.NewDefaultConfiguration()
}

// Merger concatenates PDFs with pdfcpu.
type Merger struct{}

// NewMerger returns a pdfcpu-backed merger.
func NewMerger() *Merger { return &Merger{} }

// Name identifies the backend in progress output.
func (m *Merger) Name() string { return "pdfcpu" }

// Merge writes the pages of inputs, in order, to outPath.
func (m *Merger) Merge(ctx context.Context, inputs []string, outPath string) error {
	if len(inputs) == 0 {
		return errors.New("pdfcpu: no input files")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(inputs) == 1 {
		return copyFile(inputs[0], outPath)
	}
	if err := api.MergeCreateFile(inputs, outPath, false, configuration()); err != nil {
		return fmt.Errorf("pdfcpu merge into %s: %w", outPath, err)
	}
	return nil
}

// PageCount returns the number of pages of the PDF at path.
func PageCount(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("counting pages of %s: %w", path, err)
	}
	defer f.Close()

	n, err := api.PageCount(f, configuration())
	if err != nil {
		return 0, fmt.Errorf("counting pages of %s: %w", path, err)
	}
	return n, nil
}

func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	return nil
}
