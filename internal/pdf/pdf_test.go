// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdf

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerger_Name(t *testing.T) {
	assert.Equal(t, "pdfcpu", NewMerger().Name())
}

func TestMerger_NoInputs(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.pdf")
	err := NewMerger().Merge(context.Background(), nil, out)
	require.Error(t, err)
	assert.NoFileExists(t, out)
}

func TestMerger_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewMerger().Merge(ctx, []string{"a.pdf"}, filepath.Join(t.TempDir(), "out.pdf"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMerger_InvalidInput(t *testing.T) {
	dir := t.TempDir()
	var inputs []string
	for _, name := range []string{"a.pdf", "b.pdf"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte("not a pdf"), 0o644))
		inputs = append(inputs, p)
	}

	err := NewMerger().Merge(context.Background(), inputs, filepath.Join(dir, "out.pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pdfcpu merge")
}

func TestMerger_SingleInputIsCopied(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "only.pdf")
	require.NoError(t, os.WriteFile(in, []byte("%PDF-1.5 single page"), 0o644))
	out := filepath.Join(dir, "out.pdf")

	require.NoError(t, NewMerger().Merge(context.Background(), []string{in}, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.5 single page", string(data))
}

func TestPageCount_Missing(t *testing.T) {
	_, err := PageCount(filepath.Join(t.TempDir(), "missing.pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.pdf")
}

func TestMerger_MergesInOrder(t *testing.T) {
	dir := t.TempDir()
	first := writeOnePagePDF(t, dir, "book.page_body.pdf", 200, 100)
	second := writeOnePagePDF(t, dir, "book.page_intro.pdf", 300, 100)
	out := filepath.Join(dir, "book.pdf")

	require.NoError(t, NewMerger().Merge(context.Background(), []string{first, second}, out))

	n, err := PageCount(out)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	dims, err := api.PageDimsFile(out)
	require.NoError(t, err)
	require.Len(t, dims, 2)
	assert.Equal(t, 200.0, dims[0].Width)
	assert.Equal(t, 300.0, dims[1].Width)
}

func TestPageCount(t *testing.T) {
	path := writeOnePagePDF(t, t.TempDir(), "one.pdf", 595, 842)
	n, err := PageCount(path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPageCount_LeavesConfigDirAlone(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	path := writeOnePagePDF(t, t.TempDir(), "one.pdf", 595, 842)
	_, err := PageCount(path)
	require.NoError(t, err)

	assert.NoDirExists(t, filepath.Join(home, ".config", "pdfcpu"))
	assert.NoDirExists(t, filepath.Join(home, "Library", "Application Support", "pdfcpu"))
}
