// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaths(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		tempDir     string
		output      string
		wantTempSVG string
		wantPage    string
		wantOutput  string
	}{
		{
			name:        "svg in subdirectory",
			input:       "drawings/book.svg",
			tempDir:     "/tmp",
			wantTempSVG: "/tmp/book.tmp.svg",
			wantPage:    "/tmp/book.page_intro.pdf",
			wantOutput:  "drawings/book.pdf",
		},
		{
			name:        "file without extension",
			input:       "/work/book",
			tempDir:     "/var/tmp",
			wantTempSVG: "/var/tmp/book.tmp.svg",
			wantPage:    "/var/tmp/book.page_intro.pdf",
			wantOutput:  "/work/book.pdf",
		},
		{
			name:        "dotted name keeps inner dots",
			input:       "/work/flyer.v2.svg",
			tempDir:     "/tmp",
			wantTempSVG: "/tmp/flyer.v2.tmp.svg",
			wantPage:    "/tmp/flyer.v2.page_intro.pdf",
			wantOutput:  "/work/flyer.v2.pdf",
		},
		{
			name:        "explicit output",
			input:       "book.svg",
			tempDir:     "/tmp",
			output:      "/out/final.pdf",
			wantTempSVG: "/tmp/book.tmp.svg",
			wantPage:    "/tmp/book.page_intro.pdf",
			wantOutput:  "/out/final.pdf",
		},
		{
			name:        "bare file name",
			input:       "book.svg",
			tempDir:     "/tmp",
			wantTempSVG: "/tmp/book.tmp.svg",
			wantPage:    "/tmp/book.page_intro.pdf",
			wantOutput:  "book.pdf",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaths(tt.input, tt.tempDir, tt.output)
			assert.Equal(t, tt.wantTempSVG, p.TempSVG)
			assert.Equal(t, tt.wantPage, p.PagePDF("page_intro"))
			assert.Equal(t, tt.wantOutput, p.Output)
		})
	}
}

func TestCheckPageID(t *testing.T) {
	p := NewPaths("/work/book.svg", "/tmp", "")
	tests := []struct {
		id      string
		wantErr bool
	}{
		{id: "page_intro"},
		{id: "page_1.2"},
		{id: "page_..x"},
		{id: "page_/../../etc/passwd", wantErr: true},
		{id: "page_/sub", wantErr: true},
		{id: `page_\sub`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			err := p.CheckPageID(tt.id)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsafePageID)
				return
			}
			assert.NoError(t, err)
		})
	}
}
