// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package svgdoc parses Inkscape SVG drawings, discovers the page groups
// inside their layers, and produces per-page copies of the drawing in which
// only one page group remains.
package svgdoc

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/beevik/etree"

	"github.com/pdiddy/svgpages/pkg/types"
)

const (
	tagSVG   = "svg"
	tagGroup = "g"

	attrID        = "id"
	attrTransform = "transform"
	attrGroupMode = "inkscape:groupmode"
	attrLabel     = "inkscape:label"

	groupModeLayer = "layer"
)

// ErrNotSVG is returned when the document root is not an svg element.
var ErrNotSVG = errors.New("document root is not <svg>")

// Document is a parsed SVG drawing. Methods never modify the receiver.
type Document struct {
	tree *etree.Document
}

// Load reads and parses the SVG file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// Parse parses raw SVG markup.
func Parse(data []byte) (*Document, error) {
	tree := etree.NewDocument()
	if err := tree.ReadFromBytes(data); err != nil {
		return nil, err
	}
	root := tree.Root()
	if root == nil || root.Tag != tagSVG {
		return nil, ErrNotSVG
	}
	return &Document{tree: tree}, nil
}

// Layers returns the top-level Inkscape layers in document order.
func (d *Document) Layers() []types.Layer {
	var layers []types.Layer
	for _, l := range d.layerElements() {
		layers = append(layers, types.Layer{
			ID:    l.SelectAttrValue(attrID, ""),
			Label: l.SelectAttrValue(attrLabel, ""),
		})
	}
	return layers
}

// WriteTo serializes the document without indentation.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	return d.tree.WriteTo(w)
}

// WriteFile serializes the document to path, replacing any existing file.
func (d *Document) WriteFile(path string) error {
	if err := d.tree.WriteToFile(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// String returns the serialized document.
func (d *Document) String() string {
	s, err := d.tree.WriteToString()
	if err != nil {
		return ""
	}
	return s
}

func (d *Document) copy() *Document {
	return &Document{tree: d.tree.Copy()}
}

func (d *Document) layerElements() []*etree.Element {
	var layers []*etree.Element
	for _, g := range d.tree.Root().SelectElements(tagGroup) {
		if g.SelectAttrValue(attrGroupMode, "") == groupModeLayer {
			layers = append(layers, g)
		}
	}
	return layers
}
