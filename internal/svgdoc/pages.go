// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package svgdoc

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/beevik/etree"

	"github.com/pdiddy/svgpages/pkg/types"
)

var (
	// ErrEmptyPrefix is returned when the page prefix is empty.
	ErrEmptyPrefix = errors.New("page prefix is empty")

	// ErrDuplicatePage is returned when more than one group carries the same
	// page identifier.
	ErrDuplicatePage = errors.New("duplicate page identifier")

	// ErrPageNotFound is returned by Isolate when no group carries the target
	// identifier.
	ErrPageNotFound = errors.New("page not found")
)

// isPage reports whether a group id marks a page.
func isPage(id, prefix string) bool {
	return id != "" && strings.HasPrefix(id, prefix)
}

// Pages returns the page groups of all layers sorted by identifier using
// byte-wise comparison. Page groups are not searched for nested pages.
// A drawing without pages yields an empty slice and no error.
func (d *Document) Pages(prefix string) ([]types.Page, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}

	pages := []types.Page{}
	for _, layer := range d.layerElements() {
		label := layer.SelectAttrValue(attrLabel, "")
		collectPages(layer, prefix, func(id string) {
			pages = append(pages, types.Page{ID: id, Layer: label})
		})
	}

	sort.SliceStable(pages, func(i, j int) bool { return pages[i].ID < pages[j].ID })

	var dups []string
	for i := 1; i < len(pages); i++ {
		if pages[i].ID == pages[i-1].ID && (len(dups) == 0 || dups[len(dups)-1] != pages[i].ID) {
			dups = append(dups, pages[i].ID)
		}
	}
	if len(dups) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrDuplicatePage, strings.Join(dups, ", "))
	}
	return pages, nil
}

func collectPages(parent *etree.Element, prefix string, found func(id string)) {
	for _, g := range parent.SelectElements(tagGroup) {
		id := g.SelectAttrValue(attrID, "")
		if isPage(id, prefix) {
			found(id)
			continue
		}
		collectPages(g, prefix, found)
	}
}

// Isolate returns a copy of the document in which target is the only page
// group left. The target loses its transform attribute so it renders at the
// document origin. Other page groups are removed wherever they appear;
// groups that are not pages stay in place.
func (d *Document) Isolate(prefix, target string) (*Document, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}

	out := d.copy()
	matched := 0
	for _, layer := range out.layerElements() {
		matched += isolatePage(layer, prefix, target)
	}

	switch {
	case matched == 0:
		return nil, fmt.Errorf("%w: %s", ErrPageNotFound, target)
	case matched > 1:
		return nil, fmt.Errorf("%w: %s", ErrDuplicatePage, target)
	}
	return out, nil
}

// isolatePage filters parent in place and returns how many groups matched
// target. It must only be called on an owned copy.
func isolatePage(parent *etree.Element, prefix, target string) int {
	matched := 0
	for _, g := range parent.SelectElements(tagGroup) {
		id := g.SelectAttrValue(attrID, "")
		if !isPage(id, prefix) {
			matched += isolatePage(g, prefix, target)
			continue
		}
		if id == target {
			g.RemoveAttr(attrTransform)
			matched++
			continue
		}
		parent.RemoveChildAt(g.Index())
	}
	return matched
}
