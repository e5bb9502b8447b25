// Package dom exposes a small, selector-driven view over parsed HTML documents.
package dom

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Document is a parsed HTML page.
type Document struct {
	doc *goquery.Document
}

// Element is a single node matched by a selector.
type Element struct {
	sel *goquery.Selection
}

// Parse builds a Document from raw HTML.
func Parse(html string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{doc: doc}, nil
}

// Query returns every element matching selector in document order.
// An invalid selector matches nothing.
func (d *Document) Query(selector string) []Element {
	return collect(d.doc.Selection, selector)
}

// Attr returns the named attribute, or an empty string when absent.
func (e Element) Attr(name string) string {
	return strings.TrimSpace(e.sel.AttrOr(name, ""))
}

// Text returns the trimmed text content of the element and its descendants.
// For script elements this is the raw, unescaped script body.
func (e Element) Text() string {
	return strings.TrimSpace(e.sel.Text())
}

// Find returns the descendants matching selector.
func (e Element) Find(selector string) []Element {
	return collect(e.sel, selector)
}

func collect(sel *goquery.Selection, selector string) []Element {
	var elements []Element
	sel.Find(selector).Each(func(_ int, s *goquery.Selection) {
		elements = append(elements, Element{sel: s})
	})
	return elements
}
