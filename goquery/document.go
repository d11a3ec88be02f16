// Package goquery provides the htmlinspect.Document implementation
// backed by PuerkitoBio/goquery over golang.org/x/net/html: a
// recovering parser that accepts malformed markup, never fetches
// external resources, and exposes CSS-selector queries.
package goquery

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/htmlinspect"
	"golang.org/x/net/html"
)

// Ensure Document implements htmlinspect.Document at compile time.
var _ htmlinspect.Document = (*Document)(nil)

// tagBearing is the cheap pre-parse check that the input looks like
// markup at all: at least one "<" followed by a word character.
var tagBearing = regexp.MustCompile(`<\w`)

// Document wraps one parsed HTML tree together with its resolved base
// URL. It is immutable after construction.
type Document struct {
	doc      *goquery.Document
	location string
	base     string
	hash     uint64
	warnings []string
}

// New parses htmlText in recovering mode and establishes the document's
// effective base URL.
//
// Input that is empty or not superficially tag-bearing fails with
// ENOTHTML. A location that does not normalize to an absolute URL fails
// with EINVALIDBASE; there is no further fallback. Malformed markup
// never aborts construction: the parser's best-effort tree is accepted.
//
// The first <base href> in document order, when it normalizes against
// the location, becomes the base URL. An invalid <base href> is
// advisory only: it is recorded as a warning and the normalized
// location stays the base.
func New(htmlText string, location string) (*Document, error) {
	if !tagBearing.MatchString(htmlText) {
		return nil, htmlinspect.Errorf(htmlinspect.ENOTHTML, "input does not look like HTML")
	}

	loc, err := htmlinspect.NormalizeBase(location)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return nil, htmlinspect.Errorf(htmlinspect.EINTERNAL, "parse failed: %v", err)
	}

	d := &Document{
		doc:      doc,
		location: location,
		base:     loc,
		hash:     xxhash.Sum64String(htmlText),
	}

	if href, ok := doc.Find("base[href]").First().Attr("href"); ok {
		resolved, err := htmlinspect.Normalize(href, loc)
		if err != nil {
			d.warnings = append(d.warnings,
				fmt.Sprintf("ignoring invalid base href %q: %s", href, htmlinspect.ErrorMessage(err)))
		} else {
			d.base = resolved
		}
	}

	return d, nil
}

// Location returns the caller-supplied document location, verbatim.
func (d *Document) Location() string {
	return d.location
}

// Base returns the document's effective base URL.
func (d *Document) Base() string {
	return d.base
}

// ContentHash returns the xxhash fingerprint of the raw input.
func (d *Document) ContentHash() uint64 {
	return d.hash
}

// Warnings returns advisory diagnostics accumulated during construction.
func (d *Document) Warnings() []string {
	return d.warnings
}

// Find returns all elements matching the CSS selector in document
// order. An invalid selector matches nothing rather than failing, so
// collectors stay infallible once the document exists.
func (d *Document) Find(selector string) []htmlinspect.Node {
	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return nil
	}
	sel := d.doc.FindMatcher(matcher)
	nodes := make([]htmlinspect.Node, 0, len(sel.Nodes))
	for _, n := range sel.Nodes {
		nodes = append(nodes, &node{n: n})
	}
	return nodes
}

// node adapts one *html.Node to htmlinspect.Node.
type node struct {
	n *html.Node
}

// Attrs returns the element's attributes with names lower-cased. The
// map is built fresh per call.
func (e *node) Attrs() htmlinspect.Attrs {
	attrs := make(htmlinspect.Attrs, len(e.n.Attr))
	for _, a := range e.n.Attr {
		attrs[strings.ToLower(a.Key)] = a.Val
	}
	return attrs
}

// Ensure Constructor implements htmlinspect.DocumentConstructor.
var _ htmlinspect.DocumentConstructor = (*Constructor)(nil)

// Constructor adapts New to the htmlinspect.DocumentConstructor
// interface, so construction can be decorated (see the slog package).
type Constructor struct{}

// NewConstructor creates a new Constructor.
func NewConstructor() *Constructor {
	return &Constructor{}
}

// New builds a Document from raw HTML text and a location URL.
func (c *Constructor) New(htmlText string, location string) (htmlinspect.Document, error) {
	return New(htmlText, location)
}
