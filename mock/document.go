package mock

import "github.com/fwojciec/htmlinspect"

var _ htmlinspect.Node = (*Node)(nil)

// Node is a mock implementation of htmlinspect.Node.
type Node struct {
	AttrsFn func() htmlinspect.Attrs
}

func (n *Node) Attrs() htmlinspect.Attrs {
	return n.AttrsFn()
}

var _ htmlinspect.Document = (*Document)(nil)

// Document is a mock implementation of htmlinspect.Document.
type Document struct {
	LocationFn    func() string
	BaseFn        func() string
	ContentHashFn func() uint64
	WarningsFn    func() []string
	FindFn        func(selector string) []htmlinspect.Node
}

func (d *Document) Location() string {
	return d.LocationFn()
}

func (d *Document) Base() string {
	return d.BaseFn()
}

func (d *Document) ContentHash() uint64 {
	if d.ContentHashFn != nil {
		return d.ContentHashFn()
	}
	return 0
}

func (d *Document) Warnings() []string {
	if d.WarningsFn != nil {
		return d.WarningsFn()
	}
	return nil
}

func (d *Document) Find(selector string) []htmlinspect.Node {
	return d.FindFn(selector)
}

var _ htmlinspect.DocumentConstructor = (*DocumentConstructor)(nil)

// DocumentConstructor is a mock implementation of
// htmlinspect.DocumentConstructor.
type DocumentConstructor struct {
	NewFn func(htmlText string, location string) (htmlinspect.Document, error)
}

func (c *DocumentConstructor) New(htmlText string, location string) (htmlinspect.Document, error) {
	return c.NewFn(htmlText, location)
}
