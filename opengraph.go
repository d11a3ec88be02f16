package htmlinspect

import "strings"

// OpenGraph collects meta elements whose property attribute starts with
// a recognized OpenGraph prefix and returns their property/content
// pairs. A property seen once maps to its content string; on the first
// duplicate the stored scalar is promoted to a single-element sequence
// before the new value is appended, so order of first appearance
// determines position. Values are verbatim; see the OpenGraph type for
// the no-resolution caveat. The result is memoized.
func (in *Inspector) OpenGraph() OpenGraph {
	return in.memoized("opengraph", func() any {
		return in.collectOpenGraph()
	}).(OpenGraph)
}

func (in *Inspector) collectOpenGraph() OpenGraph {
	og := make(OpenGraph)
	for _, n := range in.doc.Find("meta[property]") {
		attrs := n.Attrs()
		prop := attrs["property"]
		if !in.recognizedProperty(prop) {
			continue
		}
		content, ok := attrs["content"]
		if !ok {
			continue
		}
		switch existing := og[prop].(type) {
		case nil:
			og[prop] = content
		case string:
			og[prop] = []string{existing, content}
		case []string:
			og[prop] = append(existing, content)
		}
	}
	return og
}

func (in *Inspector) recognizedProperty(prop string) bool {
	for _, prefix := range in.ogPrefixes {
		if strings.HasPrefix(prop, prefix) {
			return true
		}
	}
	return false
}
