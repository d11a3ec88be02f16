package htmlinspect

import "strings"

// ReferencesFor scans the whole document for elements of the given tag
// carrying the given attribute, resolves each value against the
// document base, and returns the unique resolved URLs in first-seen
// document order. Uniqueness is judged on the normalized form, so
// "a.png" and "./a.png" collapse to one entry. A value that fails to
// resolve is silently dropped; one bad URL never aborts the scan.
//
// The unfiltered result is memoized per (tag, attribute) pair; f is
// applied as a projection over that cache.
func (in *Inspector) ReferencesFor(tag string, attr string, f *Filter) []string {
	pair := ReferencePair{Tag: tag, Attr: attr}
	full := in.memoized("refs_"+pair.Key(), func() any {
		return in.collectReferencesFor(tag, attr)
	}).([]string)
	return f.apply(full)
}

// References runs ReferencesFor over the configured tag/attribute pairs
// and assembles the results keyed by "tag_attribute". Pairs with no
// matches are omitted from the table.
func (in *Inspector) References(f *Filter) ReferenceTable {
	table := make(ReferenceTable, len(in.pairs))
	for _, pair := range in.pairs {
		if refs := in.ReferencesFor(pair.Tag, pair.Attr, f); len(refs) > 0 {
			table[pair.Key()] = refs
		}
	}
	return table
}

func (in *Inspector) collectReferencesFor(tag string, attr string) []string {
	seen := make(map[string]struct{})
	var refs []string
	for _, n := range in.doc.Find(tag + "[" + attr + "]") {
		resolved, err := Normalize(n.Attrs()[attr], in.doc.Base())
		if err != nil {
			continue
		}
		if _, ok := seen[resolved]; ok {
			continue
		}
		seen[resolved] = struct{}{}
		refs = append(refs, resolved)
	}
	return refs
}

// apply projects the filter over urls. The input is never mutated and
// the result is always a fresh slice, so cached sequences stay intact.
// A nil filter copies everything.
func (f *Filter) apply(urls []string) []string {
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if f != nil {
			if f.HTTPOnly && !isHTTP(u) {
				continue
			}
			if f.MailtoOnly && !strings.HasPrefix(u, "mailto:") {
				continue
			}
			if f.Matching != nil && !f.Matching.MatchString(u) {
				continue
			}
		}
		out = append(out, u)
		if f != nil && f.MaximumSet > 0 && len(out) >= f.MaximumSet {
			break
		}
	}
	return out
}

func isHTTP(u string) bool {
	return strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://")
}
