package htmlinspect

// Links collects all elements carrying a non-empty rel attribute,
// anywhere in the document, grouped by the raw rel value. Each record's
// href is resolved against the document base; a href that fails to
// resolve is dropped from its record rather than aborting the scan.
// The result is memoized.
func (in *Inspector) Links() LinkTable {
	return in.memoized("links", func() any {
		return in.collectLinks()
	}).(LinkTable)
}

func (in *Inspector) collectLinks() LinkTable {
	table := make(LinkTable)
	for _, n := range in.doc.Find("[rel]") {
		attrs := n.Attrs()
		rel := attrs["rel"]
		if rel == "" {
			continue
		}
		delete(attrs, "rel")
		if href, ok := attrs["href"]; ok {
			resolved, err := Normalize(href, in.doc.Base())
			if err != nil {
				delete(attrs, "href")
			} else {
				attrs["href"] = resolved
			}
		}
		table[rel] = append(table[rel], attrs)
	}
	return table
}
