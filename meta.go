package htmlinspect

import "strings"

// MetaRaw returns every meta element's attribute record in document
// order, without filtering or deduplication. The result is memoized and
// is the single scan the other meta collectors derive from.
func (in *Inspector) MetaRaw() MetaRaw {
	return in.memoized("meta_raw", func() any {
		records := make(MetaRaw, 0)
		for _, n := range in.doc.Find("meta") {
			records = append(records, n.Attrs())
		}
		return records
	}).(MetaRaw)
}

// MetaClassic partitions the document's meta elements into the classic
// shapes: the first charset encountered, http-equiv entries keyed by
// the lower-cased http-equiv token, and name/content entries restricted
// to the recognized meta-name vocabulary. Meta content is opaque text
// here; no URL resolution applies. The result is memoized.
func (in *Inspector) MetaClassic() MetaClassic {
	return in.memoized("meta_classic", func() any {
		classic := MetaClassic{
			HTTPEquiv: make(map[string]string),
			Name:      make(map[string]string),
		}
		for _, attrs := range in.MetaRaw() {
			switch {
			case attrs["charset"] != "":
				if classic.Charset == "" {
					classic.Charset = attrs["charset"]
				}
			case attrs["http-equiv"] != "":
				classic.HTTPEquiv[strings.ToLower(attrs["http-equiv"])] = attrs["content"]
			case attrs["name"] != "" && attrs["content"] != "":
				name := strings.ToLower(attrs["name"])
				if _, ok := in.metaNames[name]; ok {
					classic.Name[name] = attrs["content"]
				}
			}
		}
		return classic
	}).(MetaClassic)
}

// MetaNames returns every name/content pair regardless of vocabulary,
// keyed by the lower-cased name. A duplicated name keeps the last
// occurrence, matching how browsers treat repeated meta names. The
// result is memoized.
func (in *Inspector) MetaNames() MetaNames {
	return in.memoized("meta_names", func() any {
		names := make(MetaNames)
		for _, attrs := range in.MetaRaw() {
			name, content := attrs["name"], attrs["content"]
			if name == "" || content == "" {
				continue
			}
			names[strings.ToLower(name)] = content
		}
		return names
	}).(MetaNames)
}
