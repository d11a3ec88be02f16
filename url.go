package htmlinspect

import (
	"net/url"
	"path"
	"strings"
	"unicode"
)

// defaultPorts maps hierarchical schemes to the port implied when none
// is given; an explicit default port is dropped during canonicalization.
var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
	"ftp":   "21",
}

// Normalize converts a raw reference into an absolute, canonical URL.
//
// Leading and trailing whitespace and control characters are trimmed
// before interpretation. An empty or whitespace-only reference fails
// with EEMPTYREF; callers scanning many references skip it. A reference
// that still contains whitespace or control characters after trimming,
// or that cannot be parsed, fails with EUNRESOLVABLE.
//
// A reference that already carries a scheme is accepted without
// consulting base and canonicalized: scheme and host are lower-cased,
// an explicit default port is removed, dot path segments are collapsed,
// and percent-encoding is re-normalized. Anything else is resolved
// against base per RFC 3986 section 5; a base that is not itself an
// absolute URL fails with EINVALIDBASE.
//
// Normalize is deterministic: identical inputs produce byte-identical
// output, which the reference deduplication relies on.
func Normalize(raw string, base string) (string, error) {
	ref := strings.TrimFunc(raw, isSpaceOrControl)
	if ref == "" {
		return "", Errorf(EEMPTYREF, "empty reference")
	}
	if strings.ContainsFunc(ref, isSpaceOrControl) {
		return "", Errorf(EUNRESOLVABLE, "reference %q contains whitespace", ref)
	}

	u, err := url.Parse(ref)
	if err != nil {
		return "", Errorf(EUNRESOLVABLE, "cannot parse reference %q: %v", ref, err)
	}
	if u.IsAbs() {
		return canonical(u), nil
	}

	b, err := url.Parse(strings.TrimFunc(base, isSpaceOrControl))
	if err != nil || !b.IsAbs() {
		return "", Errorf(EINVALIDBASE, "base %q is not an absolute URL", base)
	}
	return canonical(b.ResolveReference(u)), nil
}

// NormalizeBase validates and canonicalizes a document location for use
// as a resolution base. Unlike Normalize it has no base to fall back
// on: the location must already be absolute, and hierarchical schemes
// must carry an authority. All failures carry EINVALIDBASE.
func NormalizeBase(location string) (string, error) {
	loc := strings.TrimFunc(location, isSpaceOrControl)
	if loc == "" {
		return "", Errorf(EINVALIDBASE, "empty location")
	}
	if strings.ContainsFunc(loc, isSpaceOrControl) {
		return "", Errorf(EINVALIDBASE, "location %q contains whitespace", loc)
	}

	u, err := url.Parse(loc)
	if err != nil || !u.IsAbs() {
		return "", Errorf(EINVALIDBASE, "location %q is not an absolute URL", location)
	}
	if _, hierarchical := defaultPorts[strings.ToLower(u.Scheme)]; hierarchical && u.Host == "" {
		return "", Errorf(EINVALIDBASE, "location %q has no authority", location)
	}
	return canonical(u), nil
}

// canonical renders a parsed URL in its canonical textual form. The
// scheme is always lower-cased; URLs with an authority additionally get
// a lower-cased host, default-port removal, a cleaned path, and
// re-normalized percent-encoding. Opaque URLs (mailto:, tel:, data:)
// keep their opaque part verbatim.
func canonical(u *url.URL) string {
	u.Scheme = strings.ToLower(u.Scheme)
	if u.Host != "" {
		u.Host = strings.ToLower(u.Host)
		if port := u.Port(); port != "" && port == defaultPorts[u.Scheme] {
			u.Host = strings.TrimSuffix(u.Host, ":"+port)
		}
		u.Path = cleanPath(u.Path)
		u.RawPath = ""
	}
	return u.String()
}

// cleanPath collapses "." and ".." segments while preserving a trailing
// slash, and renders the empty path as "/" (equivalent for URLs with an
// authority, and required for stable deduplication).
func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	cleaned := path.Clean(p)
	if cleaned == "." {
		return "/"
	}
	if strings.HasSuffix(p, "/") && !strings.HasSuffix(cleaned, "/") {
		cleaned += "/"
	}
	return cleaned
}

func isSpaceOrControl(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsControl(r)
}
