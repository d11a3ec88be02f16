package htmlinspect

import "regexp"

// Attrs holds one element's attributes keyed by lower-cased name.
type Attrs map[string]string

// LinkTable groups the attribute records of all elements carrying a
// non-empty rel attribute, keyed by the raw rel value. The rel value is
// removed from each record, and href is replaced by its resolved
// absolute form (or dropped when resolution fails). Records within a
// group appear in document order.
//
// A rel carrying multiple whitespace-separated tokens is kept as one
// compound key ("stylesheet preload" groups under that exact string);
// consumers needing per-token grouping split it themselves.
type LinkTable map[string][]Attrs

// MetaClassic partitions meta elements into the three classic shapes:
// the first charset encountered, http-equiv entries keyed by the
// lower-cased http-equiv token, and name entries restricted to
// RecognizedMetaNames.
type MetaClassic struct {
	Charset   string            `json:"charset,omitempty"`
	HTTPEquiv map[string]string `json:"http-equiv"`
	Name      map[string]string `json:"name"`
}

// MetaNames maps every meta name (lower-cased) to its content,
// regardless of vocabulary. Duplicate names keep the last occurrence.
type MetaNames map[string]string

// MetaRaw lists every meta element's attribute record in document
// order, without deduplication.
type MetaRaw []Attrs

// ReferenceTable maps a "tag_attribute" key to the unique resolved
// absolute URLs found for that pair, in first-seen document order.
type ReferenceTable map[string][]string

// OpenGraph maps a property name (e.g. "og:image") to its content: a
// string for a single occurrence, promoted to a []string when the
// property repeats. Values are reported verbatim — unlike the link and
// reference collectors, no URL resolution is applied, even to
// conventionally URL-valued properties such as og:image and og:url;
// downstream consumers normalize those themselves if needed.
type OpenGraph map[string]any

// Filter restricts reference collection results. Set fields compose by
// logical AND. Filters are applied as a projection over the cached
// unfiltered result, so differently-filtered calls on the same context
// never recompute or invalidate each other.
type Filter struct {
	// HTTPOnly retains only http and https URLs.
	HTTPOnly bool

	// MailtoOnly retains only mailto URLs.
	MailtoOnly bool

	// MaximumSet truncates each sequence to its first n entries after
	// deduplication. Zero means no limit.
	MaximumSet int

	// Matching retains only URLs matching the pattern.
	Matching *regexp.Regexp
}

// ReferencePair names a tag/attribute combination whose values denote
// URLs.
type ReferencePair struct {
	Tag  string
	Attr string
}

// Key returns the pair's composite table key, e.g. "img_src".
func (p ReferencePair) Key() string {
	return p.Tag + "_" + p.Attr
}

// DefaultReferencePairs is the set of tag/attribute pairs scanned by
// Inspector.References when no override is configured.
var DefaultReferencePairs = []ReferencePair{
	{"a", "href"},
	{"img", "src"},
	{"script", "src"},
	{"link", "href"},
	{"form", "action"},
	{"iframe", "src"},
	{"area", "href"},
	{"audio", "src"},
	{"video", "src"},
	{"source", "src"},
	{"embed", "src"},
	{"object", "data"},
}

// RecognizedMetaNames is the vocabulary admitted into the name bucket
// of MetaClassic. It is configuration, not logic: extend it via
// WithRecognizedMetaNames without touching extraction code.
var RecognizedMetaNames = []string{
	"author",
	"description",
	"keywords",
	"viewport",
	"robots",
	"generator",
}

// DefaultOpenGraphPrefixes is the set of property prefixes recognized
// by the OpenGraph collector.
var DefaultOpenGraphPrefixes = []string{"og:"}
