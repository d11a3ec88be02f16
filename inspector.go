package htmlinspect

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Inspector runs the collectors over one Document. Every collector
// result is memoized per inspector: repeat calls return the value
// computed the first time, and the cache is write-once per key.
// Concurrent first use of the same collector is serialized, so an
// Inspector is safe for use from multiple goroutines.
//
// Collectors never fail: per-reference normalization failures drop the
// offending field or URL only, and the rest of the document's data is
// still reported.
type Inspector struct {
	doc        Document
	pairs      []ReferencePair
	metaNames  map[string]struct{}
	ogPrefixes []string

	group singleflight.Group
	mu    sync.Mutex
	cache map[string]any
}

// Option configures an Inspector.
type Option func(*Inspector)

// WithReferencePairs overrides the tag/attribute pairs scanned by
// References. Defaults to DefaultReferencePairs.
func WithReferencePairs(pairs []ReferencePair) Option {
	return func(in *Inspector) {
		in.pairs = pairs
	}
}

// WithRecognizedMetaNames overrides the meta-name vocabulary admitted
// into MetaClassic's name bucket. Defaults to RecognizedMetaNames.
func WithRecognizedMetaNames(names []string) Option {
	return func(in *Inspector) {
		in.metaNames = toSet(names)
	}
}

// WithOpenGraphPrefixes overrides the property prefixes recognized by
// the OpenGraph collector. Defaults to DefaultOpenGraphPrefixes.
func WithOpenGraphPrefixes(prefixes []string) Option {
	return func(in *Inspector) {
		in.ogPrefixes = prefixes
	}
}

// NewInspector creates an Inspector over doc.
func NewInspector(doc Document, opts ...Option) *Inspector {
	in := &Inspector{
		doc:        doc,
		pairs:      DefaultReferencePairs,
		metaNames:  toSet(RecognizedMetaNames),
		ogPrefixes: DefaultOpenGraphPrefixes,
		cache:      make(map[string]any),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Document returns the inspected document.
func (in *Inspector) Document() Document {
	return in.doc
}

// memoized returns the cached value for key, computing it at most once.
// singleflight serializes concurrent first computation of the same key;
// the mutex-guarded map makes the write visible to later callers.
func (in *Inspector) memoized(key string, compute func() any) any {
	in.mu.Lock()
	if v, ok := in.cache[key]; ok {
		in.mu.Unlock()
		return v
	}
	in.mu.Unlock()

	v, _, _ := in.group.Do(key, func() (any, error) {
		in.mu.Lock()
		if v, ok := in.cache[key]; ok {
			in.mu.Unlock()
			return v, nil
		}
		in.mu.Unlock()

		v := compute()

		in.mu.Lock()
		in.cache[key] = v
		in.mu.Unlock()
		return v, nil
	})
	return v
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
