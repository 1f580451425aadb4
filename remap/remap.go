package remap

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/hbollon/go-edlib"

	"tiny-remapper/internal/descriptor"
	"tiny-remapper/internal/index"
)

// Default namespace pair: resolve readable names to runtime names.
const (
	DefaultQueryNamespace  = "named"
	DefaultTargetNamespace = "official"
)

// defaultDescriptorCacheSize bounds the descriptor translation memo.
const defaultDescriptorCacheSize = 512

// ErrMissingNamespace reports a namespace requested at load time that the
// file header does not declare.
var ErrMissingNamespace = errors.New("namespace not declared in mapping header")

// Remapper answers name translation queries against an immutable mapping
// index. All queries are read-only and safe for concurrent use.
type Remapper struct {
	idx *index.Index

	// Namespace column indices resolved once at construction.
	query    int
	target   int
	official int

	// descCache memoizes descriptor translations keyed by direction+input.
	// Pure memoization: results are identical with or without it.
	descCache *lru.Cache[descKey, string]
}

type descKey struct {
	from, to   int
	descriptor string
}

// Option configures a Remapper at construction.
type Option func(*settings)

type settings struct {
	queryNS   string
	targetNS  string
	cacheSize int
}

// WithNamespaces fixes the query and target namespaces for all queries.
func WithNamespaces(query, target string) Option {
	return func(s *settings) {
		s.queryNS = query
		s.targetNS = target
	}
}

// WithDescriptorCacheSize bounds the descriptor translation cache.
func WithDescriptorCacheSize(n int) Option {
	return func(s *settings) {
		s.cacheSize = n
	}
}

// New wraps a built index in a query facade. Fails if the configured query
// or target namespace is not declared by the mapping file header.
func New(idx *index.Index, opts ...Option) (*Remapper, error) {
	s := settings{
		queryNS:   DefaultQueryNamespace,
		targetNS:  DefaultTargetNamespace,
		cacheSize: defaultDescriptorCacheSize,
	}

	for _, opt := range opts {
		opt(&s)
	}

	header := idx.Header()

	query := header.NamespaceIndex(s.queryNS)
	if query < 0 {
		return nil, fmt.Errorf("query namespace %q: %w", s.queryNS, ErrMissingNamespace)
	}

	target := header.NamespaceIndex(s.targetNS)
	if target < 0 {
		return nil, fmt.Errorf("target namespace %q: %w", s.targetNS, ErrMissingNamespace)
	}

	cache, err := lru.New[descKey, string](s.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("descriptor cache: %w", err)
	}

	return &Remapper{
		idx:       idx,
		query:     query,
		target:    target,
		official:  0,
		descCache: cache,
	}, nil
}

// Namespaces returns the ordered namespace list declared by the mapping file.
func (r *Remapper) Namespaces() []string {
	return r.idx.Header().Namespaces
}

// Stats returns entry counts for the underlying index.
func (r *Remapper) Stats() index.Stats {
	return r.idx.Stats()
}

// Fingerprint returns the content hash of the loaded mapping set.
func (r *Remapper) Fingerprint() uint64 {
	return r.idx.Fingerprint()
}

// RemapClass translates a class name from the query namespace to the target
// namespace. ok is false when the class is not tracked by this mapping set.
func (r *Remapper) RemapClass(name string) (string, bool) {
	c, ok := r.idx.Class(r.query, name)
	if !ok {
		return "", false
	}

	return fallback(c.Name(r.target), name), true
}

// RemapMethod translates a method name. The owner class name, method name,
// and method descriptor are all given in the query namespace; the descriptor
// disambiguates overloads and must match exactly.
func (r *Remapper) RemapMethod(owner, name, desc string) (string, bool) {
	c, ok := r.idx.Class(r.query, owner)
	if !ok {
		return "", false
	}

	officialDesc, err := r.translateDescriptor(desc, r.query, r.official)
	if err != nil {
		return "", false
	}

	m, ok := c.Method(r.query, name, officialDesc)
	if !ok {
		return "", false
	}

	return fallback(m.Names[r.target], name), true
}

// RemapField translates a field name. Descriptor is part of the identity:
// a class may hide fields sharing a name but never a name+descriptor pair.
func (r *Remapper) RemapField(owner, name, desc string) (string, bool) {
	c, ok := r.idx.Class(r.query, owner)
	if !ok {
		return "", false
	}

	officialDesc, err := r.translateDescriptor(desc, r.query, r.official)
	if err != nil {
		return "", false
	}

	f, ok := c.Field(r.query, name, officialDesc)
	if !ok {
		return "", false
	}

	return fallback(f.Names[r.target], name), true
}

// RemapDescriptor rewrites a descriptor from the query namespace to the
// target namespace. Class names without a mapping are kept unchanged; only
// a structurally malformed descriptor fails.
func (r *Remapper) RemapDescriptor(desc string) (string, error) {
	return r.translateDescriptor(desc, r.query, r.target)
}

// TranslateDescriptor rewrites a descriptor between two arbitrary declared
// namespaces, e.g. to invert RemapDescriptor for round-trips.
func (r *Remapper) TranslateDescriptor(desc, fromNS, toNS string) (string, error) {
	from := r.idx.Header().NamespaceIndex(fromNS)
	if from < 0 {
		return "", fmt.Errorf("namespace %q: %w", fromNS, ErrMissingNamespace)
	}

	to := r.idx.Header().NamespaceIndex(toNS)
	if to < 0 {
		return "", fmt.Errorf("namespace %q: %w", toNS, ErrMissingNamespace)
	}

	return r.translateDescriptor(desc, from, to)
}

// SuggestClasses returns up to max query-namespace class names closest to
// name, for "did you mean" diagnostics on a missed class lookup.
func (r *Remapper) SuggestClasses(name string, max int) []string {
	if max <= 0 {
		return nil
	}

	res, err := edlib.FuzzySearchSet(name, r.idx.ClassNames(r.query), max, edlib.Levenshtein)
	if err != nil {
		return nil
	}

	out := make([]string, 0, len(res))

	for _, s := range res {
		if s != "" {
			out = append(out, s)
		}
	}

	return out
}

func (r *Remapper) translateDescriptor(desc string, from, to int) (string, error) {
	key := descKey{from: from, to: to, descriptor: desc}
	if cached, ok := r.descCache.Get(key); ok {
		return cached, nil
	}

	mapped, err := descriptor.Remap(desc, func(name string) (string, bool) {
		return r.idx.TranslateClassName(name, from, to)
	})
	if err != nil {
		return "", err
	}

	r.descCache.Add(key, mapped)

	return mapped, nil
}

// fallback implements the empty-name policy: a name left blank in the target
// namespace resolves to the name the caller asked with.
func fallback(translated, queried string) string {
	if translated == "" {
		return queried
	}

	return translated
}
