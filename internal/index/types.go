package index

import "tiny-remapper/internal/tinyv2"

// MemberKey is the lookup identity of a field or method under its owner
// class: the member's name in some namespace plus the descriptor in the
// official (first) namespace. Descriptor is part of the key because
// overloaded methods share a name, and shadowed fields may too.
type MemberKey struct {
	Name       string
	Descriptor string
}

// ParameterEntry is a named method parameter slot. Parameters are retained
// for round-trip fidelity; remap queries do not consume them.
type ParameterEntry struct {
	// Index is the zero-based parameter slot position.
	Index int
	// Names holds one name per namespace; empty means unnamed there.
	Names []string
}

// FieldEntry is one field mapping under a class.
type FieldEntry struct {
	// Descriptor is the field-type descriptor in the official namespace.
	Descriptor string
	Names      []string
}

// MethodEntry is one method mapping under a class, with its parameters in
// file order.
type MethodEntry struct {
	// Descriptor is the method descriptor in the official namespace.
	Descriptor string
	Names      []string
	Parameters []ParameterEntry
}

// ClassEntry is one class mapping with its owned members. Members are keyed
// per namespace so lookups in the query namespace stay O(1).
type ClassEntry struct {
	Names []string

	fields  []map[MemberKey]*FieldEntry
	methods []map[MemberKey]*MethodEntry
}

// Name returns the class name in the given namespace.
func (c *ClassEntry) Name(ns int) string {
	return c.Names[ns]
}

// Field looks up a field by its name in namespace ns and its
// official-namespace descriptor.
func (c *ClassEntry) Field(ns int, name, officialDescriptor string) (*FieldEntry, bool) {
	f, ok := c.fields[ns][MemberKey{Name: name, Descriptor: officialDescriptor}]
	return f, ok
}

// Method looks up a method by its name in namespace ns and its
// official-namespace descriptor. Overloads sharing a name resolve on the
// descriptor half of the key.
func (c *ClassEntry) Method(ns int, name, officialDescriptor string) (*MethodEntry, bool) {
	m, ok := c.methods[ns][MemberKey{Name: name, Descriptor: officialDescriptor}]
	return m, ok
}

// Stats summarizes the size of a built index.
type Stats struct {
	Classes    int
	Fields     int
	Methods    int
	Parameters int
}

// Index is the immutable result of a build pass.
type Index struct {
	header      tinyv2.Header
	classes     []map[string]*ClassEntry
	stats       Stats
	fingerprint uint64
}

// Header returns the mapping file header.
func (x *Index) Header() tinyv2.Header {
	return x.header
}

// Stats returns entry counts for the built index.
func (x *Index) Stats() Stats {
	return x.stats
}

// Fingerprint returns the content hash of the mapping set, computed over the
// header and every record during the build pass.
func (x *Index) Fingerprint() uint64 {
	return x.fingerprint
}

// Class looks up a class by its name in the given namespace.
func (x *Index) Class(ns int, name string) (*ClassEntry, bool) {
	c, ok := x.classes[ns][name]
	return c, ok
}

// ClassNames returns every class name in the given namespace. Order is
// unspecified.
func (x *Index) ClassNames(ns int) []string {
	names := make([]string, 0, len(x.classes[ns]))
	for name := range x.classes[ns] {
		names = append(names, name)
	}

	return names
}

// TranslateClassName translates a class name between two namespaces.
// Returns false if the class is not tracked by this mapping set.
func (x *Index) TranslateClassName(name string, from, to int) (string, bool) {
	c, ok := x.classes[from][name]
	if !ok {
		return "", false
	}

	return c.Names[to], true
}
