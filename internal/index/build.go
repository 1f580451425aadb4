package index

import (
	"strconv"

	"github.com/cespare/xxhash/v2"

	"tiny-remapper/internal/descriptor"
	"tiny-remapper/internal/tinyv2"
)

// Builder accumulates parsed records into an Index. It implements
// tinyv2.Handler, so handing it to tinyv2.Parse builds the index during the
// same streaming pass; call Build afterwards.
type Builder struct {
	idx *Index

	curClass  *ClassEntry
	curMethod *MethodEntry

	hash *xxhash.Digest
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{hash: xxhash.New()}
}

// Header initializes the per-namespace tables from the file header.
func (b *Builder) Header(header tinyv2.Header) error {
	nsCount := len(header.Namespaces)

	classes := make([]map[string]*ClassEntry, nsCount)
	for i := range classes {
		classes[i] = make(map[string]*ClassEntry)
	}

	b.idx = &Index{header: header, classes: classes}

	for _, ns := range header.Namespaces {
		b.hashField(ns)
	}

	return nil
}

// Record consumes one parsed record. Records must arrive in file order; the
// parser guarantees members follow their owning class and parameters follow
// their owning method.
func (b *Builder) Record(r tinyv2.Record) error {
	b.hashRecord(r)

	switch r.Kind {
	case tinyv2.KindClass:
		return b.addClass(r)
	case tinyv2.KindField:
		return b.addField(r)
	case tinyv2.KindMethod:
		return b.addMethod(r)
	case tinyv2.KindParameter:
		return b.addParameter(r)
	default:
		// Comments contribute to the fingerprint only.
		return nil
	}
}

// Build finalizes and returns the immutable index. The builder must not be
// used afterwards.
func (b *Builder) Build() *Index {
	idx := b.idx
	idx.fingerprint = b.hash.Sum64()
	b.idx = nil

	return idx
}

// Load parses a complete mapping file and builds its index in one pass.
func Load(data []byte) (*Index, error) {
	b := NewBuilder()
	if err := tinyv2.Parse(data, b); err != nil {
		return nil, err
	}

	return b.Build(), nil
}

func (b *Builder) addClass(r tinyv2.Record) error {
	official := r.Names[0]
	if _, ok := b.idx.classes[0][official]; ok {
		return tinyv2.Errorf(r.Line, tinyv2.CodeDuplicateClass, "duplicate class %q", official)
	}

	nsCount := len(b.idx.header.Namespaces)

	c := &ClassEntry{
		Names:   r.Names,
		fields:  make([]map[MemberKey]*FieldEntry, nsCount),
		methods: make([]map[MemberKey]*MethodEntry, nsCount),
	}

	for ns := 0; ns < nsCount; ns++ {
		c.fields[ns] = make(map[MemberKey]*FieldEntry)
		c.methods[ns] = make(map[MemberKey]*MethodEntry)
		b.idx.classes[ns][r.Names[ns]] = c
	}

	b.curClass = c
	b.curMethod = nil
	b.idx.stats.Classes++

	return nil
}

func (b *Builder) addField(r tinyv2.Record) error {
	if b.curClass == nil {
		return tinyv2.Errorf(r.Line, tinyv2.CodeOrphanEntry, "field entry before any class entry")
	}

	if err := validateDescriptor(r); err != nil {
		return err
	}

	f := &FieldEntry{Descriptor: r.Descriptor, Names: r.Names}

	for ns, name := range r.Names {
		if name == "" {
			// Unnamed in this namespace; not addressable here.
			continue
		}

		b.curClass.fields[ns][MemberKey{Name: name, Descriptor: r.Descriptor}] = f
	}

	b.curMethod = nil
	b.idx.stats.Fields++

	return nil
}

func (b *Builder) addMethod(r tinyv2.Record) error {
	if b.curClass == nil {
		return tinyv2.Errorf(r.Line, tinyv2.CodeOrphanEntry, "method entry before any class entry")
	}

	if err := validateDescriptor(r); err != nil {
		return err
	}

	m := &MethodEntry{Descriptor: r.Descriptor, Names: r.Names}

	for ns, name := range r.Names {
		if name == "" {
			continue
		}

		b.curClass.methods[ns][MemberKey{Name: name, Descriptor: r.Descriptor}] = m
	}

	b.curMethod = m
	b.idx.stats.Methods++

	return nil
}

func (b *Builder) addParameter(r tinyv2.Record) error {
	if b.curMethod == nil {
		return tinyv2.Errorf(r.Line, tinyv2.CodeOrphanEntry, "parameter entry with no enclosing method entry")
	}

	b.curMethod.Parameters = append(b.curMethod.Parameters, ParameterEntry{
		Index: r.ParamIndex,
		Names: r.Names,
	})
	b.idx.stats.Parameters++

	return nil
}

// validateDescriptor checks a member descriptor structurally at build time,
// so malformed descriptors fail the load instead of poisoning query-time
// translation. Fields must carry field-type descriptors, methods method
// descriptors.
func validateDescriptor(r tinyv2.Record) error {
	keep := func(name string) (string, bool) { return name, false }

	var err error
	if r.Kind == tinyv2.KindMethod {
		_, err = descriptor.RemapMethod(r.Descriptor, keep)
	} else {
		_, err = descriptor.RemapField(r.Descriptor, keep)
	}

	if err != nil {
		return tinyv2.Errorf(r.Line, tinyv2.CodeInvalidDescriptor, "%s descriptor %q: %v", r.Kind, r.Descriptor, err)
	}

	return nil
}

func (b *Builder) hashRecord(r tinyv2.Record) {
	b.hashField(strconv.Itoa(int(r.Kind)))
	b.hashField(r.Descriptor)
	b.hashField(strconv.Itoa(r.ParamIndex))
	b.hashField(r.Text)

	for _, name := range r.Names {
		b.hashField(name)
	}
}

func (b *Builder) hashField(s string) {
	// Digest.WriteString never returns an error.
	_, _ = b.hash.WriteString(s)
	_, _ = b.hash.Write([]byte{0})
}
