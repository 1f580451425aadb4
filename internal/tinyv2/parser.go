package tinyv2

import (
	"strconv"
	"strings"
)

// Handler receives the header, then every record, in file order. Returning
// an error aborts the parse and propagates the error unchanged. The index
// builder implements this so the index assembles during the same pass.
type Handler interface {
	Header(Header) error
	Record(Record) error
}

// Parse parses a complete TINY v2 mapping file in a single forward pass,
// handing the header and each entry line to h. The only state carried
// between lines is the nearest enclosing class and method, so the pass needs
// no backtracking and no random access.
//
// Blank lines and `#` comment lines are skipped. Unknown tags at any depth
// are skipped as forward-compatible extensions; structurally broken lines
// fail with a *FormatError.
func Parse(data []byte, h Handler) error {
	lines := strings.Split(string(data), "\n")

	header, err := ParseHeader(strings.TrimSuffix(lines[0], "\r"))
	if err != nil {
		return err
	}

	if err := h.Header(header); err != nil {
		return err
	}

	p := parser{nsCount: len(header.Namespaces), emit: h.Record}

	for i, line := range lines[1:] {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := p.parseLine(i+2, line); err != nil {
			return err
		}
	}

	return nil
}

// collector is the Handler behind ParseAll.
type collector struct {
	header  Header
	records []Record
}

func (c *collector) Header(h Header) error {
	c.header = h
	return nil
}

func (c *collector) Record(r Record) error {
	c.records = append(c.records, r)
	return nil
}

// ParseAll parses a complete file and collects every record into a slice.
func ParseAll(data []byte) (Header, []Record, error) {
	var c collector
	if err := Parse(data, &c); err != nil {
		return Header{}, nil, err
	}

	return c.header, c.records, nil
}

// parser is the per-file streaming state: whether a class is open, and
// whether the most recent member under it was a method.
type parser struct {
	nsCount  int
	emit     func(Record) error
	inClass  bool
	inMethod bool
}

func (p *parser) parseLine(lineNo int, line string) error {
	depth := 0
	for depth < len(line) && line[depth] == '\t' {
		depth++
	}

	fields := strings.Split(line[depth:], "\t")

	switch depth {
	case 0:
		return p.parseClassLine(lineNo, fields)
	case 1:
		return p.parseMemberLine(lineNo, fields)
	case 2:
		return p.parseParameterLine(lineNo, fields)
	default:
		// Deeper levels only hold parameter comments and extensions.
		return nil
	}
}

func (p *parser) parseClassLine(lineNo int, fields []string) error {
	if fields[0] != tagClass {
		return nil
	}

	if len(fields) < 1+p.nsCount {
		return Errorf(lineNo, CodeTruncatedLine, "class entry has %d of %d required fields", len(fields), 1+p.nsCount)
	}

	names := fields[1 : 1+p.nsCount]

	for i, name := range names {
		if name == "" {
			return Errorf(lineNo, CodeTruncatedLine, "empty class name in namespace %d", i)
		}
	}

	p.inClass = true
	p.inMethod = false

	return p.emit(Record{Kind: KindClass, Line: lineNo, Names: names})
}

func (p *parser) parseMemberLine(lineNo int, fields []string) error {
	kind := KindField

	switch fields[0] {
	case tagField:
	case tagMethod:
		kind = KindMethod
	case tagClass:
		// Class-level comment. Not consumed by remapping, retained for
		// round-trip fidelity.
		return p.emit(Record{Kind: KindComment, Line: lineNo, Text: strings.Join(fields[1:], "\t")})
	default:
		return nil
	}

	if !p.inClass {
		return Errorf(lineNo, CodeOrphanEntry, "%s entry before any class entry", kind)
	}

	if len(fields) < 2+p.nsCount {
		return Errorf(lineNo, CodeTruncatedLine, "%s entry has %d of %d required fields", kind, len(fields), 2+p.nsCount)
	}

	p.inMethod = kind == KindMethod

	return p.emit(Record{
		Kind:       kind,
		Line:       lineNo,
		Descriptor: fields[1],
		Names:      fields[2 : 2+p.nsCount],
	})
}

func (p *parser) parseParameterLine(lineNo int, fields []string) error {
	if fields[0] != tagParameter {
		return nil
	}

	if !p.inMethod {
		return Errorf(lineNo, CodeOrphanEntry, "parameter entry with no enclosing method entry")
	}

	if len(fields) < 2+p.nsCount {
		return Errorf(lineNo, CodeTruncatedLine, "parameter entry has %d of %d required fields", len(fields), 2+p.nsCount)
	}

	idx, err := strconv.Atoi(fields[1])
	if err != nil || idx < 0 {
		return Errorf(lineNo, CodeTruncatedLine, "malformed parameter index %q", fields[1])
	}

	return p.emit(Record{
		Kind:       KindParameter,
		Line:       lineNo,
		ParamIndex: idx,
		Names:      fields[2 : 2+p.nsCount],
	})
}
