package tinyv2

import (
	"strconv"
	"strings"
)

// headerTag is the literal first field of every TINY v2 file.
const headerTag = "tiny"

// MajorVersion is the only major format version this parser accepts.
const MajorVersion = 2

// Header is the parsed first line of a mapping file. The namespace list is
// ordered and immutable; every entry below the header provides exactly one
// name per namespace, positionally aligned to it.
type Header struct {
	Major      int
	Minor      int
	Namespaces []string
}

// NamespaceIndex returns the position of the named namespace, or -1 if the
// header does not declare it.
func (h Header) NamespaceIndex(name string) int {
	for i, ns := range h.Namespaces {
		if ns == name {
			return i
		}
	}

	return -1
}

// ParseHeader parses the first line of a mapping file.
// Format: tiny <major> <minor> <namespace>... (tab-separated, >=2 namespaces).
func ParseHeader(line string) (Header, error) {
	fields := strings.Split(line, "\t")
	if fields[0] != headerTag {
		return Header{}, Errorf(1, CodeInvalidHeader, "expected %q tag, got %q", headerTag, fields[0])
	}

	if len(fields) < 5 {
		return Header{}, Errorf(1, CodeInvalidHeader, "expected tag, versions, and at least 2 namespaces, got %d fields", len(fields))
	}

	major, err := strconv.Atoi(fields[1])
	if err != nil {
		return Header{}, Errorf(1, CodeInvalidHeader, "bad major version %q", fields[1])
	}

	if major != MajorVersion {
		return Header{}, Errorf(1, CodeInvalidHeader, "unsupported major version %d", major)
	}

	minor, err := strconv.Atoi(fields[2])
	if err != nil {
		return Header{}, Errorf(1, CodeInvalidHeader, "bad minor version %q", fields[2])
	}

	namespaces := fields[3:]

	seen := make(map[string]struct{}, len(namespaces))

	for _, ns := range namespaces {
		if ns == "" {
			return Header{}, Errorf(1, CodeInvalidHeader, "empty namespace name")
		}

		if _, ok := seen[ns]; ok {
			return Header{}, Errorf(1, CodeInvalidHeader, "duplicate namespace %q", ns)
		}

		seen[ns] = struct{}{}
	}

	return Header{Major: major, Minor: minor, Namespaces: namespaces}, nil
}
