package tinyv2

import "fmt"

// ErrorCode identifies a class of structural failure in a mapping file.
type ErrorCode string

const (
	// CodeInvalidHeader marks a first line that is not a valid TINY v2 header.
	CodeInvalidHeader ErrorCode = "invalid_header"
	// CodeTruncatedLine marks an entry line with fewer fields than required.
	CodeTruncatedLine ErrorCode = "truncated_line"
	// CodeOrphanEntry marks a member line with no enclosing class, or a
	// parameter line with no enclosing method.
	CodeOrphanEntry ErrorCode = "orphan_entry"
	// CodeDuplicateClass marks a second class record sharing an official name.
	CodeDuplicateClass ErrorCode = "duplicate_class"
	// CodeInvalidDescriptor marks a member record whose descriptor does not
	// parse as a JVM type descriptor.
	CodeInvalidDescriptor ErrorCode = "invalid_descriptor"
)

// FormatError is a structural failure in a mapping file. Load either fully
// succeeds or fails with one of these; partial mapping sets are never exposed.
type FormatError struct {
	// Line is the 1-based line number of the offending line.
	Line int
	// Code classifies the failure.
	Code ErrorCode
	// Reason is the human-readable detail.
	Reason string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: [%s] %s", e.Line, e.Code, e.Reason)
}

// Errorf builds a FormatError for the given line and code.
func Errorf(line int, code ErrorCode, format string, args ...any) *FormatError {
	return &FormatError{Line: line, Code: code, Reason: fmt.Sprintf(format, args...)}
}
