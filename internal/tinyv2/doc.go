// Package tinyv2 parses the TINY v2 mapping format: a tab-indented,
// tab-separated text format describing class, field, method, and parameter
// renamings across an ordered set of naming namespaces.
//
// # Key capabilities
//
//   - Header parsing (`tiny\t2\t<minor>\t<namespace>...`)
//   - Single-pass streaming line parser emitting typed records
//   - Hierarchy tracking via tab indentation (class > member > parameter)
//   - Tolerant skipping of forward-compatible sub-tags (comments, locals)
//
// The parser performs no I/O; it consumes an already-materialized byte slice
// and hands each record to a caller-supplied sink in file order. Structural
// problems surface as *FormatError values carrying the offending line number
// and a stable snake_case code.
package tinyv2
