// Package index assembles parsed TINY v2 records into an immutable,
// namespace-aware lookup structure.
//
// # Key capabilities
//
//   - Per-namespace class tables (O(1) class name translation for any pair)
//   - Per-namespace member tables keyed by (name, official descriptor),
//     so overloaded methods resolve on the full composite identity
//   - Build-time validation: duplicate official class names, orphaned
//     members, malformed member descriptors
//   - Content fingerprint (xxhash) identifying a loaded mapping set
//
// The index is built once, record by record, during the parser's streaming
// pass and is immutable afterwards: concurrent read-only queries need no
// locking.
package index
