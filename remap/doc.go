// Package remap is the public query surface over a loaded TINY v2 mapping
// set: translate class, method, and field names between two namespaces fixed
// at load time (by default the human-readable "named" namespace to the
// obfuscated "official" one).
//
// A Remapper is immutable after Load and safe for concurrent use. Queries
// are pure: an unknown name is absence (ok == false), never an error.
// Structural problems in the mapping file fail Load instead, so a partial
// mapping set is never exposed.
package remap
