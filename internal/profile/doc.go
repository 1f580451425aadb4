// Package profile loads the optional YAML remap profile consumed by the CLI:
// which mapping file to load, which namespace pair to query with, and how
// large the descriptor translation cache should be.
package profile
