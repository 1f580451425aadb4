package remap

import (
	"fmt"
	"io"

	"tiny-remapper/internal/index"
)

// Load reads a whole TINY v2 mapping stream and builds a Remapper over it.
// The stream is parsed in one pass; on any structural error no Remapper is
// produced. Opening files or sockets is the caller's business.
func Load(r io.Reader, opts ...Option) (*Remapper, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read mapping stream: %w", err)
	}

	return LoadBytes(data, opts...)
}

// LoadBytes builds a Remapper from an in-memory mapping file.
func LoadBytes(data []byte, opts ...Option) (*Remapper, error) {
	idx, err := index.Load(data)
	if err != nil {
		return nil, err
	}

	return New(idx, opts...)
}
