package tinyv2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeader(t *testing.T) {
	h, err := ParseHeader("tiny\t2\t0\tofficial\tintermediary\tnamed")
	require.NoError(t, err)

	assert.Equal(t, 2, h.Major)
	assert.Equal(t, 0, h.Minor)
	assert.Equal(t, []string{"official", "intermediary", "named"}, h.Namespaces)
}

func TestParseHeaderRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"wrong tag", "shiny\t2\t0\tofficial\tnamed"},
		{"empty line", ""},
		{"missing namespaces", "tiny\t2\t0\tofficial"},
		{"no namespaces", "tiny\t2\t0"},
		{"bad major", "tiny\ttwo\t0\tofficial\tnamed"},
		{"unsupported major", "tiny\t1\t0\tofficial\tnamed"},
		{"bad minor", "tiny\t2\tx\tofficial\tnamed"},
		{"empty namespace", "tiny\t2\t0\tofficial\t\tnamed"},
		{"duplicate namespace", "tiny\t2\t0\tofficial\tofficial\tnamed"},
		{"space separated", "tiny 2 0 official named"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHeader(tt.line)
			require.Error(t, err)

			var ferr *FormatError
			require.ErrorAs(t, err, &ferr)
			assert.Equal(t, CodeInvalidHeader, ferr.Code)
			assert.Equal(t, 1, ferr.Line)
		})
	}
}

func TestNamespaceIndex(t *testing.T) {
	h := Header{Namespaces: []string{"official", "intermediary", "named"}}

	assert.Equal(t, 0, h.NamespaceIndex("official"))
	assert.Equal(t, 2, h.NamespaceIndex("named"))
	assert.Equal(t, -1, h.NamespaceIndex("snapshot"))
}
