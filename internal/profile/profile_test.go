package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	data := `
mappings: mappings/1.21.1.tiny
query: intermediary
target: official
descriptor_cache: 64
`

	p, err := Parse([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, "mappings/1.21.1.tiny", p.Mappings)
	assert.Equal(t, "intermediary", p.Query)
	assert.Equal(t, "official", p.Target)
	assert.Equal(t, 64, p.DescriptorCache)
}

func TestParseAppliesDefaults(t *testing.T) {
	p, err := Parse([]byte("mappings: x.tiny\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultQuery, p.Query)
	assert.Equal(t, DefaultTarget, p.Target)
	assert.Equal(t, DefaultDescriptorCache, p.DescriptorCache)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("query: [unclosed\n"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("query: named\ntarget: intermediary\n"), 0o644))

	p, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "intermediary", p.Target)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
