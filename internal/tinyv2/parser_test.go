package tinyv2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFile = "tiny\t2\t0\tofficial\tintermediary\tnamed\n" +
	"c\ta\tclass_123\tpkg/SomeClass\n" +
	"\tf\t[I\ta\tfield_789\tsomeField\n" +
	"\tm\t(III)V\ta\tmethod_456\tsomeMethod\n" +
	"\t\tp\t1\t\t\tcount\n" +
	"c\tb\tclass_456\tpkg/Other\n"

func TestParseAll(t *testing.T) {
	header, records, err := ParseAll([]byte(sampleFile))
	require.NoError(t, err)

	assert.Equal(t, []string{"official", "intermediary", "named"}, header.Namespaces)
	require.Len(t, records, 5)

	assert.Equal(t, KindClass, records[0].Kind)
	assert.Equal(t, 2, records[0].Line)
	assert.Equal(t, []string{"a", "class_123", "pkg/SomeClass"}, records[0].Names)

	assert.Equal(t, KindField, records[1].Kind)
	assert.Equal(t, "[I", records[1].Descriptor)
	assert.Equal(t, []string{"a", "field_789", "someField"}, records[1].Names)

	assert.Equal(t, KindMethod, records[2].Kind)
	assert.Equal(t, "(III)V", records[2].Descriptor)

	assert.Equal(t, KindParameter, records[3].Kind)
	assert.Equal(t, 1, records[3].ParamIndex)
	assert.Equal(t, []string{"", "", "count"}, records[3].Names)

	assert.Equal(t, KindClass, records[4].Kind)
	assert.Equal(t, 6, records[4].Line)
}

func TestParseTolerantInput(t *testing.T) {
	t.Run("blank lines, comments, CRLF", func(t *testing.T) {
		data := "tiny\t2\t0\tofficial\tnamed\r\n" +
			"# generated by mappings exporter\n" +
			"\n" +
			"c\ta\tpkg/A\r\n" +
			"   \n" +
			"\tm\t()V\tx\trun\n"

		_, records, err := ParseAll([]byte(data))
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("unknown tags skipped", func(t *testing.T) {
		data := "tiny\t2\t0\tofficial\tnamed\n" +
			"c\ta\tpkg/A\n" +
			"\tq\tsomething\tweird\n" +
			"\tm\t()V\tx\trun\n" +
			"\t\tv\t0\t1\t2\tlocal\n" +
			"\t\t\tc\tparameter comment\n"

		_, records, err := ParseAll([]byte(data))
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, KindClass, records[0].Kind)
		assert.Equal(t, KindMethod, records[1].Kind)
	})

	t.Run("class comment emitted", func(t *testing.T) {
		data := "tiny\t2\t0\tofficial\tnamed\n" +
			"c\ta\tpkg/A\n" +
			"\tc\tThe main client class.\n"

		_, records, err := ParseAll([]byte(data))
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, KindComment, records[1].Kind)
		assert.Equal(t, "The main client class.", records[1].Text)
	})

	t.Run("extra trailing fields kept as empties", func(t *testing.T) {
		data := "tiny\t2\t0\tofficial\tnamed\n" +
			"c\ta\tpkg/A\t\n"

		_, records, err := ParseAll([]byte(data))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, []string{"a", "pkg/A"}, records[0].Names)
	})
}

func TestParseStructuralErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		code ErrorCode
		line int
	}{
		{
			name: "truncated class line",
			data: "tiny\t2\t0\tofficial\tintermediary\tnamed\n" +
				"c\ta\tpkg/A\n",
			code: CodeTruncatedLine,
			line: 2,
		},
		{
			name: "empty class name",
			data: "tiny\t2\t0\tofficial\tnamed\n" +
				"c\t\tpkg/A\n",
			code: CodeTruncatedLine,
			line: 2,
		},
		{
			name: "truncated field line",
			data: "tiny\t2\t0\tofficial\tnamed\n" +
				"c\ta\tpkg/A\n" +
				"\tf\t[I\ta\n",
			code: CodeTruncatedLine,
			line: 3,
		},
		{
			name: "field before any class",
			data: "tiny\t2\t0\tofficial\tnamed\n" +
				"\tf\t[I\ta\tsomeField\n",
			code: CodeOrphanEntry,
			line: 2,
		},
		{
			name: "parameter before any method",
			data: "tiny\t2\t0\tofficial\tnamed\n" +
				"c\ta\tpkg/A\n" +
				"\t\tp\t0\tx\ty\n",
			code: CodeOrphanEntry,
			line: 3,
		},
		{
			name: "parameter under a field",
			data: "tiny\t2\t0\tofficial\tnamed\n" +
				"c\ta\tpkg/A\n" +
				"\tf\t[I\ta\tsomeField\n" +
				"\t\tp\t0\tx\ty\n",
			code: CodeOrphanEntry,
			line: 4,
		},
		{
			name: "malformed parameter index",
			data: "tiny\t2\t0\tofficial\tnamed\n" +
				"c\ta\tpkg/A\n" +
				"\tm\t()V\tx\trun\n" +
				"\t\tp\tfirst\tx\ty\n",
			code: CodeTruncatedLine,
			line: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseAll([]byte(tt.data))
			require.Error(t, err)

			var ferr *FormatError
			require.ErrorAs(t, err, &ferr)
			assert.Equal(t, tt.code, ferr.Code)
			assert.Equal(t, tt.line, ferr.Line)
		})
	}
}
