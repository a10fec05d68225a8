package request

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile(t *testing.T) {
	data := []byte(`{
		"url": "https://example.com/users",
		"method": "post",
		"body": {"a": 1},
		"headers": ["X-Test: 1", "Content-Type: application/json"]
	}`)

	file, err := ParseFile(data)
	require.NoError(t, err)

	spec, err := file.Spec()
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/users", spec.URL)
	assert.Equal(t, "POST", spec.Method)
	assert.Equal(t, `{"a":1}`, spec.Body)
	require.Len(t, spec.Headers, 2)
	assert.Equal(t, Header{Name: "X-Test", Value: "1"}, spec.Headers[0])
	assert.Equal(t, Header{Name: "Content-Type", Value: "application/json"}, spec.Headers[1])
}

func TestParseFile_MethodUpperCased(t *testing.T) {
	tests := []struct {
		method string
		want   string
	}{
		{"get", "GET"},
		{"GET", "GET"},
		{"Put", "PUT"},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			file, err := ParseFile([]byte(`{"url": "https://example.com", "method": "` + tt.method + `"}`))
			require.NoError(t, err)

			spec, err := file.Spec()
			require.NoError(t, err)
			assert.Equal(t, tt.want, spec.Method)
		})
	}
}

func TestParseFile_BodySerialization(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "object body compacted",
			body: `{
				"a": 1,
				"b": "two"
			}`,
			want: `{"a":1,"b":"two"}`,
		},
		{
			name: "string body keeps JSON quoting",
			body: `"hello"`,
			want: `"hello"`,
		},
		{
			name: "array body",
			body: `[1, 2, 3]`,
			want: `[1,2,3]`,
		},
		{
			name: "null body",
			body: `null`,
			want: `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := ParseFile([]byte(`{"url": "https://example.com", "method": "post", "body": ` + tt.body + `}`))
			require.NoError(t, err)

			spec, err := file.Spec()
			require.NoError(t, err)
			assert.Equal(t, tt.want, spec.Body)
		})
	}
}

func TestParseFile_NoBody(t *testing.T) {
	file, err := ParseFile([]byte(`{"url": "https://example.com", "method": "get"}`))
	require.NoError(t, err)

	spec, err := file.Spec()
	require.NoError(t, err)
	assert.Empty(t, spec.Body)
}

func TestParseFile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "malformed JSON",
			data: `{"url": "https://example.com"`,
		},
		{
			name: "missing url",
			data: `{"method": "get"}`,
		},
		{
			name: "missing method",
			data: `{"url": "https://example.com"}`,
		},
		{
			name: "url not a string",
			data: `{"url": 42, "method": "get"}`,
		},
		{
			name: "headers not strings",
			data: `{"url": "https://example.com", "method": "get", "headers": [42]}`,
		},
		{
			name: "not an object",
			data: `["https://example.com"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFile([]byte(tt.data))

			require.Error(t, err)
			var parseErr *ParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestFileSource_Resolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "request.json")
	err := os.WriteFile(path, []byte(`{"url": "https://example.com", "method": "delete"}`), 0o644)
	require.NoError(t, err)

	spec, err := FileSource{Path: path}.Resolve()

	require.NoError(t, err)
	assert.Equal(t, "https://example.com", spec.URL)
	assert.Equal(t, "DELETE", spec.Method)
}

func TestFileSource_MissingFile(t *testing.T) {
	_, err := FileSource{Path: filepath.Join(t.TempDir(), "nope.json")}.Resolve()

	require.Error(t, err)
	var fileErr *FileError
	assert.ErrorAs(t, err, &fileErr)
}

func TestFileSource_UnsupportedMethod(t *testing.T) {
	path := filepath.Join(t.TempDir(), "request.json")
	err := os.WriteFile(path, []byte(`{"url": "https://example.com", "method": "patch"}`), 0o644)
	require.NoError(t, err)

	_, err = FileSource{Path: path}.Resolve()

	require.Error(t, err)
	var methodErr *UnsupportedMethodError
	assert.ErrorAs(t, err, &methodErr)
}
