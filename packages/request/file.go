package request

import (
	"bytes"
	"encoding/json"
	"os"
)

// File is the JSON descriptor format for file-based input.
type File struct {
	URL     string          `json:"url"`
	Method  string          `json:"method"`
	Body    json.RawMessage `json:"body,omitempty"`
	Headers []string        `json:"headers,omitempty"`
}

// FileSource builds a Spec from a JSON descriptor on disk.
type FileSource struct {
	Path string
}

func (s FileSource) Resolve() (*Spec, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, &FileError{Path: s.Path, Err: err}
	}

	file, err := ParseFile(data)
	if err != nil {
		return nil, err
	}

	return file.Spec()
}

// ParseFile validates data against the descriptor schema and decodes it.
// Malformed JSON and missing url/method both surface as a ParseError.
func ParseFile(data []byte) (*File, error) {
	if err := ValidateFile(data); err != nil {
		return nil, err
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, &ParseError{Reason: err.Error()}
	}
	return &f, nil
}

// Spec maps the descriptor into a resolved Spec. The body, when present, is
// serialized to compact JSON text regardless of its formatting in the file;
// a string body keeps its JSON quoting.
func (f *File) Spec() (*Spec, error) {
	method, err := ParseMethod(f.Method)
	if err != nil {
		return nil, err
	}

	headers, err := ParseHeaders(f.Headers)
	if err != nil {
		return nil, err
	}

	var body string
	if len(f.Body) > 0 {
		var buf bytes.Buffer
		if err := json.Compact(&buf, f.Body); err != nil {
			return nil, &ParseError{Reason: "body: " + err.Error()}
		}
		body = buf.String()
	}

	return &Spec{
		URL:     f.URL,
		Method:  method,
		Body:    body,
		Headers: headers,
	}, nil
}
