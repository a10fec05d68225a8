package request

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// fileSchema describes the request descriptor document. Validation runs
// before decoding so that a missing url or method reads as a parse failure
// instead of a zero value.
const fileSchema = `{
  "type": "object",
  "required": ["url", "method"],
  "properties": {
    "url": {"type": "string", "minLength": 1},
    "method": {"type": "string", "minLength": 1},
    "body": {},
    "headers": {
      "type": "array",
      "items": {"type": "string"}
    }
  }
}`

// ValidateFile checks data against the request descriptor schema.
func ValidateFile(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(fileSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &ParseError{Reason: err.Error()}
	}

	if result.Valid() {
		return nil
	}

	var reasons []string
	for _, desc := range result.Errors() {
		reasons = append(reasons, desc.String())
	}
	return &ParseError{Reason: strings.Join(reasons, "; ")}
}
