package request

import (
	"strings"

	"golang.org/x/net/http/httpguts"
)

// Header is a single name/value pair. Callers rely on header order, so
// parsed headers are kept as a slice rather than a map.
type Header struct {
	Name  string
	Value string
}

// ParseHeader splits raw on the first colon and trims both sides.
func ParseHeader(raw string) (Header, error) {
	name, value, found := strings.Cut(raw, ":")
	if !found {
		return Header{}, &HeaderFormatError{Header: raw}
	}

	h := Header{
		Name:  strings.TrimSpace(name),
		Value: strings.TrimSpace(value),
	}

	if !httpguts.ValidHeaderFieldName(h.Name) || !httpguts.ValidHeaderFieldValue(h.Value) {
		return Header{}, &HeaderValueError{Name: h.Name, Value: h.Value}
	}

	return h, nil
}

// ParseHeaders parses every raw header string, preserving order. The first
// invalid header fails the whole set.
func ParseHeaders(raw []string) ([]Header, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	headers := make([]Header, 0, len(raw))
	for _, r := range raw {
		h, err := ParseHeader(r)
		if err != nil {
			return nil, err
		}
		headers = append(headers, h)
	}
	return headers, nil
}
