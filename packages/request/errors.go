package request

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSource is returned when neither a request file nor a host was given.
	ErrNoSource = errors.New("either --file or --host is required")

	// ErrBothSources is returned when a request file and a host were both given.
	ErrBothSources = errors.New("--file and --host are mutually exclusive")
)

// FileError indicates the request file could not be read from disk.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("cannot read request file %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// ParseError indicates a request file that is not valid JSON or does not
// match the descriptor format.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "invalid request file: " + e.Reason
}

// HeaderFormatError indicates a header string with no colon separator.
type HeaderFormatError struct {
	Header string
}

func (e *HeaderFormatError) Error() string {
	return fmt.Sprintf("invalid header format: %q (expected \"Key: Value\")", e.Header)
}

// HeaderValueError indicates a header name or value with characters that are
// not legal in HTTP header syntax.
type HeaderValueError struct {
	Name  string
	Value string
}

func (e *HeaderValueError) Error() string {
	return fmt.Sprintf("invalid header %q: illegal characters in name or value", e.Name+": "+e.Value)
}

// UnsupportedMethodError indicates a method outside the supported set.
type UnsupportedMethodError struct {
	Method string
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("unsupported method: %s (supported: GET, POST, PUT, DELETE)", e.Method)
}
