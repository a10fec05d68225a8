package request

// Spec is the fully resolved request: everything needed to send it once.
// It is constructed by a Source and not mutated afterwards.
type Spec struct {
	URL     string
	Method  string
	Body    string
	Headers []Header
}

// Source resolves a Spec from one concrete input.
type Source interface {
	Resolve() (*Spec, error)
}

// FlagSource builds a Spec from the command-line flag set.
type FlagSource struct {
	Host    string
	Method  string
	Body    string
	Headers []string
}

func (s FlagSource) Resolve() (*Spec, error) {
	method, err := ParseMethod(s.Method)
	if err != nil {
		return nil, err
	}

	headers, err := ParseHeaders(s.Headers)
	if err != nil {
		return nil, err
	}

	return &Spec{
		URL:     s.Host,
		Method:  method,
		Body:    s.Body,
		Headers: headers,
	}, nil
}

// Resolve picks exactly one source: the descriptor file when path is
// non-empty, the flag set otherwise. Selecting both or neither is a usage
// error, caught before any file or network I/O.
func Resolve(path string, flags FlagSource) (*Spec, error) {
	switch {
	case path != "" && flags.Host != "":
		return nil, ErrBothSources
	case path == "" && flags.Host == "":
		return nil, ErrNoSource
	case path != "":
		return FileSource{Path: path}.Resolve()
	default:
		return flags.Resolve()
	}
}
