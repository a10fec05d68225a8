package http

// NetworkError wraps a transport-level failure: DNS, refused connection,
// timeout, TLS handshake.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "request failed: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ResponseReadError wraps a failure while reading the response body after
// the request itself succeeded.
type ResponseReadError struct {
	Err error
}

func (e *ResponseReadError) Error() string {
	return "cannot read response body: " + e.Err.Error()
}

func (e *ResponseReadError) Unwrap() error {
	return e.Err
}
