package cmd

import (
	"errors"

	"github.com/Leonardo-Luz/fetch-cli/packages/http"
	"github.com/Leonardo-Luz/fetch-cli/packages/request"
)

// Exit codes for the fetch CLI
const (
	// ExitSuccess indicates the request was sent and the response rendered
	ExitSuccess = 0

	// ExitRequestError indicates the request could not be built: unreadable
	// or invalid request file, malformed header, or unsupported method
	ExitRequestError = 2

	// ExitNetworkError indicates a transport failure or an unreadable response
	ExitNetworkError = 4

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)

// exitCode classifies err into the exit code table. Validation failures exit
// non-zero even though no request was sent.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, request.ErrNoSource) || errors.Is(err, request.ErrBothSources) {
		return ExitUsageError
	}

	var (
		fileErr   *request.FileError
		parseErr  *request.ParseError
		formatErr *request.HeaderFormatError
		valueErr  *request.HeaderValueError
		methodErr *request.UnsupportedMethodError
		netErr    *http.NetworkError
		readErr   *http.ResponseReadError
	)

	switch {
	case errors.As(err, &fileErr),
		errors.As(err, &parseErr),
		errors.As(err, &formatErr),
		errors.As(err, &valueErr),
		errors.As(err, &methodErr):
		return ExitRequestError
	case errors.As(err, &netErr),
		errors.As(err, &readErr):
		return ExitNetworkError
	}

	return 1
}
