package request

import "strings"

// supportedMethods is a closed set: PATCH, HEAD and friends are rejected
// rather than passed through.
var supportedMethods = map[string]bool{
	"GET":    true,
	"POST":   true,
	"PUT":    true,
	"DELETE": true,
}

// ParseMethod upper-cases m and checks it against the supported set.
func ParseMethod(m string) (string, error) {
	method := strings.ToUpper(m)
	if !supportedMethods[method] {
		return "", &UnsupportedMethodError{Method: method}
	}
	return method, nil
}
