package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/Leonardo-Luz/fetch-cli/packages/http"
	"github.com/fatih/color"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

type ConsoleRenderer struct {
	writer    io.Writer
	errWriter io.Writer
	verbose   bool
	noColor   bool
}

type ConsoleOption func(*ConsoleRenderer)

func NewConsoleRenderer(opts ...ConsoleOption) *ConsoleRenderer {
	r := &ConsoleRenderer{
		writer:    os.Stdout,
		errWriter: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.noColor {
		color.NoColor = true
	}
	return r
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(r *ConsoleRenderer) {
		r.writer = w
	}
}

func WithErrWriter(w io.Writer) ConsoleOption {
	return func(r *ConsoleRenderer) {
		r.errWriter = w
	}
}

func WithVerbose(v bool) ConsoleOption {
	return func(r *ConsoleRenderer) {
		r.verbose = v
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(r *ConsoleRenderer) {
		r.noColor = nc
	}
}

// RenderResponse prints the status line and the body block. A body that is
// valid JSON is pretty-printed with key order preserved as received;
// anything else is printed verbatim. Rendering never fails the run.
func (r *ConsoleRenderer) RenderResponse(resp *http.Response) {
	fmt.Fprintf(r.writer, "Status: %s\n", r.statusColor(resp)(strconv.Itoa(resp.StatusCode)))

	if r.verbose {
		cyan := color.New(color.FgCyan).SprintFunc()
		fmt.Fprintf(r.writer, "Time: %s\n", cyan(fmt.Sprintf("%dms", resp.DurationMs())))
		fmt.Fprintf(r.writer, "Headers:\n")
		for _, name := range sortedKeys(resp.Headers) {
			fmt.Fprintf(r.writer, "  %s: %s\n", name, resp.Headers[name])
		}
	}

	fmt.Fprintf(r.writer, "Body:\n")
	if gjson.ValidBytes(resp.Body) {
		_, _ = r.writer.Write(pretty.Pretty(resp.Body))
	} else {
		fmt.Fprintf(r.writer, "%s\n", resp.BodyString())
	}
}

func (r *ConsoleRenderer) RenderError(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(r.errWriter, "%s %v\n", red("Error:"), err)
}

func (r *ConsoleRenderer) statusColor(resp *http.Response) func(a ...any) string {
	switch {
	case resp.IsSuccess():
		return color.New(color.FgGreen).SprintFunc()
	case resp.IsRedirect():
		return color.New(color.FgYellow).SprintFunc()
	default:
		return color.New(color.FgRed).SprintFunc()
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
