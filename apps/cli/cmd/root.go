package cmd

import (
	"os"

	"github.com/Leonardo-Luz/fetch-cli/packages/http"
	"github.com/Leonardo-Luz/fetch-cli/packages/output"
	"github.com/Leonardo-Luz/fetch-cli/packages/request"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var (
	fileFlag    string
	hostFlag    string
	methodFlag  string
	bodyFlag    string
	headerFlags []string
	verboseFlag bool
	noColorFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "fetch",
	Short: "A basic HTTP client CLI",
	Long: `fetch sends a single HTTP request described either by command-line
flags or by a JSON request file, then prints the status code and the
response body (pretty-printed when the body is JSON).

Examples:
  fetch --host https://example.com
  fetch --host https://api.example.com/users --method post \
    --header "Content-Type: application/json" --body '{"name":"ana"}'
  fetch --file request.json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          rootCommand,
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		renderer := output.NewConsoleRenderer(output.WithNoColor(noColorFlag))
		renderer.RenderError(err)
		os.Exit(exitCode(err))
	}
}

func init() {
	rootCmd.Flags().StringVar(&fileFlag, "file", "", "Path to a JSON file describing the request")
	rootCmd.Flags().StringVar(&hostFlag, "host", "", "Target host URL (e.g. https://example.com)")
	rootCmd.Flags().StringVar(&methodFlag, "method", "GET", "HTTP method: GET, POST, PUT, DELETE")
	rootCmd.Flags().StringVar(&bodyFlag, "body", "", "Request body as a literal string")
	rootCmd.Flags().StringArrayVar(&headerFlags, "header", nil, `Request header in the form "Key: Value" (repeatable)`)
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Print response headers and timing")
	rootCmd.Flags().BoolVar(&noColorFlag, "no-color", getEnvBool("FETCH_NO_COLOR", false), "Disable colored output (env: FETCH_NO_COLOR)")

	rootCmd.AddCommand(versionCmd)
}

func rootCommand(cmd *cobra.Command, args []string) error {
	spec, err := request.Resolve(fileFlag, request.FlagSource{
		Host:    hostFlag,
		Method:  methodFlag,
		Body:    bodyFlag,
		Headers: headerFlags,
	})
	if err != nil {
		return err
	}

	client := http.NewClient(http.WithUserAgent("fetch/" + version))

	resp, err := client.Do(cmd.Context(), spec)
	if err != nil {
		return err
	}

	renderer := output.NewConsoleRenderer(
		output.WithWriter(cmd.OutOrStdout()),
		output.WithErrWriter(cmd.ErrOrStderr()),
		output.WithVerbose(verboseFlag),
		output.WithNoColor(noColorFlag),
	)
	renderer.RenderResponse(resp)

	return nil
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}
