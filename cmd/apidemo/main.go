// Command apidemo calls the self-test endpoint of a running SimbaID backend
// and prints the response body.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/simbaid/backend/internal/probe"
	"github.com/simbaid/backend/internal/version"
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "apidemo [base-url]",
		Short:   "Probe GET /api/v1/testall on a running " + version.Name,
		Long: `apidemo issues GET {base-url}/api/v1/testall and prints the body.

The base URL comes from the first argument, then the API_URL environment
variable, then ` + probe.DefaultBaseURL + `. When the server answers
404 {"detail":"Not Found"}, the request is retried once on port 8001.`,
		Version:       version.Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var arg string
			if len(args) > 0 {
				arg = args[0]
			}
			base := probe.ResolveBaseURL(arg, os.Getenv("API_URL"))

			res, err := (&probe.Client{}).TestAll(cmd.Context(), base)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Body)
			return nil
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
