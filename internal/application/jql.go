package application

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"jira-dashboard/internal/domain"
	"jira-dashboard/internal/infrastructure"
)

// newJQLCommand creates the jql command.
func newJQLCommand(opts *settings, registry *infrastructure.Registry, tokens *infrastructure.TokenStore) *cobra.Command {
	var output string
	var maxResults int

	cmd := &cobra.Command{
		Use:   "jql QUERY",
		Short: "Run a JQL query and render the matching issues",
		Long: `Run a JQL query against the search endpoint.

The --output flag selects the result shape: "dataframe" renders a table
with one row per issue, "list" prints the raw issue objects as JSON, and
"count" prints only the total number of matches.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ret, err := domain.ParseReturnType(output)
			if err != nil {
				return err
			}

			conn, params, err := connect(opts, registry, tokens)
			if err != nil {
				return err
			}

			if maxResults <= 0 {
				maxResults = params.maxResults
			}

			result, err := conn.QueryJQL(args[0], ret, maxResults)
			if err != nil {
				return err
			}

			switch ret {
			case domain.ReturnCount:
				cmd.Printf("%d\n", result)
			case domain.ReturnList:
				data, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal issues: %w", err)
				}
				cmd.Println(string(data))
			default:
				frame := result.(*domain.Frame)
				cmd.Println(RenderFrame(frame))
				cmd.Println(Muted.Render(fmt.Sprintf("%d issue(s)", frame.NumRows())))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "dataframe", "Result shape: count, list, or dataframe")
	cmd.Flags().IntVar(&maxResults, "max-results", 0, "Maximum number of issues to fetch (default from config)")

	return cmd
}
