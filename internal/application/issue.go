package application

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"jira-dashboard/internal/infrastructure"
)

// newIssueCommand creates the issue command.
func newIssueCommand(opts *settings, registry *infrastructure.Registry, tokens *infrastructure.TokenStore) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "issue KEY",
		Short: "Show a single issue by key or id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, _, err := connect(opts, registry, tokens)
			if err != nil {
				return err
			}

			issue, err := conn.QueryIssue(args[0])
			if err != nil {
				return err
			}

			if asJSON {
				data, err := json.MarshalIndent(issue, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal issue: %w", err)
				}
				cmd.Println(string(data))
				return nil
			}

			cmd.Println(Header.Render(stringField(issue, "key")))
			fields, _ := issue["fields"].(map[string]any)
			cmd.Printf("  summary:  %s\n", stringField(fields, "summary"))
			cmd.Printf("  status:   %s\n", nestedName(fields, "status"))
			cmd.Printf("  assignee: %s\n", assigneeName(fields))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw issue object as JSON")

	return cmd
}

// nestedName reads the display name of a nested field like status or
// issuetype, which the API returns as an object with a "name" key.
func nestedName(fields map[string]any, field string) string {
	nested, _ := fields[field].(map[string]any)
	return stringField(nested, "name")
}

// assigneeName reads the assignee display name. Unassigned issues carry a
// null assignee.
func assigneeName(fields map[string]any) string {
	assignee, ok := fields["assignee"].(map[string]any)
	if !ok {
		return "Unassigned"
	}
	return stringField(assignee, "displayName")
}
