package application

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"jira-dashboard/internal/infrastructure"
)

// newProjectsCommand creates the projects command.
func newProjectsCommand(opts *settings, registry *infrastructure.Registry, tokens *infrastructure.TokenStore) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List the projects visible to the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, _, err := connect(opts, registry, tokens)
			if err != nil {
				return err
			}

			projects, err := conn.QueryProjects()
			if err != nil {
				return err
			}

			if asJSON {
				data, err := json.MarshalIndent(projects, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal projects: %w", err)
				}
				cmd.Println(string(data))
				return nil
			}

			rows := make([][]string, 0, len(projects))
			for _, project := range projects {
				rows = append(rows, []string{
					stringField(project, "key"),
					stringField(project, "name"),
					stringField(project, "id"),
				})
			}
			cmd.Println(RenderTable([]string{"key", "name", "id"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw project objects as JSON")

	return cmd
}

// stringField reads a top-level field of a decoded JSON object as a string.
func stringField(object map[string]any, name string) string {
	value, ok := object[name]
	if !ok || value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}
