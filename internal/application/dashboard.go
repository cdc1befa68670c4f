package application

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"jira-dashboard/internal/domain"
	"jira-dashboard/internal/infrastructure"
)

// defaultDashboardJQL selects recently created issues, oldest first.
const defaultDashboardJQL = "created >= -30d order by created ASC"

// newDashboardCommand creates the dashboard command.
func newDashboardCommand(opts *settings, registry *infrastructure.Registry, tokens *infrastructure.TokenStore) *cobra.Command {
	var jql string
	var maxResults int

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Summarize issues by status and list the unassigned backlog",
		Long: `Fetch the issues matching a JQL query and print a summary view:
total, completed and in-progress counts, a per-status breakdown, and a
table of issues that have no assignee.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, params, err := connect(opts, registry, tokens)
			if err != nil {
				return err
			}

			if maxResults <= 0 {
				maxResults = params.maxResults
			}

			result, err := conn.QueryJQL(jql, domain.ReturnFrame, maxResults)
			if err != nil {
				return err
			}
			frame := result.(*domain.Frame)
			if frame.NumRows() == 0 {
				cmd.Println("No issues found")
				return nil
			}

			statuses, counts := statusBreakdown(frame)

			cmd.Println(Header.Render("Key Metrics"))
			cmd.Printf("  total issues: %d\n", frame.NumRows())
			cmd.Printf("  completed:    %d\n", counts["Done"])
			cmd.Printf("  in progress:  %d\n", counts["In Progress"])
			cmd.Println()

			cmd.Println(Header.Render("Status Breakdown"))
			rows := make([][]string, 0, len(statuses))
			for _, status := range statuses {
				rows = append(rows, []string{status, fmt.Sprintf("%d", counts[status])})
			}
			cmd.Println(RenderTable([]string{"status", "count"}, rows))

			cmd.Println(Header.Render("Unassigned Backlog"))
			backlog := unassignedRows(frame)
			if len(backlog) == 0 {
				cmd.Println(Muted.Render("No unassigned issues"))
				return nil
			}
			cmd.Println(RenderTable([]string{"key", "summary", "status"}, backlog))
			return nil
		},
	}

	cmd.Flags().StringVar(&jql, "jql", defaultDashboardJQL, "JQL query selecting the issues to summarize")
	cmd.Flags().IntVar(&maxResults, "max-results", 0, "Maximum number of issues to fetch (default from config)")

	return cmd
}

// statusBreakdown counts issues per status name, sorted alphabetically.
// Issues without a status are grouped under "Unknown".
func statusBreakdown(frame *domain.Frame) ([]string, map[string]int) {
	column, _ := frame.Column("fields.status.name")

	counts := make(map[string]int)
	for i := 0; i < frame.NumRows(); i++ {
		name := "Unknown"
		if column != nil {
			if s, ok := column[i].(string); ok && s != "" {
				name = s
			}
		}
		counts[name]++
	}

	statuses := make([]string, 0, len(counts))
	for name := range counts {
		statuses = append(statuses, name)
	}
	sort.Strings(statuses)
	return statuses, counts
}

// unassignedRows returns key/summary/status rows for the issues whose
// assignee is null.
func unassignedRows(frame *domain.Frame) [][]string {
	assignees, hasAssignees := frame.Column("fields.assignee.displayName")
	keys, _ := frame.Column("key")
	summaries, _ := frame.Column("fields.summary")
	statuses, _ := frame.Column("fields.status.name")

	var rows [][]string
	for i := 0; i < frame.NumRows(); i++ {
		if hasAssignees && assignees[i] != nil {
			continue
		}
		rows = append(rows, []string{cell(keys, i), cell(summaries, i), cell(statuses, i)})
	}
	return rows
}

// cell renders a single column value for display. Absent columns and nil
// cells render empty.
func cell(column []any, row int) string {
	if column == nil || column[row] == nil {
		return ""
	}
	if s, ok := column[row].(string); ok {
		return s
	}
	return fmt.Sprintf("%v", column[row])
}
