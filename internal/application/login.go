package application

import (
	"fmt"

	"github.com/spf13/cobra"

	"jira-dashboard/internal/infrastructure"
)

// newLoginCommand creates the login command, which stores an API token in
// the OS keychain so later invocations can omit --token.
func newLoginCommand(opts *settings, tokens *infrastructure.TokenStore) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an API token in the OS keychain",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := opts.resolve(tokens)
			if err != nil {
				return err
			}
			if params.username == "" {
				return fmt.Errorf("--username is required to store a token")
			}
			if opts.token == "" {
				return fmt.Errorf("--token is required: pass the API token to store")
			}

			if err := tokens.Save(params.baseURL, params.username, opts.token); err != nil {
				return err
			}
			cmd.Printf("Stored token for %s at %s\n", params.username, params.baseURL)
			return nil
		},
	}

	return cmd
}

// newLogoutCommand creates the logout command, which removes a stored token.
func newLogoutCommand(opts *settings, tokens *infrastructure.TokenStore) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Remove a stored API token from the OS keychain",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := opts.resolve(tokens)
			if err != nil {
				return err
			}
			if params.username == "" {
				return fmt.Errorf("--username is required to remove a token")
			}

			if err := tokens.Delete(params.baseURL, params.username); err != nil {
				return err
			}
			cmd.Printf("Removed token for %s at %s\n", params.username, params.baseURL)
			return nil
		},
	}

	return cmd
}
