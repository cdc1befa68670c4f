package application

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"jira-dashboard/internal/domain"
	"jira-dashboard/internal/infrastructure"
)

// settings holds the persistent flags shared by every dashboard command.
type settings struct {
	configPath string
	instance   string
	baseURL    string
	username   string
	token      string
}

// connParams is one fully resolved set of connection parameters.
type connParams struct {
	baseURL    string
	authType   domain.AuthType
	username   string
	token      string
	maxResults int
}

// NewRootCommand creates the jiradash root command with all subcommands
// registered. Connections are memoized in a registry for the lifetime of
// the invocation and torn down when the command finishes.
func NewRootCommand(version string) *cobra.Command {
	opts := &settings{}
	registry := infrastructure.NewRegistry()
	tokens := infrastructure.NewTokenStore("")

	cmd := &cobra.Command{
		Use:   "jiradash",
		Short: "Terminal dashboard for Jira projects, issues, and JQL queries",
		Long: `jiradash is a terminal dashboard over the Jira Cloud REST API.

It authenticates with basic auth (username + API token) and renders
projects, single issues, and JQL query results for quick inspection.
Credentials come from flags, a YAML configuration file, or the operating
system keychain, in that order.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			registry.CloseAll()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flags.StringVar(&opts.instance, "instance", "", "Named instance from the configuration file")
	flags.StringVar(&opts.baseURL, "base-url", "", "Jira base URL (e.g., https://instance.atlassian.net)")
	flags.StringVar(&opts.username, "username", "", "Jira username (e.g., you@example.com)")
	flags.StringVar(&opts.token, "token", "", "Jira API token (falls back to the OS keychain)")

	cmd.AddCommand(
		newProjectsCommand(opts, registry, tokens),
		newIssueCommand(opts, registry, tokens),
		newJQLCommand(opts, registry, tokens),
		newDashboardCommand(opts, registry, tokens),
		newLoginCommand(opts, tokens),
		newLogoutCommand(opts, tokens),
	)

	return cmd
}

// resolve builds the effective connection parameters. Flags win over the
// configuration file; a token absent from both falls back to the keychain.
func (o *settings) resolve(tokens *infrastructure.TokenStore) (*connParams, error) {
	params := &connParams{
		baseURL:    o.baseURL,
		authType:   domain.BasicAuth,
		username:   o.username,
		token:      o.token,
		maxResults: domain.DefaultMaxResults,
	}

	if o.configPath != "" {
		config, err := domain.LoadConfig(o.configPath)
		if err != nil {
			return nil, err
		}
		instance, err := config.Instance(o.instance)
		if err != nil {
			return nil, err
		}
		if params.baseURL == "" {
			params.baseURL = instance.BaseURL
		}
		if instance.Auth != nil {
			params.authType = domain.ParseAuthType(instance.Auth.Type)
			if params.username == "" {
				params.username = instance.Auth.Username
			}
			if params.token == "" {
				params.token = instance.Auth.Token
			}
		}
		if config.Dashboard.MaxResults > 0 {
			params.maxResults = config.Dashboard.MaxResults
		}
	} else if o.instance != "" {
		return nil, fmt.Errorf("--instance requires --config")
	}

	if params.baseURL == "" {
		return nil, fmt.Errorf("no Jira instance selected: pass --base-url or --config")
	}

	// Last resort: a token previously stored with jiradash login
	if params.token == "" && params.username != "" {
		stored, err := tokens.Load(params.baseURL, params.username)
		if err != nil && !errors.Is(err, infrastructure.ErrNoStoredToken) {
			return nil, err
		}
		params.token = stored
	}

	return params, nil
}

// connect resolves parameters and returns the memoized connection for them.
func connect(opts *settings, registry *infrastructure.Registry, tokens *infrastructure.TokenStore) (*infrastructure.Connection, *connParams, error) {
	params, err := opts.resolve(tokens)
	if err != nil {
		return nil, nil, err
	}

	creds := &domain.Credentials{
		Type:     params.authType,
		Username: params.username,
		Token:    params.token,
	}
	conn, err := registry.Get(params.baseURL, creds)
	if err != nil {
		return nil, nil, err
	}
	return conn, params, nil
}
