// Package cmd provides the command-line interface for bzquery.
package cmd

import (
	"fmt"

	"github.com/danielolaszy/bzquery/internal/bugzilla"
	"github.com/danielolaszy/bzquery/internal/config"
	"github.com/danielolaszy/bzquery/internal/logging"
	"github.com/danielolaszy/bzquery/internal/report"
	"github.com/spf13/cobra"
)

// newSearcher builds the Bugzilla collaborator. Tests replace it with a fake.
var newSearcher = func(cfg config.BugzillaConfig) (report.Searcher, error) {
	client, err := bugzilla.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// NewRootCmd builds the bzquery root command. Running it with no flags
// queries bugzilla.redhat.com for NEW ovn-kubernetes networking bugs.
func NewRootCmd() *cobra.Command {
	v := config.NewViper()

	rootCmd := &cobra.Command{
		Use:   "bzquery",
		Short: "Bzquery lists Bugzilla bugs matching a fixed filter",
		Long: `Bzquery searches a Bugzilla instance for bugs matching a product,
component, sub-component and status filter and prints a summary of every match.

With no flags it lists NEW bugs in OpenShift Container Platform / Networking /
ovn-kubernetes on bugzilla.redhat.com.

Example:
  bzquery --component Installer --sub-component openshift-installer --status ASSIGNED

Environment variables:
  BUGZILLA_URL, BUGZILLA_API_KEY, BUGZILLA_PRODUCT, BUGZILLA_COMPONENT,
  BUGZILLA_SUB_COMPONENT, BUGZILLA_STATUS, LOG_LEVEL`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			searcher, err := newSearcher(cfg.Bugzilla)
			if err != nil {
				return fmt.Errorf("failed to initialize bugzilla client: %w", err)
			}

			spec := report.BuildFilter(
				cfg.Query.Product,
				cfg.Query.Component,
				cfg.Query.SubComponent,
				cfg.Query.Status)

			reporter := &report.Reporter{
				Searcher: searcher,
				Out:      cmd.OutOrStdout(),
				Timing:   cfg.Timing,
			}
			return reporter.Run(cmd.Context(), spec)
		},
	}

	flags := rootCmd.Flags()
	flags.String("url", config.DefaultURL, "Bugzilla host or base URL")
	flags.StringP("product", "p", config.DefaultProduct, "Product to search")
	flags.StringP("component", "c", config.DefaultComponent, "Component to search")
	flags.StringP("sub-component", "s", config.DefaultSubComponent, "Sub-component to search")
	flags.String("status", config.DefaultStatus, "Bug status to search")
	flags.Bool("timing", true, "Print how long the query took")

	// Flags win over env vars only when set explicitly.
	_ = v.BindPFlag("bugzilla.url", flags.Lookup("url"))
	_ = v.BindPFlag("query.product", flags.Lookup("product"))
	_ = v.BindPFlag("query.component", flags.Lookup("component"))
	_ = v.BindPFlag("query.sub_component", flags.Lookup("sub-component"))
	_ = v.BindPFlag("query.status", flags.Lookup("status"))
	_ = v.BindPFlag("timing", flags.Lookup("timing"))

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute builds the root command and runs it.
func Execute() error {
	logging.Debug("executing root command")
	return NewRootCmd().Execute()
}
