package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/coroctl/cmd/coroctl/handlers"
)

// Plan returns the command for previewing the subnet partition.
//
// The command binds availability zones exactly the way apply does and
// prints the resulting per-zone private and public CIDR blocks without
// creating anything.
func Plan() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Preview the subnet partition without creating anything",
		Long: `Preview the per-zone subnet partition for the configured cluster.

The base CIDR is split into one private and one public subnet per
availability zone according to the configured ratio. The printed table
is exactly what 'coroctl apply' would provision.

Examples:
  # Preview using coroctl.yaml in the current directory
  coroctl plan

  # Preview a specific configuration
  coroctl plan -c production.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Plan(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: coroctl.yaml)")

	return cmd
}
