package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/coroctl/cmd/coroctl/handlers"
)

// Apply returns the command for provisioning the cluster.
//
// This command handles the complete provisioning lifecycle: loading
// configuration, partitioning the address space, creating the network,
// launching nodes with replication volumes, and writing the state snapshot.
//
// Optional flags:
//
//	--config, -c: Path to cluster configuration YAML file (default: coroctl.yaml)
func Apply() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Create or update the cluster",
		Long: `Create or update your HA cluster on AWS.

This command provisions the VPC, one private and one public subnet per
availability zone, the cluster security group, an instance profile, one
node per zone with a DRBD replication volume, and optional Route53
records.

Apply is idempotent: resources that already exist are validated against
the configuration and reused, so it is safe to re-run after a partial
failure.

If no config file is specified, it looks for coroctl.yaml in the current
directory. Use 'coroctl init' to create a configuration file.

Examples:
  # Create cluster using coroctl.yaml in current directory
  coroctl apply

  # Create cluster using specific config file
  coroctl apply -c production.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Apply(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: coroctl.yaml)")

	return cmd
}
