package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/coroctl/cmd/coroctl/handlers"
)

// Destroy returns the destroy command.
//
// The destroy command removes all cluster resources from AWS. It deletes
// resources in dependency order: DNS records, instances, volumes, the
// security group, the network, the key pair, and the instance profile.
func Destroy() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "destroy",
		Short: "Destroy the cluster and all associated resources",
		Long: `Destroy removes all cluster resources from AWS.

This command deletes all resources associated with the cluster including:
  - Route53 records
  - Instances
  - Replication volumes
  - Security group
  - Subnets, route tables, internet gateway and VPC
  - Key pair
  - Instance profile and role

Resources are deleted in dependency order to ensure clean teardown.

Example:
  coroctl destroy -c coroctl.yaml

WARNING: This operation is irreversible. All cluster data will be lost.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Destroy(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: coroctl.yaml)")

	return cmd
}
