package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/coroctl/cmd/coroctl/handlers"
)

// Init returns the command for interactively creating a cluster configuration.
//
// This command guides users through creating a cluster configuration YAML
// file using an interactive wizard.
//
// Flags:
//
//	--output, -o: Path to output file (default "coroctl.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a cluster configuration",
		Long: `Interactively create a cluster configuration file.

This command guides you through configuring your cluster step by step.
It will ask about:

  - Cluster identity (name and region)
  - Availability zone spread (3 or 5 zones)
  - Address space (base CIDR and private:public subnet ratio)
  - Node sizing (instance type and replication volume size)
  - Optional Route53 DNS records

The generated YAML is fully expanded, so every setting can be adjusted
by hand afterwards.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", handlers.DefaultConfigFile, "Output file path")

	return cmd
}
