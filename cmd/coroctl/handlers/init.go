package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/imamik/coroctl/internal/config"
)

// Factory function variables for init - can be replaced in tests.
var (
	// runWizard runs the interactive wizard.
	runWizard = config.RunWizard

	// writeConfig writes the config to a file.
	writeConfig = config.WriteYAML

	// stdinIsTerminal reports whether stdin is attached to a terminal.
	stdinIsTerminal = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
)

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if !stdinIsTerminal() {
		return fmt.Errorf("init needs an interactive terminal; write %s by hand instead", outputPath)
	}

	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	cfg := result.ToConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := writeConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)
	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("coroctl - HA clusters on AWS")
	fmt.Println("============================")
	fmt.Println()
	fmt.Println("This wizard creates a cluster configuration with sensible defaults.")
	fmt.Println("The generated YAML is fully expanded and explicit.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, cfg *config.Config) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	fmt.Println("Cluster Summary")
	fmt.Println("---------------")
	fmt.Printf("  Name:       %s\n", cfg.ClusterName)
	fmt.Printf("  Region:     %s\n", cfg.Region)
	fmt.Printf("  Zones:      %d\n", cfg.Network.ZoneCount)
	fmt.Printf("  Base CIDR:  %s (ratio %s)\n", cfg.Network.BaseCIDR, cfg.Network.SubnetRatio)
	fmt.Printf("  Nodes:      %d x %s, %dGB %s replication volume\n",
		cfg.Network.ZoneCount, cfg.Nodes.InstanceType, cfg.Nodes.VolumeSizeGB, cfg.Nodes.VolumeType)
	if cfg.DNSEnabled() {
		fmt.Printf("  Domain:     %s\n", cfg.DNS.Domain)
	}
	fmt.Println()

	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Println("  1. Make sure your AWS credentials are configured")
	fmt.Println("     (environment, shared config, or instance role)")
	fmt.Println()
	fmt.Printf("  2. Set nodes.ami in %s to the machine image for your region\n", outputPath)
	fmt.Println()
	fmt.Println("  3. Preview the subnet partition:")
	fmt.Println("     coroctl plan")
	fmt.Println()
	fmt.Println("  4. Create the cluster:")
	fmt.Println("     coroctl apply")
	fmt.Println()
}
