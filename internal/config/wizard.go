package config

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/imamik/coroctl/internal/netpart"
)

// WizardResult holds the user's choices from the wizard.
type WizardResult struct {
	ClusterName  string
	Region       string
	ZoneCount    int
	BaseCIDR     string
	SubnetRatio  string
	InstanceType string
	VolumeSizeGB string
	Domain       string
	HostedZoneID string
}

// RunWizard runs the interactive configuration wizard.
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{
		// Defaults
		Region:       "us-east-1",
		ZoneCount:    DefaultZoneCount,
		BaseCIDR:     DefaultBaseCIDR,
		SubnetRatio:  DefaultSubnetRatio,
		InstanceType: DefaultInstanceType,
		VolumeSizeGB: strconv.Itoa(DefaultVolumeSizeGB),
	}

	form := huh.NewForm(
		// Cluster identity
		huh.NewGroup(
			huh.NewInput().
				Title("Cluster name").
				Description("A unique name for your cluster (DNS-safe, lowercase)").
				Placeholder("my-cluster").
				Value(&result.ClusterName).
				Validate(wizardValidateClusterName),
		),

		// Region
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("AWS region").
				Description("The region the cluster is provisioned in").
				Options(
					huh.NewOption("N. Virginia (us-east-1)", "us-east-1"),
					huh.NewOption("Oregon (us-west-2)", "us-west-2"),
					huh.NewOption("Ireland (eu-west-1)", "eu-west-1"),
					huh.NewOption("Frankfurt (eu-central-1)", "eu-central-1"),
					huh.NewOption("Singapore (ap-southeast-1)", "ap-southeast-1"),
				).
				Value(&result.Region),
		),

		// Zone spread
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Availability zones").
				Description("Corosync quorum needs an odd member count; 3 is the usual choice").
				Options(
					huh.NewOption("3 zones (recommended)", 3),
					huh.NewOption("5 zones", 5),
				).
				Value(&result.ZoneCount),
		),

		// Address space
		huh.NewGroup(
			huh.NewInput().
				Title("Base CIDR block").
				Description("The IPv4 block all subnets are carved from").
				Placeholder(DefaultBaseCIDR).
				Value(&result.BaseCIDR).
				Validate(wizardValidateCIDR),

			huh.NewInput().
				Title("Private:public subnet ratio").
				Description("Capacity split between node subnets and gateway subnets, e.g. 5:2").
				Placeholder(DefaultSubnetRatio).
				Value(&result.SubnetRatio).
				Validate(wizardValidateRatio),
		),

		// Node sizing
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Instance type").
				Description("Cluster nodes run Corosync, Pacemaker and DRBD").
				Options(
					huh.NewOption("t3.medium - 2 vCPU, 4GB RAM", "t3.medium"),
					huh.NewOption("t3.large - 2 vCPU, 8GB RAM", "t3.large"),
					huh.NewOption("m5.large - 2 vCPU, 8GB RAM", "m5.large"),
					huh.NewOption("m5.xlarge - 4 vCPU, 16GB RAM", "m5.xlarge"),
				).
				Value(&result.InstanceType),

			huh.NewInput().
				Title("Replication volume size (GB)").
				Description("The DRBD-replicated EBS volume attached to every node").
				Placeholder(strconv.Itoa(DefaultVolumeSizeGB)).
				Value(&result.VolumeSizeGB).
				Validate(wizardValidateVolumeSize),
		),

		// Optional DNS
		huh.NewGroup(
			huh.NewInput().
				Title("Domain (optional)").
				Description("Route53 domain for per-node records. Leave empty to skip.").
				Placeholder("example.com").
				Value(&result.Domain),

			huh.NewInput().
				Title("Hosted zone ID").
				Description("The Route53 hosted zone the domain lives in (required with a domain)").
				Placeholder("Z0123456789ABCDEFGHIJ").
				Value(&result.HostedZoneID),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, err
	}

	return result, nil
}

// ToConfig converts the wizard result to a Config with defaults applied.
func (r *WizardResult) ToConfig() *Config {
	volumeSize, err := strconv.Atoi(r.VolumeSizeGB)
	if err != nil || volumeSize <= 0 {
		volumeSize = DefaultVolumeSizeGB
	}

	cfg := &Config{
		ClusterName: r.ClusterName,
		Region:      r.Region,
		Network: NetworkConfig{
			BaseCIDR:    r.BaseCIDR,
			SubnetRatio: r.SubnetRatio,
			ZoneCount:   r.ZoneCount,
		},
		Nodes: NodeConfig{
			InstanceType: r.InstanceType,
			VolumeSizeGB: volumeSize,
		},
	}
	if r.Domain != "" && r.HostedZoneID != "" {
		cfg.DNS = DNSConfig{HostedZoneID: r.HostedZoneID, Domain: r.Domain}
	}
	cfg.ApplyDefaults()
	return cfg
}

func wizardValidateClusterName(s string) error {
	if s == "" {
		return fmt.Errorf("cluster name is required")
	}
	if !clusterNameRegex.MatchString(s) {
		return fmt.Errorf("use lowercase letters, digits and hyphens (max 32 characters)")
	}
	return nil
}

func wizardValidateCIDR(s string) error {
	if s == "" {
		return nil // default applies
	}
	_, err := netpart.ParseBlock(s)
	return err
}

func wizardValidateRatio(s string) error {
	if s == "" {
		return nil
	}
	_, err := netpart.ParseRatio(s)
	return err
}

func wizardValidateVolumeSize(s string) error {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive number of gigabytes")
	}
	return nil
}
