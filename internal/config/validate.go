package config

import (
	"fmt"
	"regexp"

	"github.com/imamik/coroctl/internal/netpart"
)

// clusterNameRegex validates cluster name format: 1-32 lowercase alphanumeric
// with hyphens. Names end up in resource names, tags and DNS records.
var clusterNameRegex = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{0,30}[a-z0-9])?$`)

// regionRegex matches AWS region names such as eu-central-1 or us-east-2.
var regionRegex = regexp.MustCompile(`^[a-z]{2}(-[a-z]+)+-\d$`)

// Validate checks the configuration for common errors and returns a detailed
// error if validation fails.
func (c *Config) Validate() error {
	if c.ClusterName == "" {
		return fmt.Errorf("cluster_name is required")
	}
	if !clusterNameRegex.MatchString(c.ClusterName) {
		return fmt.Errorf("invalid cluster_name %q: 1-32 lowercase alphanumeric characters or hyphens", c.ClusterName)
	}
	if c.Region == "" {
		return fmt.Errorf("region is required")
	}
	if !regionRegex.MatchString(c.Region) {
		return fmt.Errorf("invalid region %q: expected an AWS region such as eu-central-1", c.Region)
	}

	if err := c.validateNetwork(); err != nil {
		return fmt.Errorf("network validation failed: %w", err)
	}
	if err := c.validateNodes(); err != nil {
		return fmt.Errorf("node validation failed: %w", err)
	}
	if (c.DNS.HostedZoneID == "") != (c.DNS.Domain == "") {
		return fmt.Errorf("dns requires both hosted_zone_id and domain (or neither)")
	}

	return nil
}

// validateNetwork checks the address-space settings and dry-runs the subnet
// partition against placeholder zones, so a base block that cannot host the
// requested layout is rejected at load time rather than at apply time.
func (c *Config) validateNetwork() error {
	n := &c.Network

	if _, err := netpart.ParseBlock(n.BaseCIDR); err != nil {
		return err
	}
	if _, err := netpart.ParseRatio(n.SubnetRatio); err != nil {
		return err
	}
	if n.ZoneCount < 1 {
		return fmt.Errorf("zone_count must be at least 1, got %d", n.ZoneCount)
	}
	if n.MinSubnetPrefix < 16 || n.MinSubnetPrefix > 30 {
		return fmt.Errorf("min_subnet_prefix must be between 16 and 30, got %d", n.MinSubnetPrefix)
	}
	if len(n.ZoneIDs) > 0 && len(n.ZoneIDs) < n.ZoneCount {
		return fmt.Errorf("zone_ids lists %d zones but zone_count is %d", len(n.ZoneIDs), n.ZoneCount)
	}
	seen := make(map[string]bool, len(n.ZoneIDs))
	for _, zone := range n.ZoneIDs {
		if zone == "" {
			return fmt.Errorf("zone_ids must not contain empty entries")
		}
		if seen[zone] {
			return fmt.Errorf("zone_ids lists zone %q twice", zone)
		}
		seen[zone] = true
	}

	placeholder := make([]string, n.ZoneCount)
	for i := range placeholder {
		placeholder[i] = fmt.Sprintf("zone-%d", i)
	}
	if _, err := netpart.Plan(n.BaseCIDR, n.SubnetRatio, placeholder, n.MinSubnetPrefix); err != nil {
		return err
	}

	return nil
}

func (c *Config) validateNodes() error {
	if c.Nodes.VolumeSizeGB < 1 {
		return fmt.Errorf("volume_size_gb must be at least 1, got %d", c.Nodes.VolumeSizeGB)
	}
	switch c.Nodes.VolumeType {
	case "gp2", "gp3", "io1", "io2":
	default:
		return fmt.Errorf("invalid volume_type %q: must be one of gp2, gp3, io1, io2", c.Nodes.VolumeType)
	}
	return nil
}
