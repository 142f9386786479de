package config

// Config holds the cluster configuration.
type Config struct {
	ClusterName string `mapstructure:"cluster_name" yaml:"cluster_name"`
	Region      string `mapstructure:"region" yaml:"region"` // e.g. eu-central-1, us-east-1

	// Network Configuration
	Network NetworkConfig `mapstructure:"network" yaml:"network"`

	// Cluster Nodes
	Nodes NodeConfig `mapstructure:"nodes" yaml:"nodes"`

	// DNS Configuration (optional)
	DNS DNSConfig `mapstructure:"dns" yaml:"dns,omitempty"`

	// Remote State (optional)
	State StateConfig `mapstructure:"state" yaml:"state,omitempty"`

	// Tags applied to every created resource, in addition to the cluster tag.
	Tags map[string]string `mapstructure:"tags" yaml:"tags,omitempty"`
}

// NetworkConfig defines the address-space configuration.
type NetworkConfig struct {
	// BaseCIDR is the IPv4 block all subnets are carved from.
	// Default: 10.0.0.0/16
	BaseCIDR string `mapstructure:"base_cidr" yaml:"base_cidr"`

	// SubnetRatio is the private:public capacity split, e.g. "5:2".
	// Default: "5:2"
	SubnetRatio string `mapstructure:"subnet_ratio" yaml:"subnet_ratio"`

	// ZoneCount is the number of availability zones the cluster spans.
	// Default: 3
	ZoneCount int `mapstructure:"zone_count" yaml:"zone_count"`

	// ZoneIDs optionally pins the zones (by stable AZ ID, e.g. "use1-az1").
	// When empty the zones are discovered from the region at apply time.
	// Must list at least ZoneCount entries when set.
	ZoneIDs []string `mapstructure:"zone_ids" yaml:"zone_ids,omitempty"`

	// MinSubnetPrefix is the deepest allowed subnet prefix length (the
	// minimum subnet size). Default: 28
	MinSubnetPrefix int `mapstructure:"min_subnet_prefix" yaml:"min_subnet_prefix"`
}

// NodeConfig defines the cluster node settings. One node is placed in each
// zone's private subnet.
type NodeConfig struct {
	// InstanceType is the EC2 instance type. Default: t3.medium
	InstanceType string `mapstructure:"instance_type" yaml:"instance_type"`

	// AMI is the machine image the nodes boot from. Required for apply;
	// plan works without it.
	AMI string `mapstructure:"ami" yaml:"ami,omitempty"`

	// VolumeSizeGB is the size of the DRBD replication volume attached to
	// each node. Default: 20
	VolumeSizeGB int `mapstructure:"volume_size_gb" yaml:"volume_size_gb"`

	// VolumeType is the EBS volume type for the replication volume.
	// Default: gp3
	VolumeType string `mapstructure:"volume_type" yaml:"volume_type"`

	// SSHPublicKeyPath points at an OpenSSH public key to import as the EC2
	// key pair. Leave empty to generate one.
	SSHPublicKeyPath string `mapstructure:"ssh_public_key_path" yaml:"ssh_public_key_path,omitempty"`
}

// DNSConfig defines the Route53 settings for per-node records. Both fields
// empty disables DNS.
type DNSConfig struct {
	// HostedZoneID is the Route53 hosted zone the records go into.
	HostedZoneID string `mapstructure:"hosted_zone_id" yaml:"hosted_zone_id,omitempty"`

	// Domain is the zone's domain name; node records are created as
	// <cluster>-node-<n>.<domain>.
	Domain string `mapstructure:"domain" yaml:"domain,omitempty"`
}

// StateConfig defines where the provisioning snapshot is stored. The snapshot
// is always written next to the config file; a bucket additionally uploads it.
type StateConfig struct {
	// Bucket is an S3 bucket name. Empty disables the upload.
	Bucket string `mapstructure:"bucket" yaml:"bucket,omitempty"`

	// Prefix is the object key prefix inside the bucket.
	Prefix string `mapstructure:"prefix" yaml:"prefix,omitempty"`
}

// DNSEnabled reports whether Route53 records should be managed.
func (c *Config) DNSEnabled() bool {
	return c.DNS.HostedZoneID != "" && c.DNS.Domain != ""
}
