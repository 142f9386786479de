// Package awscloud provides a wrapper around the AWS APIs used to provision
// cluster infrastructure (EC2, Route53, IAM).
package awscloud

import (
	"context"
)

// Zone is one availability zone of the configured region. Subnets bind to
// the stable ID; volumes and instance placement use the name.
type Zone struct {
	ID   string // e.g. use1-az1
	Name string // e.g. us-east-1a
}

// SubnetCreateOpts holds all parameters for creating a subnet.
type SubnetCreateOpts struct {
	VPCID  string
	ZoneID string
	CIDR   string
	// MapPublicIP assigns public IPs to instances launched in the subnet
	// (public tier only).
	MapPublicIP bool
	Tags        map[string]string
}

// SecurityGroupRule is one ingress rule. An empty CIDR with a non-empty
// SourceGroupID allows traffic from the group itself (intra-cluster).
type SecurityGroupRule struct {
	Description   string
	Protocol      string // tcp, udp, or -1 for all
	FromPort      int32
	ToPort        int32
	CIDR          string
	SourceGroupID string
}

// InstanceCreateOpts holds all parameters for launching a cluster node.
type InstanceCreateOpts struct {
	Name            string
	ImageID         string
	InstanceType    string
	SubnetID        string
	SecurityGroupID string
	KeyName         string
	ProfileName     string
	UserData        string
	Tags            map[string]string
}

// Instance is the subset of EC2 instance state the provisioner tracks.
type Instance struct {
	ID        string
	Name      string
	ZoneID    string
	PrivateIP string
	PublicIP  string
}

// VolumeCreateOpts holds all parameters for creating a replication volume.
type VolumeCreateOpts struct {
	Name     string
	ZoneName string // volumes are placed by AZ name, not ID
	SizeGB   int32
	Type     string
	Tags     map[string]string
}

// ZoneLister discovers the availability zones of the region.
type ZoneLister interface {
	// AvailabilityZones returns the region's zones ordered by zone ID, so
	// the ordering is stable across calls and accounts.
	AvailabilityZones(ctx context.Context) ([]Zone, error)
}

// NetworkManager defines the interface for managing the VPC and subnets.
type NetworkManager interface {
	EnsureVPC(ctx context.Context, name, cidr string, tags map[string]string) (string, error)
	EnsureSubnet(ctx context.Context, opts SubnetCreateOpts) (string, error)
	// EnsurePublicRouting creates the internet gateway and a route table
	// with a default route, and associates the given (public) subnets.
	EnsurePublicRouting(ctx context.Context, vpcID string, subnetIDs []string, tags map[string]string) error
	// DeleteNetwork removes the cluster's subnets, routing and VPC by tag.
	DeleteNetwork(ctx context.Context, cluster string) error
}

// SecurityGroupManager defines the interface for managing security groups.
type SecurityGroupManager interface {
	EnsureSecurityGroup(ctx context.Context, vpcID, name, description string, tags map[string]string) (string, error)
	AuthorizeIngress(ctx context.Context, groupID string, rules []SecurityGroupRule) error
	DeleteSecurityGroup(ctx context.Context, cluster string) error
}

// InstanceProvisioner defines the interface for managing cluster nodes.
type InstanceProvisioner interface {
	// RunInstance launches a node and waits until it is running.
	RunInstance(ctx context.Context, opts InstanceCreateOpts) (*Instance, error)
	// GetInstanceByName returns the non-terminated instance with the given
	// Name tag, or nil if there is none.
	GetInstanceByName(ctx context.Context, name string) (*Instance, error)
	// TerminateCluster terminates every instance carrying the cluster tag.
	TerminateCluster(ctx context.Context, cluster string) error
}

// VolumeManager defines the interface for managing replication volumes.
type VolumeManager interface {
	EnsureVolume(ctx context.Context, opts VolumeCreateOpts) (string, error)
	AttachVolume(ctx context.Context, volumeID, instanceID, device string) error
	DeleteVolumes(ctx context.Context, cluster string) error
}

// KeyPairManager defines the interface for managing EC2 key pairs.
type KeyPairManager interface {
	// EnsureKeyPair imports the public key under the given name if no key
	// pair with that name exists.
	EnsureKeyPair(ctx context.Context, name string, publicKey []byte, tags map[string]string) error
	DeleteKeyPair(ctx context.Context, name string) error
}

// DNSManager defines the interface for managing Route53 records.
type DNSManager interface {
	UpsertRecord(ctx context.Context, hostedZoneID, fqdn, ip string, ttl int64) error
	DeleteRecord(ctx context.Context, hostedZoneID, fqdn, ip string, ttl int64) error
}

// IAMManager defines the interface for managing the node instance profile.
type IAMManager interface {
	// EnsureInstanceProfile creates the node role and instance profile and
	// returns the profile name.
	EnsureInstanceProfile(ctx context.Context, name string, tags map[string]string) (string, error)
	DeleteInstanceProfile(ctx context.Context, name string) error
}

// CloudManager combines all infrastructure interfaces.
type CloudManager interface {
	ZoneLister
	NetworkManager
	SecurityGroupManager
	InstanceProvisioner
	VolumeManager
	KeyPairManager
	DNSManager
	IAMManager
}
