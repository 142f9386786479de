package awscloud

import (
	"context"
)

// MockClient is a mock implementation of CloudManager.
type MockClient struct {
	AvailabilityZonesFunc func(ctx context.Context) ([]Zone, error)

	// Network
	EnsureVPCFunc           func(ctx context.Context, name, cidr string, tags map[string]string) (string, error)
	EnsureSubnetFunc        func(ctx context.Context, opts SubnetCreateOpts) (string, error)
	EnsurePublicRoutingFunc func(ctx context.Context, vpcID string, subnetIDs []string, tags map[string]string) error
	DeleteNetworkFunc       func(ctx context.Context, cluster string) error

	// SecurityGroup
	EnsureSecurityGroupFunc func(ctx context.Context, vpcID, name, description string, tags map[string]string) (string, error)
	AuthorizeIngressFunc    func(ctx context.Context, groupID string, rules []SecurityGroupRule) error
	DeleteSecurityGroupFunc func(ctx context.Context, cluster string) error

	// Instance
	RunInstanceFunc       func(ctx context.Context, opts InstanceCreateOpts) (*Instance, error)
	GetInstanceByNameFunc func(ctx context.Context, name string) (*Instance, error)
	TerminateClusterFunc  func(ctx context.Context, cluster string) error

	// Volume
	EnsureVolumeFunc  func(ctx context.Context, opts VolumeCreateOpts) (string, error)
	AttachVolumeFunc  func(ctx context.Context, volumeID, instanceID, device string) error
	DeleteVolumesFunc func(ctx context.Context, cluster string) error

	// KeyPair
	EnsureKeyPairFunc func(ctx context.Context, name string, publicKey []byte, tags map[string]string) error
	DeleteKeyPairFunc func(ctx context.Context, name string) error

	// DNS
	UpsertRecordFunc func(ctx context.Context, hostedZoneID, fqdn, ip string, ttl int64) error
	DeleteRecordFunc func(ctx context.Context, hostedZoneID, fqdn, ip string, ttl int64) error

	// IAM
	EnsureInstanceProfileFunc func(ctx context.Context, name string, tags map[string]string) (string, error)
	DeleteInstanceProfileFunc func(ctx context.Context, name string) error
}

// Ensure interface compliance
var _ CloudManager = (*MockClient)(nil)

// AvailabilityZones mocks zone discovery.
func (m *MockClient) AvailabilityZones(ctx context.Context) ([]Zone, error) {
	if m.AvailabilityZonesFunc != nil {
		return m.AvailabilityZonesFunc(ctx)
	}
	return []Zone{
		{ID: "use1-az1", Name: "us-east-1a"},
		{ID: "use1-az2", Name: "us-east-1b"},
		{ID: "use1-az4", Name: "us-east-1c"},
	}, nil
}

// EnsureVPC mocks VPC creation.
func (m *MockClient) EnsureVPC(ctx context.Context, name, cidr string, tags map[string]string) (string, error) {
	if m.EnsureVPCFunc != nil {
		return m.EnsureVPCFunc(ctx, name, cidr, tags)
	}
	return "vpc-mock", nil
}

// EnsureSubnet mocks subnet creation.
func (m *MockClient) EnsureSubnet(ctx context.Context, opts SubnetCreateOpts) (string, error) {
	if m.EnsureSubnetFunc != nil {
		return m.EnsureSubnetFunc(ctx, opts)
	}
	return "subnet-mock", nil
}

// EnsurePublicRouting mocks routing setup.
func (m *MockClient) EnsurePublicRouting(ctx context.Context, vpcID string, subnetIDs []string, tags map[string]string) error {
	if m.EnsurePublicRoutingFunc != nil {
		return m.EnsurePublicRoutingFunc(ctx, vpcID, subnetIDs, tags)
	}
	return nil
}

// DeleteNetwork mocks network teardown.
func (m *MockClient) DeleteNetwork(ctx context.Context, cluster string) error {
	if m.DeleteNetworkFunc != nil {
		return m.DeleteNetworkFunc(ctx, cluster)
	}
	return nil
}

// EnsureSecurityGroup mocks security group creation.
func (m *MockClient) EnsureSecurityGroup(ctx context.Context, vpcID, name, description string, tags map[string]string) (string, error) {
	if m.EnsureSecurityGroupFunc != nil {
		return m.EnsureSecurityGroupFunc(ctx, vpcID, name, description, tags)
	}
	return "sg-mock", nil
}

// AuthorizeIngress mocks rule authorization.
func (m *MockClient) AuthorizeIngress(ctx context.Context, groupID string, rules []SecurityGroupRule) error {
	if m.AuthorizeIngressFunc != nil {
		return m.AuthorizeIngressFunc(ctx, groupID, rules)
	}
	return nil
}

// DeleteSecurityGroup mocks security group deletion.
func (m *MockClient) DeleteSecurityGroup(ctx context.Context, cluster string) error {
	if m.DeleteSecurityGroupFunc != nil {
		return m.DeleteSecurityGroupFunc(ctx, cluster)
	}
	return nil
}

// RunInstance mocks launching a node.
func (m *MockClient) RunInstance(ctx context.Context, opts InstanceCreateOpts) (*Instance, error) {
	if m.RunInstanceFunc != nil {
		return m.RunInstanceFunc(ctx, opts)
	}
	return &Instance{ID: "i-mock", Name: opts.Name, PrivateIP: "10.0.0.10"}, nil
}

// GetInstanceByName mocks instance lookup.
func (m *MockClient) GetInstanceByName(ctx context.Context, name string) (*Instance, error) {
	if m.GetInstanceByNameFunc != nil {
		return m.GetInstanceByNameFunc(ctx, name)
	}
	return nil, nil
}

// TerminateCluster mocks instance teardown.
func (m *MockClient) TerminateCluster(ctx context.Context, cluster string) error {
	if m.TerminateClusterFunc != nil {
		return m.TerminateClusterFunc(ctx, cluster)
	}
	return nil
}

// EnsureVolume mocks volume creation.
func (m *MockClient) EnsureVolume(ctx context.Context, opts VolumeCreateOpts) (string, error) {
	if m.EnsureVolumeFunc != nil {
		return m.EnsureVolumeFunc(ctx, opts)
	}
	return "vol-mock", nil
}

// AttachVolume mocks volume attachment.
func (m *MockClient) AttachVolume(ctx context.Context, volumeID, instanceID, device string) error {
	if m.AttachVolumeFunc != nil {
		return m.AttachVolumeFunc(ctx, volumeID, instanceID, device)
	}
	return nil
}

// DeleteVolumes mocks volume deletion.
func (m *MockClient) DeleteVolumes(ctx context.Context, cluster string) error {
	if m.DeleteVolumesFunc != nil {
		return m.DeleteVolumesFunc(ctx, cluster)
	}
	return nil
}

// EnsureKeyPair mocks key pair import.
func (m *MockClient) EnsureKeyPair(ctx context.Context, name string, publicKey []byte, tags map[string]string) error {
	if m.EnsureKeyPairFunc != nil {
		return m.EnsureKeyPairFunc(ctx, name, publicKey, tags)
	}
	return nil
}

// DeleteKeyPair mocks key pair deletion.
func (m *MockClient) DeleteKeyPair(ctx context.Context, name string) error {
	if m.DeleteKeyPairFunc != nil {
		return m.DeleteKeyPairFunc(ctx, name)
	}
	return nil
}

// UpsertRecord mocks DNS record creation.
func (m *MockClient) UpsertRecord(ctx context.Context, hostedZoneID, fqdn, ip string, ttl int64) error {
	if m.UpsertRecordFunc != nil {
		return m.UpsertRecordFunc(ctx, hostedZoneID, fqdn, ip, ttl)
	}
	return nil
}

// DeleteRecord mocks DNS record deletion.
func (m *MockClient) DeleteRecord(ctx context.Context, hostedZoneID, fqdn, ip string, ttl int64) error {
	if m.DeleteRecordFunc != nil {
		return m.DeleteRecordFunc(ctx, hostedZoneID, fqdn, ip, ttl)
	}
	return nil
}

// EnsureInstanceProfile mocks instance profile creation.
func (m *MockClient) EnsureInstanceProfile(ctx context.Context, name string, tags map[string]string) (string, error) {
	if m.EnsureInstanceProfileFunc != nil {
		return m.EnsureInstanceProfileFunc(ctx, name, tags)
	}
	return name, nil
}

// DeleteInstanceProfile mocks instance profile deletion.
func (m *MockClient) DeleteInstanceProfile(ctx context.Context, name string) error {
	if m.DeleteInstanceProfileFunc != nil {
		return m.DeleteInstanceProfileFunc(ctx, name)
	}
	return nil
}
