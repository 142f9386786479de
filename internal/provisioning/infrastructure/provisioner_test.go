package infrastructure

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/coroctl/internal/config"
	"github.com/imamik/coroctl/internal/platform/awscloud"
	"github.com/imamik/coroctl/internal/provisioning"
	"github.com/imamik/coroctl/internal/util/tags"
)

func testContext(t *testing.T, cloud awscloud.CloudManager) *provisioning.Context {
	t.Helper()
	cfg := &config.Config{
		ClusterName: "prod",
		Region:      "us-east-1",
		Network: config.NetworkConfig{
			BaseCIDR:        "10.4.20.0/22",
			SubnetRatio:     "5:2",
			ZoneCount:       3,
			MinSubnetPrefix: 28,
		},
	}
	ctx := provisioning.NewContext(context.Background(), cfg, cloud)
	require.NoError(t, provisioning.ResolveAllocations(ctx))
	return ctx
}

func TestProvision_PopulatesState(t *testing.T) {
	t.Parallel()
	subnetCount := 0
	cloud := &awscloud.MockClient{
		EnsureSubnetFunc: func(_ context.Context, opts awscloud.SubnetCreateOpts) (string, error) {
			subnetCount++
			return opts.Tags[tags.KeyName], nil
		},
	}

	ctx := testContext(t, cloud)
	err := NewProvisioner().Provision(ctx)

	require.NoError(t, err)
	assert.Equal(t, "vpc-mock", ctx.State.VPCID)
	assert.Equal(t, "sg-mock", ctx.State.SecurityGroupID)
	assert.Equal(t, "prod-node-profile", ctx.State.ProfileName)
	assert.Equal(t, 6, subnetCount)
	assert.Len(t, ctx.State.PrivateSubnetIDs, 3)
	assert.Len(t, ctx.State.PublicSubnetIDs, 3)
	assert.Equal(t, "prod-private-use1-az1", ctx.State.PrivateSubnetIDs["use1-az1"])
}

func TestProvisionNetwork_SubnetCIDRsMatchAllocations(t *testing.T) {
	t.Parallel()
	var privateCIDRs, publicCIDRs []string
	cloud := &awscloud.MockClient{
		EnsureSubnetFunc: func(_ context.Context, opts awscloud.SubnetCreateOpts) (string, error) {
			if opts.MapPublicIP {
				publicCIDRs = append(publicCIDRs, opts.CIDR)
			} else {
				privateCIDRs = append(privateCIDRs, opts.CIDR)
			}
			return "subnet-" + opts.ZoneID, nil
		},
	}

	ctx := testContext(t, cloud)
	err := NewProvisioner().ProvisionNetwork(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"10.4.20.0/25", "10.4.20.128/25", "10.4.21.0/25"}, privateCIDRs)
	assert.Equal(t, []string{"10.4.21.128/28", "10.4.21.144/28", "10.4.21.160/28"}, publicCIDRs)
}

func TestProvisionNetwork_RoutesPublicSubnets(t *testing.T) {
	t.Parallel()
	var routed []string
	cloud := &awscloud.MockClient{
		EnsureSubnetFunc: func(_ context.Context, opts awscloud.SubnetCreateOpts) (string, error) {
			if opts.MapPublicIP {
				return "pub-" + opts.ZoneID, nil
			}
			return "priv-" + opts.ZoneID, nil
		},
		EnsurePublicRoutingFunc: func(_ context.Context, vpcID string, subnetIDs []string, _ map[string]string) error {
			assert.Equal(t, "vpc-mock", vpcID)
			routed = subnetIDs
			return nil
		},
	}

	ctx := testContext(t, cloud)
	err := NewProvisioner().ProvisionNetwork(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"pub-use1-az1", "pub-use1-az2", "pub-use1-az4"}, routed)
}

func TestProvisionSecurityGroup_ClusterRules(t *testing.T) {
	t.Parallel()
	var captured []awscloud.SecurityGroupRule
	cloud := &awscloud.MockClient{
		AuthorizeIngressFunc: func(_ context.Context, groupID string, rules []awscloud.SecurityGroupRule) error {
			assert.Equal(t, "sg-mock", groupID)
			captured = rules
			return nil
		},
	}

	ctx := testContext(t, cloud)
	err := NewProvisioner().ProvisionSecurityGroup(ctx)

	require.NoError(t, err)
	require.Len(t, captured, 4)

	corosync := captured[0]
	assert.Equal(t, "udp", corosync.Protocol)
	assert.Equal(t, int32(5404), corosync.FromPort)
	assert.Equal(t, int32(5405), corosync.ToPort)
	assert.Equal(t, "sg-mock", corosync.SourceGroupID)

	drbd := captured[1]
	assert.Equal(t, "tcp", drbd.Protocol)
	assert.Equal(t, int32(7788), drbd.FromPort)
	assert.Equal(t, int32(7799), drbd.ToPort)
	assert.Equal(t, "sg-mock", drbd.SourceGroupID)

	ssh := captured[3]
	assert.Equal(t, int32(22), ssh.FromPort)
	assert.Equal(t, "0.0.0.0/0", ssh.CIDR)
	assert.Empty(t, ssh.SourceGroupID)
}

func TestProvision_StopsOnVPCError(t *testing.T) {
	t.Parallel()
	boom := errors.New("limit exceeded")
	cloud := &awscloud.MockClient{
		EnsureVPCFunc: func(_ context.Context, _, _ string, _ map[string]string) (string, error) {
			return "", boom
		},
		EnsureSubnetFunc: func(_ context.Context, _ awscloud.SubnetCreateOpts) (string, error) {
			t.Fatal("no subnet should be created after VPC failure")
			return "", nil
		},
	}

	ctx := testContext(t, cloud)
	err := NewProvisioner().Provision(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestProvisionNetwork_TagsCarryZoneAndTier(t *testing.T) {
	t.Parallel()
	cloud := &awscloud.MockClient{
		EnsureSubnetFunc: func(_ context.Context, opts awscloud.SubnetCreateOpts) (string, error) {
			assert.Equal(t, "prod", opts.Tags[tags.KeyCluster])
			assert.Equal(t, opts.ZoneID, opts.Tags[tags.KeyZone])
			if opts.MapPublicIP {
				assert.Equal(t, tags.TierPublic, opts.Tags[tags.KeyTier])
			} else {
				assert.Equal(t, tags.TierPrivate, opts.Tags[tags.KeyTier])
			}
			return "subnet-x", nil
		},
	}

	ctx := testContext(t, cloud)
	require.NoError(t, NewProvisioner().ProvisionNetwork(ctx))
}
