package provisioning

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/coroctl/internal/config"
	"github.com/imamik/coroctl/internal/platform/awscloud"
)

func allocationConfig() *config.Config {
	return &config.Config{
		ClusterName: "prod",
		Region:      "us-east-1",
		Network: config.NetworkConfig{
			BaseCIDR:        "10.4.20.0/22",
			SubnetRatio:     "5:2",
			ZoneCount:       3,
			MinSubnetPrefix: 28,
		},
	}
}

func TestResolveAllocations_Discovery(t *testing.T) {
	t.Parallel()
	ctx := NewContext(context.Background(), allocationConfig(), &awscloud.MockClient{})
	ctx.Observer = NewMockObserver()

	err := ResolveAllocations(ctx)

	require.NoError(t, err)
	require.Len(t, ctx.State.Zones, 3)
	require.Len(t, ctx.State.Allocations, 3)
	assert.Equal(t, "use1-az1", ctx.State.Allocations[0].ZoneID)
	assert.Equal(t, "10.4.20.0/25", ctx.State.Allocations[0].Private.String())
	assert.Equal(t, "10.4.21.128/28", ctx.State.Allocations[0].Public.String())
}

func TestResolveAllocations_DiscoveryTrimsToZoneCount(t *testing.T) {
	t.Parallel()
	cfg := allocationConfig()
	cfg.Network.ZoneCount = 2
	cloud := &awscloud.MockClient{}

	ctx := NewContext(context.Background(), cfg, cloud)
	err := ResolveAllocations(ctx)

	require.NoError(t, err)
	assert.Len(t, ctx.State.Zones, 2)
	assert.Equal(t, []string{"us-east-1a", "us-east-1b"}, ctx.State.ZoneNames())
}

func TestResolveAllocations_PinnedZones(t *testing.T) {
	t.Parallel()
	cfg := allocationConfig()
	cfg.Network.ZoneIDs = []string{"use1-az4", "use1-az2", "use1-az1"}

	ctx := NewContext(context.Background(), cfg, &awscloud.MockClient{})
	err := ResolveAllocations(ctx)

	require.NoError(t, err)
	// Pinned order wins over discovery order.
	assert.Equal(t, "use1-az4", ctx.State.Zones[0].ID)
	assert.Equal(t, "use1-az4", ctx.State.Allocations[0].ZoneID)
}

func TestResolveAllocations_PinnedZoneMissing(t *testing.T) {
	t.Parallel()
	cfg := allocationConfig()
	cfg.Network.ZoneIDs = []string{"use1-az1", "use1-az2", "use1-az9"}

	ctx := NewContext(context.Background(), cfg, &awscloud.MockClient{})
	err := ResolveAllocations(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "use1-az9")
}

func TestResolveAllocations_TooFewZones(t *testing.T) {
	t.Parallel()
	cloud := &awscloud.MockClient{
		AvailabilityZonesFunc: func(_ context.Context) ([]awscloud.Zone, error) {
			return []awscloud.Zone{{ID: "use1-az1", Name: "us-east-1a"}}, nil
		},
	}

	ctx := NewContext(context.Background(), allocationConfig(), cloud)
	err := ResolveAllocations(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "availability zones")
}

func TestResolveAllocations_DiscoveryError(t *testing.T) {
	t.Parallel()
	boom := errors.New("throttled")
	cloud := &awscloud.MockClient{
		AvailabilityZonesFunc: func(_ context.Context) ([]awscloud.Zone, error) {
			return nil, boom
		},
	}

	ctx := NewContext(context.Background(), allocationConfig(), cloud)
	err := ResolveAllocations(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
