package provisioning

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/coroctl/internal/config"
	"github.com/imamik/coroctl/internal/platform/awscloud"
)

func TestNewState(t *testing.T) {
	t.Parallel()
	state := NewState()

	require.NotNil(t, state)
	assert.NotNil(t, state.PrivateSubnetIDs)
	assert.NotNil(t, state.PublicSubnetIDs)
	assert.NotNil(t, state.Nodes)
	assert.NotNil(t, state.VolumeIDs)
	assert.NotNil(t, state.FQDNs)
}

func TestNewContext(t *testing.T) {
	t.Parallel()
	cfg := &config.Config{ClusterName: "prod"}
	cloud := &awscloud.MockClient{}

	ctx := NewContext(context.Background(), cfg, cloud)

	require.NotNil(t, ctx)
	assert.Equal(t, cfg, ctx.Config)
	assert.NotNil(t, ctx.State)
	assert.NotNil(t, ctx.Observer)
}

func TestState_ZoneNames(t *testing.T) {
	t.Parallel()
	state := NewState()
	state.Zones = []awscloud.Zone{
		{ID: "use1-az1", Name: "us-east-1a"},
		{ID: "use1-az2", Name: "us-east-1b"},
	}

	assert.Equal(t, []string{"us-east-1a", "us-east-1b"}, state.ZoneNames())
	assert.Equal(t, "us-east-1b", state.ZoneName("use1-az2"))
	assert.Empty(t, state.ZoneName("use1-az9"))
}
