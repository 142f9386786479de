package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/coroctl/internal/config"
	"github.com/imamik/coroctl/internal/platform/awscloud"
	"github.com/imamik/coroctl/internal/platform/s3state"
	"github.com/imamik/coroctl/internal/provisioning"
)

// saveAndRestoreFactories snapshots the factory variables and restores them
// after the test, so tests can inject mocks freely.
func saveAndRestoreFactories(t *testing.T) {
	t.Helper()
	origNewCloudClient := newCloudClient
	origLoadConfigFile := loadConfigFile
	origFileExists := fileExists
	origWriteFile := writeFile
	origApplyPhases := applyPhases
	origNewStateStore := newStateStore
	origNewDestroyProvisioner := newDestroyProvisioner
	origRemoveFile := removeFile
	origRunWizard := runWizard
	origWriteConfig := writeConfig
	origStdinIsTerminal := stdinIsTerminal
	origNewObserver := newObserver

	t.Cleanup(func() {
		newCloudClient = origNewCloudClient
		loadConfigFile = origLoadConfigFile
		fileExists = origFileExists
		writeFile = origWriteFile
		applyPhases = origApplyPhases
		newStateStore = origNewStateStore
		newDestroyProvisioner = origNewDestroyProvisioner
		removeFile = origRemoveFile
		runWizard = origRunWizard
		writeConfig = origWriteConfig
		stdinIsTerminal = origStdinIsTerminal
		newObserver = origNewObserver
	})
}

func handlerConfig() *config.Config {
	return &config.Config{
		ClusterName: "prod",
		Region:      "us-east-1",
		Network: config.NetworkConfig{
			BaseCIDR:        "10.4.20.0/22",
			SubnetRatio:     "5:2",
			ZoneCount:       3,
			MinSubnetPrefix: 28,
		},
		Nodes: config.NodeConfig{
			InstanceType: "t3.medium",
			AMI:          "ami-12345",
			VolumeSizeGB: 20,
			VolumeType:   "gp3",
		},
	}
}

// stubConfig makes loadConfig return the given config.
func stubConfig(cfg *config.Config) {
	fileExists = func(_ string) bool { return true }
	loadConfigFile = func(_ string) (*config.Config, error) { return cfg, nil }
}

// fakePhase adapts a function into a provisioning.Phase.
type fakePhase struct {
	name string
	fn   func(*provisioning.Context) error
}

func (p fakePhase) Name() string                              { return p.name }
func (p fakePhase) Provision(ctx *provisioning.Context) error { return p.fn(ctx) }

func TestLoadConfig_MissingFile(t *testing.T) {
	saveAndRestoreFactories(t)
	fileExists = func(_ string) bool { return false }

	_, err := loadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "coroctl.yaml")
	assert.Contains(t, err.Error(), "coroctl init")
}

func TestApply_RunsPhasesAndWritesSnapshot(t *testing.T) {
	saveAndRestoreFactories(t)
	stubConfig(handlerConfig())
	newCloudClient = func(_ context.Context, region string) (awscloud.CloudManager, error) {
		assert.Equal(t, "us-east-1", region)
		return &awscloud.MockClient{}, nil
	}

	phaseRan := false
	applyPhases = func() []provisioning.Phase {
		return []provisioning.Phase{fakePhase{name: "infrastructure", fn: func(pCtx *provisioning.Context) error {
			phaseRan = true
			// Allocations must be resolved before phases run.
			assert.Len(t, pCtx.State.Allocations, 3)
			pCtx.State.VPCID = "vpc-1"
			pCtx.State.Nodes["prod-node-1"] = &awscloud.Instance{ID: "i-1", ZoneID: "use1-az1", PrivateIP: "10.4.20.10"}
			pCtx.State.VolumeIDs["prod-node-1"] = "vol-1"
			return nil
		}}}
	}

	var snapPath string
	var snapData []byte
	writeFile = func(path string, data []byte, _ os.FileMode) error {
		snapPath = path
		snapData = data
		return nil
	}

	err := Apply(context.Background(), "")

	require.NoError(t, err)
	assert.True(t, phaseRan)
	assert.Equal(t, localStateFile, snapPath)

	var snap s3state.Snapshot
	require.NoError(t, json.Unmarshal(snapData, &snap))
	assert.Equal(t, "prod", snap.Cluster)
	assert.Equal(t, "vpc-1", snap.VPCID)
	assert.Len(t, snap.Subnets, 6)
	require.Len(t, snap.Nodes, 1)
	assert.Equal(t, "vol-1", snap.Nodes[0].VolumeID)
	assert.False(t, snap.UpdatedAt.IsZero())
}

func TestApply_PhaseFailureSkipsSnapshot(t *testing.T) {
	saveAndRestoreFactories(t)
	stubConfig(handlerConfig())
	newCloudClient = func(_ context.Context, _ string) (awscloud.CloudManager, error) {
		return &awscloud.MockClient{}, nil
	}

	boom := errors.New("boom")
	applyPhases = func() []provisioning.Phase {
		return []provisioning.Phase{fakePhase{name: "infrastructure", fn: func(_ *provisioning.Context) error {
			return boom
		}}}
	}
	writeFile = func(_ string, _ []byte, _ os.FileMode) error {
		t.Error("snapshot must not be written after a failed phase")
		return nil
	}

	err := Apply(context.Background(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestApply_ClientErrorPropagates(t *testing.T) {
	saveAndRestoreFactories(t)
	stubConfig(handlerConfig())
	boom := errors.New("no credentials")
	newCloudClient = func(_ context.Context, _ string) (awscloud.CloudManager, error) {
		return nil, boom
	}

	err := Apply(context.Background(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestBuildSnapshot_OrdersNodesByName(t *testing.T) {
	cfg := handlerConfig()
	state := provisioning.NewState()
	state.Nodes["prod-node-2"] = &awscloud.Instance{ID: "i-2"}
	state.Nodes["prod-node-1"] = &awscloud.Instance{ID: "i-1"}

	snap := buildSnapshot(cfg, state)

	require.Len(t, snap.Nodes, 2)
	assert.Equal(t, "prod-node-1", snap.Nodes[0].Name)
	assert.Equal(t, "prod-node-2", snap.Nodes[1].Name)
}
