package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/imamik/coroctl/internal/config"
	"github.com/imamik/coroctl/internal/platform/s3state"
	"github.com/imamik/coroctl/internal/provisioning"
	"github.com/imamik/coroctl/internal/provisioning/compute"
	"github.com/imamik/coroctl/internal/provisioning/infrastructure"
	"github.com/imamik/coroctl/internal/util/tags"
)

// localStateFile is the snapshot written next to the config after apply.
const localStateFile = "coroctl.state.json"

// Provisioner interface for testing - matches provisioning.Phase.
type Provisioner interface {
	Name() string
	Provision(ctx *provisioning.Context) error
}

// Factory function variables for apply - can be replaced in tests.
var (
	// applyPhases returns the provisioning phases in order.
	applyPhases = func() []provisioning.Phase {
		return []provisioning.Phase{
			infrastructure.NewProvisioner(),
			compute.NewProvisioner(),
		}
	}

	// newStateStore creates the S3 snapshot store.
	newStateStore = func(ctx context.Context, cfg *config.Config) (*s3state.Store, error) {
		client, err := s3state.NewClient(ctx, cfg.Region)
		if err != nil {
			return nil, err
		}
		return s3state.NewStore(client, cfg.State.Bucket, cfg.State.Prefix), nil
	}
)

// Apply provisions the cluster: VPC, per-zone subnet pairs, security group,
// instance profile, nodes with replication volumes, and DNS records. The
// resulting snapshot is written locally and, when a state bucket is
// configured, uploaded to S3.
//
// Apply is idempotent: resources that already exist are validated against
// the configuration and reused, so re-running after a partial failure
// completes the remaining work.
func Apply(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	log.Printf("Applying configuration for cluster: %s", cfg.ClusterName)

	cloud, err := newCloudClient(ctx, cfg.Region)
	if err != nil {
		return err
	}

	pCtx := provisioning.NewContext(ctx, cfg, cloud)
	pCtx.Observer = newObserver()
	if err := provisioning.ResolveAllocations(pCtx); err != nil {
		return err
	}

	if err := provisioning.RunPhases(pCtx, applyPhases()); err != nil {
		return err
	}

	if err := writeSnapshot(ctx, cfg, pCtx.State); err != nil {
		return err
	}

	log.Printf("Cluster %s is ready (%d nodes across %d zones)",
		cfg.ClusterName, len(pCtx.State.Nodes), len(pCtx.State.Zones))
	return nil
}

// writeSnapshot persists the provisioning result locally and optionally to
// the configured S3 bucket.
func writeSnapshot(ctx context.Context, cfg *config.Config, state *provisioning.State) error {
	snap := buildSnapshot(cfg, state)
	snap.UpdatedAt = time.Now().UTC()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := writeFile(localStateFile, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", localStateFile, err)
	}

	if cfg.State.Bucket == "" {
		return nil
	}

	store, err := newStateStore(ctx, cfg)
	if err != nil {
		return err
	}
	if err := store.Save(ctx, snap); err != nil {
		return fmt.Errorf("failed to upload snapshot: %w", err)
	}
	log.Printf("Snapshot uploaded to s3://%s/%s", cfg.State.Bucket, cfg.State.Prefix)
	return nil
}

// buildSnapshot flattens the provisioning state into the durable record.
func buildSnapshot(cfg *config.Config, state *provisioning.State) *s3state.Snapshot {
	snap := &s3state.Snapshot{
		Cluster:  cfg.ClusterName,
		Region:   cfg.Region,
		BaseCIDR: cfg.Network.BaseCIDR,
		VPCID:    state.VPCID,
	}

	for _, alloc := range state.Allocations {
		snap.Subnets = append(snap.Subnets,
			s3state.SubnetRecord{
				ZoneID:   alloc.ZoneID,
				Tier:     tags.TierPrivate,
				CIDR:     alloc.Private.String(),
				SubnetID: state.PrivateSubnetIDs[alloc.ZoneID],
			},
			s3state.SubnetRecord{
				ZoneID:   alloc.ZoneID,
				Tier:     tags.TierPublic,
				CIDR:     alloc.Public.String(),
				SubnetID: state.PublicSubnetIDs[alloc.ZoneID],
			},
		)
	}

	names := make([]string, 0, len(state.Nodes))
	for name := range state.Nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		node := state.Nodes[name]
		snap.Nodes = append(snap.Nodes, s3state.NodeRecord{
			Name:       name,
			InstanceID: node.ID,
			ZoneID:     node.ZoneID,
			PrivateIP:  node.PrivateIP,
			PublicIP:   node.PublicIP,
			VolumeID:   state.VolumeIDs[name],
			FQDN:       state.FQDNs[name],
		})
	}

	return snap
}
