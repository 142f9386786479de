package compute

import (
	"context"
	"fmt"
	"sync"

	"github.com/imamik/coroctl/internal/platform/awscloud"
	"github.com/imamik/coroctl/internal/provisioning"
	"github.com/imamik/coroctl/internal/util/async"
	"github.com/imamik/coroctl/internal/util/naming"
	"github.com/imamik/coroctl/internal/util/retry"
	"github.com/imamik/coroctl/internal/util/tags"
)

// drbdDevice is the device name the replication volume is attached under on
// every node, so the DRBD resource config is identical across the cluster.
const drbdDevice = "/dev/xvdf"

// ProvisionNodes launches one node per allocated zone into the zone's private
// subnet and attaches its replication volume. Zones are provisioned in
// parallel.
func (p *Provisioner) ProvisionNodes(ctx *provisioning.Context) error {
	var mu sync.Mutex
	var tasks []async.Task

	for i, alloc := range ctx.State.Allocations {
		index := i + 1
		zoneID := alloc.ZoneID
		tasks = append(tasks, async.Task{
			Name: naming.Node(ctx.Config.ClusterName, index),
			Func: func(taskCtx context.Context) error {
				node, volumeID, err := p.provisionNode(ctx, index, zoneID)
				if err != nil {
					return err
				}
				mu.Lock()
				ctx.State.Nodes[node.Name] = node
				ctx.State.VolumeIDs[node.Name] = volumeID
				mu.Unlock()
				return nil
			},
		})
	}

	return async.RunParallel(ctx, tasks)
}

// provisionNode ensures one node and its volume exist in the given zone.
// Re-running against an existing node is a no-op apart from drift checks.
func (p *Provisioner) provisionNode(ctx *provisioning.Context, index int, zoneID string) (*awscloud.Instance, string, error) {
	cluster := ctx.Config.ClusterName
	name := naming.Node(cluster, index)

	node, err := ctx.Cloud.GetInstanceByName(ctx, name)
	if err != nil {
		return nil, "", err
	}
	if node == nil {
		provisioning.LogResourceCreating(ctx.Observer, p.Name(), "instance", name)
		nodeTags := tags.NewBuilder(cluster).
			WithName(name).
			WithZone(zoneID).
			WithExtra(ctx.Config.Tags).
			Build()

		err = retry.Do(ctx, func() error {
			var runErr error
			node, runErr = ctx.Cloud.RunInstance(ctx, awscloud.InstanceCreateOpts{
				Name:            name,
				ImageID:         ctx.Config.Nodes.AMI,
				InstanceType:    ctx.Config.Nodes.InstanceType,
				SubnetID:        ctx.State.PrivateSubnetIDs[zoneID],
				SecurityGroupID: ctx.State.SecurityGroupID,
				KeyName:         ctx.State.KeyName,
				ProfileName:     ctx.State.ProfileName,
				UserData:        nodeUserData(name, ctx.Config.DNS.Domain),
				Tags:            nodeTags,
			})
			return runErr
		})
		if err != nil {
			return nil, "", err
		}
		provisioning.LogResourceCreated(ctx.Observer, p.Name(), "instance", name, node.ID)
	} else if node.ZoneID != zoneID {
		return nil, "", fmt.Errorf("node %s exists in zone %s but is allocated to %s", name, node.ZoneID, zoneID)
	}

	volumeID, err := p.provisionVolume(ctx, index, zoneID, node.ID)
	if err != nil {
		return nil, "", err
	}
	return node, volumeID, nil
}

// provisionVolume ensures the node's replication volume exists in the same
// zone and is attached under the DRBD device name.
func (p *Provisioner) provisionVolume(ctx *provisioning.Context, index int, zoneID, instanceID string) (string, error) {
	cluster := ctx.Config.ClusterName
	name := naming.Volume(cluster, index)

	zoneName := ctx.State.ZoneName(zoneID)
	if zoneName == "" {
		return "", fmt.Errorf("zone %s is not bound", zoneID)
	}

	volumeTags := tags.NewBuilder(cluster).
		WithName(name).
		WithZone(zoneID).
		WithExtra(ctx.Config.Tags).
		Build()

	volumeID, err := ctx.Cloud.EnsureVolume(ctx, awscloud.VolumeCreateOpts{
		Name:     name,
		ZoneName: zoneName,
		SizeGB:   int32(ctx.Config.Nodes.VolumeSizeGB),
		Type:     ctx.Config.Nodes.VolumeType,
		Tags:     volumeTags,
	})
	if err != nil {
		return "", err
	}
	provisioning.LogResourceCreated(ctx.Observer, p.Name(), "volume", name, volumeID)

	if err := ctx.Cloud.AttachVolume(ctx, volumeID, instanceID, drbdDevice); err != nil {
		return "", err
	}
	return volumeID, nil
}
