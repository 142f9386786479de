package awscloud

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/imamik/coroctl/internal/util/tags"
)

// EnsureVolume ensures a replication volume with the given Name tag exists
// in the zone. Returns the volume ID.
func (c *RealClient) EnsureVolume(ctx context.Context, opts VolumeCreateOpts) (string, error) {
	existing, err := c.ec2.DescribeVolumes(ctx, &ec2.DescribeVolumesInput{
		Filters: []ec2types.Filter{
			nameFilter(opts.Name),
			{Name: aws.String("status"), Values: []string{"creating", "available", "in-use"}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to look up volume %s: %w", opts.Name, err)
	}
	if len(existing.Volumes) > 0 {
		vol := existing.Volumes[0]
		if err := checkVolumeDrift(vol, opts); err != nil {
			return "", err
		}
		return aws.ToString(vol.VolumeId), nil
	}

	out, err := c.ec2.CreateVolume(ctx, &ec2.CreateVolumeInput{
		AvailabilityZone:  aws.String(opts.ZoneName),
		Size:              aws.Int32(opts.SizeGB),
		VolumeType:        ec2types.VolumeType(opts.Type),
		TagSpecifications: tagSpec(ec2types.ResourceTypeVolume, opts.Tags),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create volume %s: %w", opts.Name, err)
	}
	volumeID := aws.ToString(out.VolumeId)

	waiter := ec2.NewVolumeAvailableWaiter(c.ec2)
	describe := &ec2.DescribeVolumesInput{VolumeIds: []string{volumeID}}
	if err := waiter.Wait(ctx, describe, instanceRunningTimeout); err != nil {
		return "", fmt.Errorf("volume %s did not become available: %w", opts.Name, err)
	}

	return volumeID, nil
}

// checkVolumeDrift validates an existing volume against the requested
// settings. A volume in the wrong zone cannot be attached to the zone's
// node, so it is rejected here rather than failing later in AttachVolume.
func checkVolumeDrift(vol ec2types.Volume, opts VolumeCreateOpts) error {
	if aws.ToInt32(vol.Size) != opts.SizeGB {
		return fmt.Errorf("volume %s exists but with size %dGB (expected %dGB)",
			opts.Name, aws.ToInt32(vol.Size), opts.SizeGB)
	}
	if zone := aws.ToString(vol.AvailabilityZone); zone != opts.ZoneName {
		return fmt.Errorf("volume %s exists but in zone %s (expected %s)",
			opts.Name, zone, opts.ZoneName)
	}
	return nil
}

// AttachVolume attaches the volume to the instance under the given device
// name. Already-attached volumes are left alone.
func (c *RealClient) AttachVolume(ctx context.Context, volumeID, instanceID, device string) error {
	existing, err := c.ec2.DescribeVolumes(ctx, &ec2.DescribeVolumesInput{
		VolumeIds: []string{volumeID},
	})
	if err != nil {
		return fmt.Errorf("failed to describe volume %s: %w", volumeID, err)
	}
	for _, vol := range existing.Volumes {
		for _, att := range vol.Attachments {
			if aws.ToString(att.InstanceId) == instanceID {
				return nil
			}
		}
	}

	_, err = c.ec2.AttachVolume(ctx, &ec2.AttachVolumeInput{
		VolumeId:   aws.String(volumeID),
		InstanceId: aws.String(instanceID),
		Device:     aws.String(device),
	})
	if err != nil {
		return fmt.Errorf("failed to attach volume %s to %s: %w", volumeID, instanceID, err)
	}
	return nil
}

// DeleteVolumes removes the cluster's replication volumes by tag.
func (c *RealClient) DeleteVolumes(ctx context.Context, cluster string) error {
	key, value := tags.ClusterSelector(cluster)
	out, err := c.ec2.DescribeVolumes(ctx, &ec2.DescribeVolumesInput{
		Filters: []ec2types.Filter{tagFilter(key, value)},
	})
	if err != nil {
		return fmt.Errorf("failed to look up cluster volumes: %w", err)
	}

	for _, vol := range out.Volumes {
		if _, err := c.ec2.DeleteVolume(ctx, &ec2.DeleteVolumeInput{
			VolumeId: vol.VolumeId,
		}); err != nil {
			return fmt.Errorf("failed to delete volume %s: %w", aws.ToString(vol.VolumeId), err)
		}
	}
	return nil
}
