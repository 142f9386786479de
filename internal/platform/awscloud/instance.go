package awscloud

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/imamik/coroctl/internal/util/tags"
)

// instanceRunningTimeout bounds the wait for a freshly launched node.
const instanceRunningTimeout = 5 * time.Minute

// RunInstance launches a cluster node and waits until it is running, so the
// caller always gets the assigned IPs back.
func (c *RealClient) RunInstance(ctx context.Context, opts InstanceCreateOpts) (*Instance, error) {
	input := &ec2.RunInstancesInput{
		ImageId:          aws.String(opts.ImageID),
		InstanceType:     ec2types.InstanceType(opts.InstanceType),
		MinCount:         aws.Int32(1),
		MaxCount:         aws.Int32(1),
		SubnetId:         aws.String(opts.SubnetID),
		SecurityGroupIds: []string{opts.SecurityGroupID},
		TagSpecifications: tagSpec(ec2types.ResourceTypeInstance, opts.Tags),
	}
	if opts.KeyName != "" {
		input.KeyName = aws.String(opts.KeyName)
	}
	if opts.ProfileName != "" {
		input.IamInstanceProfile = &ec2types.IamInstanceProfileSpecification{
			Name: aws.String(opts.ProfileName),
		}
	}
	if opts.UserData != "" {
		input.UserData = aws.String(base64.StdEncoding.EncodeToString([]byte(opts.UserData)))
	}

	out, err := c.ec2.RunInstances(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to launch instance %s: %w", opts.Name, err)
	}
	if len(out.Instances) == 0 {
		return nil, fmt.Errorf("launch of %s returned no instances", opts.Name)
	}
	instanceID := aws.ToString(out.Instances[0].InstanceId)

	waiter := ec2.NewInstanceRunningWaiter(c.ec2)
	describe := &ec2.DescribeInstancesInput{InstanceIds: []string{instanceID}}
	if err := waiter.Wait(ctx, describe, instanceRunningTimeout); err != nil {
		return nil, fmt.Errorf("instance %s did not reach running state: %w", opts.Name, err)
	}

	// Re-describe after the wait: the public IP is only assigned once the
	// instance is running.
	described, err := c.ec2.DescribeInstances(ctx, describe)
	if err != nil {
		return nil, fmt.Errorf("failed to describe instance %s: %w", instanceID, err)
	}
	return firstInstance(described, opts.Name), nil
}

// GetInstanceByName returns the non-terminated instance with the given Name
// tag, or nil if there is none.
func (c *RealClient) GetInstanceByName(ctx context.Context, name string) (*Instance, error) {
	out, err := c.ec2.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
		Filters: []ec2types.Filter{
			nameFilter(name),
			{Name: aws.String("instance-state-name"), Values: []string{"pending", "running", "stopping", "stopped"}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to look up instance %s: %w", name, err)
	}
	return firstInstance(out, name), nil
}

// TerminateCluster terminates every instance carrying the cluster tag and
// waits for them to be gone, so dependent resources can be deleted next.
func (c *RealClient) TerminateCluster(ctx context.Context, cluster string) error {
	key, value := tags.ClusterSelector(cluster)
	out, err := c.ec2.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
		Filters: []ec2types.Filter{
			tagFilter(key, value),
			{Name: aws.String("instance-state-name"), Values: []string{"pending", "running", "stopping", "stopped"}},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to look up cluster instances: %w", err)
	}

	var ids []string
	for _, res := range out.Reservations {
		for _, inst := range res.Instances {
			ids = append(ids, aws.ToString(inst.InstanceId))
		}
	}
	if len(ids) == 0 {
		return nil
	}

	if _, err := c.ec2.TerminateInstances(ctx, &ec2.TerminateInstancesInput{InstanceIds: ids}); err != nil {
		return fmt.Errorf("failed to terminate instances: %w", err)
	}

	waiter := ec2.NewInstanceTerminatedWaiter(c.ec2)
	describe := &ec2.DescribeInstancesInput{InstanceIds: ids}
	if err := waiter.Wait(ctx, describe, instanceRunningTimeout); err != nil {
		return fmt.Errorf("instances did not terminate: %w", err)
	}
	return nil
}

func firstInstance(out *ec2.DescribeInstancesOutput, name string) *Instance {
	for _, res := range out.Reservations {
		for _, inst := range res.Instances {
			return &Instance{
				ID:        aws.ToString(inst.InstanceId),
				Name:      name,
				ZoneID:    aws.ToString(inst.Placement.AvailabilityZoneId),
				PrivateIP: aws.ToString(inst.PrivateIpAddress),
				PublicIP:  aws.ToString(inst.PublicIpAddress),
			}
		}
	}
	return nil
}
