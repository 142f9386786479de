package awscloud

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/imamik/coroctl/internal/util/tags"
)

// EnsureSecurityGroup ensures a security group with the given name exists in
// the VPC. Returns the group ID.
func (c *RealClient) EnsureSecurityGroup(ctx context.Context, vpcID, name, description string, tagMap map[string]string) (string, error) {
	existing, err := c.ec2.DescribeSecurityGroups(ctx, &ec2.DescribeSecurityGroupsInput{
		Filters: []ec2types.Filter{
			{Name: aws.String("vpc-id"), Values: []string{vpcID}},
			{Name: aws.String("group-name"), Values: []string{name}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to look up security group %s: %w", name, err)
	}
	if len(existing.SecurityGroups) > 0 {
		return aws.ToString(existing.SecurityGroups[0].GroupId), nil
	}

	out, err := c.ec2.CreateSecurityGroup(ctx, &ec2.CreateSecurityGroupInput{
		VpcId:             aws.String(vpcID),
		GroupName:         aws.String(name),
		Description:       aws.String(description),
		TagSpecifications: tagSpec(ec2types.ResourceTypeSecurityGroup, tagMap),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create security group %s: %w", name, err)
	}

	return aws.ToString(out.GroupId), nil
}

// AuthorizeIngress adds the given ingress rules to the group. Duplicate
// rules are tolerated so the call stays idempotent.
func (c *RealClient) AuthorizeIngress(ctx context.Context, groupID string, rules []SecurityGroupRule) error {
	perms := make([]ec2types.IpPermission, 0, len(rules))
	for _, rule := range rules {
		perm := ec2types.IpPermission{
			IpProtocol: aws.String(rule.Protocol),
		}
		if rule.Protocol != "-1" {
			perm.FromPort = aws.Int32(rule.FromPort)
			perm.ToPort = aws.Int32(rule.ToPort)
		}
		if rule.CIDR != "" {
			perm.IpRanges = []ec2types.IpRange{{
				CidrIp:      aws.String(rule.CIDR),
				Description: aws.String(rule.Description),
			}}
		}
		if rule.SourceGroupID != "" {
			perm.UserIdGroupPairs = []ec2types.UserIdGroupPair{{
				GroupId:     aws.String(rule.SourceGroupID),
				Description: aws.String(rule.Description),
			}}
		}
		perms = append(perms, perm)
	}

	_, err := c.ec2.AuthorizeSecurityGroupIngress(ctx, &ec2.AuthorizeSecurityGroupIngressInput{
		GroupId:       aws.String(groupID),
		IpPermissions: perms,
	})
	if err != nil && !isDuplicatePermission(err) {
		return fmt.Errorf("failed to authorize ingress on %s: %w", groupID, err)
	}
	return nil
}

// DeleteSecurityGroup removes the cluster's security groups by tag.
func (c *RealClient) DeleteSecurityGroup(ctx context.Context, cluster string) error {
	key, value := tags.ClusterSelector(cluster)
	existing, err := c.ec2.DescribeSecurityGroups(ctx, &ec2.DescribeSecurityGroupsInput{
		Filters: []ec2types.Filter{tagFilter(key, value)},
	})
	if err != nil {
		return fmt.Errorf("failed to look up cluster security groups: %w", err)
	}

	for _, sg := range existing.SecurityGroups {
		if _, err := c.ec2.DeleteSecurityGroup(ctx, &ec2.DeleteSecurityGroupInput{
			GroupId: sg.GroupId,
		}); err != nil {
			return fmt.Errorf("failed to delete security group %s: %w", aws.ToString(sg.GroupId), err)
		}
	}
	return nil
}
