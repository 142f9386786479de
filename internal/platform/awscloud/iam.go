package awscloud

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
)

// ec2AssumeRolePolicy lets EC2 instances assume the node role.
const ec2AssumeRolePolicy = `{
  "Version": "2012-10-17",
  "Statement": [
    {
      "Effect": "Allow",
      "Principal": {"Service": "ec2.amazonaws.com"},
      "Action": "sts:AssumeRole"
    }
  ]
}`

// EnsureInstanceProfile creates the node role and instance profile if they do
// not exist, and makes sure the role is attached to the profile. Both share
// the given name. Returns the profile name.
func (c *RealClient) EnsureInstanceProfile(ctx context.Context, name string, tagMap map[string]string) (string, error) {
	if err := c.ensureRole(ctx, name, tagMap); err != nil {
		return "", err
	}

	profile, err := c.iam.GetInstanceProfile(ctx, &iam.GetInstanceProfileInput{
		InstanceProfileName: aws.String(name),
	})
	if err != nil {
		if !isNotFound(err) {
			return "", fmt.Errorf("failed to look up instance profile %s: %w", name, err)
		}
		created, err := c.iam.CreateInstanceProfile(ctx, &iam.CreateInstanceProfileInput{
			InstanceProfileName: aws.String(name),
			Tags:                iamTags(tagMap),
		})
		if err != nil {
			return "", fmt.Errorf("failed to create instance profile %s: %w", name, err)
		}
		profile = &iam.GetInstanceProfileOutput{InstanceProfile: created.InstanceProfile}
	}

	for _, role := range profile.InstanceProfile.Roles {
		if aws.ToString(role.RoleName) == name {
			return name, nil
		}
	}

	_, err = c.iam.AddRoleToInstanceProfile(ctx, &iam.AddRoleToInstanceProfileInput{
		InstanceProfileName: aws.String(name),
		RoleName:            aws.String(name),
	})
	if err != nil {
		return "", fmt.Errorf("failed to attach role to instance profile %s: %w", name, err)
	}
	return name, nil
}

func (c *RealClient) ensureRole(ctx context.Context, name string, tagMap map[string]string) error {
	_, err := c.iam.GetRole(ctx, &iam.GetRoleInput{RoleName: aws.String(name)})
	if err == nil {
		return nil
	}
	if !isNotFound(err) {
		return fmt.Errorf("failed to look up role %s: %w", name, err)
	}

	_, err = c.iam.CreateRole(ctx, &iam.CreateRoleInput{
		RoleName:                 aws.String(name),
		AssumeRolePolicyDocument: aws.String(ec2AssumeRolePolicy),
		Tags:                     iamTags(tagMap),
	})
	if err != nil {
		return fmt.Errorf("failed to create role %s: %w", name, err)
	}
	return nil
}

// DeleteInstanceProfile removes the instance profile and the node role.
// Missing resources are tolerated so destroy stays idempotent.
func (c *RealClient) DeleteInstanceProfile(ctx context.Context, name string) error {
	_, err := c.iam.RemoveRoleFromInstanceProfile(ctx, &iam.RemoveRoleFromInstanceProfileInput{
		InstanceProfileName: aws.String(name),
		RoleName:            aws.String(name),
	})
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to detach role from instance profile %s: %w", name, err)
	}

	_, err = c.iam.DeleteInstanceProfile(ctx, &iam.DeleteInstanceProfileInput{
		InstanceProfileName: aws.String(name),
	})
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to delete instance profile %s: %w", name, err)
	}

	_, err = c.iam.DeleteRole(ctx, &iam.DeleteRoleInput{RoleName: aws.String(name)})
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to delete role %s: %w", name, err)
	}
	return nil
}

func iamTags(tagMap map[string]string) []iamtypes.Tag {
	out := make([]iamtypes.Tag, 0, len(tagMap))
	for _, key := range sortedKeys(tagMap) {
		out = append(out, iamtypes.Tag{Key: aws.String(key), Value: aws.String(tagMap[key])})
	}
	return out
}
