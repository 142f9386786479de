package awscloud

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// EnsureKeyPair imports the public key under the given name if no key pair
// with that name exists yet.
func (c *RealClient) EnsureKeyPair(ctx context.Context, name string, publicKey []byte, tagMap map[string]string) error {
	_, err := c.ec2.DescribeKeyPairs(ctx, &ec2.DescribeKeyPairsInput{
		KeyNames: []string{name},
	})
	if err == nil {
		return nil
	}
	if !isNotFound(err) {
		return fmt.Errorf("failed to look up key pair %s: %w", name, err)
	}

	_, err = c.ec2.ImportKeyPair(ctx, &ec2.ImportKeyPairInput{
		KeyName:           aws.String(name),
		PublicKeyMaterial: publicKey,
		TagSpecifications: tagSpec(ec2types.ResourceTypeKeyPair, tagMap),
	})
	if err != nil {
		return fmt.Errorf("failed to import key pair %s: %w", name, err)
	}
	return nil
}

// DeleteKeyPair removes the key pair. A missing key pair is not an error.
func (c *RealClient) DeleteKeyPair(ctx context.Context, name string) error {
	_, err := c.ec2.DeleteKeyPair(ctx, &ec2.DeleteKeyPairInput{
		KeyName: aws.String(name),
	})
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to delete key pair %s: %w", name, err)
	}
	return nil
}
