package awscloud

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/route53"
)

// RealClient implements CloudManager against the live AWS APIs.
type RealClient struct {
	ec2    *ec2.Client
	r53    *route53.Client
	iam    *iam.Client
	region string
}

// NewRealClient creates a client for the given region using the default AWS
// credential chain (environment, shared config files, instance role).
func NewRealClient(ctx context.Context, region string) (*RealClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &RealClient{
		ec2:    ec2.NewFromConfig(cfg),
		r53:    route53.NewFromConfig(cfg),
		iam:    iam.NewFromConfig(cfg),
		region: region,
	}, nil
}

// Region returns the region this client operates in.
func (c *RealClient) Region() string { return c.region }
