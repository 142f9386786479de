package awscloud

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// AvailabilityZones returns the region's available zones ordered by zone ID.
//
// Zone IDs (use1-az1, ...) are stable across accounts, unlike zone names,
// which AWS shuffles per account. Ordering by ID keeps the subnet partition
// independent of the account the tool runs under.
func (c *RealClient) AvailabilityZones(ctx context.Context) ([]Zone, error) {
	out, err := c.ec2.DescribeAvailabilityZones(ctx, &ec2.DescribeAvailabilityZonesInput{
		Filters: []ec2types.Filter{
			{Name: aws.String("state"), Values: []string{"available"}},
			{Name: aws.String("zone-type"), Values: []string{"availability-zone"}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe availability zones: %w", err)
	}

	zones := make([]Zone, 0, len(out.AvailabilityZones))
	for _, az := range out.AvailabilityZones {
		zones = append(zones, Zone{
			ID:   aws.ToString(az.ZoneId),
			Name: aws.ToString(az.ZoneName),
		})
	}
	sort.Slice(zones, func(i, j int) bool { return zones[i].ID < zones[j].ID })

	return zones, nil
}
