package awscloud

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	r53types "github.com/aws/aws-sdk-go-v2/service/route53/types"
)

// UpsertRecord creates or updates an A record for the node in the hosted
// zone.
func (c *RealClient) UpsertRecord(ctx context.Context, hostedZoneID, fqdn, ip string, ttl int64) error {
	return c.changeRecord(ctx, hostedZoneID, r53types.ChangeActionUpsert, fqdn, ip, ttl)
}

// DeleteRecord removes the node's A record. Route53 requires the full record
// (value and TTL) to delete it, so the caller passes the same data as on
// upsert.
func (c *RealClient) DeleteRecord(ctx context.Context, hostedZoneID, fqdn, ip string, ttl int64) error {
	err := c.changeRecord(ctx, hostedZoneID, r53types.ChangeActionDelete, fqdn, ip, ttl)
	if err != nil && hasAPIErrorCode(err, "InvalidChangeBatch") {
		// Record already gone.
		return nil
	}
	return err
}

func (c *RealClient) changeRecord(ctx context.Context, hostedZoneID string, action r53types.ChangeAction, fqdn, ip string, ttl int64) error {
	_, err := c.r53.ChangeResourceRecordSets(ctx, &route53.ChangeResourceRecordSetsInput{
		HostedZoneId: aws.String(hostedZoneID),
		ChangeBatch: &r53types.ChangeBatch{
			Changes: []r53types.Change{{
				Action: action,
				ResourceRecordSet: &r53types.ResourceRecordSet{
					Name:            aws.String(fqdn),
					Type:            r53types.RRTypeA,
					TTL:             aws.Int64(ttl),
					ResourceRecords: []r53types.ResourceRecord{{Value: aws.String(ip)}},
				},
			}},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to %s record %s: %w", action, fqdn, err)
	}
	return nil
}
