package awscloud

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/imamik/coroctl/internal/util/tags"
)

// EnsureVPC ensures that a VPC with the given Name tag exists and carries the
// expected CIDR block. Returns the VPC ID.
func (c *RealClient) EnsureVPC(ctx context.Context, name, cidr string, tagMap map[string]string) (string, error) {
	existing, err := c.ec2.DescribeVpcs(ctx, &ec2.DescribeVpcsInput{
		Filters: []ec2types.Filter{nameFilter(name)},
	})
	if err != nil {
		return "", fmt.Errorf("failed to look up VPC %s: %w", name, err)
	}
	if len(existing.Vpcs) > 0 {
		vpc := existing.Vpcs[0]
		if aws.ToString(vpc.CidrBlock) != cidr {
			return "", fmt.Errorf("VPC %s exists but with different CIDR %s (expected %s)",
				name, aws.ToString(vpc.CidrBlock), cidr)
		}
		return aws.ToString(vpc.VpcId), nil
	}

	out, err := c.ec2.CreateVpc(ctx, &ec2.CreateVpcInput{
		CidrBlock:         aws.String(cidr),
		TagSpecifications: tagSpec(ec2types.ResourceTypeVpc, tagMap),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create VPC %s: %w", name, err)
	}
	vpcID := aws.ToString(out.Vpc.VpcId)

	// DNS hostnames are needed for the nodes to resolve each other's
	// private names inside the VPC.
	for _, attr := range []ec2.ModifyVpcAttributeInput{
		{VpcId: aws.String(vpcID), EnableDnsSupport: &ec2types.AttributeBooleanValue{Value: aws.Bool(true)}},
		{VpcId: aws.String(vpcID), EnableDnsHostnames: &ec2types.AttributeBooleanValue{Value: aws.Bool(true)}},
	} {
		if _, err := c.ec2.ModifyVpcAttribute(ctx, &attr); err != nil {
			return "", fmt.Errorf("failed to set VPC attribute on %s: %w", name, err)
		}
	}

	return vpcID, nil
}

// EnsureSubnet ensures that a subnet with the requested CIDR exists in the
// VPC, placed in the requested zone by its stable zone ID.
func (c *RealClient) EnsureSubnet(ctx context.Context, opts SubnetCreateOpts) (string, error) {
	existing, err := c.ec2.DescribeSubnets(ctx, &ec2.DescribeSubnetsInput{
		Filters: []ec2types.Filter{
			{Name: aws.String("vpc-id"), Values: []string{opts.VPCID}},
			{Name: aws.String("cidr-block"), Values: []string{opts.CIDR}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to look up subnet %s: %w", opts.CIDR, err)
	}
	if len(existing.Subnets) > 0 {
		subnet := existing.Subnets[0]
		if aws.ToString(subnet.AvailabilityZoneId) != opts.ZoneID {
			return "", fmt.Errorf("subnet %s exists but in zone %s (expected %s)",
				opts.CIDR, aws.ToString(subnet.AvailabilityZoneId), opts.ZoneID)
		}
		return aws.ToString(subnet.SubnetId), nil
	}

	out, err := c.ec2.CreateSubnet(ctx, &ec2.CreateSubnetInput{
		VpcId:              aws.String(opts.VPCID),
		CidrBlock:          aws.String(opts.CIDR),
		AvailabilityZoneId: aws.String(opts.ZoneID),
		TagSpecifications:  tagSpec(ec2types.ResourceTypeSubnet, opts.Tags),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create subnet %s in %s: %w", opts.CIDR, opts.ZoneID, err)
	}
	subnetID := aws.ToString(out.Subnet.SubnetId)

	if opts.MapPublicIP {
		_, err = c.ec2.ModifySubnetAttribute(ctx, &ec2.ModifySubnetAttributeInput{
			SubnetId:            aws.String(subnetID),
			MapPublicIpOnLaunch: &ec2types.AttributeBooleanValue{Value: aws.Bool(true)},
		})
		if err != nil {
			return "", fmt.Errorf("failed to enable public IPs on subnet %s: %w", subnetID, err)
		}
	}

	return subnetID, nil
}

// EnsurePublicRouting attaches an internet gateway to the VPC and routes the
// public subnets through it. An existing route table with the expected Name
// tag is reused, so re-running does not accumulate tables.
func (c *RealClient) EnsurePublicRouting(ctx context.Context, vpcID string, subnetIDs []string, tagMap map[string]string) error {
	igwID, err := c.ensureInternetGateway(ctx, vpcID, tagMap)
	if err != nil {
		return err
	}

	existing, err := c.ec2.DescribeRouteTables(ctx, &ec2.DescribeRouteTablesInput{
		Filters: []ec2types.Filter{
			{Name: aws.String("vpc-id"), Values: []string{vpcID}},
			nameFilter(tagMap[tags.KeyName]),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to look up public route table: %w", err)
	}

	var rtbID string
	var associated map[string]bool
	if len(existing.RouteTables) > 0 {
		rtb := existing.RouteTables[0]
		rtbID = aws.ToString(rtb.RouteTableId)
		associated = associatedSubnets(rtb)
	} else {
		rtbOut, err := c.ec2.CreateRouteTable(ctx, &ec2.CreateRouteTableInput{
			VpcId:             aws.String(vpcID),
			TagSpecifications: tagSpec(ec2types.ResourceTypeRouteTable, tagMap),
		})
		if err != nil {
			return fmt.Errorf("failed to create public route table: %w", err)
		}
		rtbID = aws.ToString(rtbOut.RouteTable.RouteTableId)

		_, err = c.ec2.CreateRoute(ctx, &ec2.CreateRouteInput{
			RouteTableId:         aws.String(rtbID),
			DestinationCidrBlock: aws.String("0.0.0.0/0"),
			GatewayId:            aws.String(igwID),
		})
		if err != nil {
			return fmt.Errorf("failed to create default route: %w", err)
		}
	}

	for _, subnetID := range subnetIDs {
		if associated[subnetID] {
			continue
		}
		_, err = c.ec2.AssociateRouteTable(ctx, &ec2.AssociateRouteTableInput{
			RouteTableId: aws.String(rtbID),
			SubnetId:     aws.String(subnetID),
		})
		if err != nil {
			return fmt.Errorf("failed to associate subnet %s with route table: %w", subnetID, err)
		}
	}

	return nil
}

// associatedSubnets returns the subnet IDs already associated with the route
// table. Main-table associations carry no subnet ID and are skipped.
func associatedSubnets(rtb ec2types.RouteTable) map[string]bool {
	out := make(map[string]bool, len(rtb.Associations))
	for _, assoc := range rtb.Associations {
		if id := aws.ToString(assoc.SubnetId); id != "" {
			out[id] = true
		}
	}
	return out
}

func (c *RealClient) ensureInternetGateway(ctx context.Context, vpcID string, tagMap map[string]string) (string, error) {
	existing, err := c.ec2.DescribeInternetGateways(ctx, &ec2.DescribeInternetGatewaysInput{
		Filters: []ec2types.Filter{
			{Name: aws.String("attachment.vpc-id"), Values: []string{vpcID}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to look up internet gateway: %w", err)
	}
	if len(existing.InternetGateways) > 0 {
		return aws.ToString(existing.InternetGateways[0].InternetGatewayId), nil
	}

	out, err := c.ec2.CreateInternetGateway(ctx, &ec2.CreateInternetGatewayInput{
		TagSpecifications: tagSpec(ec2types.ResourceTypeInternetGateway, tagMap),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create internet gateway: %w", err)
	}
	igwID := aws.ToString(out.InternetGateway.InternetGatewayId)

	_, err = c.ec2.AttachInternetGateway(ctx, &ec2.AttachInternetGatewayInput{
		InternetGatewayId: aws.String(igwID),
		VpcId:             aws.String(vpcID),
	})
	if err != nil {
		return "", fmt.Errorf("failed to attach internet gateway: %w", err)
	}

	return igwID, nil
}

// DeleteNetwork removes the cluster's routing, subnets and VPC by tag, in
// dependency order.
func (c *RealClient) DeleteNetwork(ctx context.Context, cluster string) error {
	key, value := tags.ClusterSelector(cluster)
	selector := tagFilter(key, value)

	vpcs, err := c.ec2.DescribeVpcs(ctx, &ec2.DescribeVpcsInput{
		Filters: []ec2types.Filter{selector},
	})
	if err != nil {
		return fmt.Errorf("failed to look up cluster VPC: %w", err)
	}

	rtbs, err := c.ec2.DescribeRouteTables(ctx, &ec2.DescribeRouteTablesInput{
		Filters: []ec2types.Filter{selector},
	})
	if err != nil {
		return fmt.Errorf("failed to look up cluster route tables: %w", err)
	}
	for _, rtb := range rtbs.RouteTables {
		for _, assoc := range rtb.Associations {
			if assoc.RouteTableAssociationId == nil || aws.ToBool(assoc.Main) {
				continue
			}
			if _, err := c.ec2.DisassociateRouteTable(ctx, &ec2.DisassociateRouteTableInput{
				AssociationId: assoc.RouteTableAssociationId,
			}); err != nil {
				return fmt.Errorf("failed to disassociate route table: %w", err)
			}
		}
		if _, err := c.ec2.DeleteRouteTable(ctx, &ec2.DeleteRouteTableInput{
			RouteTableId: rtb.RouteTableId,
		}); err != nil {
			return fmt.Errorf("failed to delete route table: %w", err)
		}
	}

	igws, err := c.ec2.DescribeInternetGateways(ctx, &ec2.DescribeInternetGatewaysInput{
		Filters: []ec2types.Filter{selector},
	})
	if err != nil {
		return fmt.Errorf("failed to look up cluster internet gateways: %w", err)
	}

	subnets, err := c.ec2.DescribeSubnets(ctx, &ec2.DescribeSubnetsInput{
		Filters: []ec2types.Filter{selector},
	})
	if err != nil {
		return fmt.Errorf("failed to look up cluster subnets: %w", err)
	}
	for _, subnet := range subnets.Subnets {
		if _, err := c.ec2.DeleteSubnet(ctx, &ec2.DeleteSubnetInput{
			SubnetId: subnet.SubnetId,
		}); err != nil {
			return fmt.Errorf("failed to delete subnet %s: %w", aws.ToString(subnet.SubnetId), err)
		}
	}

	for _, vpc := range vpcs.Vpcs {
		for _, igw := range igws.InternetGateways {
			if _, err := c.ec2.DetachInternetGateway(ctx, &ec2.DetachInternetGatewayInput{
				InternetGatewayId: igw.InternetGatewayId,
				VpcId:             vpc.VpcId,
			}); err != nil {
				return fmt.Errorf("failed to detach internet gateway: %w", err)
			}
		}
		if _, err := c.ec2.DeleteVpc(ctx, &ec2.DeleteVpcInput{VpcId: vpc.VpcId}); err != nil {
			return fmt.Errorf("failed to delete VPC %s: %w", aws.ToString(vpc.VpcId), err)
		}
	}
	for _, igw := range igws.InternetGateways {
		if _, err := c.ec2.DeleteInternetGateway(ctx, &ec2.DeleteInternetGatewayInput{
			InternetGatewayId: igw.InternetGatewayId,
		}); err != nil {
			return fmt.Errorf("failed to delete internet gateway: %w", err)
		}
	}

	return nil
}
