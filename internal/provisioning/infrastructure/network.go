package infrastructure

import (
	"fmt"

	"github.com/imamik/coroctl/internal/platform/awscloud"
	"github.com/imamik/coroctl/internal/provisioning"
	"github.com/imamik/coroctl/internal/util/naming"
	"github.com/imamik/coroctl/internal/util/tags"
)

// ProvisionNetwork reconciles the VPC, the per-zone subnet pairs, and the
// public routing. Subnet CIDRs come from the resolved allocations, so every
// zone gets one private and one public subnet.
func (p *Provisioner) ProvisionNetwork(ctx *provisioning.Context) error {
	cluster := ctx.Config.ClusterName
	vpcName := naming.VPC(cluster)

	provisioning.LogResourceCreating(ctx.Observer, p.Name(), "VPC", vpcName)
	vpcTags := tags.NewBuilder(cluster).WithName(vpcName).WithExtra(ctx.Config.Tags).Build()
	vpcID, err := ctx.Cloud.EnsureVPC(ctx, vpcName, ctx.Config.Network.BaseCIDR, vpcTags)
	if err != nil {
		return err
	}
	ctx.State.VPCID = vpcID
	provisioning.LogResourceCreated(ctx.Observer, p.Name(), "VPC", vpcName, vpcID)

	var publicSubnetIDs []string
	for _, alloc := range ctx.State.Allocations {
		privateID, err := p.ensureSubnet(ctx, alloc.ZoneID, tags.TierPrivate, alloc.Private.String(), false)
		if err != nil {
			return err
		}
		ctx.State.PrivateSubnetIDs[alloc.ZoneID] = privateID

		publicID, err := p.ensureSubnet(ctx, alloc.ZoneID, tags.TierPublic, alloc.Public.String(), true)
		if err != nil {
			return err
		}
		ctx.State.PublicSubnetIDs[alloc.ZoneID] = publicID
		publicSubnetIDs = append(publicSubnetIDs, publicID)
	}

	routingTags := tags.NewBuilder(cluster).WithName(vpcName + "-public").WithExtra(ctx.Config.Tags).Build()
	if err := ctx.Cloud.EnsurePublicRouting(ctx, vpcID, publicSubnetIDs, routingTags); err != nil {
		return fmt.Errorf("failed to set up public routing: %w", err)
	}

	return nil
}

func (p *Provisioner) ensureSubnet(ctx *provisioning.Context, zoneID, tier, cidr string, public bool) (string, error) {
	cluster := ctx.Config.ClusterName
	name := naming.Subnet(cluster, zoneID, tier)

	subnetTags := tags.NewBuilder(cluster).
		WithName(name).
		WithTier(tier).
		WithZone(zoneID).
		WithExtra(ctx.Config.Tags).
		Build()

	subnetID, err := ctx.Cloud.EnsureSubnet(ctx, awscloud.SubnetCreateOpts{
		VPCID:       ctx.State.VPCID,
		ZoneID:      zoneID,
		CIDR:        cidr,
		MapPublicIP: public,
		Tags:        subnetTags,
	})
	if err != nil {
		return "", err
	}
	provisioning.LogResourceCreated(ctx.Observer, p.Name(), "subnet", name, subnetID)
	return subnetID, nil
}
