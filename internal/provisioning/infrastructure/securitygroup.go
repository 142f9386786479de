package infrastructure

import (
	"fmt"

	"github.com/imamik/coroctl/internal/platform/awscloud"
	"github.com/imamik/coroctl/internal/provisioning"
	"github.com/imamik/coroctl/internal/util/naming"
	"github.com/imamik/coroctl/internal/util/tags"
)

// Cluster ports. Corosync uses the totem and token ports, DRBD one port per
// replicated resource.
const (
	corosyncPortFrom = 5404
	corosyncPortTo   = 5405
	drbdPortFrom     = 7788
	drbdPortTo       = 7799
	sshPort          = 22
)

// ProvisionSecurityGroup reconciles the cluster security group and its
// ingress rules.
func (p *Provisioner) ProvisionSecurityGroup(ctx *provisioning.Context) error {
	cluster := ctx.Config.ClusterName
	name := naming.SecurityGroup(cluster)

	sgTags := tags.NewBuilder(cluster).WithName(name).WithExtra(ctx.Config.Tags).Build()
	groupID, err := ctx.Cloud.EnsureSecurityGroup(ctx, ctx.State.VPCID, name,
		fmt.Sprintf("Cluster traffic for %s", cluster), sgTags)
	if err != nil {
		return err
	}
	ctx.State.SecurityGroupID = groupID
	provisioning.LogResourceCreated(ctx.Observer, p.Name(), "security group", name, groupID)

	if err := ctx.Cloud.AuthorizeIngress(ctx, groupID, clusterIngressRules(groupID)); err != nil {
		return err
	}
	return nil
}

// clusterIngressRules returns the rules every node needs: Corosync membership
// and DRBD replication between cluster members, and SSH for administration.
func clusterIngressRules(groupID string) []awscloud.SecurityGroupRule {
	return []awscloud.SecurityGroupRule{
		{
			Description:   "Corosync totem membership",
			Protocol:      "udp",
			FromPort:      corosyncPortFrom,
			ToPort:        corosyncPortTo,
			SourceGroupID: groupID,
		},
		{
			Description:   "DRBD replication",
			Protocol:      "tcp",
			FromPort:      drbdPortFrom,
			ToPort:        drbdPortTo,
			SourceGroupID: groupID,
		},
		{
			Description:   "Pacemaker remote",
			Protocol:      "tcp",
			FromPort:      3121,
			ToPort:        3121,
			SourceGroupID: groupID,
		},
		{
			Description: "SSH administration",
			Protocol:    "tcp",
			FromPort:    sshPort,
			ToPort:      sshPort,
			CIDR:        "0.0.0.0/0",
		},
	}
}
