package destroy

import (
	"fmt"

	"github.com/imamik/coroctl/internal/provisioning"
	"github.com/imamik/coroctl/internal/util/naming"
)

// Provisioner handles cluster destruction. Resources are removed in reverse
// dependency order: DNS records, nodes, volumes, security group, network,
// key pair, instance profile. Everything except DNS is found by cluster tag,
// so destroy works without local state.
type Provisioner struct{}

// NewProvisioner creates a new destroy provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return "destroy"
}

// Provision destroys the cluster and all associated resources.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	cluster := ctx.Config.ClusterName
	ctx.Observer.Printf("[destroy] Starting cluster destruction for: %s", cluster)

	if err := p.deleteDNS(ctx); err != nil {
		return err
	}

	provisioning.LogResourceDeleting(ctx.Observer, p.Name(), "instances", cluster)
	if err := ctx.Cloud.TerminateCluster(ctx, cluster); err != nil {
		return fmt.Errorf("failed to terminate cluster instances: %w", err)
	}

	provisioning.LogResourceDeleting(ctx.Observer, p.Name(), "volumes", cluster)
	if err := ctx.Cloud.DeleteVolumes(ctx, cluster); err != nil {
		return fmt.Errorf("failed to delete volumes: %w", err)
	}

	provisioning.LogResourceDeleting(ctx.Observer, p.Name(), "security group", cluster)
	if err := ctx.Cloud.DeleteSecurityGroup(ctx, cluster); err != nil {
		return fmt.Errorf("failed to delete security group: %w", err)
	}

	provisioning.LogResourceDeleting(ctx.Observer, p.Name(), "network", cluster)
	if err := ctx.Cloud.DeleteNetwork(ctx, cluster); err != nil {
		return fmt.Errorf("failed to delete network: %w", err)
	}

	if err := ctx.Cloud.DeleteKeyPair(ctx, naming.KeyPair(cluster)); err != nil {
		return fmt.Errorf("failed to delete key pair: %w", err)
	}

	if err := ctx.Cloud.DeleteInstanceProfile(ctx, naming.InstanceProfile(cluster)); err != nil {
		return fmt.Errorf("failed to delete instance profile: %w", err)
	}

	ctx.Observer.Printf("[destroy] Cluster %s destroyed successfully", cluster)
	return nil
}

// deleteDNS removes the per-node A records. Route53 deletions need the
// record's current value, so the node IPs are looked up before the instances
// are terminated. Nodes that are already gone are skipped.
func (p *Provisioner) deleteDNS(ctx *provisioning.Context) error {
	if !ctx.Config.DNSEnabled() {
		return nil
	}

	for index := 1; index <= ctx.Config.Network.ZoneCount; index++ {
		name := naming.Node(ctx.Config.ClusterName, index)
		node, err := ctx.Cloud.GetInstanceByName(ctx, name)
		if err != nil {
			return err
		}
		if node == nil || node.PrivateIP == "" {
			continue
		}

		fqdn := naming.NodeFQDN(ctx.Config.ClusterName, index, ctx.Config.DNS.Domain)
		if err := ctx.Cloud.DeleteRecord(ctx, ctx.Config.DNS.HostedZoneID, fqdn, node.PrivateIP, 300); err != nil {
			return err
		}
		provisioning.LogResourceDeleted(ctx.Observer, p.Name(), "DNS record", fqdn)
	}
	return nil
}
