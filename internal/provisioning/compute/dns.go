package compute

import (
	"fmt"

	"github.com/imamik/coroctl/internal/provisioning"
	"github.com/imamik/coroctl/internal/util/naming"
)

// recordTTL is the TTL for node A records. Short, so failover re-pointing
// propagates quickly.
const recordTTL = 300

// ProvisionDNS upserts one A record per node, pointing at its private IP.
// Skipped when DNS is not configured.
func (p *Provisioner) ProvisionDNS(ctx *provisioning.Context) error {
	if !ctx.Config.DNSEnabled() {
		return nil
	}

	for i := range ctx.State.Allocations {
		index := i + 1
		name := naming.Node(ctx.Config.ClusterName, index)
		node, ok := ctx.State.Nodes[name]
		if !ok {
			return fmt.Errorf("node %s is missing from state", name)
		}

		fqdn := naming.NodeFQDN(ctx.Config.ClusterName, index, ctx.Config.DNS.Domain)
		if err := ctx.Cloud.UpsertRecord(ctx, ctx.Config.DNS.HostedZoneID, fqdn, node.PrivateIP, recordTTL); err != nil {
			return err
		}
		ctx.State.FQDNs[name] = fqdn
		provisioning.LogResourceCreated(ctx.Observer, p.Name(), "DNS record", fqdn, node.PrivateIP)
	}
	return nil
}
