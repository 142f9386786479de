package compute

import (
	"fmt"

	"github.com/imamik/coroctl/internal/provisioning"
)

// Provisioner handles compute resource provisioning (key pair, nodes,
// volumes, DNS records).
type Provisioner struct{}

// NewProvisioner creates a new compute provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return "compute"
}

// Provision implements the provisioning.Phase interface. All nodes are
// created in parallel, one per availability zone.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	if ctx.Config.Nodes.AMI == "" {
		return fmt.Errorf("nodes.ami must be set to launch instances")
	}

	// 1. SSH key pair
	if err := p.ProvisionKeyPair(ctx); err != nil {
		return err
	}

	// 2. Nodes with replication volumes, in parallel across zones
	if err := p.ProvisionNodes(ctx); err != nil {
		return err
	}

	// 3. DNS records (optional)
	if err := p.ProvisionDNS(ctx); err != nil {
		return err
	}

	return nil
}
