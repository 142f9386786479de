package infrastructure

import (
	"github.com/imamik/coroctl/internal/provisioning"
)

// Provisioner handles infrastructure provisioning (VPC, subnets, routing,
// security group, instance profile).
type Provisioner struct{}

// NewProvisioner creates a new infrastructure provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return "infrastructure"
}

// Provision implements the provisioning.Phase interface.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	// 1. VPC, subnets and public routing
	if err := p.ProvisionNetwork(ctx); err != nil {
		return err
	}

	// 2. Security group with cluster rules
	if err := p.ProvisionSecurityGroup(ctx); err != nil {
		return err
	}

	// 3. Node instance profile
	if err := p.ProvisionInstanceProfile(ctx); err != nil {
		return err
	}

	return nil
}
