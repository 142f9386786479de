package provisioning

import (
	"context"

	"github.com/imamik/coroctl/internal/config"
	"github.com/imamik/coroctl/internal/netpart"
	"github.com/imamik/coroctl/internal/platform/awscloud"
)

// State holds the shared results of provisioning phases.
// It is progressively populated as each phase completes and is passed
// to subsequent phases that need earlier results.
type State struct {
	// Zone binding and subnet allocation (populated before any phase runs)
	Zones       []awscloud.Zone        // bound zones, allocation order
	Allocations []netpart.ZoneAllocation

	// Infrastructure results (populated by infrastructure provisioner)
	VPCID            string
	PrivateSubnetIDs map[string]string // zoneID -> subnetID
	PublicSubnetIDs  map[string]string // zoneID -> subnetID
	SecurityGroupID  string
	ProfileName      string

	// Compute results (populated by compute provisioner)
	KeyName   string
	Nodes     map[string]*awscloud.Instance // nodeName -> instance
	VolumeIDs map[string]string             // nodeName -> volumeID
	FQDNs     map[string]string             // nodeName -> DNS record name
}

// NewState creates an empty provisioning state.
func NewState() *State {
	return &State{
		PrivateSubnetIDs: make(map[string]string),
		PublicSubnetIDs:  make(map[string]string),
		Nodes:            make(map[string]*awscloud.Instance),
		VolumeIDs:        make(map[string]string),
		FQDNs:            make(map[string]string),
	}
}

// Context wraps all dependencies and state needed for a provisioning phase.
type Context struct {
	context.Context
	Config   *config.Config
	State    *State
	Cloud    awscloud.CloudManager
	Observer Observer
}

// NewContext creates a new provisioning context.
func NewContext(ctx context.Context, cfg *config.Config, cloud awscloud.CloudManager) *Context {
	return &Context{
		Context:  ctx,
		Config:   cfg,
		State:    NewState(),
		Cloud:    cloud,
		Observer: NewConsoleObserver(),
	}
}

// ZoneNames returns the AZ names of the bound zones, allocation order.
func (s *State) ZoneNames() []string {
	names := make([]string, len(s.Zones))
	for i, zone := range s.Zones {
		names[i] = zone.Name
	}
	return names
}

// ZoneName returns the AZ name for a zone ID, or "" if the zone is unbound.
func (s *State) ZoneName(zoneID string) string {
	for _, zone := range s.Zones {
		if zone.ID == zoneID {
			return zone.Name
		}
	}
	return ""
}
