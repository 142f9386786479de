package provisioning

import (
	"fmt"

	"github.com/imamik/coroctl/internal/platform/awscloud"
)

// ResolveAllocations discovers the region's availability zones, binds the
// configured number of them, and carves the base block into per-zone
// subnets. Must run before any phase that touches State.Zones or
// State.Allocations.
//
// When the configuration pins zone IDs, those zones are used in the pinned
// order; otherwise the zones come from discovery, ordered by zone ID.
func ResolveAllocations(ctx *Context) error {
	discovered, err := ctx.Cloud.AvailabilityZones(ctx)
	if err != nil {
		return fmt.Errorf("failed to discover availability zones: %w", err)
	}

	byID := make(map[string]awscloud.Zone, len(discovered))
	for _, zone := range discovered {
		byID[zone.ID] = zone
	}

	var bound []awscloud.Zone
	if pinned := ctx.Config.PinnedZones(); pinned != nil {
		for _, id := range pinned {
			zone, ok := byID[id]
			if !ok {
				return fmt.Errorf("configured zone %s does not exist in region %s", id, ctx.Config.Region)
			}
			bound = append(bound, zone)
		}
	} else {
		if len(discovered) < ctx.Config.Network.ZoneCount {
			return fmt.Errorf("region %s has %d availability zones, need %d",
				ctx.Config.Region, len(discovered), ctx.Config.Network.ZoneCount)
		}
		bound = discovered[:ctx.Config.Network.ZoneCount]
	}

	zoneIDs := make([]string, len(bound))
	for i, zone := range bound {
		zoneIDs[i] = zone.ID
	}

	allocs, err := ctx.Config.Allocations(zoneIDs)
	if err != nil {
		return err
	}

	ctx.State.Zones = bound
	ctx.State.Allocations = allocs
	return nil
}
