package config

import (
	"fmt"

	"github.com/imamik/coroctl/internal/netpart"
)

// Allocations carves the configured base block across the given ordered zone
// IDs and returns the per-zone subnet table. Only the first ZoneCount zones
// are used; fewer than ZoneCount is an error.
//
// The result is a pure function of the configuration and the zone list:
// changing either reshapes the whole partition, which is why plan exists.
func (c *Config) Allocations(zoneIDs []string) ([]netpart.ZoneAllocation, error) {
	if len(zoneIDs) < c.Network.ZoneCount {
		return nil, fmt.Errorf("need %d availability zones but only %d are available", c.Network.ZoneCount, len(zoneIDs))
	}
	return netpart.Plan(c.Network.BaseCIDR, c.Network.SubnetRatio, zoneIDs[:c.Network.ZoneCount], c.Network.MinSubnetPrefix)
}

// PinnedZones returns the configured zone IDs trimmed to ZoneCount, or nil
// when zones should be discovered from the region instead.
func (c *Config) PinnedZones() []string {
	if len(c.Network.ZoneIDs) == 0 {
		return nil
	}
	return c.Network.ZoneIDs[:c.Network.ZoneCount]
}
