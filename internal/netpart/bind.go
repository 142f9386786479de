package netpart

// ZoneAllocation pairs one availability zone with its private and public
// subnet blocks. Downstream consumers look allocations up by the stable
// ZoneID, never by list position, so a change in the set of available zones
// does not silently hand an existing subnet to a different zone.
type ZoneAllocation struct {
	ZoneID  string
	Private Block
	Public  Block
}

// Bind attaches zone identifiers to a partition result, position i of both
// sequences binding to zoneIDs[i].
func Bind(res *Result, zoneIDs []string) ([]ZoneAllocation, error) {
	if len(res.Private) != len(res.Public) || len(res.Private) != len(zoneIDs) {
		return nil, validationf("invalid zone count: %d private and %d public blocks for %d zones",
			len(res.Private), len(res.Public), len(zoneIDs))
	}

	bound := make([]ZoneAllocation, len(zoneIDs))
	for i, zone := range zoneIDs {
		bound[i] = ZoneAllocation{
			ZoneID:  zone,
			Private: res.Private[i].Block,
			Public:  res.Public[i].Block,
		}
	}
	return bound, nil
}

// Plan runs the whole pipeline on textual inputs: parse the base block and
// ratio, partition across the given zones, and bind the result to them.
// Zone order is owned by the caller and treated purely as data.
func Plan(baseCIDR, ratio string, zoneIDs []string, floor int) ([]ZoneAllocation, error) {
	base, err := ParseBlock(baseCIDR)
	if err != nil {
		return nil, err
	}
	r, err := ParseRatio(ratio)
	if err != nil {
		return nil, err
	}
	res, err := Partition(base, r, zoneIDs, floor)
	if err != nil {
		return nil, err
	}
	return Bind(res, zoneIDs)
}
