package netpart

// DefaultFloor is the default minimum subnet size: no allocated block is
// smaller than a /28 (16 addresses).
const DefaultFloor = 28

// Result holds the carved private and public allocations. Both sequences
// have one entry per zone, in the same zone order.
type Result struct {
	Private []Allocation
	Public  []Allocation
}

// Partition carves base into one private and one public subnet per zone.
//
// The per-pool subnet sizes come from the ratio: the available address bits
// of the base block are split proportionally between the pools, then clamped
// so no subnet ends up smaller than the floor (pass 0 for DefaultFloor).
//
// Both pools are carved in a single pass over one combined request list, the
// private requests first. Because the carver hands out consecutive
// non-overlapping ranges in request order, the public run starts exactly
// where the private consumption ended and the two pools can never collide.
func Partition(base Block, ratio Ratio, zoneIDs []string, floor int) (*Result, error) {
	if floor <= 0 {
		floor = DefaultFloor
	}
	if err := ratio.validate(); err != nil {
		return nil, err
	}
	if len(zoneIDs) == 0 {
		return nil, validationf("invalid zone count: at least one zone is required")
	}
	if base.prefix >= floor {
		return nil, validationf("base block too small: %s is not wider than the /%d floor", base, floor)
	}

	available := 32 - base.prefix
	weightSum := ratio.Private + ratio.Public

	privateBits, err := clampNewbits(base.prefix, poolNewbits(available, ratio.Private, weightSum), floor)
	if err != nil {
		return nil, err
	}
	publicBits, err := clampNewbits(base.prefix, poolNewbits(available, ratio.Public, weightSum), floor)
	if err != nil {
		return nil, err
	}

	reqs := make([]SubnetRequest, 0, 2*len(zoneIDs))
	for _, zone := range zoneIDs {
		reqs = append(reqs, SubnetRequest{Newbits: privateBits, ZoneID: zone})
	}
	for _, zone := range zoneIDs {
		reqs = append(reqs, SubnetRequest{Newbits: publicBits, ZoneID: zone})
	}

	allocs, err := Carve(base, reqs)
	if err != nil {
		return nil, err
	}

	n := len(zoneIDs)
	return &Result{
		Private: allocs[:n:n],
		Public:  allocs[n:],
	}, nil
}
