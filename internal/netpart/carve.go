package netpart

// SubnetRequest asks the carver for one child block with a prefix length of
// base.Prefix()+Newbits, optionally tagged with the zone it is destined for.
type SubnetRequest struct {
	Newbits int
	ZoneID  string
}

// Allocation is one carved child block together with the zone it was
// requested for.
type Allocation struct {
	Block  Block
	ZoneID string
}

// Carve subdivides base into consecutive, non-overlapping child blocks, one
// per request, in request order. Request i receives a block of prefix length
// base.Prefix()+reqs[i].Newbits starting at the first address not yet
// consumed by requests 0..i-1. Requests are never reordered or revisited, so
// the result is position-stable and reproducible.
//
// This mirrors the behavior of Terraform's cidrsubnets function.
func Carve(base Block, reqs []SubnetRequest) ([]Allocation, error) {
	capacity := base.size()
	allocs := make([]Allocation, 0, len(reqs))

	var cursor uint64 // addresses consumed so far, relative to base.addr
	for i, req := range reqs {
		prefix := base.prefix + req.Newbits
		if req.Newbits < 0 || prefix > 32 {
			return nil, validationf("subnet too small to allocate: request %d extends %s by %d bits beyond /32",
				i, base, req.Newbits)
		}

		size := uint64(1) << (32 - prefix)
		// A child must start on its own size boundary to be a canonical
		// network address; round the cursor up when a smaller previous
		// request left it misaligned.
		if rem := cursor % size; rem != 0 {
			cursor += size - rem
		}
		if cursor+size > capacity {
			return nil, validationf("insufficient address space: request %d needs %d addresses but %s has %d left",
				i, size, base, capacity-cursor)
		}

		allocs = append(allocs, Allocation{
			// #nosec G115 -- cursor < capacity <= 2^32
			Block:  Block{addr: base.addr + uint32(cursor), prefix: prefix},
			ZoneID: req.ZoneID,
		})
		cursor += size
	}

	return allocs, nil
}
