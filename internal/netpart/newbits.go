package netpart

// poolNewbits converts one pool's ratio weight into the additional prefix
// bits for that pool's subnets, before the minimum-size floor is applied.
//
// A larger weight yields fewer additional bits, i.e. a larger block, so the
// two pools split the available address bits in proportion to their weights:
//
//	newbits = available - floor(available * weight / (private + public))
func poolNewbits(available, weight, weightSum int) int {
	return available - available*weight/weightSum
}

// clampNewbits reduces newbits so the resulting prefix never exceeds the
// floor. A /28 floor means no subnet smaller than 16 addresses.
//
// If even newbits zero would overshoot the floor, the base block cannot host
// a single minimum-size subnet.
func clampNewbits(basePrefix, newbits, floor int) (int, error) {
	excess := max(floor, basePrefix+newbits) - floor
	clamped := newbits - excess
	if clamped < 0 {
		return 0, validationf("base block too small: /%d base cannot hold a /%d subnet", basePrefix, floor)
	}
	return clamped, nil
}
