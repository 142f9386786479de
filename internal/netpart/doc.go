// Package netpart carves a base IPv4 CIDR block into per-zone private and
// public subnets.
//
// Given a base block, a private:public capacity ratio and an ordered list of
// availability zone IDs, the package deterministically computes one private
// and one public subnet per zone, all contained in the base block, none
// overlapping, and none smaller than a configured minimum size (default /28).
//
// The computation is a pure function of its inputs: identical inputs always
// produce bit-identical results, and any invalid input fails eagerly with a
// ValidationError before anything is allocated. Zone order is data owned by
// the caller; the package never re-derives it.
package netpart
