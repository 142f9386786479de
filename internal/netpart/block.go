package netpart

import (
	"encoding/binary"
	"fmt"
	"net"
)

// Block is an IPv4 CIDR block held as a 32-bit network address and a prefix
// length. The address always has all bits beyond the prefix set to zero.
type Block struct {
	addr   uint32
	prefix int
}

// ParseBlock parses an IPv4 CIDR string such as "10.4.20.0/22".
// The address is masked down to the canonical network address.
//
// Note: Only IPv4 is supported. IPv6 addresses return a ValidationError.
func ParseBlock(s string) (Block, error) {
	_, ipNet, err := net.ParseCIDR(s)
	if err != nil {
		return Block{}, validationf("invalid CIDR block %q: %v", s, err)
	}
	if ipNet.IP.To4() == nil {
		return Block{}, validationf("invalid CIDR block %q: only IPv4 is supported", s)
	}
	prefix, _ := ipNet.Mask.Size()
	return Block{
		addr:   binary.BigEndian.Uint32(ipNet.IP.To4()),
		prefix: prefix,
	}, nil
}

// MustParseBlock is ParseBlock for static literals; it panics on error.
func MustParseBlock(s string) Block {
	b, err := ParseBlock(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Prefix returns the prefix length.
func (b Block) Prefix() int { return b.prefix }

// Addr returns the network address.
func (b Block) Addr() net.IP {
	ip := make(net.IP, 4)
	binary.BigEndian.PutUint32(ip, b.addr)
	return ip
}

func (b Block) String() string {
	return fmt.Sprintf("%s/%d", b.Addr(), b.prefix)
}

// IsZero reports whether b is the zero Block (as opposed to 0.0.0.0/0,
// which no valid partition ever produces).
func (b Block) IsZero() bool { return b == Block{} }

// size returns the number of addresses covered by the block.
func (b Block) size() uint64 {
	return uint64(1) << (32 - b.prefix)
}

// last returns the last address in the block.
func (b Block) last() uint32 {
	return b.addr + uint32(b.size()-1)
}

// Contains reports whether other's address range lies fully inside b.
func (b Block) Contains(other Block) bool {
	return other.prefix >= b.prefix && other.addr >= b.addr && other.last() <= b.last()
}

// Overlaps reports whether b and other share any address.
func (b Block) Overlaps(other Block) bool {
	return b.addr <= other.last() && other.addr <= b.last()
}
