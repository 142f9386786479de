// Package tags provides consistent tagging for the AWS resources of a
// cluster.
//
// Standard tag keys use the coroctl.io prefix for namespacing, and every
// resource carries the cluster tag so teardown can find resources by tag
// alone.
package tags

// Standard tag keys.
const (
	// KeyCluster identifies which cluster a resource belongs to.
	KeyCluster = "coroctl.io/cluster"

	// KeyTier identifies a subnet tier (private, public).
	KeyTier = "coroctl.io/tier"

	// KeyZone identifies the availability zone a resource was allocated for,
	// by stable AZ ID.
	KeyZone = "coroctl.io/zone"

	// KeyManagedBy identifies the management system.
	KeyManagedBy = "coroctl.io/managed-by"

	// KeyName is the display name AWS consoles pick up.
	KeyName = "Name"
)

// Tier values.
const (
	TierPrivate = "private"
	TierPublic  = "public"
)

// ManagedBy value for everything this tool creates.
const ManagedByCoroctl = "coroctl"

// Builder accumulates a tag set for one resource.
type Builder struct {
	tags map[string]string
}

// NewBuilder starts a tag set with the cluster and managed-by tags pre-set.
func NewBuilder(cluster string) *Builder {
	return &Builder{tags: map[string]string{
		KeyCluster:   cluster,
		KeyManagedBy: ManagedByCoroctl,
	}}
}

// WithName sets the display name tag.
func (b *Builder) WithName(name string) *Builder {
	b.tags[KeyName] = name
	return b
}

// WithTier sets the subnet tier tag.
func (b *Builder) WithTier(tier string) *Builder {
	b.tags[KeyTier] = tier
	return b
}

// WithZone sets the availability zone tag.
func (b *Builder) WithZone(zoneID string) *Builder {
	b.tags[KeyZone] = zoneID
	return b
}

// WithExtra merges user-supplied tags. Standard keys win on conflict.
func (b *Builder) WithExtra(extra map[string]string) *Builder {
	for k, v := range extra {
		if _, standard := b.tags[k]; !standard {
			b.tags[k] = v
		}
	}
	return b
}

// Build returns the accumulated tag map.
func (b *Builder) Build() map[string]string {
	out := make(map[string]string, len(b.tags))
	for k, v := range b.tags {
		out[k] = v
	}
	return out
}

// ClusterSelector returns the tag key/value pair identifying all resources of
// a cluster, for filtered lookups and teardown.
func ClusterSelector(cluster string) (string, string) {
	return KeyCluster, cluster
}
