package s3state

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"
)

// snapshotKey is the object name under the configured prefix.
const snapshotKey = "state.json"

// NodeRecord captures one provisioned node in the snapshot.
type NodeRecord struct {
	Name       string `json:"name"`
	InstanceID string `json:"instance_id"`
	ZoneID     string `json:"zone_id"`
	PrivateIP  string `json:"private_ip"`
	PublicIP   string `json:"public_ip,omitempty"`
	VolumeID   string `json:"volume_id,omitempty"`
	FQDN       string `json:"fqdn,omitempty"`
}

// SubnetRecord captures one allocated subnet in the snapshot.
type SubnetRecord struct {
	ZoneID   string `json:"zone_id"`
	Tier     string `json:"tier"`
	CIDR     string `json:"cidr"`
	SubnetID string `json:"subnet_id"`
}

// Snapshot is the durable record of what apply provisioned, written after
// every successful run so destroy and re-apply can reason about the cluster
// without re-deriving it from tags alone.
type Snapshot struct {
	Cluster   string         `json:"cluster"`
	Region    string         `json:"region"`
	BaseCIDR  string         `json:"base_cidr"`
	VPCID     string         `json:"vpc_id"`
	Subnets   []SubnetRecord `json:"subnets"`
	Nodes     []NodeRecord   `json:"nodes"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ObjectStore is the subset of Client the snapshot store needs.
type ObjectStore interface {
	EnsureBucket(ctx context.Context, bucket string) error
	PutObject(ctx context.Context, bucket, key string, data []byte) error
	GetObject(ctx context.Context, bucket, key string) ([]byte, error)
	DeleteObject(ctx context.Context, bucket, key string) error
}

// Store reads and writes cluster snapshots in one bucket/prefix.
type Store struct {
	objects ObjectStore
	bucket  string
	prefix  string
	now     func() time.Time
}

// NewStore creates a snapshot store. The prefix may be empty.
func NewStore(objects ObjectStore, bucket, prefix string) *Store {
	return &Store{objects: objects, bucket: bucket, prefix: prefix, now: time.Now}
}

func (s *Store) key() string {
	return path.Join(s.prefix, snapshotKey)
}

// Save writes the snapshot, creating the bucket on first use. The UpdatedAt
// field is stamped here.
func (s *Store) Save(ctx context.Context, snap *Snapshot) error {
	if err := s.objects.EnsureBucket(ctx, s.bucket); err != nil {
		return err
	}

	snap.UpdatedAt = s.now().UTC()
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return s.objects.PutObject(ctx, s.bucket, s.key(), data)
}

// Load reads the current snapshot. Returns (nil, nil) if none exists yet.
func (s *Store) Load(ctx context.Context) (*Snapshot, error) {
	data, err := s.objects.GetObject(ctx, s.bucket, s.key())
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &snap, nil
}

// Delete removes the snapshot after destroy. A missing snapshot is fine.
func (s *Store) Delete(ctx context.Context) error {
	err := s.objects.DeleteObject(ctx, s.bucket, s.key())
	if err != nil && !IsNotFound(err) {
		return err
	}
	return nil
}
