package s3state

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// mockObjects is an in-memory ObjectStore.
type mockObjects struct {
	buckets map[string]bool
	objects map[string][]byte

	getErr error
	delErr error
}

func newMockObjects() *mockObjects {
	return &mockObjects{
		buckets: make(map[string]bool),
		objects: make(map[string][]byte),
	}
}

func (m *mockObjects) EnsureBucket(_ context.Context, bucket string) error {
	m.buckets[bucket] = true
	return nil
}

func (m *mockObjects) PutObject(_ context.Context, bucket, key string, data []byte) error {
	m.objects[bucket+"/"+key] = data
	return nil
}

func (m *mockObjects) GetObject(_ context.Context, bucket, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	data, ok := m.objects[bucket+"/"+key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return data, nil
}

func (m *mockObjects) DeleteObject(_ context.Context, bucket, key string) error {
	if m.delErr != nil {
		return m.delErr
	}
	delete(m.objects, bucket+"/"+key)
	return nil
}

func testSnapshot() *Snapshot {
	return &Snapshot{
		Cluster:  "prod",
		Region:   "us-east-1",
		BaseCIDR: "10.4.20.0/22",
		VPCID:    "vpc-123",
		Subnets: []SubnetRecord{
			{ZoneID: "use1-az1", Tier: "private", CIDR: "10.4.20.0/25", SubnetID: "subnet-1"},
			{ZoneID: "use1-az1", Tier: "public", CIDR: "10.4.21.128/28", SubnetID: "subnet-2"},
		},
		Nodes: []NodeRecord{
			{Name: "prod-node-1", InstanceID: "i-1", ZoneID: "use1-az1", PrivateIP: "10.4.20.10"},
		},
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	objects := newMockObjects()
	store := NewStore(objects, "state-bucket", "clusters/prod")
	store.now = func() time.Time { return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC) }

	if err := store.Save(context.Background(), testSnapshot()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !objects.buckets["state-bucket"] {
		t.Error("expected bucket to be ensured")
	}

	loaded, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected a snapshot, got nil")
	}
	if loaded.Cluster != "prod" {
		t.Errorf("expected cluster 'prod', got %q", loaded.Cluster)
	}
	if len(loaded.Subnets) != 2 || loaded.Subnets[1].CIDR != "10.4.21.128/28" {
		t.Errorf("unexpected subnets: %+v", loaded.Subnets)
	}
	if loaded.UpdatedAt.IsZero() {
		t.Error("expected UpdatedAt to be stamped")
	}
}

func TestStore_KeyUsesPrefix(t *testing.T) {
	objects := newMockObjects()
	store := NewStore(objects, "state-bucket", "clusters/prod")

	if err := store.Save(context.Background(), testSnapshot()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, ok := objects.objects["state-bucket/clusters/prod/state.json"]; !ok {
		t.Errorf("expected object under prefixed key, have keys %v", keys(objects.objects))
	}
}

func TestStore_LoadMissingReturnsNil(t *testing.T) {
	store := NewStore(newMockObjects(), "state-bucket", "")

	snap, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if snap != nil {
		t.Errorf("expected nil snapshot, got %+v", snap)
	}
}

func TestStore_LoadCorruptSnapshot(t *testing.T) {
	objects := newMockObjects()
	objects.objects["state-bucket/state.json"] = []byte("{not json")
	store := NewStore(objects, "state-bucket", "")

	if _, err := store.Load(context.Background()); err == nil {
		t.Error("expected error for corrupt snapshot")
	}
}

func TestStore_LoadPropagatesErrors(t *testing.T) {
	objects := newMockObjects()
	objects.getErr = errors.New("access denied")
	store := NewStore(objects, "state-bucket", "")

	if _, err := store.Load(context.Background()); err == nil {
		t.Error("expected error to propagate")
	}
}

func TestStore_DeleteMissingIsFine(t *testing.T) {
	objects := newMockObjects()
	objects.delErr = &types.NoSuchKey{}
	store := NewStore(objects, "state-bucket", "")

	if err := store.Delete(context.Background()); err != nil {
		t.Errorf("expected nil for missing snapshot, got %v", err)
	}
}

func TestSnapshot_RoundTripPreservesNodes(t *testing.T) {
	snap := testSnapshot()
	snap.Nodes[0].VolumeID = "vol-1"
	snap.Nodes[0].FQDN = "prod-node-1.example.com"

	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var out Snapshot
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if out.Nodes[0].VolumeID != "vol-1" || out.Nodes[0].FQDN != "prod-node-1.example.com" {
		t.Errorf("unexpected node record: %+v", out.Nodes[0])
	}
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"no such key", &types.NoSuchKey{}, true},
		{"no such bucket", &types.NoSuchBucket{}, true},
		{"not found", &types.NotFound{}, true},
		{"other", errors.New("boom"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.want {
				t.Errorf("IsNotFound(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func keys(m map[string][]byte) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
