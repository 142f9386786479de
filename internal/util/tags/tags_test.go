package tags

import "testing"

func TestBuilder(t *testing.T) {
	got := NewBuilder("drbd-prod").
		WithName("drbd-prod-private-use1-az1").
		WithTier(TierPrivate).
		WithZone("use1-az1").
		WithExtra(map[string]string{"team": "storage", KeyCluster: "spoofed"}).
		Build()

	want := map[string]string{
		KeyCluster:   "drbd-prod",
		KeyManagedBy: ManagedByCoroctl,
		KeyName:      "drbd-prod-private-use1-az1",
		KeyTier:      TierPrivate,
		KeyZone:      "use1-az1",
		"team":       "storage",
	}

	if len(got) != len(want) {
		t.Fatalf("Build() returned %d tags, want %d: %v", len(got), len(want), got)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("tag %q = %q, want %q", k, got[k], v)
		}
	}
}

func TestBuildCopies(t *testing.T) {
	b := NewBuilder("c")
	first := b.Build()
	first["mutated"] = "yes"

	if _, ok := b.Build()["mutated"]; ok {
		t.Error("Build() must return a copy, not the internal map")
	}
}

func TestClusterSelector(t *testing.T) {
	k, v := ClusterSelector("drbd-prod")
	if k != KeyCluster || v != "drbd-prod" {
		t.Errorf("ClusterSelector() = (%q, %q), want (%q, %q)", k, v, KeyCluster, "drbd-prod")
	}
}
