package netpart

import "testing"

func TestBind(t *testing.T) {
	res, err := Partition(MustParseBlock("10.4.20.0/22"), Ratio{Private: 5, Public: 2}, testZones, 28)
	if err != nil {
		t.Fatalf("Partition() error = %v", err)
	}

	bound, err := Bind(res, testZones)
	if err != nil {
		t.Fatalf("Bind() error = %v", err)
	}

	if len(bound) != len(testZones) {
		t.Fatalf("Bind() returned %d allocations, want %d", len(bound), len(testZones))
	}
	for i, za := range bound {
		if za.ZoneID != testZones[i] {
			t.Errorf("allocation %d bound to %q, want %q", i, za.ZoneID, testZones[i])
		}
		if za.Private.String() != res.Private[i].Block.String() {
			t.Errorf("zone %s private = %v, want %v", za.ZoneID, za.Private, res.Private[i].Block)
		}
		if za.Public.String() != res.Public[i].Block.String() {
			t.Errorf("zone %s public = %v, want %v", za.ZoneID, za.Public, res.Public[i].Block)
		}
	}
}

func TestBindZoneCountMismatch(t *testing.T) {
	res, err := Partition(MustParseBlock("10.0.0.0/16"), Ratio{Private: 1, Public: 1}, testZones, 28)
	if err != nil {
		t.Fatalf("Partition() error = %v", err)
	}

	if _, err := Bind(res, testZones[:2]); err == nil {
		t.Fatal("Bind() with short zone list expected error, got nil")
	} else if !IsValidationError(err) {
		t.Fatalf("Bind() error = %v, want ValidationError", err)
	}
}

func TestPlan(t *testing.T) {
	bound, err := Plan("10.4.20.0/22", "5:2", testZones, 28)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	if got := bound[0].Private.String(); got != "10.4.20.0/25" {
		t.Errorf("first private block = %v, want 10.4.20.0/25", got)
	}
	if got := bound[2].Public.String(); got != "10.4.21.160/28" {
		t.Errorf("last public block = %v, want 10.4.21.160/28", got)
	}

	if _, err := Plan("10.4.20.0/22", "0:2", testZones, 28); err == nil {
		t.Error("Plan() with invalid ratio expected error, got nil")
	}
	if _, err := Plan("bogus", "5:2", testZones, 28); err == nil {
		t.Error("Plan() with invalid base block expected error, got nil")
	}
}
