package netpart

import (
	"reflect"
	"testing"
)

func TestCarve(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		newbits []int
		want    []string
		wantErr bool
	}{
		{
			name:    "two quarters of a /24",
			base:    "10.0.0.0/24",
			newbits: []int{2, 2},
			want:    []string{"10.0.0.0/26", "10.0.0.64/26"},
		},
		{
			name:    "mixed sizes in request order",
			base:    "10.0.0.0/16",
			newbits: []int{4, 4, 8, 4},
			want:    []string{"10.0.0.0/20", "10.0.16.0/20", "10.0.32.0/24", "10.0.48.0/20"},
		},
		{
			name:    "exactly fills the base",
			base:    "10.0.0.0/24",
			newbits: []int{1, 1},
			want:    []string{"10.0.0.0/25", "10.0.0.128/25"},
		},
		{
			name:    "cursor realigned after a smaller block",
			base:    "10.0.0.0/24",
			newbits: []int{2, 1},
			want:    []string{"10.0.0.0/26", "10.0.0.128/25"},
		},
		{
			name:    "cumulative consumption exceeds the base",
			base:    "10.0.0.0/24",
			newbits: []int{1, 1, 1},
			wantErr: true,
		},
		{
			name:    "request deeper than /32",
			base:    "10.0.0.0/28",
			newbits: []int{5},
			wantErr: true,
		},
		{
			name:    "negative newbits",
			base:    "10.0.0.0/24",
			newbits: []int{-1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := MustParseBlock(tt.base)
			reqs := make([]SubnetRequest, len(tt.newbits))
			for i, n := range tt.newbits {
				reqs[i] = SubnetRequest{Newbits: n}
			}

			allocs, err := Carve(base, reqs)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Carve() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !IsValidationError(err) {
					t.Fatalf("Carve() error = %v, want ValidationError", err)
				}
				return
			}

			got := make([]string, len(allocs))
			for i, a := range allocs {
				got[i] = a.Block.String()
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Carve() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCarveKeepsRequestOrderAndZones(t *testing.T) {
	base := MustParseBlock("10.0.0.0/20")
	reqs := []SubnetRequest{
		{Newbits: 4, ZoneID: "use1-az1"},
		{Newbits: 4, ZoneID: "use1-az2"},
		{Newbits: 4, ZoneID: "use1-az4"},
	}

	allocs, err := Carve(base, reqs)
	if err != nil {
		t.Fatalf("Carve() error = %v", err)
	}

	for i, a := range allocs {
		if a.ZoneID != reqs[i].ZoneID {
			t.Errorf("alloc %d bound to zone %q, want %q", i, a.ZoneID, reqs[i].ZoneID)
		}
		if !base.Contains(a.Block) {
			t.Errorf("alloc %d block %s not contained in %s", i, a.Block, base)
		}
		for j := i + 1; j < len(allocs); j++ {
			if a.Block.Overlaps(allocs[j].Block) {
				t.Errorf("blocks %s and %s overlap", a.Block, allocs[j].Block)
			}
		}
	}
}
