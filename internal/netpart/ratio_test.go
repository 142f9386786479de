package netpart

import "testing"

func TestParseRatio(t *testing.T) {
	tests := []struct {
		in      string
		want    Ratio
		wantErr bool
	}{
		{"5:2", Ratio{Private: 5, Public: 2}, false},
		{"1:1", Ratio{Private: 1, Public: 1}, false},
		{"10:3", Ratio{Private: 10, Public: 3}, false},
		{"0:2", Ratio{}, true},
		{"5:0", Ratio{}, true},
		{"-1:2", Ratio{}, true},
		{"5", Ratio{}, true},
		{"5:2:1", Ratio{}, true},
		{"a:b", Ratio{}, true},
		{"", Ratio{}, true},
		{" 5:2", Ratio{}, true},
	}

	for _, tt := range tests {
		got, err := ParseRatio(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRatio(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil {
			if !IsValidationError(err) {
				t.Errorf("ParseRatio(%q) error = %v, want ValidationError", tt.in, err)
			}
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRatio(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}
