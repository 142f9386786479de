package naming

import "testing"

func TestNamingFunctions(t *testing.T) {
	cluster := "drbd-prod"

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"VPC", VPC(cluster), "drbd-prod-vpc"},
		{"Subnet", Subnet(cluster, "use1-az1", "private"), "drbd-prod-private-use1-az1"},
		{"SecurityGroup", SecurityGroup(cluster), "drbd-prod-cluster-sg"},
		{"InstanceProfile", InstanceProfile(cluster), "drbd-prod-node-profile"},
		{"KeyPair", KeyPair(cluster), "drbd-prod-keypair"},
		{"Node", Node(cluster, 0), "drbd-prod-node-0"},
		{"Volume", Volume(cluster, 2), "drbd-prod-drbd-2"},
		{"NodeFQDN", NodeFQDN(cluster, 1, "ha.example.com"), "drbd-prod-node-1.ha.example.com"},
	}

	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.expected)
		}
	}
}
