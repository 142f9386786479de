package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cluster.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadFileDefaults(t *testing.T) {
	path := writeConfig(t, `
cluster_name: ha-test
region: eu-central-1
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if cfg.Network.BaseCIDR != DefaultBaseCIDR {
		t.Errorf("BaseCIDR = %v, want %v", cfg.Network.BaseCIDR, DefaultBaseCIDR)
	}
	if cfg.Network.SubnetRatio != DefaultSubnetRatio {
		t.Errorf("SubnetRatio = %v, want %v", cfg.Network.SubnetRatio, DefaultSubnetRatio)
	}
	if cfg.Network.ZoneCount != DefaultZoneCount {
		t.Errorf("ZoneCount = %v, want %v", cfg.Network.ZoneCount, DefaultZoneCount)
	}
	if cfg.Network.MinSubnetPrefix != 28 {
		t.Errorf("MinSubnetPrefix = %v, want 28", cfg.Network.MinSubnetPrefix)
	}
	if cfg.Nodes.InstanceType != DefaultInstanceType {
		t.Errorf("InstanceType = %v, want %v", cfg.Nodes.InstanceType, DefaultInstanceType)
	}
	if cfg.Nodes.VolumeSizeGB != DefaultVolumeSizeGB {
		t.Errorf("VolumeSizeGB = %v, want %v", cfg.Nodes.VolumeSizeGB, DefaultVolumeSizeGB)
	}
}

func TestLoadFileFull(t *testing.T) {
	path := writeConfig(t, `
cluster_name: drbd-prod
region: us-east-1
network:
  base_cidr: 10.4.20.0/22
  subnet_ratio: "5:2"
  zone_count: 3
  zone_ids: [use1-az1, use1-az2, use1-az4]
nodes:
  instance_type: m5.large
  volume_size_gb: 100
  volume_type: io2
dns:
  hosted_zone_id: Z0423423ABC
  domain: ha.example.com
state:
  bucket: drbd-prod-state
tags:
  team: storage
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if cfg.Network.BaseCIDR != "10.4.20.0/22" {
		t.Errorf("BaseCIDR = %v, want 10.4.20.0/22", cfg.Network.BaseCIDR)
	}
	if len(cfg.Network.ZoneIDs) != 3 || cfg.Network.ZoneIDs[2] != "use1-az4" {
		t.Errorf("ZoneIDs = %v, want [use1-az1 use1-az2 use1-az4]", cfg.Network.ZoneIDs)
	}
	if cfg.Nodes.InstanceType != "m5.large" {
		t.Errorf("InstanceType = %v, want m5.large", cfg.Nodes.InstanceType)
	}
	if !cfg.DNSEnabled() {
		t.Error("DNSEnabled() = false, want true")
	}
	if cfg.State.Bucket != "drbd-prod-state" {
		t.Errorf("State.Bucket = %v, want drbd-prod-state", cfg.State.Bucket)
	}
	if cfg.Tags["team"] != "storage" {
		t.Errorf("Tags = %v, want team: storage", cfg.Tags)
	}
}

func TestLoadFileInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing cluster name", "region: eu-central-1\n"},
		{"missing region", "cluster_name: ha-test\n"},
		{"bad yaml", "cluster_name: [unclosed\n"},
		{"base narrower than floor", `
cluster_name: ha-test
region: eu-central-1
network:
  base_cidr: 10.0.0.0/29
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFile(writeConfig(t, tt.content)); err == nil {
				t.Error("LoadFile() expected error, got nil")
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadFile() expected error for missing file, got nil")
	}
}
